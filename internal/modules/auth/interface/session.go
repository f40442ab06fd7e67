package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"condoYaAdmin/internal/modules/auth/domain"
	sharedauth "condoYaAdmin/internal/shared/auth"
)

const (
	sessionKeyAccess  = "access"
	sessionKeyRefresh = "refresh"
	sessionKeyDisplay = "display_name"

	// ContextKeySession is where requireAuth stores the decoded session for
	// downstream handlers.
	ContextKeySession = "session"
)

// SessionManager wraps the cookie store holding the backend token pair.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
}

func NewSessionManager(secret, cookieName string, maxAge time.Duration, secure bool) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store, name: cookieName}
}

// Current decodes the cookie session; ok is false for anonymous requests and
// undecodable cookies alike.
func (m *SessionManager) Current(c echo.Context) (domain.Session, bool) {
	session, err := m.store.Get(c.Request(), m.name)
	if err != nil {
		return domain.Session{}, false
	}
	access, _ := session.Values[sessionKeyAccess].(string)
	refresh, _ := session.Values[sessionKeyRefresh].(string)
	display, _ := session.Values[sessionKeyDisplay].(string)

	decoded := domain.Session{
		Tokens:      sharedauth.TokenPair{Access: access, Refresh: refresh},
		DisplayName: display,
	}
	if !decoded.Authenticated() {
		return domain.Session{}, false
	}
	return decoded, true
}

// Save writes the session back into the cookie; handlers call it after every
// token refresh so the browser carries the newest pair.
func (m *SessionManager) Save(c echo.Context, s domain.Session) error {
	session, err := m.store.Get(c.Request(), m.name)
	if err != nil {
		session, err = m.store.New(c.Request(), m.name)
		if err != nil {
			return err
		}
	}
	session.Values[sessionKeyAccess] = s.Tokens.Access
	session.Values[sessionKeyRefresh] = s.Tokens.Refresh
	session.Values[sessionKeyDisplay] = s.DisplayName
	return session.Save(c.Request(), c.Response().Writer)
}

// Clear expires the cookie.
func (m *SessionManager) Clear(c echo.Context) error {
	session, err := m.store.Get(c.Request(), m.name)
	if err != nil {
		session, err = m.store.New(c.Request(), m.name)
		if err != nil {
			slog.Warn("session clear failed", slog.Any("error", err))
			return err
		}
	}
	session.Options.MaxAge = -1
	return session.Save(c.Request(), c.Response().Writer)
}

// RequireAuth redirects anonymous requests to the login screen and stores the
// decoded session in the echo context for handlers.
func (m *SessionManager) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, ok := m.Current(c)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		c.Set(ContextKeySession, session)
		return next(c)
	}
}

// SessionFromContext reads what RequireAuth stored.
func SessionFromContext(c echo.Context) (domain.Session, bool) {
	session, ok := c.Get(ContextKeySession).(domain.Session)
	return session, ok
}
