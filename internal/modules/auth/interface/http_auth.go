package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	authport "condoYaAdmin/internal/modules/auth/application/port"
	"condoYaAdmin/internal/modules/auth/application/usecase"
	"condoYaAdmin/internal/modules/auth/domain"
	consoleport "condoYaAdmin/internal/modules/console/application/port"
)

// AuthHandler serves the login screen and the logout action.
type AuthHandler struct {
	sessions *SessionManager
	login    *usecase.LoginUseCase
}

func NewAuthHandler(sessions *SessionManager, login *usecase.LoginUseCase) *AuthHandler {
	return &AuthHandler{sessions: sessions, login: login}
}

func (h *AuthHandler) Register(e *echo.Echo) {
	e.GET("/login", h.showLogin)
	e.POST("/login", h.submitLogin)
	e.POST("/logout", h.logout)
}

func (h *AuthHandler) showLogin(c echo.Context) error {
	if _, ok := h.sessions.Current(c); ok {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.Render(http.StatusOK, "login", map[string]any{
		"Title": "Sign in",
	})
}

func (h *AuthHandler) submitLogin(c echo.Context) error {
	var command usecase.LoginCommand
	if err := c.Bind(&command); err != nil {
		return c.Render(http.StatusBadRequest, "login", map[string]any{
			"Title":   "Sign in",
			"Message": "could not read the form",
		})
	}

	output, err := h.login.Execute(c.Request().Context(), command)
	if err != nil {
		return h.renderLoginError(c, command, err)
	}

	session := domain.Session{Tokens: output.Tokens, DisplayName: output.DisplayName}
	if err := h.sessions.Save(c, session); err != nil {
		slog.Error("login session save failed", slog.Any("error", err))
		return c.Render(http.StatusInternalServerError, "login", map[string]any{
			"Title":   "Sign in",
			"Message": "could not start the session, try again",
		})
	}

	slog.Info("login", slog.String("username", command.Username))
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) renderLoginError(c echo.Context, command usecase.LoginCommand, err error) error {
	data := map[string]any{
		"Title":    "Sign in",
		"Username": command.Username,
	}
	switch {
	case errors.Is(err, authport.ErrBadCredentials):
		data["Message"] = "invalid username or password"
		return c.Render(http.StatusUnauthorized, "login", data)
	case errors.Is(err, consoleport.ErrValidation):
		data["Errors"] = consoleport.FieldErrors(err)
		return c.Render(http.StatusBadRequest, "login", data)
	default:
		slog.Error("login failed", slog.Any("error", err))
		data["Message"] = "the backend is not reachable, try again later"
		return c.Render(http.StatusBadGateway, "login", data)
	}
}

func (h *AuthHandler) logout(c echo.Context) error {
	if err := h.sessions.Clear(c); err != nil {
		slog.Warn("logout session clear failed", slog.Any("error", err))
	}
	return c.Redirect(http.StatusFound, "/login")
}
