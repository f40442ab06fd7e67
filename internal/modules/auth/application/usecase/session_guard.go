package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	authport "condoYaAdmin/internal/modules/auth/application/port"
	consoleport "condoYaAdmin/internal/modules/console/application/port"
	sharedauth "condoYaAdmin/internal/shared/auth"
)

// ErrSessionExpired means neither the access token nor a refresh attempt can
// authenticate the session anymore; the handler redirects to login.
var ErrSessionExpired = errors.New("session expired")

// refreshCall is one in-flight refresh; concurrent requests that hit a 401
// with the same refresh token park on done instead of issuing their own call.
type refreshCall struct {
	done chan struct{}
	pair sharedauth.TokenPair
	err  error
}

// SessionGuard wraps backend calls with the token lifecycle: attach the access
// token, refresh once when the backend answers 401, replay the call exactly
// once with the new token. Refreshes are single-flight per refresh token, so a
// burst of rejected requests produces one refresh round trip and a queue of
// waiters.
type SessionGuard struct {
	tokens authport.TokenService
	leeway time.Duration
	now    func() time.Time

	mu       sync.Mutex
	inflight map[string]*refreshCall
}

func NewSessionGuard(tokens authport.TokenService) *SessionGuard {
	return &SessionGuard{
		tokens:   tokens,
		leeway:   30 * time.Second,
		now:      time.Now,
		inflight: make(map[string]*refreshCall),
	}
}

// Do runs call with a usable access token and returns the (possibly refreshed)
// pair for the handler to persist back into the cookie session.
func (g *SessionGuard) Do(ctx context.Context, pair sharedauth.TokenPair, call func(ctx context.Context, accessToken string) error) (sharedauth.TokenPair, error) {
	if pair.Empty() {
		return pair, ErrSessionExpired
	}

	current := pair
	// A token already past its exp claim would only buy a guaranteed 401;
	// refresh up front instead.
	if sharedauth.ExpiresWithin(current.Access, g.leeway, g.now()) {
		refreshed, err := g.refresh(ctx, current)
		if err != nil {
			return current, fmt.Errorf("%w: %v", ErrSessionExpired, err)
		}
		current = refreshed
	}

	err := call(ctx, current.Access)
	if !errors.Is(err, consoleport.ErrUnauthorized) {
		return current, err
	}

	slog.Debug("session guard refreshing after 401")
	refreshed, refreshErr := g.refresh(ctx, current)
	if refreshErr != nil {
		return current, fmt.Errorf("%w: %v", ErrSessionExpired, refreshErr)
	}
	current = refreshed

	// Exactly one replay; a second 401 bubbles up as-is.
	return current, call(ctx, current.Access)
}

func (g *SessionGuard) refresh(ctx context.Context, pair sharedauth.TokenPair) (sharedauth.TokenPair, error) {
	refreshToken := strings.TrimSpace(pair.Refresh)
	if refreshToken == "" {
		return pair, sharedauth.ErrMissingToken
	}

	g.mu.Lock()
	if existing, ok := g.inflight[refreshToken]; ok {
		g.mu.Unlock()
		select {
		case <-existing.done:
			return existing.pair, existing.err
		case <-ctx.Done():
			return pair, ctx.Err()
		}
	}
	call := &refreshCall{done: make(chan struct{})}
	g.inflight[refreshToken] = call
	g.mu.Unlock()

	refreshed, err := g.tokens.Refresh(ctx, refreshToken)

	g.mu.Lock()
	delete(g.inflight, refreshToken)
	g.mu.Unlock()

	call.pair, call.err = refreshed, err
	close(call.done)

	if err != nil {
		slog.Warn("session guard refresh failed", slog.Any("error", err))
		return pair, err
	}
	return refreshed, nil
}
