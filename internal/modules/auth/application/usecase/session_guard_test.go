package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	consoleport "condoYaAdmin/internal/modules/console/application/port"
	sharedauth "condoYaAdmin/internal/shared/auth"
)

type fakeTokens struct {
	mu           sync.Mutex
	refreshCalls int
	refreshDelay time.Duration
	pair         sharedauth.TokenPair
	err          error
}

func (f *fakeTokens) Login(context.Context, string, string) (sharedauth.TokenPair, error) {
	return f.pair, f.err
}

func (f *fakeTokens) Refresh(context.Context, string) (sharedauth.TokenPair, error) {
	if f.refreshDelay > 0 {
		time.Sleep(f.refreshDelay)
	}
	f.mu.Lock()
	f.refreshCalls++
	f.mu.Unlock()
	return f.pair, f.err
}

func (f *fakeTokens) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshCalls
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := sharedauth.Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-key"))
	require.NoError(t, err)
	return token
}

func TestDo_EmptyPairEndsSession(t *testing.T) {
	guard := NewSessionGuard(&fakeTokens{})

	_, err := guard.Do(context.Background(), sharedauth.TokenPair{}, func(context.Context, string) error {
		t.Fatal("call must not run without tokens")
		return nil
	})
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestDo_ProactiveRefreshOnExpiredToken(t *testing.T) {
	expired := signedToken(t, time.Now().Add(-time.Minute))
	tokens := &fakeTokens{pair: sharedauth.TokenPair{Access: "fresh-access", Refresh: "ref-1"}}
	guard := NewSessionGuard(tokens)

	var usedToken string
	pair, err := guard.Do(context.Background(), sharedauth.TokenPair{Access: expired, Refresh: "ref-1"}, func(_ context.Context, token string) error {
		usedToken = token
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh-access", usedToken, "call must run with the refreshed token")
	assert.Equal(t, "fresh-access", pair.Access)
	assert.Equal(t, 1, tokens.calls())
}

func TestDo_RefreshOn401ReplaysExactlyOnce(t *testing.T) {
	valid := signedToken(t, time.Now().Add(time.Hour))
	tokens := &fakeTokens{pair: sharedauth.TokenPair{Access: "fresh-access", Refresh: "ref-1"}}
	guard := NewSessionGuard(tokens)

	var attempts int
	pair, err := guard.Do(context.Background(), sharedauth.TokenPair{Access: valid, Refresh: "ref-1"}, func(_ context.Context, token string) error {
		attempts++
		if token == valid {
			return consoleport.ErrUnauthorized
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, tokens.calls())
	assert.Equal(t, "fresh-access", pair.Access)
}

func TestDo_SecondUnauthorizedBubblesUp(t *testing.T) {
	valid := signedToken(t, time.Now().Add(time.Hour))
	tokens := &fakeTokens{pair: sharedauth.TokenPair{Access: "fresh-access", Refresh: "ref-1"}}
	guard := NewSessionGuard(tokens)

	var attempts int
	_, err := guard.Do(context.Background(), sharedauth.TokenPair{Access: valid, Refresh: "ref-1"}, func(context.Context, string) error {
		attempts++
		return consoleport.ErrUnauthorized
	})
	require.ErrorIs(t, err, consoleport.ErrUnauthorized)
	assert.Equal(t, 2, attempts, "exactly one replay")
	assert.Equal(t, 1, tokens.calls())
}

func TestDo_RefreshFailureEndsSession(t *testing.T) {
	valid := signedToken(t, time.Now().Add(time.Hour))
	tokens := &fakeTokens{err: consoleport.ErrUnauthorized}
	guard := NewSessionGuard(tokens)

	_, err := guard.Do(context.Background(), sharedauth.TokenPair{Access: valid, Refresh: "ref-1"}, func(context.Context, string) error {
		return consoleport.ErrUnauthorized
	})
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestDo_ConcurrentUnauthorizedSharesOneRefresh(t *testing.T) {
	valid := signedToken(t, time.Now().Add(time.Hour))
	tokens := &fakeTokens{
		pair:         sharedauth.TokenPair{Access: "fresh-access", Refresh: "ref-1"},
		refreshDelay: 100 * time.Millisecond,
	}
	guard := NewSessionGuard(tokens)
	pair := sharedauth.TokenPair{Access: valid, Refresh: "ref-1"}

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	replays := make([]string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = guard.Do(context.Background(), pair, func(_ context.Context, token string) error {
				if token == valid {
					return consoleport.ErrUnauthorized
				}
				replays[i] = token
				return nil
			})
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, tokens.calls(), "concurrent 401s must share one refresh")
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "fresh-access", replays[i], "each request replays once with the new token")
	}
}
