package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"condoYaAdmin/internal/modules/auth/application/port"
	consoleinfra "condoYaAdmin/internal/modules/console/infrastructure"
	sharedauth "condoYaAdmin/internal/shared/auth"
)

const (
	loginPath   = "/api/token/"
	refreshPath = "/api/token/refresh/"
)

// TokenHTTPClient implements port.TokenService against the backend's JWT
// token endpoints.
type TokenHTTPClient struct {
	rest    *consoleinfra.RESTClient
	timeout time.Duration
}

func NewTokenHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *TokenHTTPClient {
	return &TokenHTTPClient{
		rest:    consoleinfra.NewRESTClient(baseURL, timeout, client),
		timeout: timeout,
	}
}

func (c *TokenHTTPClient) Login(ctx context.Context, username, password string) (sharedauth.TokenPair, error) {
	payload := map[string]string{
		"username": strings.TrimSpace(username),
		"password": password,
	}
	pair, err := c.post(ctx, loginPath, payload, port.ErrBadCredentials)
	if err != nil {
		slog.Warn("token login rejected", slog.String("username", payload["username"]), slog.Any("error", err))
		return sharedauth.TokenPair{}, err
	}
	slog.Info("token login accepted", slog.String("username", payload["username"]))
	return pair, nil
}

func (c *TokenHTTPClient) Refresh(ctx context.Context, refreshToken string) (sharedauth.TokenPair, error) {
	trimmed := strings.TrimSpace(refreshToken)
	if trimmed == "" {
		return sharedauth.TokenPair{}, sharedauth.ErrMissingToken
	}
	pair, err := c.post(ctx, refreshPath, map[string]string{"refresh": trimmed}, port.ErrRefreshRejected)
	if err != nil {
		return sharedauth.TokenPair{}, err
	}
	if strings.TrimSpace(pair.Refresh) == "" {
		pair.Refresh = trimmed
	}
	slog.Debug("token refreshed")
	return pair, nil
}

func (c *TokenHTTPClient) post(ctx context.Context, path string, payload map[string]string, rejection error) (sharedauth.TokenPair, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return sharedauth.TokenPair{}, fmt.Errorf("encode token payload: %w", err)
	}

	req, err := c.rest.NewRequest(ctx, http.MethodPost, path, bytes.NewReader(encoded))
	if err != nil {
		return sharedauth.TokenPair{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.rest.Do(req)
	if err != nil {
		return sharedauth.TokenPair{}, fmt.Errorf("token request failed: %w", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusOK:
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusBadRequest || res.StatusCode == http.StatusForbidden:
		return sharedauth.TokenPair{}, rejection
	default:
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("token endpoint unexpected status", slog.String("path", path), slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(body))))
		return sharedauth.TokenPair{}, fmt.Errorf("unexpected token response %d", res.StatusCode)
	}

	var decoded struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return sharedauth.TokenPair{}, fmt.Errorf("decode token response: %w", err)
	}
	if strings.TrimSpace(decoded.Access) == "" {
		return sharedauth.TokenPair{}, fmt.Errorf("token response missing access token")
	}
	return sharedauth.TokenPair{Access: decoded.Access, Refresh: decoded.Refresh}, nil
}

var _ port.TokenService = (*TokenHTTPClient)(nil)
