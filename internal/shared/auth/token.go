package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenPair holds the bearer credentials issued by the backend token endpoint.
type TokenPair struct {
	Access  string
	Refresh string
}

func (p TokenPair) Empty() bool {
	return strings.TrimSpace(p.Access) == "" && strings.TrimSpace(p.Refresh) == ""
}

// Claims mirrors the registered claims carried by backend-issued access tokens.
type Claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// PeekClaims decodes the access token without verifying its signature. The
// console never holds the backend's signing key; the decoded expiry only steers
// proactive refresh, authorization stays with the backend.
func PeekClaims(token string) (*Claims, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, ErrMissingToken
	}
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(trimmed, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// ExpiresWithin reports whether the access token expires before now+leeway.
// Tokens without a readable expiry are treated as expiring so a refresh is
// attempted before they get rejected.
func ExpiresWithin(token string, leeway time.Duration, now time.Time) bool {
	claims, err := PeekClaims(token)
	if err != nil {
		return true
	}
	exp := claims.ExpiresAt
	if exp == nil {
		return true
	}
	return !exp.Time.After(now.Add(leeway))
}

// BearerHeaderValue formats token for the Authorization header, empty when blank.
func BearerHeaderValue(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ""
	}
	return "Bearer " + trimmed
}
