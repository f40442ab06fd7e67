package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"condoYaAdmin/internal/modules/auth/application/port"
	sharedauth "condoYaAdmin/internal/shared/auth"
)

func TestLogin_ReturnsTokenPair(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/token/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body["username"] != "admin" {
			t.Errorf("unexpected username: %q", body["username"])
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"access": "acc-1", "refresh": "ref-1"})
	}))
	defer server.Close()

	client := NewTokenHTTPClient(server.URL, time.Second, nil)
	pair, err := client.Login(context.Background(), " admin ", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.Access != "acc-1" || pair.Refresh != "ref-1" {
		t.Fatalf("unexpected pair: %+v", pair)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewTokenHTTPClient(server.URL, time.Second, nil)
	_, err := client.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, port.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestRefresh_KeepsOldRefreshTokenWhenNotRotated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/token/refresh/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"access": "acc-2"})
	}))
	defer server.Close()

	client := NewTokenHTTPClient(server.URL, time.Second, nil)
	pair, err := client.Refresh(context.Background(), "ref-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.Access != "acc-2" {
		t.Fatalf("unexpected access token: %q", pair.Access)
	}
	if pair.Refresh != "ref-1" {
		t.Fatalf("expected old refresh token kept, got %q", pair.Refresh)
	}
}

func TestRefresh_RejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewTokenHTTPClient(server.URL, time.Second, nil)
	_, err := client.Refresh(context.Background(), "stale")
	if !errors.Is(err, port.ErrRefreshRejected) {
		t.Fatalf("expected ErrRefreshRejected, got %v", err)
	}
}

func TestRefresh_EmptyToken(t *testing.T) {
	client := NewTokenHTTPClient("http://backend.invalid", time.Second, nil)
	_, err := client.Refresh(context.Background(), "   ")
	if !errors.Is(err, sharedauth.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}
