package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"condoYaAdmin/internal/modules/console/application/port"
)

func TestListRows_FollowsNextPages(t *testing.T) {
	var sawAuth, sawPageSize bool
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/api/units/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer token-1" {
			sawAuth = true
		}
		if r.URL.Query().Get("page_size") != "" {
			sawPageSize = true
		}
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			json.NewEncoder(w).Encode(map[string]any{
				"count":   3,
				"next":    nil,
				"results": []map[string]any{{"id": 3, "code": "C-1"}},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"count": 3,
			"next":  server.URL + "/api/units/?page=2",
			"results": []map[string]any{
				{"id": 1, "code": "A-1"},
				{"id": 2, "code": "B-1"},
			},
		})
	})

	client := NewDirectoryHTTPClient(server.URL, time.Second, 100, 5, nil)
	rows, err := client.ListRows(context.Background(), "token-1", "units")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows across pages, got %d", len(rows))
	}
	if !sawAuth {
		t.Fatal("expected bearer token on requests")
	}
	if !sawPageSize {
		t.Fatal("expected page_size query parameter")
	}
}

func TestListRows_PageCapStopsFollowing(t *testing.T) {
	var requests int
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"count":   1000,
			"next":    server.URL + "/api/units/?page=next",
			"results": []map[string]any{{"id": requests}},
		})
	}))
	defer server.Close()

	client := NewDirectoryHTTPClient(server.URL, time.Second, 100, 3, nil)
	rows, err := client.ListRows(context.Background(), "tok", "units")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 3 {
		t.Fatalf("expected 3 requests under the cap, got %d", requests)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
}

func TestListRows_UnsupportedEntity(t *testing.T) {
	client := NewDirectoryHTTPClient("http://backend.invalid", time.Second, 10, 2, nil)

	_, err := client.ListRows(context.Background(), "tok", "ghosts")
	if !errors.Is(err, port.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestListRows_UnauthorizedMapsToSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewDirectoryHTTPClient(server.URL, time.Second, 10, 2, nil)
	_, err := client.ListRows(context.Background(), "stale", "units")
	if !errors.Is(err, port.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCreateRow_ValidationBodyBecomesFieldErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"plate":  []string{"vehicle with this plate already exists."},
			"detail": "invalid input",
		})
	}))
	defer server.Close()

	client := NewDirectoryHTTPClient(server.URL, time.Second, 10, 2, nil)
	_, err := client.CreateRow(context.Background(), "tok", "vehicles", map[string]any{"plate": "ABC-123"})
	if !errors.Is(err, port.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	fields := port.FieldErrors(err)
	if fields["plate"] != "vehicle with this plate already exists." {
		t.Fatalf("unexpected plate message: %q", fields["plate"])
	}
	if fields["__all__"] != "invalid input" {
		t.Fatalf("expected detail promoted to __all__, got %q", fields["__all__"])
	}
}

func TestDeleteRow_NoContent(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewDirectoryHTTPClient(server.URL, time.Second, 10, 2, nil)
	if err := client.DeleteRow(context.Background(), "tok", "pets", "7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != http.MethodDelete || path != "/api/pets/7/" {
		t.Fatalf("unexpected request: %s %s", method, path)
	}
}

func TestDecodePage_BareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{{"id": 1}, {"id": 2}})
	}))
	defer server.Close()

	client := NewDirectoryHTTPClient(server.URL, time.Second, 10, 2, nil)
	rows, err := client.ListRows(context.Background(), "tok", "guards")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows from bare array, got %d", len(rows))
	}
}
