package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestFetchError_MessageField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Job not found"}`))
	})

	err := client.Get(context.Background(), "/job/99", nil)

	var fetch *FetchError
	if !errors.As(err, &fetch) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if fetch.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", fetch.StatusCode)
	}
	if fetch.Message != "Job not found" {
		t.Errorf("message = %q, want server message", fetch.Message)
	}
}

func TestFetchError_RawBodyFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("something broke"))
	})

	err := client.Get(context.Background(), "/job", nil)

	var fetch *FetchError
	if !errors.As(err, &fetch) {
		t.Fatalf("expected FetchError, got %T", err)
	}
	if fetch.Message != "something broke" {
		t.Errorf("message = %q, want raw body", fetch.Message)
	}
}

func TestFetchError_GenericFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := client.Get(context.Background(), "/job", nil)

	var fetch *FetchError
	if !errors.As(err, &fetch) {
		t.Fatalf("expected FetchError, got %T", err)
	}
	if fetch.Message != "request failed" {
		t.Errorf("message = %q, want generic fallback", fetch.Message)
	}
}

func TestConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	server.Close() // nothing is listening anymore

	err = client.Get(context.Background(), "/job", nil)

	var conn *ConnectionError
	if !errors.As(err, &conn) {
		t.Fatalf("expected ConnectionError, got %T: %v", err, err)
	}
}

func TestSuccessPredicates(t *testing.T) {
	tests := []struct {
		name   string
		status int
		call   func(*Client) error
		wantOK bool
	}{
		{"put accepts 200", http.StatusOK, func(c *Client) error {
			return c.Put(context.Background(), "/x", map[string]string{})
		}, true},
		{"put accepts 204", http.StatusNoContent, func(c *Client) error {
			return c.Put(context.Background(), "/x", map[string]string{})
		}, true},
		{"post accepts 201", http.StatusCreated, func(c *Client) error {
			return c.Post(context.Background(), "/x", map[string]string{}, nil)
		}, true},
		{"delete requires 204", http.StatusOK, func(c *Client) error {
			return c.Delete(context.Background(), "/x")
		}, false},
		{"get rejects 204", http.StatusNoContent, func(c *Client) error {
			return c.Get(context.Background(), "/x", nil)
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			err := tt.call(client)
			if tt.wantOK && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Errorf("expected an error for status %d", tt.status)
			}
		})
	}
}

func TestResetCredential_DropsCookies(t *testing.T) {
	var sawCookie bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		}
		_, sawCookie = r.Header["Cookie"]
		w.WriteHeader(http.StatusOK)
	})

	if err := client.PostRead(context.Background(), "/login", nil); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := client.Get(context.Background(), "/check", nil); err != nil {
		t.Fatalf("check: %v", err)
	}
	if !sawCookie {
		t.Fatal("expected the session cookie to be sent after login")
	}

	client.ResetCredential()
	if err := client.Get(context.Background(), "/check", nil); err != nil {
		t.Fatalf("check after reset: %v", err)
	}
	if sawCookie {
		t.Fatal("expected no cookie after ResetCredential")
	}
}
