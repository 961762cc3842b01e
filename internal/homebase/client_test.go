package homebase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func newSiteServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /accounts/sign-in", func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("account_login") != "owner@example.com" || r.FormValue("account_password") != "hunter2" {
			w.Write([]byte(`<html><body><form id="new_account"><input id="account_login"><input id="account_password"></form></body></html>`))
			return
		}
		// Without an explicit path the cookie would be scoped to /accounts
		// and never sent with the dashboard request.
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "xyz789", Path: "/"})
		w.Write([]byte(`<html><body><div id="react-app-root"></div></body></html>`))
	})
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("session"); err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		data, err := os.ReadFile("testdata/dashboard.html")
		if err != nil {
			t.Errorf("missing fixture: %v", err)
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestLoginAndFetchShifts(t *testing.T) {
	server := newSiteServer(t)

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx := context.Background()
	if err := client.Login(ctx, "owner@example.com", "hunter2"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	shifts, err := client.FetchShifts(ctx, day, time.UTC)
	if err != nil {
		t.Fatalf("FetchShifts failed: %v", err)
	}

	if len(shifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(shifts))
	}
	if shifts[0].Name != "Sam Carter" || shifts[1].Name != "Alex Reyes" {
		t.Errorf("unexpected instructors: %v, %v", shifts[0].Name, shifts[1].Name)
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	server := newSiteServer(t)

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = client.Login(context.Background(), "owner@example.com", "wrong")
	if !errors.Is(err, ErrLoginFailed) {
		t.Errorf("expected ErrLoginFailed, got %v", err)
	}
}
