package pushover_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Meyredha/Smart-Home-IEEE/internal/domain"
	"github.com/Meyredha/Smart-Home-IEEE/internal/infra/pushover"
)

func testAlert() domain.Alert {
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	return domain.NewAlert("Voice Triggered Panic", "Living Room", at)
}

func TestDeliver(t *testing.T) {
	var received *http.Request
	var form map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r
		if err := r.ParseForm(); err != nil {
			t.Errorf("parsing form: %v", err)
		}
		form = r.PostForm
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := pushover.NewClientWithURL("token", "user-key", server.URL)

	if err := client.Deliver(context.Background(), testAlert()); err != nil {
		t.Fatalf("Deliver error: %v", err)
	}

	if received == nil {
		t.Fatal("no request received")
	}
	if received.URL.Path != "/1/messages.json" {
		t.Errorf("path: got %s, want /1/messages.json", received.URL.Path)
	}
	if got := form["title"]; len(got) != 1 || got[0] != "Emergency: Voice Triggered Panic" {
		t.Errorf("title: got %v", got)
	}
	if got := form["priority"]; len(got) != 1 || got[0] != "1" {
		t.Errorf("priority: got %v", got)
	}
}

func TestDeliver_RetriesOnServerError(t *testing.T) {
	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := pushover.NewClientWithURL("token", "user-key", server.URL)

	if err := client.Deliver(context.Background(), testAlert()); err != nil {
		t.Fatalf("Deliver error: %v", err)
	}

	if attempts != 2 {
		t.Errorf("attempts: got %d, want 2", attempts)
	}
}

func TestDeliver_MissingCredentialsIsNoop(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := pushover.NewClientWithURL("", "", server.URL)

	if err := client.Deliver(context.Background(), testAlert()); err != nil {
		t.Fatalf("Deliver error: %v", err)
	}
	if called {
		t.Error("request sent despite missing credentials")
	}
}
