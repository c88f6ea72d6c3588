package textinput_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Meyredha/Smart-Home-IEEE/internal/infra/textinput"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPSource_CommandEndpoint(t *testing.T) {
	source := textinput.NewHTTPSource(":0", "", discardLogger())
	handler := source.Handler()

	req := httptest.NewRequest(http.MethodPost, "/command", strings.NewReader("turn the light on"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusAccepted)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	text, err := source.NextCommand(ctx)
	if err != nil {
		t.Fatalf("NextCommand error: %v", err)
	}
	if text != "turn the light on" {
		t.Errorf("command: got %q, want %q", text, "turn the light on")
	}
}

func TestHTTPSource_EmptyCommandRejected(t *testing.T) {
	source := textinput.NewHTTPSource(":0", "", discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/command", strings.NewReader("   "))
	rec := httptest.NewRecorder()
	source.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHTTPSource_AuthToken(t *testing.T) {
	source := textinput.NewHTTPSource(":0", "secret", discardLogger())
	handler := source.Handler()

	req := httptest.NewRequest(http.MethodPost, "/command", strings.NewReader("help"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("without token: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	req = httptest.NewRequest(http.MethodPost, "/command", strings.NewReader("help"))
	req.Header.Set("X-Auth-Token", "secret")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Errorf("with token: got %d, want %d", rec.Code, http.StatusAccepted)
	}
}

func TestHTTPSource_QueueFull(t *testing.T) {
	source := textinput.NewHTTPSource(":0", "", discardLogger())

	// The command buffer holds 10 entries
	for i := 0; i < 10; i++ {
		source.Inject("queued command")
	}

	req := httptest.NewRequest(http.MethodPost, "/command", strings.NewReader("one too many"))
	rec := httptest.NewRecorder()
	source.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHTTPSource_Health(t *testing.T) {
	source := textinput.NewHTTPSource(":0", "", discardLogger())

	// Not started yet: health reports not ready
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	source.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status before start: got %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rec.Body.String(), `"status":"not_ready"`) {
		t.Errorf("body before start: got %s", rec.Body.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := source.Start(ctx); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	defer source.Stop()

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	source.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status after start: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body after start: got %s", rec.Body.String())
	}
}

func TestHTTPSource_NextCommandCancelled(t *testing.T) {
	source := textinput.NewHTTPSource(":0", "", discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := source.NextCommand(ctx); err != context.Canceled {
		t.Errorf("error: got %v, want context.Canceled", err)
	}
}
