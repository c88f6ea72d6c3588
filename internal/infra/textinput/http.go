package textinput

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// HTTPSource accepts commands posted as plain text to POST /command.
// This is where a speech-to-text front end or a home hub would deliver
// transcribed commands.
type HTTPSource struct {
	addr        string
	server      *http.Server
	commands    chan string
	logger      *slog.Logger
	mu          sync.Mutex
	running     bool
	mux         *http.ServeMux
	closeOnce   sync.Once
	rateLimiter *RateLimiter
	authToken   string
}

func NewHTTPSource(addr string, authToken string, logger *slog.Logger) *HTTPSource {
	h := &HTTPSource{
		addr:        addr,
		commands:    make(chan string, 10),
		logger:      logger,
		mux:         http.NewServeMux(),
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 requests per minute per IP
		authToken:   authToken,
	}
	h.mux.HandleFunc("POST /command", h.rateLimiter.Middleware(h.handleCommand))
	// No rate limiting on health check
	h.mux.HandleFunc("GET /health", h.handleHealth)
	return h
}

func (h *HTTPSource) Name() string {
	return "http"
}

func (h *HTTPSource) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return nil
	}

	h.server = &http.Server{
		Addr:         h.addr,
		Handler:      h.mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		h.logger.Info("HTTP command server starting", "addr", h.addr)
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			h.logger.Error("HTTP server error", "error", err)
		}
	}()

	h.running = true
	return nil
}

func (h *HTTPSource) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.running {
		return nil
	}

	if h.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.server.Shutdown(ctx); err != nil {
			h.logger.Warn("graceful shutdown failed, forcing close", "error", err)
			if err := h.server.Close(); err != nil {
				return fmt.Errorf("closing server: %w", err)
			}
		}
	}

	h.closeOnce.Do(func() {
		close(h.commands)
	})
	h.running = false
	return nil
}

func (h *HTTPSource) NextCommand(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case text, ok := <-h.commands:
		if !ok {
			return "", fmt.Errorf("command channel closed")
		}
		return text, nil
	}
}

// Handler exposes the mux so tests can drive it without a listener.
func (h *HTTPSource) Handler() http.Handler {
	return h.mux
}

// Inject queues a command directly, bypassing HTTP. Dropped if full.
func (h *HTTPSource) Inject(text string) {
	select {
	case h.commands <- text:
	default:
	}
}

func (h *HTTPSource) handleCommand(w http.ResponseWriter, r *http.Request) {
	if h.authToken != "" {
		token := r.Header.Get("X-Auth-Token")
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token != h.authToken {
			h.logger.Warn("unauthorized command request", "remote_addr", r.RemoteAddr)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, 1024))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	text := strings.TrimSpace(string(data))
	if text == "" {
		http.Error(w, "empty command", http.StatusBadRequest)
		return
	}

	select {
	case h.commands <- text:
		h.logger.Info("received command via HTTP", "text", text)
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprintf(w, `{"status":"received"}`)
	default:
		http.Error(w, "queue full, try again", http.StatusServiceUnavailable)
	}
}

func (h *HTTPSource) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	running := h.running
	queueSize := len(h.commands)
	h.mu.Unlock()

	status := "ok"
	statusCode := http.StatusOK

	if !running {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	fmt.Fprintf(w, `{"status":"%s","running":%t,"queue_size":%d}`, status, running, queueSize)
}
