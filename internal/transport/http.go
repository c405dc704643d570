package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// DefaultSessionTimeout closes idle MCP sessions.
const DefaultSessionTimeout = 30 * time.Minute

// Options configures NewHandler.
type Options struct {
	// Auth guards /mcp when set. /health is always open.
	Auth           func(http.Handler) http.Handler
	SessionTimeout time.Duration
	Logger         *slog.Logger
}

// NewHandler serves server over streamable HTTP at /mcp plus a /health probe.
func NewHandler(server *sdkmcp.Server, opts Options) http.Handler {
	timeout := opts.SessionTimeout
	if timeout == 0 {
		timeout = DefaultSessionTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var mcpHandler http.Handler = sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{SessionTimeout: timeout},
	)
	if opts.Auth != nil {
		mcpHandler = opts.Auth(mcpHandler)
	}

	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpHandler)
	mux.Handle("/mcp/", mcpHandler)
	mux.HandleFunc("GET /health", handleHealth)

	return logRequests(logger, mux)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Flush keeps streaming responses working through the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// requestEntry collects fields that inner handlers add to the request log line.
type requestEntry struct {
	operator string
}

type requestEntryKey struct{}

func noteOperator(ctx context.Context, operator string) {
	if entry, ok := ctx.Value(requestEntryKey{}).(*requestEntry); ok {
		entry.operator = operator
	}
}

func logRequests(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		entry := &requestEntry{}
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestEntryKey{}, entry)))
		logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"operator", entry.operator,
			"duration", time.Since(start),
		)
	})
}
