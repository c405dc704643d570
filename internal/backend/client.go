// Package backend is the console's REST client for the marketplace API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/servidz/console/internal/apperr"
)

// RequestIDHeader carries a per-call id for correlating logs.
const RequestIDHeader = "X-Request-ID"

// DefaultBaseURL is used when Config.BaseURL is empty.
const DefaultBaseURL = "http://localhost:5000/api"

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// Config holds connection settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Options configures optional collaborators of a Client.
type Options struct {
	// Transport is the underlying round tripper. Nil means http.DefaultTransport.
	Transport http.RoundTripper
	// OnUnauthorized runs whenever an authenticated call fails with ErrAuth.
	// token is the bearer the rejected request carried, "" when none was sent.
	OnUnauthorized func(ctx context.Context, token string, err error)
	Logger         *slog.Logger
}

// Client calls the marketplace API. Calls other than Login carry the bearer
// token from the configured token source.
type Client struct {
	base           *url.URL
	anon           *http.Client
	authed         *http.Client
	onUnauthorized func(ctx context.Context, token string, err error)
	logger         *slog.Logger
}

// New creates a client. tokens may be nil for a client that only logs in.
func New(cfg Config, tokens oauth2.TokenSource, opts Options) (*Client, error) {
	raw := cfg.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, apperr.Validation("invalid API base URL %q", raw)
	}

	rt := opts.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		base:           base,
		anon:           &http.Client{Transport: rt, Timeout: cfg.Timeout},
		onUnauthorized: opts.OnUnauthorized,
		logger:         logger,
	}
	if tokens != nil {
		c.authed = &http.Client{
			Transport: &oauth2.Transport{Source: tokens, Base: rt},
			Timeout:   cfg.Timeout,
		}
	}
	return c, nil
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.base.String()
}

type call struct {
	op       string
	method   string
	path     string
	body     io.Reader
	ctype    string
	authed   bool
	mutation bool
}

func (c *Client) jsonCall(op, method, path string, payload any, authed, mutation bool) (call, error) {
	cl := call{op: op, method: method, path: path, authed: authed, mutation: mutation}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return cl, fmt.Errorf("encoding %s request: %w", op, err)
		}
		cl.body = bytes.NewReader(data)
		cl.ctype = "application/json"
	}
	return cl, nil
}

// do performs cl and decodes a successful body into out when out is non-nil.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	req, err := http.NewRequestWithContext(ctx, cl.method, c.base.String()+cl.path, cl.body)
	if err != nil {
		return fmt.Errorf("building %s request: %w", cl.op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if cl.ctype != "" {
		req.Header.Set("Content-Type", cl.ctype)
	}

	httpClient := c.anon
	if cl.authed {
		if c.authed == nil {
			return c.unauthorized(ctx, "", &apperr.RemoteError{Kind: apperr.ErrAuth, Op: cl.op, Message: "no session"})
		}
		httpClient = c.authed
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		if errors.Is(err, apperr.ErrAuth) {
			return c.unauthorized(ctx, "", &apperr.RemoteError{Kind: apperr.ErrAuth, Op: cl.op, Message: "not signed in"})
		}
		c.logger.Warn("backend call failed", "op", cl.op, "request_id", requestID, "error", err)
		return &apperr.RemoteError{Kind: apperr.ErrNetwork, Op: cl.op, Message: err.Error()}
	}
	defer resp.Body.Close()

	c.logger.Debug("backend call",
		"op", cl.op,
		"method", cl.method,
		"path", cl.path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remote := &apperr.RemoteError{
			Kind:       classify(resp.StatusCode, cl.mutation),
			Op:         cl.op,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
		if remote.Kind == apperr.ErrAuth && cl.authed {
			return c.unauthorized(ctx, sentToken(resp), remote)
		}
		return remote
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperr.RemoteError{Kind: apperr.ErrNetwork, Op: cl.op, StatusCode: resp.StatusCode, Message: "decoding response: " + err.Error()}
	}
	return nil
}

func (c *Client) unauthorized(ctx context.Context, token string, err *apperr.RemoteError) error {
	c.logger.Warn("backend rejected session", "op", err.Op, "status", err.StatusCode)
	if c.onUnauthorized != nil {
		c.onUnauthorized(ctx, token, err)
	}
	return err
}

// sentToken returns the bearer token of the request that produced resp.
// The oauth2 transport sets it on the clone that resp.Request points to.
func sentToken(resp *http.Response) string {
	if resp.Request == nil {
		return ""
	}
	token, ok := strings.CutPrefix(resp.Request.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return token
}

func classify(status int, mutation bool) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperr.ErrAuth
	case mutation:
		return apperr.ErrActionFailed
	default:
		return apperr.ErrNetwork
	}
}

// errorMessage extracts {"message"} or {"error"} from an error body,
// falling back to the trimmed text.
func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	text := strings.TrimSpace(string(data))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}

func escape(id string) string {
	return url.PathEscape(id)
}
