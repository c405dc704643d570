package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// redactedKeys are argument names whose values never reach the log.
var redactedKeys = map[string]bool{"password": true, "token": true}

func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			sessionID := sessionIDOf(req)
			params := formatPayload(safeParams(req))
			logger.Debug("mcp traffic", "direction", direction, "stage", "request", "method", method, "session_id", sessionID, "params", params)

			result, err := next(ctx, method, req)
			if !strings.HasPrefix(method, "notifications/") {
				if err != nil {
					logger.Debug("mcp traffic", "direction", direction, "stage", "response", "method", method, "session_id", sessionID, "result", formatPayload(result), "error", err)
				} else {
					logger.Debug("mcp traffic", "direction", direction, "stage", "response", "method", method, "session_id", sessionID, "result", formatPayload(result))
				}
			}

			return result, err
		}
	}
}

// sessionIDOf names the MCP session for log lines: the transport session
// first, then the Mcp-Session-Id header, then _meta.session_id on stdio.
func sessionIDOf(req sdkmcp.Request) string {
	if req == nil {
		return ""
	}
	lookups := []func() string{
		func() string { return req.GetSession().ID() },
		func() string { return req.GetExtra().Header.Get("Mcp-Session-Id") },
		func() string {
			sid, _ := req.GetParams().GetMeta()["session_id"].(string)
			return sid
		},
	}
	for _, lookup := range lookups {
		if id := recovered(lookup); id != "" {
			return id
		}
	}
	return ""
}

// recovered runs fn, treating a panic as "". Accessors on notifications
// with nil params or sessions panic.
func recovered(fn func() string) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	return fn()
}

func safeParams(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	var generic any
	if json.Unmarshal(data, &generic) != nil {
		return string(data)
	}
	redact(generic)
	data, err = json.Marshal(generic)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}

func redact(v any) {
	switch t := v.(type) {
	case map[string]any:
		for k, inner := range t {
			if redactedKeys[strings.ToLower(k)] {
				t[k] = "[redacted]"
				continue
			}
			redact(inner)
		}
	case []any:
		for _, inner := range t {
			redact(inner)
		}
	}
}
