package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// wireDirection tags wire-log entries with which side of the server the
// message crossed.
type wireDirection string

const (
	wireReceive wireDirection = "receive"
	wireSend    wireDirection = "send"
)

// wireLogMiddleware logs every method crossing the server boundary at debug
// level. Notifications get no response line.
func wireLogMiddleware(logger *slog.Logger, dir wireDirection) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			sessionID := sessionIDOf(req)
			logger.Debug("wire request", "direction", dir, "method", method, "session_id", sessionID, "params", compactJSON(paramsOf(req)))

			result, err := next(ctx, method, req)
			if !strings.HasPrefix(method, "notifications/") {
				if err != nil {
					logger.Debug("wire response", "direction", dir, "method", method, "session_id", sessionID, "result", compactJSON(result), "error", err)
				} else {
					logger.Debug("wire response", "direction", dir, "method", method, "session_id", sessionID, "result", compactJSON(result))
				}
			}

			return result, err
		}
	}
}

// Session and params accessors can panic on partially initialized SDK
// requests; both readers recover and fall back to empty values.

func sessionIDOf(req sdkmcp.Request) string {
	if req == nil {
		return ""
	}
	defer func() { recover() }()
	session := req.GetSession()
	if session == nil {
		return ""
	}
	defer func() { recover() }()
	return session.ID()
}

func paramsOf(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

func compactJSON(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
