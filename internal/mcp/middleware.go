package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/session"
)

// SessionResolver resolves a session from a raw bearer token.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*session.Session, error)
}

// authMiddleware implements bearer token authentication as MCP middleware.
func authMiddleware(resolver SessionResolver) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			// Skip auth for protocol methods
			if method == "initialize" || method == "ping" {
				return next(ctx, method, req)
			}

			extra := req.GetExtra()
			if extra == nil || extra.Header == nil {
				return nil, fmt.Errorf("unauthorized: missing headers")
			}

			auth := extra.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				return nil, fmt.Errorf("unauthorized: missing bearer token")
			}

			if _, err := resolver.Resolve(ctx, token); err != nil {
				return nil, fmt.Errorf("unauthorized: %w", err)
			}

			return next(ctx, method, req)
		}
	}
}
