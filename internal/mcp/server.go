package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/activity"
	"github.com/tsuzuri-app/tsuzuri/internal/domain/post"
)

const serverInstructions = `tsuzuri is a personal journaling server: dated posts with a
draft/publish lifecycle, a day-grouped timeline, a calendar heat-map, and
multi-criteria search.

Core concepts:
- Post: a single dated entry, at most 500 characters, draft or published.
- Timeline: posts grouped by calendar day, newest day first.
- Calendar: per-day post counts bucketed into none/low/medium/high intensity.

Typical flow:
1) get_timeline or get_calendar_month to orient.
2) create_post to capture an entry (is_draft=true to hold it back).
3) edit_post / publish_post / delete_post to manage the lifecycle.
4) search_posts for text, date-range, and draft filters.
5) get_stats for totals and posting streaks.`

// PostService defines the lifecycle operations needed by MCP.
type PostService interface {
	Create(ctx context.Context, req post.CreateRequest) (*post.Post, error)
	Edit(ctx context.Context, req post.EditRequest) (*post.Post, error)
	Publish(ctx context.Context, id string) (*post.Post, error)
	Delete(ctx context.Context, id string) error
}

// PostReader exposes the canonical snapshot the read tools derive from.
type PostReader interface {
	Snapshot() []post.Post
}

// ActivityService defines the audit trail operations needed by MCP.
type ActivityService interface {
	Recent(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Posts    PostService
	Store    PostReader
	Activity ActivityService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	Resolver      SessionResolver
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "tsuzuri",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	// Stdio mode is local only, so auth never applies there.
	if cfg.TransportMode != "stdio" && cfg.AuthEnabled {
		server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
	}

	registerTools(server, cfg.Services)

	return server
}
