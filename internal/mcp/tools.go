package mcp

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/activity"
	"github.com/tsuzuri-app/tsuzuri/internal/domain/post"
)

type createPostInput struct {
	Content  string `json:"content" jsonschema:"the post content, 1-500 characters"`
	PostDate string `json:"post_date,omitempty" jsonschema:"post date as RFC 3339 or YYYY-MM-DD, defaults to now"`
	IsDraft  bool   `json:"is_draft,omitempty" jsonschema:"hold the post back as a draft"`
}

type editPostInput struct {
	ID       string  `json:"id" jsonschema:"id of the post to edit"`
	Content  *string `json:"content,omitempty" jsonschema:"replacement content"`
	PostDate *string `json:"post_date,omitempty" jsonschema:"replacement post date as RFC 3339 or YYYY-MM-DD"`
	IsDraft  *bool   `json:"is_draft,omitempty" jsonschema:"replacement draft flag"`
}

type postIDInput struct {
	ID string `json:"id" jsonschema:"post id"`
}

type postResult struct {
	Post *post.Post `json:"post,omitempty"`
	// Found is false when the target id no longer exists.
	Found bool `json:"found"`
}

type deleteResult struct {
	Deleted bool `json:"deleted"`
}

type emptyInput struct{}

type timelineResult struct {
	Groups []post.DayGroup `json:"groups"`
}

type draftsResult struct {
	Drafts []post.Post `json:"drafts"`
}

type searchPostsInput struct {
	Query  string `json:"query,omitempty" jsonschema:"case-insensitive substring of the content"`
	Start  string `json:"start,omitempty" jsonschema:"inclusive start date, YYYY-MM-DD"`
	End    string `json:"end,omitempty" jsonschema:"inclusive end date, YYYY-MM-DD"`
	Drafts *bool  `json:"drafts,omitempty" jsonschema:"true for drafts only, false for published only, omit for all"`
}

type searchResult struct {
	Posts []post.Post `json:"posts"`
}

type calendarMonthInput struct {
	Year  int `json:"year" jsonschema:"calendar year, e.g. 2025"`
	Month int `json:"month" jsonschema:"calendar month, 1-12"`
}

type calendarMonthResult struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Slots []post.DaySlot `json:"slots"`
}

type statsResult struct {
	Stats post.Stats `json:"stats"`
}

type recentActivityInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries, defaults to 50"`
}

type recentActivityResult struct {
	Entries []activity.Entry `json:"entries"`
}

// registerTools wires every journaling tool onto the server.
func registerTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_post",
		Description: "Create a new journal post, optionally as a draft",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in createPostInput) (*sdkmcp.CallToolResult, postResult, error) {
		postDate := time.Now()
		if in.PostDate != "" {
			parsed, err := parseDate(in.PostDate)
			if err != nil {
				return nil, postResult{}, fmt.Errorf("invalid post_date: %w", err)
			}
			postDate = parsed
		}

		created, err := services.Posts.Create(ctx, post.CreateRequest{
			Content:  in.Content,
			PostDate: postDate,
			IsDraft:  in.IsDraft,
		})
		if err != nil {
			return nil, postResult{}, err
		}
		return nil, postResult{Post: created, Found: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "edit_post",
		Description: "Edit a post's content, date, or draft flag; omitted fields keep their value",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in editPostInput) (*sdkmcp.CallToolResult, postResult, error) {
		req := post.EditRequest{
			ID:      in.ID,
			Content: in.Content,
			IsDraft: in.IsDraft,
		}
		if in.PostDate != nil {
			parsed, err := parseDate(*in.PostDate)
			if err != nil {
				return nil, postResult{}, fmt.Errorf("invalid post_date: %w", err)
			}
			req.PostDate = &parsed
		}

		edited, err := services.Posts.Edit(ctx, req)
		if err != nil {
			return nil, postResult{}, err
		}
		return nil, postResult{Post: edited, Found: edited != nil}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "publish_post",
		Description: "Publish a draft post; publishing an already-published post is a no-op",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in postIDInput) (*sdkmcp.CallToolResult, postResult, error) {
		published, err := services.Posts.Publish(ctx, in.ID)
		if err != nil {
			return nil, postResult{}, err
		}
		return nil, postResult{Post: published, Found: published != nil}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_post",
		Description: "Delete a post permanently, draft or published",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in postIDInput) (*sdkmcp.CallToolResult, deleteResult, error) {
		if err := services.Posts.Delete(ctx, in.ID); err != nil {
			return nil, deleteResult{}, err
		}
		return nil, deleteResult{Deleted: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_timeline",
		Description: "Get all posts grouped by calendar day, newest day first",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, timelineResult, error) {
		groups := post.GroupByDay(services.Store.Snapshot())
		return nil, timelineResult{Groups: groups}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_drafts",
		Description: "List unpublished draft posts, newest first",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, draftsResult, error) {
		drafts := true
		posts := post.Filter(services.Store.Snapshot(), post.Query{Drafts: &drafts})
		return nil, draftsResult{Drafts: posts}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_posts",
		Description: "Search posts by text, inclusive date range, and draft visibility",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in searchPostsInput) (*sdkmcp.CallToolResult, searchResult, error) {
		q := post.Query{Text: in.Query, Drafts: in.Drafts}
		if in.Start != "" {
			parsed, err := parseDate(in.Start)
			if err != nil {
				return nil, searchResult{}, fmt.Errorf("invalid start: %w", err)
			}
			q.Start = &parsed
		}
		if in.End != "" {
			parsed, err := parseDate(in.End)
			if err != nil {
				return nil, searchResult{}, fmt.Errorf("invalid end: %w", err)
			}
			q.End = &parsed
		}
		return nil, searchResult{Posts: post.Filter(services.Store.Snapshot(), q)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_calendar_month",
		Description: "Get the 7-column month grid with per-day post counts and heat-map intensity",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in calendarMonthInput) (*sdkmcp.CallToolResult, calendarMonthResult, error) {
		if in.Month < 1 || in.Month > 12 {
			return nil, calendarMonthResult{}, fmt.Errorf("invalid month %d", in.Month)
		}
		ix := post.NewCalendarIndex(services.Store.Snapshot())
		return nil, calendarMonthResult{
			Year:  in.Year,
			Month: in.Month,
			Slots: ix.Month(in.Year, time.Month(in.Month)),
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_stats",
		Description: "Get post totals, draft count, and posting streaks",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, statsResult, error) {
		stats := post.ComputeStats(services.Store.Snapshot(), time.Now())
		return nil, statsResult{Stats: stats}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "Get the journal's audit trail, newest entries first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in recentActivityInput) (*sdkmcp.CallToolResult, recentActivityResult, error) {
		limit := in.Limit
		if limit <= 0 {
			limit = 50
		}
		entries, err := services.Activity.Recent(ctx, activity.ListOptions{Limit: limit})
		if err != nil {
			return nil, recentActivityResult{}, err
		}
		return nil, recentActivityResult{Entries: entries}, nil
	})
}

// parseDate accepts a full timestamp or a bare calendar date.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}
