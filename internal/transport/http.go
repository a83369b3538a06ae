package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/activity"
	"github.com/tsuzuri-app/tsuzuri/internal/domain/post"
	"github.com/tsuzuri-app/tsuzuri/internal/domain/session"
)

// Services bundles the domain services the REST API dispatches to.
type Services struct {
	Posts    *post.Service
	Store    *post.Store
	Activity *activity.Service
	Sessions *session.Service
}

// Server wires HTTP handlers.
type Server struct {
	services Services
	logger   *slog.Logger
}

// NewServer creates the REST router. When authMiddleware is non-nil it guards
// everything under /api; /health and /metrics stay open either way.
func NewServer(services Services, metrics *Metrics, authMiddleware func(http.Handler) http.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if metrics != nil {
		r.Use(metrics.Middleware)
	}

	srv := &Server{services: services, logger: logger}

	r.Get("/health", srv.handleHealth)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", srv.handleListPosts)
			r.Post("/", srv.handleCreatePost)
			r.Get("/{id}", srv.handleGetPost)
			r.Patch("/{id}", srv.handleEditPost)
			r.Post("/{id}/publish", srv.handlePublishPost)
			r.Delete("/{id}", srv.handleDeletePost)
		})

		r.Get("/timeline", srv.handleTimeline)
		r.Get("/drafts", srv.handleDrafts)
		r.Get("/calendar", srv.handleCalendar)
		r.Get("/search", srv.handleSearch)
		r.Get("/stats", srv.handleStats)
		r.Get("/activity", srv.handleActivity)

		r.Get("/session", srv.handleSessionInfo)
		r.Delete("/session", srv.handleSignOut)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type createPostRequest struct {
	Content  string `json:"content"`
	PostDate string `json:"post_date"`
	IsDraft  bool   `json:"is_draft"`
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var body createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	postDate := time.Now()
	if body.PostDate != "" {
		parsed, err := parseDate(body.PostDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid post_date")
			return
		}
		postDate = parsed
	}

	created, err := s.services.Posts.Create(r.Context(), post.CreateRequest{
		Content:  body.Content,
		PostDate: postDate,
		IsDraft:  body.IsDraft,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListPosts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.services.Store.Snapshot())
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := s.services.Store.Find(id)
	if !ok {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type editPostRequest struct {
	Content  *string `json:"content"`
	PostDate *string `json:"post_date"`
	IsDraft  *bool   `json:"is_draft"`
}

func (s *Server) handleEditPost(w http.ResponseWriter, r *http.Request) {
	var body editPostRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req := post.EditRequest{
		ID:      chi.URLParam(r, "id"),
		Content: body.Content,
		IsDraft: body.IsDraft,
	}
	if body.PostDate != nil {
		parsed, err := parseDate(*body.PostDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid post_date")
			return
		}
		req.PostDate = &parsed
	}

	edited, err := s.services.Posts.Edit(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if edited == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	writeJSON(w, http.StatusOK, edited)
}

func (s *Server) handlePublishPost(w http.ResponseWriter, r *http.Request) {
	published, err := s.services.Posts.Publish(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if published == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	writeJSON(w, http.StatusOK, published)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Posts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTimeline(w http.ResponseWriter, _ *http.Request) {
	groups := post.GroupByDay(s.services.Store.Snapshot())
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleDrafts(w http.ResponseWriter, _ *http.Request) {
	drafts := true
	posts := post.Filter(s.services.Store.Snapshot(), post.Query{Drafts: &drafts})
	writeJSON(w, http.StatusOK, posts)
}

type calendarResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Slots []post.DaySlot `json:"slots"`
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			writeError(w, http.StatusBadRequest, "invalid month")
			return
		}
		month = time.Month(parsed)
	}

	ix := post.NewCalendarIndex(s.services.Store.Snapshot())
	writeJSON(w, http.StatusOK, calendarResponse{
		Year:  year,
		Month: int(month),
		Slots: ix.Month(year, month),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := post.Query{Text: r.URL.Query().Get("q")}

	if v := r.URL.Query().Get("start"); v != "" {
		parsed, err := parseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid start date")
			return
		}
		q.Start = &parsed
	}
	if v := r.URL.Query().Get("end"); v != "" {
		parsed, err := parseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid end date")
			return
		}
		q.End = &parsed
	}
	if v := r.URL.Query().Get("drafts"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid drafts flag")
			return
		}
		q.Drafts = &parsed
	}

	writeJSON(w, http.StatusOK, post.Filter(s.services.Store.Snapshot(), q))
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	stats := post.ComputeStats(s.services.Store.Snapshot(), time.Now())
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	opts := activity.ListOptions{Limit: 50}

	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		opts.Limit = parsed
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		opts.Offset = parsed
	}

	entries, err := s.services.Activity.Recent(r.Context(), opts)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if entries == nil {
		entries = []activity.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleSessionInfo(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	token, ok := TokenFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := s.services.Sessions.SignOut(r.Context(), token); err != nil {
		writeError(w, http.StatusInternalServerError, "sign out failed")
		return
	}
	if s.services.Activity != nil {
		_ = s.services.Activity.Log(r.Context(), &activity.Entry{
			Type:    activity.TypeSignedOut,
			Summary: "signed out",
		})
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseDate accepts a full timestamp or a bare calendar date.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, post.ErrContentEmpty),
		errors.Is(err, post.ErrContentTooLong),
		errors.Is(err, post.ErrInvalidPostDate),
		errors.Is(err, post.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, post.ErrPostNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		if s.logger != nil {
			s.logger.Error("request failed", "error", err)
		}
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
