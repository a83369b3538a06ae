package functional_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsuzuri-app/tsuzuri/internal/domain/post"
	"github.com/tsuzuri-app/tsuzuri/internal/domain/session"
	"github.com/tsuzuri-app/tsuzuri/internal/testserver"
)

func authedRequest(t *testing.T, ts *testserver.TestServer, method, path string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if ts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+ts.Token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestFunctional_AuthRequired(t *testing.T) {
	ts := testserver.New(t, testserver.Options{AuthEnabled: true})

	resp, err := http.Get(ts.Server.URL + "/api/posts")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Health stays open
	resp, err = http.Get(ts.Server.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = authedRequest(t, ts, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFunctional_JournalWorkflow(t *testing.T) {
	ts := testserver.New(t, testserver.Options{AuthEnabled: true})

	resp := authedRequest(t, ts, http.MethodPost, "/api/posts", map[string]any{
		"content":   "Draft for later",
		"post_date": "2025-06-10",
		"is_draft":  true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created post.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp = authedRequest(t, ts, http.MethodGet, "/api/drafts", nil)
	var drafts []post.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&drafts))
	resp.Body.Close()
	require.Len(t, drafts, 1)

	resp = authedRequest(t, ts, http.MethodPost, "/api/posts/"+created.ID+"/publish", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = authedRequest(t, ts, http.MethodGet, "/api/drafts", nil)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&drafts))
	resp.Body.Close()
	require.Empty(t, drafts)

	resp = authedRequest(t, ts, http.MethodGet, "/api/stats", nil)
	var stats post.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	resp.Body.Close()
	require.Equal(t, 1, stats.TotalPosts)
	require.Zero(t, stats.DraftCount)
}

func TestFunctional_SessionEndpoints(t *testing.T) {
	ts := testserver.New(t, testserver.Options{AuthEnabled: true})

	resp := authedRequest(t, ts, http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sess session.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sess))
	resp.Body.Close()
	require.Equal(t, "test session", sess.Description)

	resp = authedRequest(t, ts, http.MethodDelete, "/api/session", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// The token is revoked from here on
	resp = authedRequest(t, ts, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestFunctional_NoAuthMode(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})

	resp, err := http.Get(ts.Server.URL + "/api/posts")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.Server.URL + "/api/session")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
