package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AtsAssistant/impl/core"
	"AtsAssistant/internal/catalog"
	"AtsAssistant/internal/config"
	"AtsAssistant/internal/http-server/middleware/session"
	"AtsAssistant/internal/metrics"
)

type stubAssistant struct{}

func (stubAssistant) Send(_ context.Context, _ string, text string) (string, error) {
	return "reply to " + text, nil
}

func (stubAssistant) Reset(string) {}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat, err := catalog.Load("")
	require.NoError(t, err)

	c := core.New(log, cat)
	c.SetAssistant(stubAssistant{})

	conf := &config.Config{}
	return NewRouter(conf, log, c, nil, metrics.New())
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(session.HeaderName, "test-session")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestListSchools(t *testing.T) {
	h := newRouter(t)

	code, env := do(t, h, http.MethodGet, "/api/v1/schools/", "")
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)

	var list struct {
		Count   int               `json:"count"`
		Schools []json.RawMessage `json:"schools"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 10, list.Count)
	assert.Len(t, list.Schools, 10)

	code, env = do(t, h, http.MethodGet, "/api/v1/schools/?q=zzz-no-match", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 0, list.Count)
	assert.NotNil(t, list.Schools)

	code, _ = do(t, h, http.MethodGet, "/api/v1/schools/?favorites_only=maybe", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetSchool(t *testing.T) {
	h := newRouter(t)

	code, env := do(t, h, http.MethodGet, "/api/v1/schools/ATS-001", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"ATS-001"`)

	code, env = do(t, h, http.MethodGet, "/api/v1/schools/missing", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
}

func TestFacets(t *testing.T) {
	h := newRouter(t)

	code, env := do(t, h, http.MethodGet, "/api/v1/schools/facets", "")
	require.Equal(t, http.StatusOK, code)

	var facets struct {
		Governorates []string `json:"governorates"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &facets))
	assert.Len(t, facets.Governorates, 27)
}

func TestFavoritesFlow(t *testing.T) {
	h := newRouter(t)

	code, env := do(t, h, http.MethodPost, "/api/v1/favorites/toggle", `{"id":"ATS-002"}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `["ATS-002"]`, string(env.Data))

	_, env = do(t, h, http.MethodGet, "/api/v1/favorites/", "")
	assert.JSONEq(t, `["ATS-002"]`, string(env.Data))

	_, env = do(t, h, http.MethodGet, "/api/v1/schools/?favorites_only=true", "")
	assert.Contains(t, string(env.Data), `"count":1`)

	_, env = do(t, h, http.MethodDelete, "/api/v1/favorites/", "")
	assert.JSONEq(t, `[]`, string(env.Data))

	code, _ = do(t, h, http.MethodPost, "/api/v1/favorites/toggle", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestChat(t *testing.T) {
	h := newRouter(t)

	code, env := do(t, h, http.MethodPost, "/api/v1/chat/", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "reply to hello")

	code, _ = do(t, h, http.MethodPost, "/api/v1/chat/", `{"message":""}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, h, http.MethodPost, "/api/v1/chat/", `{"message":"`+strings.Repeat("ب", 2001)+`"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, h, http.MethodGet, "/api/v1/chat/history?limit=10", "")
	require.Equal(t, http.StatusOK, code)
	var history []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Len(t, history, 2)

	code, _ = do(t, h, http.MethodPost, "/api/v1/chat/reset", "")
	require.Equal(t, http.StatusOK, code)

	_, env = do(t, h, http.MethodGet, "/api/v1/chat/history", "")
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Empty(t, history)

	code, _ = do(t, h, http.MethodGet, "/api/v1/chat/history?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHistoryRejectsZeroLimit(t *testing.T) {
	h := newRouter(t)

	code, env := do(t, h, http.MethodGet, "/api/v1/chat/history?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid limit", env.Message)
}

func TestSelectSchool(t *testing.T) {
	h := newRouter(t)

	code, env := do(t, h, http.MethodGet, "/api/v1/schools/ATS-010", "")
	require.Equal(t, http.StatusOK, code)
	var school struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &school))

	code, env = do(t, h, http.MethodPost, "/api/v1/schools/select", `{"name":"`+school.Name+`"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), school.Name)

	code, _ = do(t, h, http.MethodPost, "/api/v1/schools/select", `{"name":"Unknown School"}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newRouter(t)

	code, env := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ats_http_requests_total")
}

func TestUnknownRoute(t *testing.T) {
	h := newRouter(t)
	code, env := do(t, h, http.MethodGet, "/api/v1/nothing", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
}

func TestToggleUnknownSchool(t *testing.T) {
	h := newRouter(t)
	code, env := do(t, h, http.MethodPost, "/api/v1/favorites/toggle", `{"id":"ATS-999"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
}
