package v1

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/avdex/avdex/internal/catalog"
	"github.com/avdex/avdex/internal/lookup"
	"github.com/avdex/avdex/internal/media"
	"github.com/avdex/avdex/internal/search"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

type testEnv struct {
	store *catalog.Store
	mux   *http.ServeMux
	db    *sql.DB
}

func setupServer(t *testing.T, cfg Config) *testEnv {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	require.NoError(t, err, "open db")
	t.Cleanup(func() { _ = db.Close() })

	store := catalog.NewStore(db)
	require.NoError(t, store.Init(), "apply schema")

	engine := search.NewEngine(store, testLogger())
	hydrator := search.NewHydrator(store)
	session := search.NewSession(engine, hydrator, testLogger())
	fetcher := search.NewFetcher(store)
	lookups := lookup.NewLoader(store, time.Minute, testLogger())

	srv := New(store, session, fetcher, lookups, testLogger(), cfg)
	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)

	return &testEnv{store: store, mux: mux, db: db}
}

func (e *testEnv) exec(t *testing.T, query string, args ...any) {
	t.Helper()
	_, err := e.db.Exec(query, args...)
	require.NoError(t, err, "exec %s", query)
}

func (e *testEnv) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reqBody)
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func seedCatalog(t *testing.T, env *testEnv) {
	t.Helper()
	env.exec(t, "INSERT INTO publisher (publisher_name) VALUES ('Studio A')")
	env.exec(t, `INSERT INTO actress (actress_name, date_of_birth) VALUES ('Yui', '1995-03-10')`)
	env.exec(t, `INSERT INTO video (video_name, content_id, publish_date, censored, publisher_id, video_personal_rate)
		VALUES ('yui first', 'YF-001', '2020-06-01', 1, 1, 90)`)
	env.exec(t, `INSERT INTO video (video_name, content_id) VALUES ('unrelated', 'UN-002')`)
	env.exec(t, "INSERT INTO actress_in_video (video_id, actress_id) VALUES (1, 1)")
	env.exec(t, "INSERT INTO tag (tag_name) VALUES ('outdoor'), ('indoor')")
	env.exec(t, "INSERT INTO video_tag (video_id, tag_id) VALUES (1, 1)")
}

func TestSearchEndpoint(t *testing.T) {
	env := setupServer(t, Config{})
	seedCatalog(t, env)

	w := env.request(t, http.MethodPost, "/api/v1/search", map[string]any{"query": "yui"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	snap := decode[search.Snapshot](t, w)
	assert.Equal(t, "yui", snap.Query)
	require.Len(t, snap.Actresses, 1)
	require.Len(t, snap.Videos, 1)
	assert.Equal(t, search.MatchedByName, snap.Videos[0].MatchedBy)
	assert.Equal(t, []string{"Yui"}, snap.Videos[0].Cast)
	assert.Len(t, snap.Visible, 1, "no criteria, everything visible")
}

func TestSearchEndpoint_WithCriteria(t *testing.T) {
	env := setupServer(t, Config{})
	seedCatalog(t, env)

	w := env.request(t, http.MethodPost, "/api/v1/search", map[string]any{
		"query": "yui",
		"criteria": map[string]any{
			"min_video_rate": 95,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	snap := decode[search.Snapshot](t, w)
	assert.Len(t, snap.Videos, 1, "raw hits unaffected by criteria")
	assert.Empty(t, snap.Visible, "rate 90 fails a 95 threshold")
}

func TestSearchEndpoint_InvalidCriteria(t *testing.T) {
	env := setupServer(t, Config{})

	w := env.request(t, http.MethodPost, "/api/v1/search", map[string]any{
		"query":    "x",
		"criteria": map[string]any{"censored": "maybe"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[errorResponse](t, w)
	assert.Equal(t, "INVALID_CRITERIA", resp.Code)
	assert.NotEmpty(t, resp.Error)
}

func TestSearchEndpoint_RejectedCriteriaKeepCommitted(t *testing.T) {
	env := setupServer(t, Config{})
	seedCatalog(t, env)

	// Commit a tag filter that hides video 1 (tagged outdoor only).
	snap := decode[search.Snapshot](t, env.request(t, http.MethodPost, "/api/v1/search", map[string]any{
		"query":    "yui",
		"criteria": map[string]any{"tag_ids": []int64{2}},
	}))
	require.Empty(t, snap.Visible)

	w := env.request(t, http.MethodPost, "/api/v1/search", map[string]any{
		"query":    "yui",
		"criteria": map[string]any{"min_video_rate": 150},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_CRITERIA", decode[errorResponse](t, w).Code)

	snap = decode[search.Snapshot](t, env.request(t, http.MethodPost, "/api/v1/search", map[string]any{
		"query": "yui",
	}))
	require.Len(t, snap.Videos, 1)
	assert.Empty(t, snap.Visible, "rejected request must not reset the committed tag filter")
}

func TestGetVideoEndpoint(t *testing.T) {
	env := setupServer(t, Config{})
	seedCatalog(t, env)

	w := env.request(t, http.MethodGet, "/api/v1/videos/1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	detail := decode[search.VideoDetail](t, w)
	assert.Equal(t, "yui first", detail.Video.Name)
	require.NotNil(t, detail.PublisherName)
	assert.Equal(t, "Studio A", *detail.PublisherName)
	require.Len(t, detail.Cast, 1)
	require.NotNil(t, detail.Cast[0].Age)
	assert.Equal(t, 25, *detail.Cast[0].Age)
	assert.Equal(t, []string{"outdoor"}, detail.Tags)
}

func TestGetVideoEndpoint_NotFound(t *testing.T) {
	env := setupServer(t, Config{})

	w := env.request(t, http.MethodGet, "/api/v1/videos/404", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decode[errorResponse](t, w)
	assert.Equal(t, "NOT_FOUND", resp.Code)
}

func TestGetVideoEndpoint_BadID(t *testing.T) {
	env := setupServer(t, Config{})

	w := env.request(t, http.MethodGet, "/api/v1/videos/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[errorResponse](t, w)
	assert.Equal(t, "INVALID_ID", resp.Code)
}

func TestGetActressEndpoint(t *testing.T) {
	env := setupServer(t, Config{})
	seedCatalog(t, env)

	w := env.request(t, http.MethodGet, "/api/v1/actresses/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	a := decode[media.Actress](t, w)
	assert.Equal(t, "Yui", a.Name)
}

func TestLookupsEndpoint(t *testing.T) {
	env := setupServer(t, Config{})
	seedCatalog(t, env)

	w := env.request(t, http.MethodGet, "/api/v1/lookups/tag", nil)
	require.Equal(t, http.StatusOK, w.Code)

	opts := decode[[]media.LookupOption](t, w)
	require.Len(t, opts, 2)
	assert.Equal(t, "indoor", opts[0].Name, "options sort by name")
	assert.Equal(t, "outdoor", opts[1].Name)
}

func TestLookupsEndpoint_UnknownKind(t *testing.T) {
	env := setupServer(t, Config{})

	w := env.request(t, http.MethodGet, "/api/v1/lookups/flavor", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[errorResponse](t, w)
	assert.Equal(t, "INVALID_KIND", resp.Code)
}

func TestLookupsRefreshEndpoint(t *testing.T) {
	env := setupServer(t, Config{})
	seedCatalog(t, env)

	// Prime the cache, mutate behind it, then refresh.
	w := env.request(t, http.MethodGet, "/api/v1/lookups/tag", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env.exec(t, "INSERT INTO tag (tag_name) VALUES ('beach')")

	stale := decode[[]media.LookupOption](t, env.request(t, http.MethodGet, "/api/v1/lookups/tag", nil))
	assert.Len(t, stale, 2, "cached list does not see the new row yet")

	fresh := decode[[]media.LookupOption](t, env.request(t, http.MethodPost, "/api/v1/lookups/tag/refresh", nil))
	assert.Len(t, fresh, 3)
}

func TestAddVideoEndpoint(t *testing.T) {
	env := setupServer(t, Config{})
	env.exec(t, "INSERT INTO tag (tag_name) VALUES ('outdoor')")

	w := env.request(t, http.MethodPost, "/api/v1/videos", map[string]any{
		"video_name":          "created",
		"content_id":          "CR-100",
		"video_personal_rate": 77,
		"link_ids":            map[string]any{"tag_ids": []int64{1}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	v := decode[media.Video](t, w)
	assert.NotZero(t, v.ID)

	got, err := env.store.GetVideo(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, "created", got.Name)
	assert.Equal(t, 77, *got.Rates.Video)

	docs := decode[search.Snapshot](t, env.request(t, http.MethodPost, "/api/v1/search", map[string]any{
		"query":    "created",
		"criteria": map[string]any{"tag_ids": []int64{1}},
	}))
	assert.Len(t, docs.Visible, 1, "link rows were written")
}

func TestAddVideoEndpoint_InvalidRate(t *testing.T) {
	env := setupServer(t, Config{})

	w := env.request(t, http.MethodPost, "/api/v1/videos", map[string]any{
		"video_name":          "bad",
		"video_personal_rate": 150,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[errorResponse](t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
}

func TestAddVideoEndpoint_MissingName(t *testing.T) {
	env := setupServer(t, Config{})

	w := env.request(t, http.MethodPost, "/api/v1/videos", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateVideoEndpoint_ReplacesLinks(t *testing.T) {
	env := setupServer(t, Config{})
	seedCatalog(t, env)

	w := env.request(t, http.MethodPut, "/api/v1/videos/1", map[string]any{
		"video_name": "yui first (edited)",
		"link_ids":   map[string]any{"tag_ids": []int64{2}},
		"cast_ids":   []int64{1},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err := env.store.GetVideo(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "yui first (edited)", got.Name)

	detail := decode[search.VideoDetail](t, env.request(t, http.MethodGet, "/api/v1/videos/1", nil))
	assert.Equal(t, []string{"indoor"}, detail.Tags, "old tag set fully replaced")
	require.Len(t, detail.Cast, 1)
}

func TestUpdateVideoEndpoint_NotFound(t *testing.T) {
	env := setupServer(t, Config{})

	w := env.request(t, http.MethodPut, "/api/v1/videos/404", map[string]any{
		"video_name": "ghost",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestActressEndpoints(t *testing.T) {
	env := setupServer(t, Config{})

	w := env.request(t, http.MethodPost, "/api/v1/actresses", map[string]any{
		"actress_name":  "Rin",
		"date_of_birth": "1998-11-02",
		"personal_rate": 70,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	a := decode[media.Actress](t, w)
	require.NotZero(t, a.ID)

	w = env.request(t, http.MethodPut, "/api/v1/actresses/1", map[string]any{
		"actress_name":  "Rin",
		"personal_rate": 95,
	})
	require.Equal(t, http.StatusOK, w.Code)

	got, err := env.store.GetActress(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 95, *got.PersonalRate)
	assert.Nil(t, got.DateOfBirth, "update rewrites every scalar column")
}

func TestAuth_MissingToken(t *testing.T) {
	env := setupServer(t, Config{AuthSecret: "sekrit"})

	w := env.request(t, http.MethodPost, "/api/v1/search", map[string]any{"query": "x"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	resp := decode[errorResponse](t, w)
	assert.Equal(t, "UNAUTHORIZED", resp.Code)
}

func TestAuth_ValidToken(t *testing.T) {
	env := setupServer(t, Config{AuthSecret: "sekrit"})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("sekrit"))
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]any{"query": ""})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestAuth_WrongSecret(t *testing.T) {
	env := setupServer(t, Config{AuthSecret: "sekrit"})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other"))
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]any{"query": ""})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_StatusStaysOpen(t *testing.T) {
	env := setupServer(t, Config{AuthSecret: "sekrit"})

	w := env.request(t, http.MethodGet, "/api/v1/status", nil)
	assert.Equal(t, http.StatusOK, w.Code, "health check needs no token")
}
