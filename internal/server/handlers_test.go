package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonathan/portfolio-composer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	s, err := New(Config{Port: 8080})
	require.NoError(t, err)
	return s.httpServer.Handler
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestNew_RejectsInvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		_, err := New(Config{Port: port})
		assert.Errorf(t, err, "port %d", port)
	}
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, newTestServer(t), http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCORSPreflight(t *testing.T) {
	rec := doRequest(t, newTestServer(t), http.MethodOptions, "/v1/score", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestScore_HappyPath(t *testing.T) {
	body := `{
		"category": "tech",
		"contents": [
			{
				"content_id": "c1",
				"type": "video",
				"source": "youtube",
				"title": "Build walkthrough",
				"created_at": "2026-07-01T00:00:00Z",
				"extracted_data": {"view_count": 50000}
			},
			{
				"content_id": "c2",
				"type": "text",
				"title": "Notes",
				"created_at": "2023-01-01T00:00:00Z"
			}
		]
	}`

	rec := doRequest(t, newTestServer(t), http.MethodPost, "/v1/score", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tech", resp.Category)
	require.Len(t, resp.Scored, 2)
	// Batch output arrives sorted best-first.
	assert.GreaterOrEqual(t, resp.Scored[0].FinalScore, resp.Scored[1].FinalScore)
	assert.Equal(t, "c1", resp.Scored[0].ContentID)
}

func TestScore_InvalidJSON(t *testing.T) {
	rec := doRequest(t, newTestServer(t), http.MethodPost, "/v1/score", `{"category":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "invalid JSON body")
}

func TestScore_MissingContents(t *testing.T) {
	rec := doRequest(t, newTestServer(t), http.MethodPost, "/v1/score", `{"category": "tech"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScore_UnknownCategory(t *testing.T) {
	body := `{"category": "gaming", "contents": [{"content_id": "c1", "type": "text", "created_at": "2026-01-01T00:00:00Z"}]}`
	rec := doRequest(t, newTestServer(t), http.MethodPost, "/v1/score", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "gaming")
}

func TestCompose_HappyPath(t *testing.T) {
	body := `{
		"user_id": "u-1",
		"category": "tech",
		"title": "Portfolio",
		"contents": [
			{
				"content_id": "c1",
				"type": "video",
				"source": "youtube",
				"title": "Showreel",
				"created_at": "2026-07-01T00:00:00Z"
			}
		]
	}`

	rec := doRequest(t, newTestServer(t), http.MethodPost, "/v1/compose", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var portfolio types.Portfolio
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &portfolio))
	assert.Equal(t, "u-1", portfolio.UserID)
	assert.Equal(t, types.CategoryTech, portfolio.Category)
	assert.Equal(t, types.PortfolioVersion, portfolio.Version)
	require.NotEmpty(t, portfolio.Sections)
	last := portfolio.Sections[len(portfolio.Sections)-1]
	assert.Equal(t, types.SectionAction, last.SectionID)
}

func TestCompose_EmptyContentsPermissiveByDefault(t *testing.T) {
	body := `{"user_id": "u-1", "category": "finance", "title": "Portfolio"}`

	rec := doRequest(t, newTestServer(t), http.MethodPost, "/v1/compose", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var portfolio types.Portfolio
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &portfolio))
	assert.NotEmpty(t, portfolio.Sections)
}

func TestCompose_StrictRejectsEmptyContents(t *testing.T) {
	body := `{"user_id": "u-1", "category": "finance", "title": "Portfolio", "strict": true}`

	rec := doRequest(t, newTestServer(t), http.MethodPost, "/v1/compose", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestCompose_MissingRequiredFields(t *testing.T) {
	rec := doRequest(t, newTestServer(t), http.MethodPost, "/v1/compose", `{"category": "tech"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
