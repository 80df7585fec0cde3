package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"it-helpdesk-be/internal/bootstrap"
	"it-helpdesk-be/internal/config"
	"it-helpdesk-be/internal/constant"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp boots the full stack with no provider configured, so every
// AI path exercises the deterministic local fallback.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Port = "0"
	cfg.App.Environment = "test"
	cfg.App.LogFilePath = filepath.Join(t.TempDir(), "test.log")
	cfg.App.CorsAllowedOrigins = "http://localhost:5173"
	cfg.Ai.LLMProvider = "none"
	cfg.Ai.RequestTimeout = time.Second

	container := bootstrap.NewContainer(cfg)
	return New(cfg, container).GetApp()
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	payload := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &payload))

	return resp, payload
}

func TestChatEndpointFallback(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, "POST", "/api/chat", `{"message":"printer not working"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	response, _ := payload["response"].(string)
	assert.True(t, strings.Contains(response, "print") || strings.Contains(response, "Spooler"),
		"response should carry printer guidance, got: %s", response)

	fixtureIds := map[string]bool{}
	for _, article := range constant.KnowledgeBase {
		fixtureIds[article.Id] = true
	}
	sources, ok := payload["sources"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, sources)
	for _, raw := range sources {
		source := raw.(map[string]interface{})
		assert.True(t, fixtureIds[source["id"].(string)])
	}
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, "POST", "/api/chat", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, payload["error"])
}

func TestKnowledgeBaseEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, "GET", "/api/knowledge-base", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, len(constant.KnowledgeBase), payload["total"])

	resp, payload = doJSON(t, app, "GET", "/api/knowledge-base/search?q=printer", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	articles := payload["articles"].([]interface{})
	require.NotEmpty(t, articles)
	first := articles[0].(map[string]interface{})
	assert.Equal(t, "KB004", first["id"])

	// Category filter applies before scoring.
	resp, payload = doJSON(t, app, "GET", "/api/knowledge-base/search?q=printer&category=Email", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, payload["total"])

	// Category-only search returns the filtered set unscored.
	resp, payload = doJSON(t, app, "GET", "/api/knowledge-base/search?category=Network", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, payload["total"])
}

func TestServiceNowEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, "GET", "/api/servicenow/incidents", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, payload["total"])
	assert.Equal(t, constant.IntegrationLabel, payload["integration"])

	resp, payload = doJSON(t, app, "POST", "/api/servicenow/incidents/INC0012345/analyze", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	analysis, _ := payload["analysis"].(string)
	assert.Contains(t, analysis, "ServiceNow Incident Analysis")
	relevantKB := payload["relevantKB"].([]interface{})
	assert.LessOrEqual(t, len(relevantKB), 3)
	assert.Len(t, payload["recommendations"], 3)

	resp, payload = doJSON(t, app, "POST", "/api/servicenow/incidents/INC404/analyze", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, payload["error"])
}

func TestQuizEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, "POST", "/api/quiz/generate", `{"topic":"Network basics","difficulty":"easy"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Network basics", payload["topic"])
	assert.Equal(t, "easy", payload["difficulty"])
	assert.Len(t, payload["questions"], 2)
	assert.True(t, strings.HasPrefix(payload["id"].(string), "quiz-"))

	resp, payload = doJSON(t, app, "POST", "/api/quiz/generate", `{"topic":"Unknown obscure topic","difficulty":"hard"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, payload["questions"], 2)
}

func TestFeedbackEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, "POST", "/api/feedback", `{"type":"bug","content":"search is great","rating":5,"feature":"knowledge-base"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Feedback received successfully", payload["message"])
	assert.True(t, strings.HasPrefix(payload["id"].(string), "feedback-"))
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, payload := doJSON(t, app, "GET", "/api/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, "local-fallback", payload["provider"])
}
