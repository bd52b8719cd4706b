package gaps

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"careercoach-backend/internal/cache"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := NewService(newTestAnalyzer(nil), cache.New(), time.Minute)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeEndpoint(t *testing.T) {
	r := newTestRouter(t)

	resp := postJSON(t, r, "/api/v1/gaps/analyze", map[string]any{
		"profile": map[string]any{
			"skills": []string{"Python", "SQL"},
		},
		"target":      map[string]any{"role": "Software Engineer"},
		"careerLevel": "Mid",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		EvaluationID string    `json:"evaluationId"`
		Result       GapResult `json:"result"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.EvaluationID == "" {
		t.Fatal("expected evaluationId")
	}
	if payload.Result.MatchScores.Required != 40.0 {
		t.Fatalf("required match = %v, want 40.0", payload.Result.MatchScores.Required)
	}
	if len(payload.Result.PrioritizedGaps) == 0 {
		t.Fatal("expected prioritized gaps")
	}
}

func TestAnalyzeEndpointInvalidTarget(t *testing.T) {
	r := newTestRouter(t)

	resp := postJSON(t, r, "/api/v1/gaps/analyze", map[string]any{
		"profile":     map[string]any{"skills": []string{"Python"}},
		"target":      map[string]any{},
		"careerLevel": "Mid",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "invalid_input" {
		t.Fatalf("error code = %q, want invalid_input", payload.Error.Code)
	}
}

func TestAnalyzeEndpointBadJSON(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/gaps/analyze", bytes.NewReader([]byte("nope")))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
