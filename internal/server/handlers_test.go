package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart-interpreter/internal/interpret"
)

const sampleChart = `{
  "name": "sample",
  "ascendant": 15,
  "planets": {
    "Sun": {"longitude": 135},
    "Moon": {"longitude": 105},
    "Mars": {"longitude": 285},
    "Mercury": {"longitude": 165},
    "Jupiter": {"longitude": 123},
    "Venus": {"longitude": 195},
    "Saturn": {"longitude": 315, "retrograde": true},
    "Rahu": {"longitude": 75},
    "Ketu": {"longitude": 255}
  }
}`

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	interp, err := interpret.New(interpret.DefaultConfig())
	require.NoError(t, err)

	return NewRouter(NewHandlers(interp, 4096))
}

func do(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestHandleHealth(t *testing.T) {
	w := do(setupRouter(t), http.MethodGet, "/v1/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, Version, resp.Version)
}

func TestHandleInterpret(t *testing.T) {
	w := do(setupRouter(t), http.MethodPost, "/v1/interpretations", sampleChart, "X-Request-ID", "req-42")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))

	var resp struct {
		RequestID      string `json:"requestId"`
		Interpretation struct {
			Name   string           `json:"name"`
			Houses []map[string]any `json:"houses"`
			Yogas  []map[string]any `json:"yogas"`
		} `json:"interpretation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "req-42", resp.RequestID)
	assert.Equal(t, "sample", resp.Interpretation.Name)
	assert.Len(t, resp.Interpretation.Houses, 12)
	assert.NotNil(t, resp.Interpretation.Yogas)
}

func TestHandleInterpretGeneratesRequestID(t *testing.T) {
	w := do(setupRouter(t), http.MethodPost, "/v1/interpretations", sampleChart)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestHandleInterpretErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing ascendant", body: `{"planets": {}}`, field: "ascendant"},
		{name: "malformed", body: `{"ascendant": `},
		{name: "too large", body: `{"name": "` + strings.Repeat("x", 5000) + `"}`},
	}

	r := setupRouter(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/v1/interpretations", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, CodeInvalidInput, resp.Code)
			assert.Equal(t, tt.field, resp.Field)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleCheck(t *testing.T) {
	body := `{"ascendant": 10, "planets": {"Sun": {"longitude": 20}, "Satrun": {"longitude": 40}}}`

	w := do(setupRouter(t), http.MethodPost, "/v1/checks", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Valid       bool `json:"valid"`
		Diagnostics struct {
			Warnings []struct {
				Code        string   `json:"code"`
				Suggestions []string `json:"suggestions"`
			} `json:"warnings"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Valid)
	require.NotEmpty(t, resp.Diagnostics.Warnings)
	assert.Equal(t, "unknown_planet", resp.Diagnostics.Warnings[0].Code)
	assert.Contains(t, resp.Diagnostics.Warnings[0].Suggestions, "Saturn")
}

func TestMetricsEndpoint(t *testing.T) {
	r := setupRouter(t)

	do(r, http.MethodGet, "/v1/health", "")

	w := do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "chart_interpreter_http_requests_total")
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	interp, err := interpret.New(interpret.DefaultConfig())
	require.NoError(t, err)

	// One token that refills every ~17 minutes: the second request is rejected.
	r := NewRouter(NewHandlers(interp, 4096), WithRateLimit(0.001, 1))

	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/v1/health", "").Code)

	w := do(r, http.MethodGet, "/v1/health", "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeRateLimited, resp.Code)

	// /metrics sits outside the limited group.
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/metrics", "").Code)
}

func TestRateLimitDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	interp, err := interpret.New(interpret.DefaultConfig())
	require.NoError(t, err)

	r := NewRouter(NewHandlers(interp, 4096), WithRateLimit(0, 1))

	for range 5 {
		require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/v1/health", "").Code)
	}
}

func TestSetInterpreter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	all, err := interpret.New(interpret.DefaultConfig())
	require.NoError(t, err)

	h := NewHandlers(all, 4096)
	r := NewRouter(h)

	countYogas := func() int {
		w := do(r, http.MethodPost, "/v1/interpretations", sampleChart)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Interpretation struct {
				Yogas []map[string]any `json:"yogas"`
			} `json:"interpretation"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		return len(resp.Interpretation.Yogas)
	}

	before := countYogas()
	require.Positive(t, before)

	none, err := interpret.New(interpret.Config{Parallel: true, EnabledYogas: []string{"Kemadrum Yoga"}})
	require.NoError(t, err)

	h.SetInterpreter(none)

	assert.Less(t, countYogas(), before)
}
