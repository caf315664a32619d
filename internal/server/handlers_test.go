package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/ecotrace/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(
		config.ServerConfig{Host: "localhost", Port: 0, EnableCORS: true},
		zerolog.Nop(),
		false,
	)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCalculateEndpoint(t *testing.T) {
	s := newTestServer(t)
	body := `{
		"electricityKwh": "1000",
		"homeEfficiency": "A",
		"energyManagement": "B",
		"usesRenewableEnergy": false
	}`

	rec := doJSON(t, s, http.MethodPost, "/api/calculate", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	var payload struct {
		RequestID string `json:"requestId"`
		Results   struct {
			Score             int     `json:"score"`
			Emissions         float64 `json:"emissions"`
			CategoryEmissions struct {
				Home float64 `json:"home"`
			} `json:"categoryEmissions"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, rec.Header().Get(RequestIDHeader), payload.RequestID)
	assert.InDelta(t, 0.28, payload.Results.CategoryEmissions.Home, 1e-9)
	assert.InDelta(t, 0.28, payload.Results.Emissions, 1e-9)
	// 100 - 0.28/20*100 = 98.6 -> 99.
	assert.Equal(t, 99, payload.Results.Score)
}

func TestCalculateEndpointEmptyRecord(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/calculate", `{}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Results struct {
			Score     int     `json:"score"`
			Emissions float64 `json:"emissions"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 100, payload.Results.Score)
	assert.Zero(t, payload.Results.Emissions)
}

func TestCalculateEndpointRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/calculate", `{"electricityKwh": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestPersonalityEndpoint(t *testing.T) {
	s := newTestServer(t)
	body := `{
		"homeEfficiency": "A",
		"energyManagement": "A",
		"primaryTransportMode": "A",
		"dietType": "VEGAN"
	}`

	rec := doJSON(t, s, http.MethodPost, "/api/calculate-personality", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Personality struct {
			Personality string         `json:"personality"`
			Badge       string         `json:"badge"`
			SubCategory string         `json:"subCategory"`
			Tally       map[string]int `json:"tally"`
		} `json:"personality"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, "Sustainability Slayer", payload.Personality.Personality)
	assert.Equal(t, "Planet Guardian", payload.Personality.Badge)
	assert.Len(t, payload.Personality.Tally, 7)
}

func TestStoryEndpoint(t *testing.T) {
	s := newTestServer(t)
	body := `{
		"responses": {
			"name": "Riley",
			"dietType": "VEGAN",
			"plateProfile": "A"
		},
		"newHabits": ["meatless Mondays"]
	}`

	rec := doJSON(t, s, http.MethodPost, "/api/story", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Cards []struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		} `json:"cards"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	require.NotEmpty(t, payload.Cards)
	assert.Contains(t, payload.Cards[0].Content, "Riley")
	assert.Equal(t, "What's Next", payload.Cards[len(payload.Cards)-1].Title)
}

func TestRequestIDsAreUnique(t *testing.T) {
	s := newTestServer(t)

	seen := map[string]bool{}
	for range 10 {
		rec := doJSON(t, s, http.MethodGet, "/healthz", "")
		id := rec.Header().Get(RequestIDHeader)
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate request id %s", id)
		seen[id] = true
	}
}

func TestSavedAgainstWorstCase(t *testing.T) {
	assert.InDelta(t, 20, savedAgainstWorstCase(0), 1e-9)
	assert.InDelta(t, 14, savedAgainstWorstCase(6), 1e-9)
	assert.Zero(t, savedAgainstWorstCase(25))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/calculate", strings.NewReader(""))
	req.Header.Set("Origin", "https://quiz.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
