// internal/api/server_test.go
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant-finder/internal/common/config"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/common/observability"
	"restaurant-finder/internal/places"
	"restaurant-finder/pkg/registry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestServer(t *testing.T) *httptest.Server {
	log := logger.NewTestLogger(t)

	// No API key: the client stays in mock mode.
	client := places.NewClient(places.LoadConfig(), log)

	reg, err := registry.Default()
	require.NoError(t, err)

	srv := NewServer(config.ServerConfig{Address: ":0"}, NewHandler(client, reg, log), observability.NewNoop(), log)
	ts := httptest.NewServer(srv.Router)
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_SearchThenDetails(t *testing.T) {
	ts := createTestServer(t)

	resp, err := http.Post(ts.URL+"/search/", "application/json", strings.NewReader(`{"query":"tacos"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var search SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&search))
	require.Len(t, search.Results, 3)
	assert.Equal(t, "Sample Restaurant for 'tacos'", search.Results[0].Name)

	resp, err = http.Get(ts.URL + "/details/?place_id=" + search.Results[0].PlaceID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var details map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&details))
	assert.Equal(t, "mock_place_1", details["place_id"])
	assert.Equal(t, RestaurantID("mock_place_1"), details["id"])
	assert.NotNil(t, details["operating_hours"])
}

func TestServer_Routes(t *testing.T) {
	ts := createTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{name: "clear cache", method: http.MethodGet, path: "/clear-cache/", status: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/health", status: http.StatusOK},
		{name: "ready", method: http.MethodGet, path: "/ready", status: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", status: http.StatusOK},
		{name: "details without id", method: http.MethodGet, path: "/details/", status: http.StatusBadRequest},
		{name: "search with GET", method: http.MethodGet, path: "/search/", status: http.StatusMethodNotAllowed},
		{name: "details with POST", method: http.MethodPost, path: "/details/", body: `{}`, status: http.StatusMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, path: "/nope", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			_, _ = io.Copy(io.Discard, resp.Body)

			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestServer_RequestID(t *testing.T) {
	ts := createTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	generated := resp.Header.Get(RequestIDHeader)
	_, err = uuid.Parse(generated)
	assert.NoError(t, err)

	supplied := uuid.NewString()
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, supplied)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, supplied, resp.Header.Get(RequestIDHeader))
}

func TestServer_MetricsExposeRouteTemplates(t *testing.T) {
	ts := createTestServer(t)

	resp, err := http.Post(ts.URL+"/search/", "application/json", strings.NewReader(`{"query":"sushi"}`))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "http_request_duration_seconds")
	assert.Contains(t, string(body), `route="/search/"`)
	assert.Contains(t, string(body), "places_mock_fallbacks_total")
}

func TestServer_ShutdownBeforeRun(t *testing.T) {
	srv := NewServer(config.ServerConfig{Address: ":0"}, createTestHandler(t, &fakePlaces{}), observability.NewNoop(), logger.NewNoOpLogger())
	assert.NoError(t, srv.Shutdown(time.Second))
}
