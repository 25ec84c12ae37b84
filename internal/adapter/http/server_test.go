package http_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/couchcryptid/ringdown-toolkit/internal/adapter/http"
	"github.com/couchcryptid/ringdown-toolkit/internal/domain"
	"github.com/couchcryptid/ringdown-toolkit/internal/observability"
)

func newTestServer() *httpadapter.Server {
	return httpadapter.NewServer(":0", domain.LoadCatalogue(), slog.Default(), observability.NewMetricsForTesting())
}

func do(t *testing.T, srv *httpadapter.Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := do(t, newTestServer(), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WithCatalogue(t *testing.T) {
	rec := do(t, newTestServer(), "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WithEmptyCatalogue(t *testing.T) {
	srv := httpadapter.NewServer(":0", domain.Catalogue{}, slog.Default(), observability.NewMetricsForTesting())
	rec := do(t, srv, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "catalogue is empty", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := do(t, newTestServer(), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestListEvents(t *testing.T) {
	rec := do(t, newTestServer(), "/api/v1/events")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Generated-At"))

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "GW150914", rows[0]["event"])
	assert.Equal(t, "GW170104", rows[1]["event"])
	assert.Equal(t, "GW190521", rows[2]["event"])
}

func TestGetEvent(t *testing.T) {
	t.Run("known event", func(t *testing.T) {
		rec := do(t, newTestServer(), "/api/v1/events/GW150914")

		assert.Equal(t, http.StatusOK, rec.Code)

		var rows []map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "GW150914", rows[0]["event"])
		assert.Equal(t, "3.595e+14 m2 / s", rows[0]["diffusivity"])
		assert.Equal(t, "2.997925e+08 m / s", rows[0]["characteristic_speed"])
	})

	t.Run("unknown event lists known names", func(t *testing.T) {
		rec := do(t, newTestServer(), "/api/v1/events/GW000000")

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body struct {
			Error       string   `json:"error"`
			KnownEvents []string `json:"known_events"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.Error, "GW000000")
		assert.Equal(t, []string{"GW150914", "GW170104", "GW190521"}, body.KnownEvents)
	})
}

func TestDerive(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rec := do(t, newTestServer(), "/api/v1/derive?tau_ms=4.0&freq_hz=251")

		assert.Equal(t, http.StatusOK, rec.Code)

		var rows []map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Custom", rows[0]["event"])
		assert.Equal(t, "User-specified posterior sample", rows[0]["reference"])
		assert.Equal(t, "4.000 ms", rows[0]["tau_220"])
		assert.Equal(t, "2.997925e+08 m / s", rows[0]["characteristic_speed"])
	})

	t.Run("name override", func(t *testing.T) {
		rec := do(t, newTestServer(), "/api/v1/derive?tau_ms=2.5&freq_hz=300&name=draw-17")

		require.Equal(t, http.StatusOK, rec.Code)
		var rows []map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		assert.Equal(t, "draw-17", rows[0]["event"])
	})

	t.Run("missing tau_ms", func(t *testing.T) {
		rec := do(t, newTestServer(), "/api/v1/derive?freq_hz=251")

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "tau_ms")
	})

	t.Run("non-numeric freq_hz", func(t *testing.T) {
		rec := do(t, newTestServer(), "/api/v1/derive?tau_ms=4.0&freq_hz=high")

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "freq_hz")
	})
}
