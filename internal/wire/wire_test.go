package wire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bus-ticketing/internal/data/repository"
	"bus-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testApp(t *testing.T) *App {
	t.Helper()
	config, err := utils.LoadConfigFile(t.TempDir() + "/missing.env")
	require.NoError(t, err)
	return Wiring(repository.NewRepository(nil, zap.NewNop()), config, zap.NewNop())
}

func TestRoutes(t *testing.T) {
	app := testApp(t)

	var routes []string
	err := chi.Walk(app.Router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, method+" "+strings.TrimSuffix(route, "/"))
		return nil
	})
	require.NoError(t, err)

	for _, want := range []string{
		"GET /api/trips/{tripID}/seats",
		"GET /api/trips/{tripID}/bookings",
		"POST /api/trips/{tripID}/sessions",
		"GET /api/sessions/{sessionID}",
		"DELETE /api/sessions/{sessionID}",
		"POST /api/sessions/{sessionID}/seats/{seatNumber}",
		"POST /api/sessions/{sessionID}/commit",
		"GET /api/bookings/{bookingID}",
		"GET /api/agents/{agentID}/commission",
		"PUT /api/admin/bookings/{bookingID}/cancel",
		"GET /health",
	} {
		assert.Contains(t, routes, want)
	}
}

func TestHealth(t *testing.T) {
	app := testApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRequestsThatNeverReachTheStore(t *testing.T) {
	app := testApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trips/not-a-uuid/seats", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/sessions/5f0c8a43-8a51-4d8e-9a49-2d6f3f1c2b7a", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
