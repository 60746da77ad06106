package routers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"lobby/internal/api"
	"lobby/internal/lobby"
)

func TestLobbyRoutes(t *testing.T) {
	ctrl := lobby.NewController(zap.NewNop(), 8, nil)
	h := api.NewHandlers(zap.NewNop(), ctrl)

	r := chi.NewRouter()
	LobbyRoutes(r, h)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "health endpoint exists",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "ping endpoint exists",
			method:         http.MethodGet,
			path:           "/ping",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "status endpoint exists",
			method:         http.MethodGet,
			path:           "/status",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics endpoint exists",
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "websocket endpoint rejects plain GET",
			method:         http.MethodGet,
			path:           "/ws",
			expectedStatus: http.StatusBadRequest, // upgrade fails, but the route exists
		},
		{
			name:           "unknown endpoint returns 404",
			method:         http.MethodGet,
			path:           "/nonexistent",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
