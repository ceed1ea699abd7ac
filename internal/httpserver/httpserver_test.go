package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "task-assistant/docs"
	"task-assistant/internal/middleware"
	"task-assistant/internal/task"
	taskHTTP "task-assistant/internal/task/delivery/http"
	"task-assistant/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) HandleChatTurn(ctx context.Context, input task.ChatInput) (task.ChatOutput, error) {
	return task.ChatOutput{Reply: "ok"}, nil
}

func (stubUseCase) ListUsers(ctx context.Context) ([]string, error) {
	return []string{"Alice Smith"}, nil
}

func newTestServer(t *testing.T, env string, ready func(context.Context) error) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: env,
		Ready:       ready,
		Middleware:  middleware.New(l, middleware.Config{}),
		TaskHandler: taskHTTP.New(l, stubUseCase{}, taskHTTP.Config{DefaultTimezone: "UTC"}),
	})
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())
	return srv
}

func get(srv *HTTPServer, path string) int {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w.Code
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080})
	assert.EqualError(t, err, "task handler is required")

	_, err = New(log.NewNop(), Config{Port: 8080})
	assert.EqualError(t, err, "mode is required")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, "development", nil)

	assert.Equal(t, http.StatusOK, get(srv, "/health"))
	assert.Equal(t, http.StatusOK, get(srv, "/live"))
	assert.Equal(t, http.StatusOK, get(srv, "/ready"))
	assert.Equal(t, http.StatusOK, get(srv, "/api/v1/users"))
	assert.Equal(t, http.StatusOK, get(srv, "/swagger/doc.json"))
}

func TestReady_StoreDown(t *testing.T) {
	srv := newTestServer(t, "development", func(context.Context) error {
		return errors.New("connection refused")
	})

	assert.Equal(t, http.StatusServiceUnavailable, get(srv, "/ready"))
	assert.Equal(t, http.StatusOK, get(srv, "/health"))
}

func TestProduction_NoSwagger(t *testing.T) {
	srv := newTestServer(t, "production", nil)
	assert.Equal(t, http.StatusNotFound, get(srv, "/swagger/doc.json"))
}
