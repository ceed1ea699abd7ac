package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"task-assistant/pkg/log"
)

func newRouter(perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := New(log.NewNop(), Config{RateLimitPerMin: perMin})
	r.GET("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func do(r *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	// 10 per minute gives a burst of one.
	r := newRouter(10)

	assert.Equal(t, http.StatusOK, do(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, do(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, do(r, "10.0.0.2:1234"), "clients are limited separately")
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newRouter(0)
	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, do(r, "10.0.0.1:1234"))
	}
}
