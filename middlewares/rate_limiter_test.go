package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/andrisetia/reservation-app/middlewares"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func hit(r *gin.Engine, method, path, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitPerIP(t *testing.T) {
	r := gin.New()
	r.Use(middlewares.NewRateLimiter(1, 2).RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	assert.Equal(t, http.StatusOK, hit(r, http.MethodGet, "/ping", "10.0.0.1:4000"))
	assert.Equal(t, http.StatusOK, hit(r, http.MethodGet, "/ping", "10.0.0.1:4000"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, http.MethodGet, "/ping", "10.0.0.1:4000"))

	// a different client keeps its own bucket
	assert.Equal(t, http.StatusOK, hit(r, http.MethodGet, "/ping", "10.0.0.2:4000"))
}

func TestStrictRateLimiterCapsBurst(t *testing.T) {
	r := gin.New()
	r.POST("/guarded", middlewares.NewStrictRateLimiter(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	sawOK := false
	limited := false
	for i := 0; i < 40; i++ {
		switch hit(r, http.MethodPost, "/guarded", "") {
		case http.StatusOK:
			sawOK = true
		case http.StatusTooManyRequests:
			limited = true
		}
		if limited {
			break
		}
	}
	assert.True(t, sawOK, "requests inside the burst should pass")
	assert.True(t, limited, "requests past the burst should be rejected")
}
