package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liq-planung/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(limiter *RateLimiter) *gin.Engine {
	engine := gin.New()
	handlers := []gin.HandlerFunc{Identify()}
	if limiter != nil {
		handlers = append(handlers, limiter.Middleware())
	}
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, userID.String())
	})
	engine.GET("/ping", handlers...)
	return engine
}

func get(engine *gin.Engine, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestIdentify(t *testing.T) {
	engine := newEngine(nil)

	tests := []struct {
		name     string
		header   string
		status   int
		code     string
		response string
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized, code: "IDN-010001"},
		{name: "not a uuid", header: "alice", status: http.StatusUnauthorized, code: "IDN-010002"},
		{name: "nil uuid", header: uuid.Nil.String(), status: http.StatusUnauthorized, code: "IDN-010002"},
		{name: "valid", header: "6f1c1b8e-2b7a-4a3e-9a59-0d3b2f1e8c11", status: http.StatusOK, response: "6f1c1b8e-2b7a-4a3e-9a59-0d3b2f1e8c11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(engine, tt.header)

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, errorCode(t, rec))
			} else {
				assert.Equal(t, tt.response, rec.Body.String())
			}
		})
	}
}

func TestRateLimiter_PerUser(t *testing.T) {
	limiter := NewRateLimiterWithConfig(2, time.Minute)
	now := time.Date(2025, time.June, 16, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	engine := newEngine(limiter)

	alice := uuid.NewString()
	bob := uuid.NewString()

	assert.Equal(t, http.StatusOK, get(engine, alice).Code)
	assert.Equal(t, http.StatusOK, get(engine, alice).Code)

	rec := get(engine, alice)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "IDN-020001", errorCode(t, rec))

	assert.Equal(t, http.StatusOK, get(engine, bob).Code)

	now = now.Add(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, get(engine, alice).Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	engine := newEngine(NewRateLimiterWithConfig(0, time.Minute))
	user := uuid.NewString()

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(engine, user).Code)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiterWithConfig(1, time.Minute)
	now := time.Date(2025, time.June, 16, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.allow("a"))
	assert.False(t, limiter.allow("a"))

	now = now.Add(2 * time.Minute)
	limiter.Cleanup()
	assert.Empty(t, limiter.entries)

	limiter.Reset()
	assert.True(t, limiter.allow("a"))
}

func TestRateLimiter_StartCleanup(t *testing.T) {
	limiter := NewRateLimiterWithConfig(1, time.Minute)
	start := time.Date(2025, time.June, 16, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return start }
	assert.True(t, limiter.allow("a"))
	assert.True(t, limiter.allow("b"))

	limiter.mu.Lock()
	limiter.now = func() time.Time { return start.Add(2 * time.Minute) }
	limiter.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	limiter.StartCleanup(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		return len(limiter.entries) == 0
	}, time.Second, 10*time.Millisecond)
}
