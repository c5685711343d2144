package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterAllowsBurstThenBlocks(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)

	for i := 0; i < 5; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Error("6th request within the window should be blocked")
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first client should be allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Error("first client should now be blocked")
	}
	if !rl.allow("10.0.0.2") {
		t.Error("second client has its own bucket")
	}
}

func TestRateLimiterRefills(t *testing.T) {
	// 60 per minute = one token per second.
	rl := NewRateLimiter(60, time.Minute)
	rl.buckets["10.0.0.1"] = &bucket{tokens: 0, lastSeen: time.Now().Add(-2 * time.Second)}

	if !rl.allow("10.0.0.1") {
		t.Error("bucket should refill over time")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/bookings", NewRateLimiter(2, time.Minute).Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/api/bookings", nil))
		if w.Code != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/bookings", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after the burst, got %d", w.Code)
	}
}
