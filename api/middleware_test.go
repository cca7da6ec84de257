package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestSizeLimitWithSize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	customLimit := int64(1024)

	tests := []struct {
		name           string
		bodySize       int
		expectedStatus int
	}{
		{
			name:           "request under limit",
			bodySize:       512,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "request at limit",
			bodySize:       1024,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "request over limit",
			bodySize:       4096,
			expectedStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestSizeLimitWithSize(customLimit))
			router.POST("/test", func(c *gin.Context) {
				// MaxBytesReader surfaces the cap as a read error
				body, err := io.ReadAll(c.Request.Body)
				if err != nil {
					c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
					return
				}
				c.JSON(http.StatusOK, gin.H{"received": len(body)})
			})

			body := strings.Repeat("a", tt.bodySize)
			req := httptest.NewRequest("POST", "/test", strings.NewReader(body))
			req.Header.Set("Content-Type", "text/plain")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequestSizeLimitSkipsReads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestSizeLimitWithSize(8))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	// GET requests are never capped
	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPerClientRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name              string
		requestCount      int
		requestsPerSecond int
		burstSize         int
		expectSomeBlocked bool
		waitBetween       time.Duration
	}{
		{
			name:              "requests under rate limit",
			requestCount:      3,
			requestsPerSecond: 10,
			burstSize:         5,
			expectSomeBlocked: false,
		},
		{
			name:              "burst requests",
			requestCount:      6,
			requestsPerSecond: 2,
			burstSize:         3,
			expectSomeBlocked: true,
		},
		{
			name:              "spaced requests",
			requestCount:      5,
			requestsPerSecond: 10,
			burstSize:         2,
			expectSomeBlocked: false,
			waitBetween:       50 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rateLimiters := &sync.Map{}
			cleanupStop := make(chan struct{})
			cleanupInitialized := &sync.Once{}

			router := gin.New()
			router.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, tt.requestsPerSecond, tt.burstSize))
			router.GET("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "success"})
			})

			successCount := 0
			blockedCount := 0

			for i := 0; i < tt.requestCount; i++ {
				if tt.waitBetween > 0 && i > 0 {
					time.Sleep(tt.waitBetween)
				}

				w := httptest.NewRecorder()
				req := httptest.NewRequest("GET", "/test", nil)
				req.RemoteAddr = "127.0.0.1:12345"

				router.ServeHTTP(w, req)

				switch w.Code {
				case http.StatusOK:
					successCount++
				case http.StatusTooManyRequests:
					blockedCount++
				}
			}

			if tt.expectSomeBlocked {
				assert.Greater(t, blockedCount, 0, "Expected some requests to be blocked")
			} else {
				assert.Equal(t, 0, blockedCount, "Expected no requests to be blocked")
				assert.Equal(t, tt.requestCount, successCount, "Expected all requests to succeed")
			}

			close(cleanupStop)
		})
	}
}

func TestPerClientRateLimit_DifferentClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})
	cleanupInitialized := &sync.Once{}

	router := gin.New()
	router.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 2))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	// Client 1 exhausts its limit
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "127.0.0.1:12345"
		router.ServeHTTP(w, req)
	}

	// Client 2 is unaffected
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.1:54321"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	close(cleanupStop)
}

func TestCleanupOldRateLimiters(t *testing.T) {
	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})

	rateLimiters.Store("stale-client", &clientLimiter{
		lastSeen: time.Now().Add(-2 * time.Hour),
	})

	go cleanupOldRateLimiters(rateLimiters, cleanupStop)

	time.Sleep(10 * time.Millisecond)
	close(cleanupStop)
}
