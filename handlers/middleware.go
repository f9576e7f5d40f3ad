// Package handlers provides HTTP request handlers for the redirect server.
package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// client represents a client with its rate limiter and last seen time
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RecoveryMiddleware keeps a handler panic contained to its own request.
// The accept loop and the other in-flight handlers are unaffected; the
// failed request gets a bare 500.
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Handler panic",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// RateLimitMiddleware applies per-client rate limiting to redirect requests.
// On a loopback-only server every client shares the local address, so this
// effectively caps the total request rate. If the limit is exceeded it
// returns a 429 Too Many Requests error.
func (h *RedirectHandler) RateLimitMiddleware() gin.HandlerFunc {
	const (
		cleanupInterval   = time.Minute
		clientInactiveFor = 3 * time.Minute
	)

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	// Start a goroutine to periodically clean up inactive clients
	go h.cleanupInactiveClients(&mu, clients, cleanupInterval, clientInactiveFor)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		// Create a new rate limiter for this IP if it doesn't exist
		if _, found := clients[ip]; !found {
			clients[ip] = &client{
				limiter: rate.NewLimiter(rate.Every(h.config.RatePeriod), h.config.RateLimit),
			}
		}
		clients[ip].lastSeen = time.Now()

		// Check if this request is allowed by the rate limiter
		if !clients[ip].limiter.Allow() {
			mu.Unlock()
			c.String(http.StatusTooManyRequests, "Rate limit exceeded")
			c.Abort()
			return
		}
		mu.Unlock()

		c.Next()
	}
}

// cleanupInactiveClients periodically removes clients that haven't been seen recently
func (h *RedirectHandler) cleanupInactiveClients(mu *sync.Mutex, clients map[string]*client, interval, inactiveFor time.Duration) {
	for {
		time.Sleep(interval)
		mu.Lock()
		for ip, client := range clients {
			if time.Since(client.lastSeen) > inactiveFor {
				delete(clients, ip)
			}
		}
		mu.Unlock()
	}
}
