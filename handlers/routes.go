// Package handlers provides HTTP request handlers for the redirect server.
package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"winklink/config"
)

// NewRouter builds the gin engine for the redirect server. The server is
// embedded in a desktop application, so gin runs in release mode without its
// default console logging.
func NewRouter(handler *RedirectHandler, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(RecoveryMiddleware(logger))
	RegisterRoutes(router, handler, cfg)
	return router
}

// RegisterRoutes sets up the routes for the redirect server. Short links are
// two-segment paths (/wnk/<token>); anything with a different shape falls
// through to the not-found handler.
func RegisterRoutes(r *gin.Engine, handler *RedirectHandler, cfg *config.Config) {
	if !cfg.DisableRateLimit {
		r.Use(handler.RateLimitMiddleware())
	}

	r.GET("/:prefix/:token", handler.Redirect)
	r.NoRoute(handler.NotFound)
}
