// Package handlers provides HTTP request handlers for the redirect server.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"winklink/config"
	"winklink/storage"
)

// RedirectPrefix is the path segment short links live under, matched
// case-insensitively. A short link has the shape /wnk/<token>.
const RedirectPrefix = "wnk"

// RedirectHandler resolves short link requests against the link store.
type RedirectHandler struct {
	store    storage.Storage
	validate *validator.Validate
	config   *config.Config
	logger   *zap.Logger
}

// NewRedirectHandler creates and returns a new RedirectHandler instance.
func NewRedirectHandler(store storage.Storage, cfg *config.Config, logger *zap.Logger) (*RedirectHandler, error) {
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &RedirectHandler{
		store:    store,
		validate: validator.New(),
		config:   cfg,
		logger:   logger,
	}, nil
}

// Redirect handles GET /<prefix>/<token>. When the prefix matches
// RedirectPrefix and the token is known, it answers 302 Found with the
// original URL in the Location header. Every other outcome falls through to
// the not-found response; a handler failure never escapes the request.
func (h *RedirectHandler) Redirect(c *gin.Context) {
	if !strings.EqualFold(c.Param("prefix"), RedirectPrefix) {
		h.NotFound(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.RequestTimeout)
	defer cancel()

	token := c.Param("token")

	rec, err := h.store.Lookup(ctx, token)
	if err != nil {
		if !errors.Is(err, storage.ErrTokenNotFound) {
			h.logger.Warn("Link lookup failed",
				zap.String("token", token),
				zap.Error(err))
		}
		h.NotFound(c)
		return
	}

	// Validate the stored URL to prevent open redirects
	if err := h.validate.Var(rec.OriginalURL, "url"); err != nil {
		h.logger.Warn("Stored URL failed validation",
			zap.String("token", token),
			zap.String("original_url", rec.OriginalURL))
		h.NotFound(c)
		return
	}

	h.logger.Info("Redirecting",
		zap.String("token", token),
		zap.String("original_url", rec.OriginalURL),
		zap.String("ip", c.ClientIP()),
		zap.String("user_agent", c.Request.UserAgent()))
	c.Redirect(http.StatusFound, rec.OriginalURL)
}
