package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"winklink/config"
	"winklink/handlers"
	"winklink/server"
	"winklink/storage"
	"winklink/token"
	"winklink/types"
	"winklink/urlnorm"
)

func handleStorageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrCapacityReached):
		return ErrCapacityReached
	default:
		return err
	}
}

// Errors reported to the caller of Shorten.
var (
	ErrEmptyInput      = errors.New("no URL provided")
	ErrInvalidURL      = errors.New("invalid URL provided")
	ErrServerStart     = errors.New("could not start redirect server")
	ErrCapacityReached = errors.New("link store is full")
)

// LinkService is the surface the rest of the application talks to. Shorten
// turns user input into a short local link, lazily starting the redirect
// server on first use; Shutdown stops the server at application exit.
type LinkService interface {
	Shorten(ctx context.Context, rawURL string) (string, error)
	Shutdown() error
}

// New wires up a LinkService with its in-memory store and redirect server.
// This is the composition the embedding application calls once at startup;
// a nil config selects the defaults.
func New(cfg *config.Config, logger *zap.Logger) (LinkService, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	store := storage.NewInMemoryStorage(cfg.StoreCapacity, logger)
	srv, err := server.New(cfg, store, logger)
	if err != nil {
		return nil, err
	}
	return NewLinkService(cfg, store, srv, logger)
}

type linkService struct {
	cfg      *config.Config
	store    storage.Storage
	server   *server.Server
	validate *validator.Validate
	logger   *zap.Logger
}

// NewLinkService creates a LinkService over the given store and server.
func NewLinkService(cfg *config.Config, store storage.Storage, srv *server.Server, logger *zap.Logger) (LinkService, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if srv == nil {
		return nil, errors.New("server cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &linkService{
		cfg:      cfg,
		store:    store,
		server:   srv,
		validate: validator.New(),
		logger:   logger,
	}, nil
}

// Shorten validates and canonicalizes rawURL, makes sure a redirect server is
// running, mints a unique token for the link and returns the composed short
// URL, e.g. http://localhost:54321/wnk/aZ3k9Q.
func (s *linkService) Shorten(ctx context.Context, rawURL string) (string, error) {
	canonical, err := urlnorm.Normalize(rawURL)
	if err != nil {
		if errors.Is(err, urlnorm.ErrEmptyInput) {
			return "", ErrEmptyInput
		}
		s.logger.Debug("Rejected input", zap.String("input", rawURL), zap.Error(err))
		return "", ErrInvalidURL
	}

	if err := s.validate.Var(canonical, "url"); err != nil {
		s.logger.Debug("Canonical URL failed validation", zap.String("url", canonical))
		return "", ErrInvalidURL
	}

	port, err := s.server.EnsureRunning()
	if err != nil {
		s.logger.Error("Redirect server start failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrServerStart, err)
	}

	tok, err := s.mint(ctx, canonical)
	if err != nil {
		return "", err
	}

	shortURL := fmt.Sprintf("http://%s:%d/%s/%s", s.cfg.DisplayHost, port, handlers.RedirectPrefix, tok)
	s.logger.Info("Short link created",
		zap.String("short_url", shortURL),
		zap.String("original_url", canonical))
	return shortURL, nil
}

// mint generates candidate tokens until one inserts cleanly. With a 62^6
// token space collisions are vanishingly rare, so unbounded retries are
// acceptable; the store's lock is only held inside each Insert call, never
// across attempts.
func (s *linkService) mint(ctx context.Context, canonical string) (string, error) {
	for {
		tok, err := token.Generate(s.cfg.TokenLength)
		if err != nil {
			return "", err
		}

		err = s.store.Insert(ctx, types.LinkRecord{Token: tok, OriginalURL: canonical})
		switch {
		case err == nil:
			return tok, nil
		case errors.Is(err, storage.ErrTokenExists):
			continue
		default:
			return "", handleStorageError(err)
		}
	}
}

// Shutdown stops the redirect server. Idempotent; safe to call at process
// exit whether or not a link was ever shortened.
func (s *linkService) Shutdown() error {
	return s.server.Stop()
}
