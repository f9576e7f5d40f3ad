package storage

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"winklink/types"
)

// InMemoryStorage implements the Storage interface using an in-memory map.
type InMemoryStorage struct {
	links    map[string]types.LinkRecord // token to link record mappings
	mu       sync.RWMutex                // read-write mutex for thread-safe access to the map
	capacity int                         // maximum number of links that can be stored
	count    int                         // current number of stored links
	logger   *zap.Logger
}

// The sync.RWMutex (mu) guards links and count. Redirect handlers only read,
// so many lookups proceed concurrently; inserts take the write lock, which
// also makes insert-then-lookup linearizable per token: once Insert has
// returned, every subsequent Lookup observes the complete record.

// NewInMemoryStorage creates and returns a new InMemoryStorage instance.
func NewInMemoryStorage(capacity int, logger *zap.Logger) *InMemoryStorage {
	if capacity <= 0 {
		capacity = 1000 // Default capacity if an invalid value is provided
	}
	if logger == nil {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			panic("Failed to initialize zap logger: " + err.Error())
		}
	}
	return &InMemoryStorage{
		links:    make(map[string]types.LinkRecord, capacity),
		capacity: capacity,
		logger:   logger,
	}
}

// Insert atomically adds a new link record if its token is absent.
// On a collision it returns ErrTokenExists and mutates nothing, so the
// caller can mint a fresh candidate token and retry.
func (s *InMemoryStorage) Insert(ctx context.Context, rec types.LinkRecord) error {
	select {
	case <-ctx.Done():
		s.logger.Warn("Insert operation cancelled", zap.String("token", rec.Token))
		return ctx.Err()
	default:
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.count >= s.capacity {
			s.logger.Error("Storage capacity reached. Cannot store link", zap.String("token", rec.Token))
			return ErrCapacityReached
		}
		if _, exists := s.links[rec.Token]; exists {
			s.logger.Warn("Attempt to insert duplicate token", zap.String("token", rec.Token))
			return ErrTokenExists
		}

		rec.CreatedAt = time.Now().UTC()
		s.links[rec.Token] = rec
		s.count++
		s.logger.Info("Link stored",
			zap.String("token", rec.Token),
			zap.String("originalURL", rec.OriginalURL),
			zap.Time("createdAt", rec.CreatedAt))
		return nil
	}
}

// Lookup retrieves the link record for a given token.
func (s *InMemoryStorage) Lookup(ctx context.Context, token string) (types.LinkRecord, error) {
	select {
	case <-ctx.Done():
		s.logger.Warn("Lookup operation cancelled", zap.String("token", token))
		return types.LinkRecord{}, ctx.Err()
	default:
		s.mu.RLock()
		defer s.mu.RUnlock()

		if rec, exists := s.links[token]; exists {
			s.logger.Debug("Link retrieved",
				zap.String("token", token),
				zap.String("originalURL", rec.OriginalURL))
			return rec, nil
		}
		return types.LinkRecord{}, ErrTokenNotFound
	}
}

// Count returns the number of stored links.
func (s *InMemoryStorage) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}
