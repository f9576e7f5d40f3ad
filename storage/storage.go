// Package storage provides interfaces and common errors for link storage operations.
package storage

import (
	"context"
	"errors"

	"winklink/types"
)

// Common errors returned by storage operations.
var (
	ErrTokenExists     = errors.New("token already exists")
	ErrTokenNotFound   = errors.New("token not found")
	ErrCapacityReached = errors.New("storage capacity reached")
)

// Storage defines the operations the shortener core needs from a link store.
// Records are insert-only: there is no update or delete, a minted link stays
// valid until the process exits.
type Storage interface {
	Insert(ctx context.Context, rec types.LinkRecord) error
	Lookup(ctx context.Context, token string) (types.LinkRecord, error)
}
