// Package session implements server-side cookie sessions: an opaque id in an
// HTTP-only cookie resolves to a record in a pluggable store.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

type Record struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store persists session records keyed by id. Implementations must be safe for
// concurrent use; last write wins per id. Delete of a missing id is not an
// error, which keeps logout idempotent.
type Store interface {
	Get(ctx context.Context, id string) (*Record, error)
	Set(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id string) error
}
