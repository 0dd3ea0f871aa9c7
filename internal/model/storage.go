package model

import (
	"context"
	"io"
)

// Storage is an object store for account snapshots.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64) error
}
