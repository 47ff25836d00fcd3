//go:generate mockgen -destination=./mocks/store.go -package=mocks . Lister,Getter

// Package store provides object-store addressing and a minio-backed client
// for listing and retrieving objects.
package store

import (
	"context"
	"io"
)

// ObjectInfo describes one stored object returned by a listing.
type ObjectInfo struct {
	Bucket string
	Key    string
	Size   int64
}

// Lister enumerates all objects under a key prefix. Implementations must
// return the complete set for the prefix; pagination is handled internally.
type Lister interface {
	List(ctx context.Context, prefix Locator) ([]ObjectInfo, error)
}

// Getter streams one object's bytes to w.
type Getter interface {
	Get(ctx context.Context, object Locator, w io.Writer) error
}
