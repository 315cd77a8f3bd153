package storage

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned when a stored payload no longer exists
// under its object key.
var ErrObjectNotFound = errors.New("object not found in storage")

// BlobStore defines the interface for storing photo payloads outside
// the relational rows. The default deployment keeps payloads inline in
// the database and needs no BlobStore at all; an S3-compatible bucket
// is the pluggable alternative for larger libraries.
type BlobStore interface {
	// Put stores data under objectKey, overwriting any previous object.
	Put(ctx context.Context, objectKey string, contentType string, data []byte) error

	// Get retrieves the full payload stored under objectKey.
	Get(ctx context.Context, objectKey string) ([]byte, error)

	// Delete removes the object from the store.
	Delete(ctx context.Context, objectKey string) error
}
