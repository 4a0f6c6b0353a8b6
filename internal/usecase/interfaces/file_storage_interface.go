package interfaces

import "context"

// IFileStorage abstracts external blob storage for bill files (e.g. S3).
//
// Save returns an opaque storage key to persist alongside the bill. Delete is
// best-effort by contract: callers tolerate its failure and must not let it
// block the primary mutation.

type IFileStorage interface {
	Save(ctx context.Context, fileName, contentType string, data []byte) (storageKey string, err error)
	Get(ctx context.Context, storageKey string) (data []byte, contentType string, err error)
	Delete(ctx context.Context, storageKey string) error
}
