package store

import "context"

// Logical keys used by the storefront. The values are JSON payloads.
const (
	KeyCart        = "cart"
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
)

// Store is durable local key/value storage surviving restarts. Reads
// of absent keys return *errors.ErrNotFound.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
