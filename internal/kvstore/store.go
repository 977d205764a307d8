package kvstore

import "context"

// Keys the application persists under. The store itself is key-agnostic.
const (
	KeyTasks = "todoTasks"
	KeyTheme = "themeMode"
)

// Store is an opaque string key-value store. A Set replaces the whole value
// for the key; the last write wins. No transactional guarantees are offered
// beyond that.
type Store interface {
	// Get returns the value for key and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, replacing any prior content.
	Set(ctx context.Context, key, value string) error
	Close() error
}
