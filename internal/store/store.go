// internal/store/store.go
package store

// KV is the durable key-value capability the repositories are built on.
// Get reports whether the key exists; Set replaces the value atomically for
// that single key. There are no transactional guarantees across keys.
type KV interface {
    Get(key string) ([]byte, bool, error)
    Set(key string, value []byte) error
}
