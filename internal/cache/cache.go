// Package cache provides the key→blob stores backing the OCR and
// structured-extraction result caches. Keys are hex digest strings and
// entries are never evicted; writes for the same key are idempotent
// because the value is a deterministic function of the key.
package cache

// Store is a minimal append-only blob store.
type Store interface {
	// Get returns the blob for key, or ok=false on a miss.
	Get(key string) ([]byte, bool, error)
	// Put writes the blob for key, overwriting any prior entry.
	Put(key string, value []byte) error
}
