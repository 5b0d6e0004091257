// Package storage provides the durable key-value slot abstraction used to
// persist session state between runs.
package storage

// Slots is a string-keyed store of opaque values, the local-storage analog.
// It abstracts the underlying medium, allowing for different implementations
// (e.g. in-memory, file-backed).
type Slots interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) ([]byte, bool, error)

	// Set stores the value under key, overwriting any prior value.
	Set(key string, value []byte) error

	// Delete removes the value stored under key. Deleting an absent key is
	// a no-op.
	Delete(key string) error
}
