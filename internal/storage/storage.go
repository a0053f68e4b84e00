// Package storage provides the string-keyed blob stores the repositories
// persist into.
package storage

// Store is a synchronous string-keyed blob store. Every operation may fail
// (full disk, closed database); callers absorb failures instead of crashing.
type Store interface {
	// Get returns the blob stored under key; ok is false when the key is
	// absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
