// Package storage is the client-side stand-in for browser localStorage: a
// small persistent key/value store holding the session fields and the cart.
package storage

import "errors"

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a persistent string key/value store. SetMany and DeleteMany apply
// all their keys atomically: a reader never observes a write in progress.
type Store interface {
	Get(key string) (string, error)
	SetMany(values map[string]string) error
	DeleteMany(keys ...string) error
}
