// Package store provides the key/value backends folio persists UI state
// through: the palette's recent commands and the theme preferences.
package store

import (
	"errors"
	"fmt"
	"strings"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a string-keyed byte store. Get reports ok=false for absent keys.
// It satisfies palette.Storage.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendMemory}
}

// Open returns the backend named by backend, rooted at path. path is ignored
// by the memory backend.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendFile, "":
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownBackend, backend, strings.Join(Backends(), ", "))
	}
}

// GetString reads key as a string; absent keys return "".
func GetString(s Store, key string) (string, error) {
	v, ok, err := s.Get(key)
	if err != nil || !ok {
		return "", err
	}
	return string(v), nil
}

// SetString stores val under key.
func SetString(s Store, key, val string) error {
	return s.Set(key, []byte(val))
}
