package persist

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	BACKEND_FILE   = "file"
	BACKEND_BADGER = "badger"

	FEATURE_MAP = "feature-map"
	WEIGHTS     = "weights"
)

// ErrNotFound is returned by Get for a key that was never stored
var ErrNotFound = errors.New("persist: blob not found")

// Blobs stores opaque artifacts under string keys
type Blobs interface {
	// Key names an artifact of a language in this store
	Key(artifact, language string) string
	Put(key string, data []byte) error
	Get(key string) ([]byte, error)
	Close() error
}

// Open returns the store for backend rooted at path
func Open(backend, path string, log *zap.Logger) (Blobs, error) {
	switch backend {
	case BACKEND_FILE, "":
		return NewFileStore(path)
	case BACKEND_BADGER:
		return OpenBadger(BadgerConfig{Path: path, Logger: log})
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}
