// Package store persists bill-set snapshots to a client-side key-value
// store: one file per key under a state directory.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// KV is a file-backed key-value store. Keys map directly to file names
// under the state directory.
type KV struct {
	dir string
}

// Open creates the state directory if needed and returns a store over it.
func Open(dir string) (*KV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}
	return &KV{dir: dir}, nil
}

// Get returns the value for key, or nil if the key does not exist.
func (kv *KV) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(kv.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %s: %w", key, err)
	}
	return data, nil
}

// Put writes the value for key.
func (kv *KV) Put(key string, value []byte) error {
	if err := os.WriteFile(filepath.Join(kv.dir, key), value, 0o644); err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is a no-op.
func (kv *KV) Delete(key string) error {
	err := os.Remove(filepath.Join(kv.dir, key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting key %s: %w", key, err)
	}
	return nil
}
