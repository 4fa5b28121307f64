package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// File persists each collection as one JSON file in a data directory.
// Writes go through a temp file and rename so a crash never leaves a
// half-written collection behind.
type File struct {
	dir string
	mu  sync.Mutex
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Read(_ context.Context, key string, v any) error {
	f.mu.Lock()
	raw, err := os.ReadFile(f.path(key))
	f.mu.Unlock()

	if err != nil {
		// Missing collection reads as empty.
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		// So does a corrupt one.
		return nil
	}
	return nil
}

func (f *File) Write(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, key+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path(key))
}

func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
