// internal/infrastructure/storage/file.go
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage persists keys as a single JSON object on local disk, the
// closest analog of single-browser local storage. It implements Storage but
// not Watcher: there is no cross-process notification for plain files, so
// change events are simply never delivered.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed storage at path. The file is created lazily
// on the first write.
func NewFile(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (f *FileStorage) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}

	data[key] = value
	return f.save(data)
}

func (f *FileStorage) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}

	if _, ok := data[key]; !ok {
		return nil
	}

	delete(data, key)
	return f.save(data)
}

func (f *FileStorage) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	data := map[string]string{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode storage file: %w", err)
	}
	return data, nil
}

func (f *FileStorage) save(data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode storage file: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	return nil
}
