package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the durable key/value state behind session persistence. It is
// the only persistence mechanism of the client: written on login/logout,
// read once at construction for rehydration.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemStorage is an in-process Storage for tests and throwaway sessions.
type MemStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemStorage returns an empty in-memory Storage.
func NewMemStorage() *MemStorage {
	return &MemStorage{values: make(map[string]string)}
}

func (m *MemStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemStorage) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// FileStorage persists the key/value map as a JSON file, giving sessions the
// same survive-a-restart behavior the browser console gets from
// localStorage.
type FileStorage struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStorage loads (or lazily creates) the state file at path.
func NewFileStorage(path string) (*FileStorage, error) {
	fs := &FileStorage{path: path, values: make(map[string]string)}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &fs.values); err != nil {
		// A corrupt state file means no session survives; start clean.
		fs.values = make(map[string]string)
	}
	return fs, nil
}

func (f *FileStorage) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *FileStorage) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.flush()
}

func (f *FileStorage) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return f.flush()
}

func (f *FileStorage) flush() error {
	raw, err := json.Marshal(f.values)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o600)
}
