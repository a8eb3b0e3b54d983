package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is durable key-value storage for client state.
type Storage interface {
	// GetItem returns the stored value and whether the key exists.
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// FileStorage keeps each key in its own file under a state directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the state directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// GetItem reads a key's file; a missing file means the key is absent.
func (s *FileStorage) GetItem(key string) (string, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(raw), true, nil
}

// SetItem writes a key's file.
func (s *FileStorage) SetItem(key, value string) error {
	return os.WriteFile(s.path(key), []byte(value), 0o600)
}

// RemoveItem deletes a key's file; removing an absent key is not an error.
func (s *FileStorage) RemoveItem(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
