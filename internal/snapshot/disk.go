package snapshot

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vango-dev/vrange/internal/errors"
)

// DiskStore writes snapshots below a directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates dir if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("E401").Wrap(err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the root directory.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save writes data to a temp file and renames it into place.
func (s *DiskStore) Save(_ context.Context, key string, data []byte) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", errors.New("E401").Wrap(err)
	}

	f, err := os.CreateTemp(filepath.Dir(dst), ".snapshot-*")
	if err != nil {
		return "", errors.New("E401").Wrap(err)
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", errors.New("E401").Wrap(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", errors.New("E401").Wrap(err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return "", errors.New("E401").Wrap(err)
	}
	return dst, nil
}

// Load reads a snapshot.
func (s *DiskStore) Load(_ context.Context, key string) ([]byte, error) {
	key, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(key)))
	if err != nil {
		return nil, errors.New("E403").Wrap(err)
	}
	return data, nil
}
