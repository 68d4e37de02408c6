// Package snapshot persists serialized documents produced by the CLI and
// the inspector, either to a local directory or to an S3 bucket.
package snapshot

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/vango-dev/vrange/internal/config"
	"github.com/vango-dev/vrange/internal/errors"
)

// ContentType is the media type snapshots are stored with.
const ContentType = "text/html; charset=utf-8"

// Store saves and loads snapshots by key.
type Store interface {
	// Save stores data under key and returns where it was written.
	Save(ctx context.Context, key string, data []byte) (string, error)

	// Load returns the data stored under key.
	Load(ctx context.Context, key string) ([]byte, error)
}

// Open returns the store selected by cfg: S3 when a bucket is set,
// otherwise a directory store.
func Open(cfg config.SnapshotConfig) (Store, error) {
	if cfg.Bucket != "" {
		client := NewS3Client(S3Config{
			Region:   cfg.Region,
			Endpoint: cfg.Endpoint,
		})
		return NewS3Store(client, cfg.Bucket, cfg.Prefix), nil
	}
	return NewDiskStore(cfg.Dir)
}

// Key builds a snapshot key of the form <name>-<unix millis>.html.
func Key(name string, at time.Time) string {
	return fmt.Sprintf("%s-%d.html", name, at.UnixMilli())
}

// cleanKey rejects absolute keys and keys escaping the store root.
func cleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", errors.New("E402").WithDetail(fmt.Sprintf("invalid key %q", key))
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("E402").WithDetail(fmt.Sprintf("key %q escapes the store", key))
	}
	return cleaned, nil
}
