package cas

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"go.quarry.build/quarry/internal/core/domain"
	"go.quarry.build/quarry/internal/core/ports"
)

var _ ports.ActionCache = (*ActionCache)(nil)

// ActionCache maps cache keys to record references using one JSON file per
// key. Keys are hex strings, so they are safe as filenames as-is.
type ActionCache struct {
	root string
}

// cacheEntry is the stored form of one action cache mapping.
type cacheEntry struct {
	Key string `json:"key"`
	Ref string `json:"ref"`
}

// NewActionCache creates an action cache rooted at the given directory.
func NewActionCache(root string) (*ActionCache, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(filepath.Join(root, "actions"), 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create action cache directory")
	}
	return &ActionCache{root: root}, nil
}

// Put registers ref under key. An existing entry for the key is replaced.
func (c *ActionCache) Put(ctx context.Context, key domain.CacheKey, ref domain.ContentRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cacheEntry{Key: string(key), Ref: string(ref)}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache entry")
	}

	//nolint:gosec // Path is derived from a hex key under a trusted root
	if err := os.WriteFile(c.entryPath(key), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write cache entry")
	}
	return nil
}

// Get resolves key to a record ref; the second return is false when no entry
// exists.
func (c *ActionCache) Get(ctx context.Context, key domain.CacheKey) (domain.ContentRef, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	//nolint:gosec // Path is derived from a hex key under a trusted root
	data, err := os.ReadFile(c.entryPath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.Wrap(err, "failed to read cache entry")
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false, zerr.Wrap(err, "failed to unmarshal cache entry")
	}
	return domain.ContentRef(entry.Ref), true, nil
}

func (c *ActionCache) entryPath(key domain.CacheKey) string {
	return filepath.Join(c.root, "actions", string(key)+".json")
}
