// Package cas implements the on-disk content store and action cache.
package cas

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"go.quarry.build/quarry/internal/core/domain"
	"go.quarry.build/quarry/internal/core/ports"
)

var _ ports.ContentStore = (*ContentStore)(nil)

// ContentStore stores byte sequences under their SHA-256 digest, one file
// per object with a two-character directory fan-out. Equal bytes land on the
// same path, which is what makes references content-derived and stable.
type ContentStore struct {
	root string
}

// NewContentStore creates a content store rooted at the given directory.
func NewContentStore(root string) (*ContentStore, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(filepath.Join(root, "objects"), 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create content store directory")
	}
	return &ContentStore{root: root}, nil
}

// Store persists data and returns its content reference. Writing goes
// through a temp file and rename so concurrent stores of the same bytes
// never observe a partial object.
func (s *ContentStore) Store(ctx context.Context, data []byte) (domain.ContentRef, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)
	ref := domain.ContentRef(hex.EncodeToString(sum[:]))

	path := s.objectPath(ref)
	if _, err := os.Stat(path); err == nil {
		// Already present; content addressing makes the write redundant.
		return ref, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.Wrap(err, "failed to create object directory")
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create temporary object")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", zerr.Wrap(err, "failed to write object")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", zerr.Wrap(err, "failed to close object")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", zerr.Wrap(err, "failed to publish object")
	}

	return ref, nil
}

// Load returns the bytes stored under ref.
func (s *ContentStore) Load(ctx context.Context, ref domain.ContentRef) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	//nolint:gosec // Path is derived from a hex digest under a trusted root
	data, err := os.ReadFile(s.objectPath(ref))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrEntryNotFound, "ref", string(ref))
		}
		return nil, zerr.Wrap(err, "failed to read object")
	}
	return data, nil
}

func (s *ContentStore) objectPath(ref domain.ContentRef) string {
	hexRef := string(ref)
	if len(hexRef) < 3 {
		return filepath.Join(s.root, "objects", hexRef)
	}
	return filepath.Join(s.root, "objects", hexRef[:2], hexRef[2:])
}
