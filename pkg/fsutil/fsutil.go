// Package fsutil provides the file safety primitives used when govsg writes
// fixes: snapshots for concurrent-modification detection, atomic writes and
// sidecar backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for categorization via errors.Is.
var (
	ErrNotFound         = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIsDirectory      = errors.New("path is a directory")
	ErrNilSnapshot      = errors.New("nil snapshot")
)

// Snapshot captures the state of a file when it was read.
type Snapshot struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64
	Hash    [32]byte
}

// ReadFile reads path and returns its content with a Snapshot.
func ReadFile(ctx context.Context, path string) ([]byte, *Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}

	return content, &Snapshot{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}

// Changed reports whether the file differs from snap. The quick check
// compares modification time and size; strict mode also re-hashes the
// content. A deleted file counts as changed.
func Changed(ctx context.Context, snap *Snapshot, strict bool) (bool, error) {
	if snap == nil {
		return false, ErrNilSnapshot
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}

	stat, err := os.Stat(snap.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("stat %s: %w", snap.Path, err)
	}
	if !stat.ModTime().Equal(snap.ModTime) || stat.Size() != snap.Size {
		return true, nil
	}
	if !strict {
		return false, nil
	}

	content, err := os.ReadFile(snap.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", snap.Path, err)
	}
	return sha256.Sum256(content) != snap.Hash, nil
}
