package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is used when WriteAtomic is given a zero mode.
const DefaultFileMode os.FileMode = 0o644

// BackupSuffix is appended to the path of sidecar backups.
const BackupSuffix = ".govsg.bak"

// BackupMode specifies how backups are stored.
type BackupMode string

const (
	BackupModeSidecar BackupMode = "sidecar"
	BackupModeNone    BackupMode = "none"
)

// BackupConfig controls backup behavior.
type BackupConfig struct {
	Enabled bool
	Mode    BackupMode
}

// DefaultBackupConfig returns the defaults: sidecar mode, disabled.
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{Mode: BackupModeSidecar}
}

// WriteAtomic writes content through a temp file in the same directory and
// renames it over path. On error the original file is untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write atomic: %w", err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// BackupPath returns where the backup of path is stored, or "" for BackupModeNone.
func BackupPath(path string, mode BackupMode) string {
	if mode == BackupModeNone {
		return ""
	}
	return path + BackupSuffix
}

// CreateBackup copies path to its backup location unless a backup already
// exists, so repeated runs keep the oldest original. It reports whether a
// backup was written.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	if !cfg.Enabled {
		return false, nil
	}
	backupPath := BackupPath(path, cfg.Mode)
	if backupPath == "" {
		return false, nil
	}

	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	content, snap, err := ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, snap.Mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}
