// Package fsutil provides utility functions and constants for file system operations.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File and directory permission constants.
// These follow standard Unix permission conventions and are used consistently
// throughout the application.
const (
	// FileModeDefault is the default mode for regular files (-rw-r--r--).
	FileModeDefault = 0o644
	// FileModeSecure is used for downloaded payloads (-rw-r-----).
	FileModeSecure = 0o640
	// DirModeDefault is the default mode for directories (drwxr-xr-x).
	DirModeDefault = 0o755
	// DirModeSecure is used for download destinations (drwxr-x---).
	DirModeSecure = 0o750
)

// EnsureDir creates a directory and all necessary parent directories if they
// don't exist. Returns an error if the path exists but is not a directory.
func EnsureDir(path string) error {
	return os.MkdirAll(path, DirModeDefault)
}

// EnsureFileDir creates the parent directory of a file path if it doesn't exist.
func EnsureFileDir(filePath string) error {
	return EnsureDir(filepath.Dir(filePath))
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Move moves a file from src to dst. It first attempts an atomic os.Rename
// and falls back to copy + delete when the rename fails (cross-filesystem
// boundaries).
func Move(src, dst string) error {
	if src == "" || dst == "" {
		return fmt.Errorf("source and destination paths cannot be empty")
	}
	if err := EnsureFileDir(dst); err != nil {
		return fmt.Errorf("failed to create destination directory for %s: %w", dst, err)
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := Copy(src, dst); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("failed to remove source file %s after copy: %w", src, err)
	}
	return nil
}

// Copy copies a regular file from src to dst, preserving the source mode.
func Copy(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source %s: %w", src, err)
	}
	if !srcInfo.Mode().IsRegular() {
		return fmt.Errorf("source %s is not a regular file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return fmt.Errorf("failed to create destination %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy contents: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close destination %s: %w", dst, err)
	}
	return nil
}
