package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const palzSuffix = ".palz"

// IsDotPalz reports whether path carries the .palz extension, ignoring case.
func IsDotPalz(path string) bool {
	return strings.EqualFold(filepath.Ext(path), palzSuffix)
}

// TrimDotPalz returns path without its trailing .palz extension. Paths
// without the extension are returned unchanged.
func TrimDotPalz(path string) string {
	if !IsDotPalz(path) {
		return path
	}
	return path[:len(path)-len(palzSuffix)]
}

// FileSize returns the size in bytes of the regular file at path.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, ErrExpectedFile
	}
	return info.Size(), nil
}

// WriteFileAtomic creates path with the bytes written by fill. The data goes
// to a uniquely named sibling first and is renamed over path only once fill
// succeeds, so a failed write never clobbers an existing file.
func WriteFileAtomic(path string, fill func(w io.Writer) error) (err error) {
	perm := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = fill(f); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// WriteJSONFile writes any value as JSON to the specified file path.
// It creates the file and encodes the value using the standard JSON encoder.
func WriteJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
