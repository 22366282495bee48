package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultIgnoreFile is the name of the gitignore style file consulted at the
// root of a batch.
const DefaultIgnoreFile = ".palzignore"

// Walker enumerates batch candidates below a root directory.
type Walker struct {
	// IgnoreFile names a gitignore style file looked up in the root. Empty
	// disables ignore handling.
	IgnoreFile string
	// OnError is called for entries that cannot be read. They are skipped
	// and the walk continues.
	OnError func(path string, err error)
}

// Collect returns every regular file below root whose .palz extension
// matches palzFiles, in lexical walk order. Symlinks and other special files
// are never returned.
func (w Walker) Collect(root string, palzFiles bool) ([]string, error) {
	var paths []string
	err := w.walk(root, palzFiles, func(path string) {
		paths = append(paths, path)
	})
	return paths, err
}

// Count returns the number of files Collect would return.
func (w Walker) Count(root string, palzFiles bool) (int, error) {
	count := 0
	err := w.walk(root, palzFiles, func(string) { count++ })
	return count, err
}

func (w Walker) walk(root string, palzFiles bool, visit func(path string)) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return ErrExpectedDirectory
	}

	matcher, ignorePath, err := w.loadIgnore(root)
	if err != nil {
		return err
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if w.OnError != nil {
				w.OnError(path, err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		if matcher != nil {
			rel, relErr := filepath.Rel(root, path)
			if relErr == nil && matcher.MatchesPath(filepath.ToSlash(rel)) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}
		if !d.Type().IsRegular() || path == ignorePath {
			return nil
		}
		if IsDotPalz(d.Name()) == palzFiles {
			visit(path)
		}
		return nil
	})
}

func (w Walker) loadIgnore(root string) (*ignore.GitIgnore, string, error) {
	if w.IgnoreFile == "" {
		return nil, "", nil
	}
	path := filepath.Join(root, w.IgnoreFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, "", nil
	} else if err != nil {
		return nil, "", err
	}
	matcher, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrIgnoreFile, path, err)
	}
	return matcher, path, nil
}
