package util

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestIsDotPalz(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.palz", true},
		{"a.PALZ", true},
		{"dir/a.txt.Palz", true},
		{".palz", true},
		{"a.palz.txt", false},
		{"apalz", false},
		{"a.pal", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsDotPalz(tt.path); got != tt.want {
			t.Errorf("IsDotPalz(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestTrimDotPalz(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.txt.palz", "a.txt"},
		{"dir/b.PALZ", "dir/b"},
		{"plain.txt", "plain.txt"},
		{"x.palz.palz", "x.palz"},
	}

	for _, tt := range tests {
		if got := TrimDotPalz(tt.path); got != tt.want {
			t.Errorf("TrimDotPalz(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestFileSize(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "five.txt")
	os.WriteFile(path, []byte("12345"), 0644)

	size, err := FileSize(path)
	if err != nil {
		t.Fatalf("FileSize failed: %v", err)
	}
	if size != 5 {
		t.Errorf("FileSize = %d, want 5", size)
	}

	if _, err := FileSize(tmpDir); !errors.Is(err, ErrExpectedFile) {
		t.Errorf("FileSize(dir) error = %v, want ErrExpectedFile", err)
	}
	if _, err := FileSize(filepath.Join(tmpDir, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("FileSize(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.txt")

	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "first")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "first" {
		t.Errorf("content = %q, want first", data)
	}

	os.Chmod(path, 0600)
	err = WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "second")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFileAtomic overwrite failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("permissions = %v, want 0600", info.Mode().Perm())
	}
	if data, _ := os.ReadFile(path); string(data) != "second" {
		t.Errorf("content = %q, want second", data)
	}
}

func TestWriteFileAtomic_FailureKeepsOriginal(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "keep.txt")
	os.WriteFile(path, []byte("original"), 0644)

	boom := errors.New("boom")
	err := WriteFileAtomic(path, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteFileAtomic error = %v, want boom", err)
	}

	if data, _ := os.ReadFile(path); string(data) != "original" {
		t.Errorf("content = %q, want original", data)
	}
	entries, _ := os.ReadDir(tmpDir)
	if len(entries) != 1 {
		t.Errorf("expected only the original file, found %d entries", len(entries))
	}
}

func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.json")
	if err := WriteJSONFile(path, map[string]int{"files": 3}); err != nil {
		t.Fatalf("WriteJSONFile failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "{\n  \"files\": 3\n}\n" {
		t.Errorf("unexpected JSON: %q", data)
	}
}
