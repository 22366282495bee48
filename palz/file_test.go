package palz

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "It was the best of times, it was the worst of times,\n" +
	"it was the age of wisdom, it was the age of foolishness...\n\n\n"

func writeSample(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCompressFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	content := strings.Repeat(sampleText, 50)
	src := writeSample(t, dir, "book.txt", content)

	res, err := CompressFile(src)
	require.NoError(t, err)
	assert.Equal(t, src+".palz", res.Target)
	assert.Equal(t, int64(len(content)), res.SourceSize)
	assert.FileExists(t, res.Target)
	assert.Greater(t, res.Ratio, 40.0)
	assert.Equal(t, Ratio(res.SourceSize, res.TargetSize), res.Ratio)

	// the source is left alone
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	require.NoError(t, os.Remove(src))
	dres, err := DecompressFile(res.Target, "", NewDictionary())
	require.NoError(t, err)
	assert.Equal(t, src, dres.Target)
	assert.Equal(t, res.TargetSize, dres.SourceSize)
	assert.Equal(t, res.SourceSize, dres.TargetSize)
	assert.Equal(t, res.Ratio, dres.Ratio)

	data, err = os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestCompressFile_Missing(t *testing.T) {
	_, err := CompressFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, ErrOpen), "got %v", err)
}

func TestCompressFile_ReplacesPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	src := writeSample(t, dir, "a.txt", "fresh words")
	writeSample(t, dir, "a.txt.palz", "stale")

	_, err := CompressFile(src)
	require.NoError(t, err)

	data, err := os.ReadFile(src + ".palz")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Magic))
}

func TestDecompressFile_ExplicitTarget(t *testing.T) {
	dir := t.TempDir()
	src := writeSample(t, dir, "notes.txt", sampleText)
	res, err := CompressFile(src)
	require.NoError(t, err)

	target := filepath.Join(dir, "restored.txt")
	_, err = DecompressFile(res.Target, target, NewDictionary())
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(data))
	assert.FileExists(t, res.Target)
}

func TestDecompressFile_UppercaseExtension(t *testing.T) {
	dir := t.TempDir()
	src := writeSample(t, dir, "shout.txt", "A A A")
	res, err := CompressFile(src)
	require.NoError(t, err)

	upper := filepath.Join(dir, "SHOUT.TXT.PALZ")
	require.NoError(t, os.Rename(res.Target, upper))

	dres, err := DecompressFile(upper, "", NewDictionary())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "SHOUT.TXT"), dres.Target)
}

func TestDecompressFile_InPlace(t *testing.T) {
	dir := t.TempDir()
	src := writeSample(t, dir, "bare", sampleText)
	res, err := CompressFile(src)
	require.NoError(t, err)

	bare := filepath.Join(dir, "container")
	require.NoError(t, os.Rename(res.Target, bare))

	dres, err := DecompressFile(bare, "", NewDictionary())
	require.NoError(t, err)
	assert.Equal(t, bare, dres.Target)
	assert.Equal(t, res.TargetSize, dres.SourceSize)

	data, err := os.ReadFile(bare)
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(data))
}

func TestDecompressFile_FailureKeepsTarget(t *testing.T) {
	dir := t.TempDir()
	bad := writeSample(t, dir, "bad.txt.palz", "NOPE\n")
	existing := writeSample(t, dir, "bad.txt", "keep me")

	_, err := DecompressFile(bad, "", NewDictionary())
	assert.True(t, errors.Is(err, ErrExtension), "got %v", err)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary file left behind")
}

func TestDecompressFile_Missing(t *testing.T) {
	_, err := DecompressFile(filepath.Join(t.TempDir(), "gone.palz"), "", NewDictionary())
	assert.True(t, errors.Is(err, ErrOpen), "got %v", err)
}

func TestDecompressedName(t *testing.T) {
	tests := map[string]string{
		"a.txt.palz":      "a.txt",
		"dir/b.PALZ":      "dir/b",
		"c.PaLz":          "c",
		"plain.txt":       "plain.txt",
		"archive.palz.gz": "archive.palz.gz",
	}
	for in, want := range tests {
		assert.Equal(t, want, DecompressedName(in), "DecompressedName(%q)", in)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrExtension, "Failed: f is not a valid .palz file"},
		{ErrCorrupted, "Failed: f is corrupted"},
		{ErrBigDictionary, "Failed: f dictionary is too big"},
		{ErrOpen, "Failed: f could not be opened"},
		{ErrStatus, "Failed: stat() on f failed"},
		{errors.New("boom"), "Failed: f: boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(tt.err, "f"))
	}
}
