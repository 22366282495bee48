package version

import (
	"bytes"
	"strings"
	"testing"
)

func withLinked(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	Version, Commit, Date = version, commit, date
	t.Cleanup(func() {
		Version, Commit, Date = oldVersion, oldCommit, oldDate
	})
}

func TestGetInfo_LinkedValuesWin(t *testing.T) {
	withLinked(t, "v1.4.0", "0123456789abcdef", "2024-05-01")

	info := GetInfo()
	if info.Version != "v1.4.0" {
		t.Errorf("Version = %q, want v1.4.0", info.Version)
	}
	if info.Commit != "0123456789abcdef" {
		t.Errorf("Commit = %q", info.Commit)
	}
	if got := GetVersion(); got != "v1.4.0" {
		t.Errorf("GetVersion() = %q", got)
	}
}

func TestGetFullVersion(t *testing.T) {
	withLinked(t, "v1.4.0", "0123456789abcdef", "2024-05-01")
	full := GetFullVersion()
	if !strings.HasPrefix(full, "v1.4.0 (0123456") || !strings.HasSuffix(full, ", built 2024-05-01)") {
		t.Errorf("GetFullVersion() = %q", full)
	}

	withLinked(t, "v1.4.0", "short", "2024-05-01")
	if got := GetFullVersion(); got != "v1.4.0" {
		t.Errorf("GetFullVersion() with short commit = %q, want v1.4.0", got)
	}
}

func TestPick(t *testing.T) {
	tests := []struct {
		linked, placeholder, built, fallback, want string
	}{
		{"v1", "dev", "v0", "development", "v1"},
		{"dev", "dev", "v0", "development", "v0"},
		{"", "dev", "", "development", "development"},
	}
	for _, tt := range tests {
		if got := pick(tt.linked, tt.placeholder, tt.built, tt.fallback); got != tt.want {
			t.Errorf("pick(%q, %q, %q, %q) = %q, want %q", tt.linked, tt.placeholder, tt.built, tt.fallback, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	withLinked(t, "v2.0.0", "unknown", "unknown")

	var buf bytes.Buffer
	PrintVersion(&buf, "palz")
	out := buf.String()
	if !strings.HasPrefix(out, "palz version v2.0.0") {
		t.Errorf("unexpected first line: %q", out)
	}
	if !strings.Contains(out, "Authors: "+Authors[0]) {
		t.Errorf("missing authors: %q", out)
	}
}
