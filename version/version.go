package version

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"sync"
)

var (
	// Set with -ldflags; empty or placeholder values fall back to build info
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Authors of the palz file format and tool.
var Authors = []string{
	"Fabio Santos <ffsantos92@gmail.com>",
	"Eurico Sousa <2110133@my.ipleiria.pt>",
}

// Info contains version information
type Info struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Modified bool   `json:"modified,omitempty"`
}

// buildSettings reads the module version and VCS stamps embedded by the Go
// toolchain.
var buildSettings = sync.OnceValue(func() Info {
	var bi Info
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		bi.Version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			bi.Commit = s.Value
		case "vcs.time":
			bi.Date = s.Value
		case "vcs.modified":
			bi.Modified = s.Value == "true"
		}
	}
	return bi
})

func pick(linked, placeholder, built, fallback string) string {
	switch {
	case linked != "" && linked != placeholder:
		return linked
	case built != "":
		return built
	}
	return fallback
}

// GetInfo returns version information, preferring values set at link time.
func GetInfo() Info {
	bi := buildSettings()
	return Info{
		Version:  pick(Version, "dev", bi.Version, "development"),
		Commit:   pick(Commit, "unknown", bi.Commit, "unknown"),
		Date:     pick(Date, "unknown", bi.Date, "unknown"),
		Modified: bi.Modified,
	}
}

// GetVersion returns the release version, or "development".
func GetVersion() string {
	return GetInfo().Version
}

// GetFullVersion returns the version with a short commit and build date
// when they are known, e.g. "v1.2.0 (3f2a9c1, built 2024-05-01T10:00:00Z)".
func GetFullVersion() string {
	info := GetInfo()
	if info.Commit == "unknown" || len(info.Commit) <= 7 {
		return info.Version
	}
	commit := info.Commit[:7]
	if info.Modified {
		commit += "-dirty"
	}
	if info.Date == "unknown" {
		return fmt.Sprintf("%s (%s)", info.Version, commit)
	}
	return fmt.Sprintf("%s (%s, built %s)", info.Version, commit, info.Date)
}

// PrintVersion writes the about text shown by the version command.
func PrintVersion(w io.Writer, appName string) {
	info := GetInfo()
	fmt.Fprintf(w, "%s version %s\n", appName, GetFullVersion())
	fmt.Fprintf(w, "Commit: %s\n", info.Commit)
	fmt.Fprintf(w, "Build Date: %s\n", info.Date)
	fmt.Fprintf(w, "Authors: %s\n", strings.Join(Authors, ", "))
}
