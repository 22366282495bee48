package util

import (
	"time"

	"github.com/fabiofdsantos/palz/version"
)

// Metadata summarizes a batch run. It is written as JSON when a report path
// is configured.
type Metadata struct {
	PalzVersion string        `json:"palz_version"`
	Mode        string        `json:"mode"`
	Root        string        `json:"root"`
	Workers     int           `json:"workers"`
	Started     time.Time     `json:"started"`
	Duration    time.Duration `json:"duration_ns"`
	FileCount   int           `json:"file_count"`
	FailedCount int           `json:"failed_count"`
	Interrupted bool          `json:"interrupted"`
	SourceBytes int64         `json:"source_bytes"`
	TargetBytes int64         `json:"target_bytes"`
	Failures    []Failure     `json:"failures,omitempty"`
}

// Failure records one file that could not be processed.
type Failure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// GetVersion returns the current palz version string.
// It delegates to the version package to get the version information.
func GetVersion() string {
	return version.GetVersion()
}

// Save writes the metadata as JSON to path.
func (m Metadata) Save(path string) error {
	if m.PalzVersion == "" {
		m.PalzVersion = GetVersion()
	}
	return WriteJSONFile(path, m)
}
