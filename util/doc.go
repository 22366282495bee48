// Package util provides the filesystem plumbing shared by the palz commands.
//
// Key Components:
//
// Files:
//   - Case-insensitive .palz extension handling
//   - Atomic writes through a uniquely named sibling that is renamed into place
//   - JSON persistence for batch reports
//
// Directory Walking:
//   - Recursive enumeration of regular files for a batch mode
//   - Gitignore style exclusions read from .palzignore at the batch root
//
// Logging and Metadata:
//   - zerolog logger construction from configuration
//   - Batch metadata with file counts, byte totals and failures
package util
