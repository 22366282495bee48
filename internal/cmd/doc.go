// Package cmd provides the command-line interface implementation for palz.
//
// This package contains all the subcommand implementations for the palz CLI tool.
// It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - compress, decompress: single file operations
//   - compress-folder, decompress-folder: directory tree batches
//   - verify: integrity and round-trip checks
//   - count: candidate file counting
//   - seed: synthetic corpus generation
//   - version: build information
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command. Settings flow from palz.yaml, PALZ_* environment
// variables and flags through the config package.
package cmd
