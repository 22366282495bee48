// Package main provides the palz command-line interface.
//
// palz is a word-dictionary compressor for text files. Each file gets its own
// dictionary of distinct words, words and separators are replaced by
// fixed-width numeric codes, and runs of a repeated separator are collapsed
// into a single escape with a count.
//
// The main binary supports multiple subcommands:
//   - compress, decompress: Process a single file
//   - compress-folder, decompress-folder: Process a directory tree with a worker pool
//   - verify: Check .palz files or round-trip plain files in memory
//   - count: Count the files a folder batch would pick up
//   - seed: Generate a synthetic text corpus
package main
