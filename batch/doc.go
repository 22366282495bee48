// Package batch runs the palz codec over many files.
//
// A single feeder enumerates paths and pushes them into a bounded Queue whose
// capacity equals the number of workers. Each worker goroutine repeatedly
// pops a path and compresses or decompresses it; per-file failures are
// reported and never stop the batch. Cancelling the context stops the feeder
// from issuing more work and makes idle workers exit.
package batch
