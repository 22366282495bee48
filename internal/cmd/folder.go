package cmd

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fabiofdsantos/palz/batch"
	"github.com/fabiofdsantos/palz/palz"
	"github.com/fabiofdsantos/palz/util"
	"github.com/spf13/cobra"
)

// ErrBatchFailures is returned when at least one file of a batch failed.
var ErrBatchFailures = errors.New("some files could not be processed")

// NewCompressFolderCmd creates and returns the compress-folder subcommand for the palz CLI.
func NewCompressFolderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress-folder DIR",
		Short: "Compress every file in a directory tree",
		Long: `Compress every regular file below DIR that does not already carry the
.palz extension.

Files are handed to a fixed pool of worker goroutines through a bounded
queue. Paths matched by the ignore file at the root of DIR are skipped.
A failure on one file does not stop the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFolder(cmd, args[0], batch.Compress)
		},
	}
	addFolderFlags(cmd)
	return cmd
}

// NewDecompressFolderCmd creates and returns the decompress-folder subcommand for the palz CLI.
func NewDecompressFolderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompress-folder DIR",
		Short: "Decompress every .palz file in a directory tree",
		Long: `Decompress every .palz file below DIR next to its source.

With one thread the files are decoded one after another reusing a single
dictionary; with more threads they are spread over a worker pool.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFolder(cmd, args[0], batch.Decompress)
		},
	}
	addFolderFlags(cmd)
	return cmd
}

func addFolderFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("threads", "t", 0, "Number of worker threads (default: number of CPUs)")
	cmd.Flags().String("report", "", "Write a JSON summary of the batch to this file")
	cmd.Flags().String("ignore-file", util.DefaultIgnoreFile, "Name of the ignore file looked up in DIR")
}

func (a *app) runFolder(cmd *cobra.Command, root string, mode batch.Mode) error {
	started := time.Now()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	defer printElapsed(errOut, started)

	paths, err := a.walker().Collect(root, mode.WantsPalz())
	if err != nil {
		return fmt.Errorf("listing %s: %w", root, err)
	}
	a.log.Debug().Str("root", root).Int("files", len(paths)).Msg("collected files")

	pool, err := batch.NewPool(a.cfg.Threads, mode, a.log)
	if err != nil {
		return err
	}
	var mu sync.Mutex
	pool.OnResult = func(o batch.Outcome) {
		mu.Lock()
		defer mu.Unlock()
		printOutcome(out, errOut, mode, o)
	}

	ctx := cmd.Context()
	var summary batch.Summary
	if mode == batch.Decompress && a.cfg.Threads <= 1 {
		summary = pool.RunSerial(ctx, paths)
	} else {
		summary = pool.Run(ctx, paths)
	}

	if summary.Interrupted {
		fmt.Fprintf(errOut, "Operation interrupted by user @%s\n", time.Now().Format(time.DateTime))
	}
	fmt.Fprintf(out, "%d files, %d failed, %d -> %d bytes\n",
		summary.Files, summary.Failed, summary.SourceBytes, summary.TargetBytes)

	if a.cfg.Report != "" {
		if err := reportFor(root, mode, pool.Workers(), started, summary).Save(a.cfg.Report); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailures, summary.Failed, summary.Files)
	}
	return nil
}

func (a *app) walker() util.Walker {
	return util.Walker{
		IgnoreFile: a.cfg.IgnoreFile,
		OnError: func(path string, err error) {
			a.log.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
		},
	}
}

func printOutcome(out, errOut io.Writer, mode batch.Mode, o batch.Outcome) {
	if o.Err != nil {
		fmt.Fprintln(errOut, palz.Describe(o.Err, o.Path))
		return
	}
	path := o.Result.Source
	if mode == batch.Decompress {
		path = o.Result.Target
	}
	printRatio(out, path, o.Result.Ratio)
}

func reportFor(root string, mode batch.Mode, workers int, started time.Time, s batch.Summary) util.Metadata {
	m := util.Metadata{
		Mode:        mode.String(),
		Root:        root,
		Workers:     workers,
		Started:     started,
		Duration:    s.Duration,
		FileCount:   s.Files,
		FailedCount: s.Failed,
		Interrupted: s.Interrupted,
		SourceBytes: s.SourceBytes,
		TargetBytes: s.TargetBytes,
	}
	for _, f := range s.Failures {
		m.Failures = append(m.Failures, util.Failure{Path: f.Path, Error: f.Err.Error()})
	}
	return m
}
