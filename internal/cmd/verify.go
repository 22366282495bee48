package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fabiofdsantos/palz/palz"
	"github.com/spf13/cobra"
)

// NewVerifyCmd creates and returns the verify subcommand for the palz CLI.
// It checks .palz containers and round-trips plain files without writing.
func NewVerifyCmd(a *app) *cobra.Command {
	var palzOnly bool

	cmd := &cobra.Command{
		Use:   "verify PATH...",
		Short: "Check .palz files and round-trip plain files in memory",
		Long: `Verify files without writing anything to disk.

A .palz file is fully decoded and its content digest reported. Any other
file is compressed in memory, decoded again, and the digests of the two
plain texts are compared. Directories are walked recursively.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer printElapsed(cmd.ErrOrStderr(), time.Now())
			out := cmd.OutOrStdout()

			paths, err := a.expandPaths(args, palzOnly)
			if err != nil {
				return err
			}

			dict := palz.NewDictionary()
			defer dict.Free()

			failed := 0
			for _, path := range paths {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				v, err := palz.VerifyFile(path, dict)
				if err != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), palz.Describe(err, path))
					continue
				}
				kind := "ok"
				if v.RoundTrip {
					kind = "round-trip ok"
				}
				fmt.Fprintf(out, "%s: %s (%016x, %d words, width %d)\n", path, kind, v.Digest, v.Stats.Words, v.Stats.Width)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrBatchFailures, failed, len(paths))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&palzOnly, "palz-only", false, "When walking directories only check .palz files")

	return cmd
}

// expandPaths replaces directory arguments by the files below them.
func (a *app) expandPaths(args []string, palzOnly bool) ([]string, error) {
	walker := a.walker()
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := walker.Collect(arg, true)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
		if palzOnly {
			continue
		}
		plain, err := walker.Collect(arg, false)
		if err != nil {
			return nil, err
		}
		paths = append(paths, plain...)
	}
	return paths, nil
}
