package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fabiofdsantos/palz/palz"
	"github.com/spf13/cobra"
)

// NewCompressCmd creates and returns the compress subcommand for the palz CLI.
func NewCompressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compress FILE",
		Short: "Compress a single file into FILE.palz",
		Long: `Compress a single text file.

The output is written next to the source as FILE.palz, replacing any
previous output. The source file is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer printElapsed(cmd.ErrOrStderr(), time.Now())
			a.log.Debug().Str("path", args[0]).Msg("compressing file")

			res, err := palz.CompressFile(args[0])
			if err != nil {
				return errors.New(palz.Describe(err, args[0]))
			}
			printRatio(cmd.OutOrStdout(), res.Source, res.Ratio)
			return nil
		},
	}
}

// NewDecompressCmd creates and returns the decompress subcommand for the palz CLI.
func NewDecompressCmd(a *app) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "decompress FILE",
		Short: "Decompress a single .palz file",
		Long: `Decompress a single .palz file.

Without --output the result is written to FILE minus its .palz extension
(matched case-insensitively). A file without the extension is decoded in
place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer printElapsed(cmd.ErrOrStderr(), time.Now())
			a.log.Debug().Str("path", args[0]).Str("target", target).Msg("decompressing file")

			dict := palz.NewDictionary()
			defer dict.Free()
			res, err := palz.DecompressFile(args[0], target, dict)
			if err != nil {
				return errors.New(palz.Describe(err, args[0]))
			}
			printRatio(cmd.OutOrStdout(), res.Target, res.Ratio)
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "output", "o", "", "Path of the decompressed file")

	return cmd
}

// printRatio reports the file a command read (compress) or wrote
// (decompress).
func printRatio(w io.Writer, path string, ratio float64) {
	fmt.Fprintf(w, "%s: %.2f %%\n", path, ratio)
}

func printElapsed(w io.Writer, start time.Time) {
	fmt.Fprintf(w, "Execution time: %.3f s\n", time.Since(start).Seconds())
}
