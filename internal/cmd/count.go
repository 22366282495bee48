package cmd

import (
	"fmt"

	"github.com/fabiofdsantos/palz/batch"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand for the palz CLI.
// It reports how many files a folder batch would process.
func NewCountCmd(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count the files a folder batch would process",
		Long: `Count the regular files below PATH that a compress-folder or
decompress-folder run would pick up, honouring the ignore file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "./"
			if len(args) > 0 {
				path = args[0]
			}
			m, err := parseMode(mode)
			if err != nil {
				return err
			}

			walker := a.walker()
			count, err := walker.Count(path, m.WantsPalz())
			if err != nil {
				return fmt.Errorf("counting files: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total files to %s: %d\n", m, count)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "compress", "Batch mode to count for (compress, decompress)")

	return cmd
}

func parseMode(s string) (batch.Mode, error) {
	switch s {
	case "compress":
		return batch.Compress, nil
	case "decompress":
		return batch.Decompress, nil
	}
	return 0, fmt.Errorf("%w: %q", batch.ErrUnknownMode, s)
}
