package cmd

import (
	"github.com/fabiofdsantos/palz/config"
	"github.com/fabiofdsantos/palz/util"
	"github.com/fabiofdsantos/palz/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand once the root command has
// loaded the configuration.
type app struct {
	configPath string
	loader     *config.Loader
	cfg        *config.Config
	log        zerolog.Logger
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"threads":     "threads",
	"report":      "report",
	"ignore_file": "ignore-file",
	"log.level":   "log-level",
	"log.format":  "log-format",
}

func (a *app) load(cmd *cobra.Command) error {
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.loader.BindFlag(key, f); err != nil {
				return err
			}
		}
	}
	cfg, err := a.loader.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = util.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	return nil
}

// NewRootCmd creates and returns the root cobra command for the palz CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	a := &app{loader: config.NewLoader(), log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "palz",
		Short: "palz - A word dictionary compressor for text files",
		Long: `palz compresses text files by replacing every word with a numeric code
from a per-file dictionary and collapsing runs of repeated punctuation and
whitespace. Compressed files carry the .palz extension.

Use subcommands to perform different operations:
  - compress / decompress: process a single file
  - compress-folder / decompress-folder: process a directory tree in parallel
  - verify: check .palz files or round-trip plain files in memory`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a palz.yaml config file")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")

	groupFiles := "files"
	groupFolders := "folders"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFiles,
		Title: "File Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupFolders,
		Title: "Folder Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	compressCmd := NewCompressCmd(a)
	decompressCmd := NewDecompressCmd(a)
	compressFolderCmd := NewCompressFolderCmd(a)
	decompressFolderCmd := NewDecompressFolderCmd(a)
	verifyCmd := NewVerifyCmd(a)
	countCmd := NewCountCmd(a)
	seedCmd := NewSeedCmd()
	versionCmd := NewVersionCmd()

	compressCmd.GroupID = groupFiles
	decompressCmd.GroupID = groupFiles
	compressFolderCmd.GroupID = groupFolders
	decompressFolderCmd.GroupID = groupFolders
	verifyCmd.GroupID = groupUtilities
	countCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(decompressCmd)
	rootCmd.AddCommand(compressFolderCmd)
	rootCmd.AddCommand(decompressFolderCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// NewVersionCmd prints build and author information.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and author information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion(cmd.OutOrStdout(), "palz")
		},
	}
}
