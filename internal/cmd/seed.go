package cmd

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/fabiofdsantos/palz/palz"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var seedVocabulary = []string{
	"the", "of", "and", "to", "in", "is", "was", "that", "for", "it",
	"with", "as", "his", "on", "be", "at", "by", "had", "not", "are",
	"compress", "dictionary", "queue", "worker", "separator", "token",
}

// NewSeedCmd creates and returns the seed subcommand for the palz CLI.
// It generates a synthetic text corpus for exercising folder batches.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		wordCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a synthetic text corpus",
		Long: `Generate text files for benchmarking compress-folder and decompress-folder.

Files are spread over a few nested directories. Their content mixes a small
common vocabulary with a pool of UUID words, joined by random separators
including runs of repeated whitespace and punctuation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.OutOrStdout(), outputPath, fileCount, wordCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 100, "Number of files to generate")
	cmd.Flags().IntVarP(&wordCount, "words", "w", 2000, "Number of words per file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(out io.Writer, outputPath string, fileCount, wordCount int, verbose bool) error {
	if verbose {
		fmt.Fprintf(out, "Generating %d text files in %s\n", fileCount, outputPath)
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Pool of rare words shared by all files
	uuidPool := make([]string, 50)
	for i := range uuidPool {
		uuidPool[i] = uuid.New().String()
	}

	var written int64
	for i := range fileCount {
		dirPath := outputPath
		switch depth := randInt(10); {
		case depth < 3:
		case depth < 7:
			dirPath = filepath.Join(outputPath, fmt.Sprintf("%02d", randInt(8)))
		default:
			dirPath = filepath.Join(outputPath, fmt.Sprintf("%02d", randInt(8)), fmt.Sprintf("%02d", randInt(8)))
		}
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
		}

		content := seedText(wordCount, uuidPool)
		filePath := filepath.Join(dirPath, fmt.Sprintf("%06d.txt", i))
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", filePath, err)
		}
		written += int64(len(content))

		if verbose && (i+1)%100 == 0 {
			fmt.Fprintf(out, "Created %d/%d files...\n", i+1, fileCount)
		}
	}

	if verbose {
		fmt.Fprintf(out, "Successfully created %d files (%d bytes)\n", fileCount, written)
	}
	return nil
}

// seedText returns words joined by separators. Roughly one separator in
// eight is repeated to produce runs.
func seedText(words int, rare []string) string {
	var sb strings.Builder
	for i := range words {
		if i > 0 {
			sep := palz.Separators[randInt(palz.SeparatorCount)]
			n := 1
			if randInt(8) == 0 {
				n += randInt(6)
			}
			sb.WriteString(strings.Repeat(string(sep), n))
		}
		if randInt(10) == 0 {
			sb.WriteString(rare[randInt(len(rare))])
		} else {
			sb.WriteString(seedVocabulary[randInt(len(seedVocabulary))])
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

func randInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}
