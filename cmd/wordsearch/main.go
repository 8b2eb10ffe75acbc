package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	wordsearch "github.com/LucaBon/word-puzzle-generator"
	"github.com/LucaBon/word-puzzle-generator/internal/wordlist"
)

var rootCmd = &cobra.Command{
	Use:          "wordsearch",
	Short:        "Generate interactive word-search puzzles",
	SilenceUsage: true,
}

// Word-source flags, shared by every subcommand that needs a word list.
var (
	wordsFlag     []string
	wordFile      string
	bqProject     string
	bqTable       string
	bqScope       string
	bqLocation    string
	geminiProject string
	geminiRegion  string
	geminiTheme   string
	geminiCount   int
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringSliceVar(&wordsFlag, "words", nil, "Words to hide, comma separated")
	pf.StringVar(&wordFile, "wordfile", "", "File with one word per line")
	pf.StringVar(&bqProject, "bq-project", "", "GCP project for loading words from BigQuery")
	pf.StringVar(&bqTable, "bq-table", "", "BigQuery table with word_key and scope columns")
	pf.StringVar(&bqScope, "bq-scope", "", "Scope of words to load from BigQuery")
	pf.StringVar(&bqLocation, "bq-location", "", "BigQuery job location")
	pf.StringVar(&geminiProject, "gemini-project", "", "GCP project for generating words with Gemini")
	pf.StringVar(&geminiRegion, "gemini-region", "", "VertexAI region for Gemini")
	pf.StringVar(&geminiTheme, "gemini-theme", "christmas", "Theme for Gemini word generation")
	pf.IntVar(&geminiCount, "gemini-count", 12, "How many words to ask Gemini for")
}

// resolveWords picks the word source. A word file wins over explicit words,
// which win over BigQuery, then Gemini, then the built-in list. maxLen caps
// the words requested from Gemini so they fit the grid.
func resolveWords(ctx context.Context, maxLen int) ([]string, error) {
	switch {
	case wordFile != "":
		return wordlist.FromFile(wordFile)
	case len(wordsFlag) > 0:
		return wordlist.Normalize(wordsFlag), nil
	case bqProject != "":
		if bqTable == "" {
			return nil, fmt.Errorf("--bq-table is required with --bq-project")
		}
		src := &wordlist.BigQuerySource{
			ProjectID: bqProject,
			Table:     bqTable,
			Scope:     bqScope,
			Location:  bqLocation,
		}
		return src.Words(ctx)
	case geminiProject != "":
		src, err := wordlist.NewGeminiSource(ctx, geminiProject, geminiRegion)
		if err != nil {
			return nil, err
		}
		return src.Words(ctx, geminiTheme, geminiCount, maxLen)
	default:
		log.Info("using default Christmas-themed words")
		return wordlist.Default(), nil
	}
}

// checkedWords resolves the word list and validates it against the grid.
func checkedWords(ctx context.Context, gridSize int) ([]string, error) {
	if err := wordsearch.ValidateGridSize(gridSize); err != nil {
		return nil, err
	}
	words, err := resolveWords(ctx, gridSize)
	if err != nil {
		return nil, err
	}
	if err := wordsearch.ValidateWords(words, gridSize); err != nil {
		return nil, err
	}
	return words, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
