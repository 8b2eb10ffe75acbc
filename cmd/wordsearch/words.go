package main

import (
	"fmt"

	"github.com/spf13/cobra"

	wordsearch "github.com/LucaBon/word-puzzle-generator"
)

func init() {
	wordsCmd := &cobra.Command{
		Use:   "words",
		Short: "Print the resolved word list without generating anything",
		Long: `Print the word list the gen command would hide, one word per line.
Useful for checking what a word file, BigQuery scope, or Gemini theme
actually yields.`,
		RunE: runWords,
	}

	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	words, err := resolveWords(cmd.Context(), wordsearch.MaxGridSize)
	if err != nil {
		return err
	}
	for _, word := range words {
		fmt.Println(word)
	}
	return nil
}
