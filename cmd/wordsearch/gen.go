package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	wordsearch "github.com/LucaBon/word-puzzle-generator"
	"github.com/LucaBon/word-puzzle-generator/internal/render"
)

var (
	gridSize    int
	puzzleCount int
	outputFile  string
	pageTitle   string
	seed        uint64
	maxAttempts int
	timeout     time.Duration
	cpuProfile  string
	memProfile  string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate puzzles and export them as an interactive HTML page",
		Long: `Generate word-search puzzles and export them as a single interactive
HTML page. Words run in all eight directions and at least a fifth of
them land on diagonals.

Examples:
  wordsearch gen --size 12 -n 5 -o winter.html
  wordsearch gen --words stella,natale,cometa --seed 7
  wordsearch gen --wordfile words.txt --timeout 30s`,
		RunE: runGen,
	}

	genCmd.Flags().IntVar(&gridSize, "size", 9, "Grid side length")
	genCmd.Flags().IntVarP(&puzzleCount, "count", "n", 10, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "interactive_word_search.html", "Output HTML file")
	genCmd.Flags().StringVar(&pageTitle, "title", "Word Search Puzzle", "Page title")
	genCmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 seeds from the clock)")
	genCmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "Grid attempts per puzzle (0 uses the default)")
	genCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "Generation timeout")
	genCmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	genCmd.Flags().StringVar(&memProfile, "memprofile", "", "Write a heap profile to this file")

	rootCmd.AddCommand(genCmd)
}

func newSource(seed uint64) *rand.PCG {
	if seed == 0 {
		return rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Nanosecond()))
	}
	return rand.NewPCG(seed, seed)
}

func runGen(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	words, err := checkedWords(ctx, gridSize)
	if err != nil {
		return err
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("create CPU profile file: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	gen := wordsearch.CreateGenerator(gridSize, words, rand.New(newSource(seed)), wordsearch.GeneratorParams{
		MaxAttempts: maxAttempts,
	})

	var puzzles []*wordsearch.Puzzle
	for puzzle := range gen.Puzzles(ctx, puzzleCount) {
		puzzles = append(puzzles, puzzle)
		log.WithFields(log.Fields{"puzzle": len(puzzles), "of": puzzleCount}).Info("generated puzzle")
	}

	if len(puzzles) == 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("generation stopped early: %w", err)
		}
		return fmt.Errorf("no puzzle satisfied the layout rules for %d words on a %dx%d grid", len(words), gridSize, gridSize)
	}
	if len(puzzles) < puzzleCount {
		log.Warnf("generated %d of %d puzzles", len(puzzles), puzzleCount)
		if err := ctx.Err(); err != nil {
			log.WithError(err).Warn("generation stopped early")
		}
	}

	if err := render.WriteFile(outputFile, pageTitle, puzzles); err != nil {
		return err
	}
	fmt.Printf("Generated %d puzzle(s) in %s\n", len(puzzles), outputFile)

	if memProfile != "" {
		mf, err := os.Create(memProfile)
		if err != nil {
			return fmt.Errorf("create memory profile file: %w", err)
		}
		defer mf.Close()
		if err := pprof.WriteHeapProfile(mf); err != nil {
			return fmt.Errorf("write heap profile: %w", err)
		}
	}

	return nil
}
