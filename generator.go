// Package wordsearch generates word-search puzzles: square letter grids
// hiding a set of words along straight lines in eight directions, with the
// direction mix balanced so puzzles do not collapse into rows of words.
package wordsearch

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
)

// DefaultMaxAttempts bounds the placement attempts of a single Generate
// call when GeneratorParams does not say otherwise.
const DefaultMaxAttempts = 1000

// Generator produces puzzles that hide a fixed word list in grids of a
// fixed size. It is not safe for concurrent use; every random draw comes
// from the single injected source.
type Generator struct {
	GridSize    int
	Words       []string
	MaxAttempts int

	rand *rand.Rand
}

type GeneratorParams struct {
	MaxAttempts int
}

// CreateGenerator builds a Generator. Words are uppercased here; anything
// beyond casing is trusted, so run ValidateWords at the boundary first. A
// zero MaxAttempts in params selects DefaultMaxAttempts.
func CreateGenerator(gridSize int, words []string, rand *rand.Rand, params GeneratorParams) *Generator {
	maxAttempts := params.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	normalized := make([]string, len(words))
	for i, w := range words {
		normalized[i] = strings.ToUpper(w)
	}
	return &Generator{
		GridSize:    gridSize,
		Words:       normalized,
		MaxAttempts: maxAttempts,
		rand:        rand,
	}
}

// Generate runs placement attempts until one commits every word and keeps
// enough of them on diagonals, then fills the leftover cells with random
// letters. It reports false once MaxAttempts is spent or ctx is done;
// impossible inputs end up there, never in a panic.
func (g *Generator) Generate(ctx context.Context) (*Puzzle, bool) {
	sorted := slices.Clone(g.Words)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return len(b) - len(a)
	})

	puzzle := NewPuzzle(g.GridSize)
	bal := newBalancer(len(sorted))
	words := make([]string, len(sorted))

	for range g.MaxAttempts {
		if ctx.Err() != nil {
			return nil, false
		}

		puzzle.Reset()
		bal.reset()

		// Longest first, then shuffled: the attempt order is a fresh
		// permutation each time, seeded from the sorted list.
		copy(words, sorted)
		g.rand.Shuffle(len(words), func(i, j int) {
			words[i], words[j] = words[j], words[i]
		})

		if g.attempt(puzzle, bal, words) {
			puzzle.Fill(g.rand)
			return puzzle, true
		}
	}

	return nil, false
}

// attempt tries to commit every word, feeding the balancer after each
// commit, and fails fast on the first word the prober cannot fit. A full
// board still fails when the diagonal share is too low.
func (g *Generator) attempt(puzzle *Puzzle, bal *balancer, words []string) bool {
	for i, word := range words {
		if !tryPlace(puzzle, word, candidateDirections(bal.priority(i)), g.rand) {
			return false
		}
		last := puzzle.placements[len(puzzle.placements)-1]
		bal.increment(last.Direction.Category())
	}
	return bal.sufficientDiagonal()
}
