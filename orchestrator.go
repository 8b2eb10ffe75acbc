package wordsearch

import (
	"context"
	"iter"
)

// Puzzles returns a stream of independent puzzles hiding the same word
// list. The stream ends after count puzzles or once the budget of count*10
// Generate calls is spent, whichever comes first; a short stream is the
// normal outcome for hard inputs, not an error.
func (g *Generator) Puzzles(ctx context.Context, count int) iter.Seq[*Puzzle] {
	return func(yield func(*Puzzle) bool) {
		budget := count * 10
		produced := 0

		for range budget {
			if produced >= count {
				return
			}
			if ctx.Err() != nil {
				return
			}

			puzzle, ok := g.Generate(ctx)
			if !ok {
				continue
			}

			produced++
			if !yield(puzzle) {
				return
			}
		}
	}
}

// GenerateAll collects Puzzles into a slice.
func (g *Generator) GenerateAll(ctx context.Context, count int) []*Puzzle {
	var puzzles []*Puzzle
	for puzzle := range g.Puzzles(ctx, count) {
		puzzles = append(puzzles, puzzle)
	}
	return puzzles
}
