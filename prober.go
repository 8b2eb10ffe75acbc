package wordsearch

import (
	"math/rand/v2"

	"github.com/LucaBon/word-puzzle-generator/pkg/primitives"
)

// tryPlace probes shuffled (direction, position) pairs and commits word to
// the puzzle on the first pair CanPlace accepts. The candidate directions
// are shuffled once up front; every grid position is tried in a fresh
// random order per direction. Returns false, with the puzzle untouched,
// when no pair fits.
func tryPlace(p *Puzzle, word string, candidates []primitives.Direction, rng *rand.Rand) bool {
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	size := p.Size()
	for _, dir := range candidates {
		for _, k := range rng.Perm(size * size) {
			start := primitives.Position{Row: k / size, Col: k % size}
			if p.CanPlace(word, start, dir) {
				p.Place(word, start, dir)
				return true
			}
		}
	}
	return false
}
