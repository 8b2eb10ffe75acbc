package wordsearch

import "github.com/LucaBon/word-puzzle-generator/pkg/primitives"

// balancer tracks how many words of the current attempt landed in each
// direction category, steers the next word toward underfed categories and
// gates finished attempts on a minimum diagonal share.
type balancer struct {
	total  int
	counts [3]int
}

func newBalancer(total int) *balancer {
	return &balancer{total: total}
}

func (b *balancer) increment(c primitives.Category) {
	b.counts[c]++
}

func (b *balancer) reset() {
	b.counts = [3]int{}
}

// priority returns the categories to try for the next word, most wanted
// first. placed is the number of words already committed this attempt.
func (b *balancer) priority(placed int) [3]primitives.Category {
	target := b.total / 3

	switch {
	case b.counts[primitives.Diagonal] < target:
		return [3]primitives.Category{primitives.Diagonal, primitives.Horizontal, primitives.Vertical}
	case b.counts[primitives.Horizontal] < target:
		return [3]primitives.Category{primitives.Horizontal, primitives.Diagonal, primitives.Vertical}
	case b.counts[primitives.Vertical] < target:
		return [3]primitives.Category{primitives.Vertical, primitives.Diagonal, primitives.Horizontal}
	}

	// All categories met the target, rotate the lead by word count.
	cats := primitives.Categories()
	lead := cats[placed%len(cats)]
	out := [3]primitives.Category{lead}
	i := 1
	for _, c := range cats {
		if c != lead {
			out[i] = c
			i++
		}
	}
	return out
}

// sufficientDiagonal reports whether at least 20% of the attempt's words
// sit on a diagonal.
func (b *balancer) sufficientDiagonal() bool {
	return float64(b.counts[primitives.Diagonal]) >= float64(b.total)*0.2
}

// candidateDirections expands a category priority into the flat direction
// list handed to the prober.
func candidateDirections(priority [3]primitives.Category) []primitives.Direction {
	out := make([]primitives.Direction, 0, 8)
	for _, c := range priority {
		out = append(out, primitives.DirectionsIn(c)...)
	}
	return out
}
