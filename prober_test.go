package wordsearch

import (
	"math/rand/v2"
	"testing"

	"github.com/LucaBon/word-puzzle-generator/pkg/primitives"
)

func TestTryPlace_CommitsFirstFit(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))
	p := NewPuzzle(5)

	if !tryPlace(p, "CAT", primitives.Directions(), rng) {
		t.Fatal("tryPlace failed on an empty 5x5 grid")
	}

	placements := p.Placements()
	if len(placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(placements))
	}
	for i, cell := range placements[0].Cells {
		if got := p.Cell(cell); got != rune("CAT"[i]) {
			t.Errorf("cell %v = %q, want %q", cell, got, "CAT"[i])
		}
	}
}

func TestTryPlace_NoRoomLeavesPuzzleUntouched(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))
	p := NewPuzzle(5)

	if tryPlace(p, "PUZZLES", primitives.Directions(), rng) {
		t.Fatal("tryPlace fit a 7-letter word on a 5x5 grid")
	}
	if len(p.Placements()) != 0 {
		t.Errorf("got %d placements, want 0", len(p.Placements()))
	}
	for r := range 5 {
		for c := range 5 {
			if got := p.Cell(at(r, c)); got != 0 {
				t.Errorf("cell %v = %q, want empty", at(r, c), got)
			}
		}
	}
}

func TestTryPlace_RestrictedCandidates(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))
	p := NewPuzzle(5)

	candidates := []primitives.Direction{primitives.DiagonalDownRight}
	if !tryPlace(p, "DOG", candidates, rng) {
		t.Fatal("tryPlace failed with a viable candidate")
	}
	if got := p.Placements()[0].Direction; got != primitives.DiagonalDownRight {
		t.Errorf("placed along %v, want %v", got, primitives.DiagonalDownRight)
	}
}

func TestTryPlace_OnlyCrossingsFitOnFullGrid(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))

	p := NewPuzzle(5)
	for r := range 5 {
		p.Place("ZZZZZ", at(r, 0), primitives.HorizontalRight)
	}

	if tryPlace(p, "ZOO", primitives.Directions(), rng) {
		t.Error("tryPlace overwrote occupied cells")
	}
	if !tryPlace(p, "ZZZ", primitives.Directions(), rng) {
		t.Error("tryPlace refused a word matching the occupied cells")
	}
}
