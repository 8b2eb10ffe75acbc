package wordsearch

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/LucaBon/word-puzzle-generator/pkg/primitives"
)

// Placement records a word committed to the grid: its start cell, its
// direction and the exact cells it occupies, in word order.
type Placement struct {
	Word      string
	Start     primitives.Position
	Direction primitives.Direction
	Cells     []primitives.Position
}

// Puzzle is a square word-search grid plus the record of every word
// committed to it. The zero rune marks an empty cell.
type Puzzle struct {
	size       int
	grid       [][]rune
	placements []Placement
}

func NewPuzzle(size int) *Puzzle {
	grid := make([][]rune, size)
	for r := range grid {
		grid[r] = make([]rune, size)
	}
	return &Puzzle{
		size: size,
		grid: grid,
	}
}

func (p *Puzzle) Size() int {
	return p.size
}

func (p *Puzzle) InBounds(pos primitives.Position) bool {
	return pos.Row >= 0 && pos.Row < p.size && pos.Col >= 0 && pos.Col < p.size
}

// Cell returns the letter at pos, or 0 while the cell is still empty.
func (p *Puzzle) Cell(pos primitives.Position) rune {
	return p.grid[pos.Row][pos.Col]
}

// Placements returns the committed placements in commit order.
func (p *Puzzle) Placements() []Placement {
	return p.placements
}

// CanPlace reports whether word fits starting at start along dir: every
// cell stays in bounds and is either empty or already holds the letter the
// word needs there, so crossings on shared letters are allowed.
func (p *Puzzle) CanPlace(word string, start primitives.Position, dir primitives.Direction) bool {
	for i := range len(word) {
		pos := start.Step(dir, i)
		if !p.InBounds(pos) {
			return false
		}
		cell := p.grid[pos.Row][pos.Col]
		if cell != 0 && cell != rune(word[i]) {
			return false
		}
	}
	return true
}

// Place writes word onto the grid and records the placement. Callers check
// CanPlace first; Place itself does not re-validate.
func (p *Puzzle) Place(word string, start primitives.Position, dir primitives.Direction) {
	cells := make([]primitives.Position, len(word))
	for i := range len(word) {
		pos := start.Step(dir, i)
		p.grid[pos.Row][pos.Col] = rune(word[i])
		cells[i] = pos
	}
	p.placements = append(p.placements, Placement{
		Word:      word,
		Start:     start,
		Direction: dir,
		Cells:     cells,
	})
}

// Reset clears the grid and the placement record for a fresh attempt.
func (p *Puzzle) Reset() {
	for r := range p.grid {
		clear(p.grid[r])
	}
	p.placements = p.placements[:0]
}

// Fill writes a uniform random letter A-Z into every empty cell.
func (p *Puzzle) Fill(rng *rand.Rand) {
	for r := range p.grid {
		for c, ch := range p.grid[r] {
			if ch == 0 {
				p.grid[r][c] = rune('A' + rng.IntN(26))
			}
		}
	}
}

// Repr renders the grid one row per line, with '.' for empty cells.
func (p *Puzzle) Repr() string {
	lines := make([]string, p.size)
	for r, row := range p.grid {
		line := make([]rune, p.size)
		for c, ch := range row {
			if ch == 0 {
				ch = '.'
			}
			line[c] = ch
		}
		lines[r] = string(line)
	}
	return strings.Join(lines, "\n")
}

func (p *Puzzle) DebugString() string {
	placed := make([]string, len(p.placements))
	for i, pl := range p.placements {
		placed[i] = fmt.Sprintf("%s@%s %s", pl.Word, pl.Start, pl.Direction)
	}
	return fmt.Sprintf("Puzzle{size: %d, placements: %v}", p.size, placed)
}
