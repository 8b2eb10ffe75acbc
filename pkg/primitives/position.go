package primitives

import "fmt"

// Position is a 0-based, row-major cell coordinate in a square grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Step returns the position n steps away from p along d.
func (p Position) Step(d Direction, n int) Position {
	return Position{
		Row: p.Row + n*d.RowDelta(),
		Col: p.Col + n*d.ColDelta(),
	}
}
