package primitives

// Category groups directions by the axis family they move along.
type Category int

const (
	Horizontal Category = iota
	Vertical
	Diagonal
)

func (c Category) String() string {
	switch c {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	}
	return "unknown"
}

// Categories returns the three categories in their fixed order.
func Categories() [3]Category {
	return [3]Category{Horizontal, Vertical, Diagonal}
}

// Direction is a unit step between neighboring grid cells. The catalog is
// fixed: the eight values below cover every straight line a word can lie on.
type Direction struct {
	dRow, dCol int
	name       string
	category   Category
}

func (d Direction) RowDelta() int { return d.dRow }
func (d Direction) ColDelta() int { return d.dCol }

func (d Direction) Name() string { return d.name }

func (d Direction) String() string { return d.name }

// Category returns the axis family d belongs to.
func (d Direction) Category() Category { return d.category }

var (
	HorizontalRight = Direction{0, 1, "horizontal_right", Horizontal}
	HorizontalLeft  = Direction{0, -1, "horizontal_left", Horizontal}
	VerticalDown    = Direction{1, 0, "vertical_down", Vertical}
	VerticalUp      = Direction{-1, 0, "vertical_up", Vertical}

	DiagonalDownRight = Direction{1, 1, "diagonal_down_right", Diagonal}
	DiagonalDownLeft  = Direction{1, -1, "diagonal_down_left", Diagonal}
	DiagonalUpRight   = Direction{-1, 1, "diagonal_up_right", Diagonal}
	DiagonalUpLeft    = Direction{-1, -1, "diagonal_up_left", Diagonal}
)

// Directions returns all eight directions in declaration order. The slice
// is freshly allocated, callers may reorder it.
func Directions() []Direction {
	return []Direction{
		HorizontalRight, HorizontalLeft,
		VerticalDown, VerticalUp,
		DiagonalDownRight, DiagonalDownLeft,
		DiagonalUpRight, DiagonalUpLeft,
	}
}

// DirectionsIn returns the directions of one category in declaration order.
// The slice is freshly allocated, callers may reorder it.
func DirectionsIn(c Category) []Direction {
	switch c {
	case Horizontal:
		return []Direction{HorizontalRight, HorizontalLeft}
	case Vertical:
		return []Direction{VerticalDown, VerticalUp}
	case Diagonal:
		return []Direction{DiagonalDownRight, DiagonalDownLeft, DiagonalUpRight, DiagonalUpLeft}
	}
	return nil
}
