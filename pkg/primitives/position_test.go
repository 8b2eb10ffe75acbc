package primitives

import "testing"

func TestPosition_Step(t *testing.T) {
	tests := []struct {
		name  string
		start Position
		dir   Direction
		n     int
		want  Position
	}{
		{"right by 3", Position{0, 0}, HorizontalRight, 3, Position{0, 3}},
		{"left by 2", Position{4, 4}, HorizontalLeft, 2, Position{4, 2}},
		{"down by 1", Position{1, 1}, VerticalDown, 1, Position{2, 1}},
		{"up by 4", Position{4, 0}, VerticalUp, 4, Position{0, 0}},
		{"down-right by 2", Position{0, 0}, DiagonalDownRight, 2, Position{2, 2}},
		{"down-left by 2", Position{0, 4}, DiagonalDownLeft, 2, Position{2, 2}},
		{"up-right by 3", Position{3, 0}, DiagonalUpRight, 3, Position{0, 3}},
		{"up-left by 1", Position{1, 1}, DiagonalUpLeft, 1, Position{0, 0}},
		{"zero steps", Position{2, 3}, DiagonalDownRight, 0, Position{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.Step(tt.dir, tt.n); got != tt.want {
				t.Errorf("Step() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPosition_String(t *testing.T) {
	p := Position{Row: 2, Col: 7}
	if got := p.String(); got != "(2, 7)" {
		t.Errorf("String() = %q, want %q", got, "(2, 7)")
	}
}
