package primitives

import (
	"slices"
	"testing"
)

func TestDirections_Catalog(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		dRow     int
		dCol     int
		category Category
	}{
		{"horizontal_right", HorizontalRight, 0, 1, Horizontal},
		{"horizontal_left", HorizontalLeft, 0, -1, Horizontal},
		{"vertical_down", VerticalDown, 1, 0, Vertical},
		{"vertical_up", VerticalUp, -1, 0, Vertical},
		{"diagonal_down_right", DiagonalDownRight, 1, 1, Diagonal},
		{"diagonal_down_left", DiagonalDownLeft, 1, -1, Diagonal},
		{"diagonal_up_right", DiagonalUpRight, -1, 1, Diagonal},
		{"diagonal_up_left", DiagonalUpLeft, -1, -1, Diagonal},
	}

	if len(tests) != len(Directions()) {
		t.Fatalf("catalog has %d directions, want %d", len(Directions()), len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.dir.RowDelta() != tt.dRow || tt.dir.ColDelta() != tt.dCol {
				t.Errorf("deltas = (%d, %d), want (%d, %d)", tt.dir.RowDelta(), tt.dir.ColDelta(), tt.dRow, tt.dCol)
			}
			if tt.dir.Category() != tt.category {
				t.Errorf("Category() = %v, want %v", tt.dir.Category(), tt.category)
			}
			if tt.dir.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", tt.dir.Name(), tt.name)
			}
		})
	}
}

func TestDirectionsIn(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     []Direction
	}{
		{"horizontal", Horizontal, []Direction{HorizontalRight, HorizontalLeft}},
		{"vertical", Vertical, []Direction{VerticalDown, VerticalUp}},
		{"diagonal", Diagonal, []Direction{DiagonalDownRight, DiagonalDownLeft, DiagonalUpRight, DiagonalUpLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DirectionsIn(tt.category)
			if !slices.Equal(got, tt.want) {
				t.Errorf("DirectionsIn(%v) = %v, want %v", tt.category, got, tt.want)
			}
			for _, d := range got {
				if d.Category() != tt.category {
					t.Errorf("direction %v tagged %v, want %v", d, d.Category(), tt.category)
				}
			}
		})
	}
}

func TestDirectionsIn_FreshSlice(t *testing.T) {
	a := DirectionsIn(Diagonal)
	b := DirectionsIn(Diagonal)
	a[0], a[1] = a[1], a[0]
	if !slices.Equal(b, DirectionsIn(Diagonal)) {
		t.Error("reordering one slice leaked into another")
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{Horizontal, "horizontal"},
		{Vertical, "vertical"},
		{Diagonal, "diagonal"},
		{Category(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
