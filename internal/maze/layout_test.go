package maze

import (
	"math"
	"testing"
)

func TestLayoutRoundTrip(t *testing.T) {
	layouts := []Layout{
		DefaultLayout(),
		{CellSize: 1, RowsOffset: 0},
		{CellSize: 16, OriginX: -40, OriginY: 12.5, RowsOffset: 20},
	}

	for _, l := range layouts {
		for row := 0; row < 13; row++ {
			for col := 0; col < 38; col++ {
				c := Cell{Col: col, Row: row}
				wx, wy := l.GridToWorld(c)
				got, ok := l.WorldToGrid(wx, wy)
				if !ok || got != c {
					t.Errorf("%+v: WorldToGrid(GridToWorld(%v)) = %v, %v", l, c, got, ok)
				}
			}
		}
	}
}

func TestWorldToGridDefault(t *testing.T) {
	l := DefaultLayout()

	tests := []struct {
		name   string
		wx, wy float64
		want   Cell
		ok     bool
	}{
		{"top left corner", -615, 316, Cell{0, 0}, true},
		{"inside first cell", -600, 300, Cell{0, 0}, true},
		{"second column", -583, 300, Cell{1, 0}, true},
		{"second row", -600, 283, Cell{0, 1}, true},
		{"left of grid", -616, 300, Cell{}, false},
		{"above grid", -600, 317, Cell{}, false},
		{"nan", math.NaN(), 0, Cell{}, false},
		{"infinite", math.Inf(1), 0, Cell{}, false},
		{"far below", -600, -1e12, Cell{}, false},
	}

	for _, tt := range tests {
		got, ok := l.WorldToGrid(tt.wx, tt.wy)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("%s: WorldToGrid(%v, %v) = %v, %v, want %v, %v",
				tt.name, tt.wx, tt.wy, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWorldToGridZeroCellSize(t *testing.T) {
	if _, ok := (Layout{}).WorldToGrid(0, 0); ok {
		t.Error("WorldToGrid() with zero cell size should not map")
	}
}
