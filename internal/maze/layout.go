package maze

import "math"

// Layout places the grid in world space. World Y grows upward while rows
// grow downward, so row indices are measured back from RowsOffset.
type Layout struct {
	CellSize   float64 // Tile pitch in world units
	OriginX    float64 // Added to world X before dividing by CellSize
	OriginY    float64 // Added to world Y before dividing by CellSize
	RowsOffset float64 // Row count the Y axis is flipped around
}

// DefaultLayout returns the placement used by the bundled level.
func DefaultLayout() Layout {
	return Layout{
		CellSize:   32,
		OriginX:    615,
		OriginY:    100,
		RowsOffset: 13,
	}
}

// WorldToGrid maps a world position to the cell containing it.
// ok is false when the position falls left of or above the grid, or when
// the inputs are not finite. Upper bounds are the maze's concern.
func (l Layout) WorldToGrid(wx, wy float64) (c Cell, ok bool) {
	if l.CellSize <= 0 {
		return Cell{}, false
	}
	col := math.Floor((wx + l.OriginX) / l.CellSize)
	row := math.Floor(l.RowsOffset - (wy+l.OriginY)/l.CellSize)
	if !inIndexRange(col) || !inIndexRange(row) {
		return Cell{}, false
	}
	return Cell{Col: int(col), Row: int(row)}, true
}

// GridToWorld returns the world position of a cell's centre.
func (l Layout) GridToWorld(c Cell) (wx, wy float64) {
	half := l.CellSize / 2
	wx = float64(c.Col)*l.CellSize - l.OriginX + half
	wy = (l.RowsOffset-float64(c.Row))*l.CellSize - l.OriginY - half
	return wx, wy
}

// inIndexRange reports whether a floored value converts to a valid index.
func inIndexRange(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= math.MaxInt32
}
