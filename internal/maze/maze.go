package maze

import (
	"strings"
)

// Cell is a grid coordinate. Row 0 is the top row.
type Cell struct {
	Col, Row int
}

// Maze is the level grid for one session. It is the only owner of the
// tile data; everything else goes through its methods.
type Maze struct {
	cells [][]TileKind
	rows  int
	cols  int
	dots  int
}

// New creates a maze from a rectangular grid. The caller must not retain cells.
func New(cells [][]TileKind) (*Maze, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, &LoadError{Err: ErrEmptyLevel}
	}
	cols := len(cells[0])
	dots := 0
	for y, row := range cells {
		if len(row) != cols {
			return nil, &LoadError{Line: y + 1, Err: ErrJaggedRows}
		}
		for _, k := range row {
			if k == Dot {
				dots++
			}
		}
	}
	return &Maze{
		cells: cells,
		rows:  len(cells),
		cols:  cols,
		dots:  dots,
	}, nil
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Maze) Cols() int { return m.cols }

// DotsRemaining returns the number of Dot cells left.
func (m *Maze) DotsRemaining() int { return m.dots }

// Contains returns true if (x, y) lies inside the grid.
func (m *Maze) Contains(x, y int) bool {
	return x >= 0 && x < m.cols && y >= 0 && y < m.rows
}

// KindAt returns the tile at (x, y). ok is false outside the grid.
func (m *Maze) KindAt(x, y int) (kind TileKind, ok bool) {
	if !m.Contains(x, y) {
		return Wall, false
	}
	return m.cells[y][x], true
}

// IsWalkable returns true if the given position can be walked on.
// Positions outside the grid are never walkable.
func (m *Maze) IsWalkable(x, y int) bool {
	if !m.Contains(x, y) {
		return false
	}
	return m.cells[y][x].Walkable()
}

// ConsumeDotAt turns a Dot cell into Path. It reports whether a dot was eaten;
// any other cell, including positions outside the grid, is left untouched.
func (m *Maze) ConsumeDotAt(x, y int) bool {
	if !m.Contains(x, y) || m.cells[y][x] != Dot {
		return false
	}
	m.cells[y][x] = Path
	m.dots--
	return true
}

// Each calls fn for every cell in row-major order.
func (m *Maze) Each(fn func(c Cell, kind TileKind)) {
	for y, row := range m.cells {
		for x, k := range row {
			fn(Cell{Col: x, Row: y}, k)
		}
	}
}

// String serializes the grid back to the level-file format.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(m.rows * (m.cols + 1))
	for _, row := range m.cells {
		for _, k := range row {
			b.WriteRune(k.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
