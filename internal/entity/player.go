// Package entity provides game entities like the player.
package entity

import "github.com/samdwyer/mazeman/internal/maze"

// Direction is a grid step direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the grid offset for one step in the direction.
// Up is toward row 0.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Player is the maze runner. Its position is kept in world space;
// grid cells are derived from it through a layout.
type Player struct {
	X, Y   float64 // World position
	Symbol rune    // Display symbol
	Facing Direction
}

// NewPlayer creates a player centred on the given cell.
func NewPlayer(layout maze.Layout, start maze.Cell) *Player {
	x, y := layout.GridToWorld(start)
	return &Player{
		X:      x,
		Y:      y,
		Symbol: '@',
		Facing: DirNone,
	}
}

// Position returns the current world position.
func (p *Player) Position() (float64, float64) {
	return p.X, p.Y
}

// Step moves the player one cell in dir if the target cell is walkable.
// It returns true if the player moved.
func (p *Player) Step(m *maze.Maze, layout maze.Layout, dir Direction) bool {
	p.Facing = dir
	cur, ok := layout.WorldToGrid(p.X, p.Y)
	if !ok {
		return false
	}

	dx, dy := dir.Delta()
	if dx == 0 && dy == 0 {
		return false
	}
	next := maze.Cell{Col: cur.Col + dx, Row: cur.Row + dy}
	if !m.IsWalkable(next.Col, next.Row) {
		return false
	}

	p.X, p.Y = layout.GridToWorld(next)
	return true
}
