package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazeman/internal/entity"
	"github.com/samdwyer/mazeman/internal/maze"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	layout maze.Layout
}

// NewRenderer creates a renderer that places world positions using layout.
func NewRenderer(screen *Screen, layout maze.Layout) *Renderer {
	return &Renderer{screen: screen, layout: layout}
}

// Render draws the scene, the player and a status line below the maze.
func (r *Renderer) Render(scene *Scene, player *entity.Player, m *maze.Maze) {
	r.screen.Clear()

	// Terminal cells map 1:1 to grid cells
	for _, v := range scene.Visuals() {
		if c, ok := r.layout.WorldToGrid(v.X, v.Y); ok {
			r.screen.SetContent(c.Col, c.Row, v.Glyph.Rune, v.Glyph.Style)
		}
	}

	if c, ok := r.layout.WorldToGrid(player.Position()); ok {
		playerStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.screen.SetContent(c.Col, c.Row, player.Symbol, playerStyle)
	}

	r.RenderMessage(fmt.Sprintf("dots: %d  (arrows move, q quits)", m.DotsRemaining()), m.Rows()+1)

	r.screen.Show()
}

// RenderMessage displays a message on the given line.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
