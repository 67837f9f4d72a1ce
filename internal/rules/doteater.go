// Package rules holds per-tick game rules that mutate maze state.
package rules

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeman/internal/maze"
	"github.com/samdwyer/mazeman/internal/telemetry"
)

// PositionSource yields an actor's world position.
type PositionSource interface {
	Position() (float64, float64)
}

// DotEater consumes the dot under the player once per tick.
type DotEater struct {
	maze   *maze.Maze
	layout maze.Layout
	eaten  int
}

// NewDotEater creates the rule for the given maze.
func NewDotEater(m *maze.Maze, layout maze.Layout) *DotEater {
	return &DotEater{maze: m, layout: layout}
}

// Step checks the cell under src and eats its dot if there is one.
// It returns the cell and whether a dot was eaten; positions outside the
// grid never eat anything.
func (r *DotEater) Step(ctx context.Context, src PositionSource) (maze.Cell, bool) {
	cell, ok := r.layout.WorldToGrid(src.Position())
	if !ok {
		return maze.Cell{}, false
	}
	if !r.maze.ConsumeDotAt(cell.Col, cell.Row) {
		return cell, false
	}
	r.eaten++

	_, span := telemetry.Tracer("rules").Start(ctx, "rules.eat")
	span.SetAttributes(
		attribute.Int("cell.col", cell.Col),
		attribute.Int("cell.row", cell.Row),
		attribute.Int("dots.remaining", r.maze.DotsRemaining()),
	)
	span.End()

	return cell, true
}

// Eaten returns the number of dots this rule has consumed.
func (r *DotEater) Eaten() int {
	return r.eaten
}
