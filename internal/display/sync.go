// Package display keeps the rendered tile layer in step with maze state.
//
// The Synchronizer owns every tile visual it spawns and indexes them by grid
// cell, so lookups and teardown never need to query the scene.
package display

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeman/internal/gamedata"
	"github.com/samdwyer/mazeman/internal/maze"
	"github.com/samdwyer/mazeman/internal/telemetry"
)

// EntityID identifies a visual spawned in a scene.
type EntityID uint64

// Visual is one tile drawn at a world position.
type Visual struct {
	Kind  maze.TileKind
	Cell  maze.Cell
	X, Y  float64 // World position of the cell centre
	Scale float64 // Sprite scale relative to the cell
	Glyph gamedata.Glyph
}

// DotScale enlarges dot sprites, which are drawn at 30 units, to fill a 32 unit cell.
const DotScale = 32.0 / 30

// scaleFor returns the sprite scale for a tile kind.
func scaleFor(k maze.TileKind) float64 {
	if k == maze.Dot {
		return DotScale
	}
	return 1
}

// Scene creates and destroys visuals.
type Scene interface {
	Spawn(v Visual) EntityID
	Despawn(id EntityID)
}

// Assets resolves asset names ("wall", "dot", "cherry") to glyphs.
type Assets interface {
	Glyph(name string) (gamedata.Glyph, bool)
}

// Stats summarizes a synchronization pass.
type Stats struct {
	Spawned   int
	Despawned int
	Kept      int
	Missing   int // Cells whose asset could not be resolved
}

// Changed reports whether the pass touched the scene.
func (s Stats) Changed() bool {
	return s.Spawned > 0 || s.Despawned > 0
}

type record struct {
	id   EntityID
	kind maze.TileKind
}

// Synchronizer mirrors non-Path maze cells as scene visuals.
type Synchronizer struct {
	scene  Scene
	assets Assets
	layout maze.Layout
	tiles  map[maze.Cell]record
}

// NewSynchronizer creates a synchronizer with an empty registry.
func NewSynchronizer(scene Scene, assets Assets, layout maze.Layout) *Synchronizer {
	return &Synchronizer{
		scene:  scene,
		assets: assets,
		layout: layout,
		tiles:  make(map[maze.Cell]record),
	}
}

// hasVisual reports whether a tile kind is drawn at all.
func hasVisual(k maze.TileKind) bool {
	return k == maze.Wall || k == maze.Dot || k == maze.Cherry
}

// Sync brings the scene in line with m. Afterwards there is exactly one
// visual per non-Path cell with a known asset and nothing else. Only cells
// whose kind changed since the last pass are respawned.
func (s *Synchronizer) Sync(ctx context.Context, m *maze.Maze) Stats {
	var st Stats

	for cell, rec := range s.tiles {
		kind, ok := m.KindAt(cell.Col, cell.Row)
		if ok && kind == rec.kind {
			continue
		}
		s.scene.Despawn(rec.id)
		delete(s.tiles, cell)
		st.Despawned++
	}

	m.Each(func(cell maze.Cell, kind maze.TileKind) {
		if !hasVisual(kind) {
			return
		}
		if _, ok := s.tiles[cell]; ok {
			st.Kept++
			return
		}
		if s.spawn(cell, kind) {
			st.Spawned++
		} else {
			st.Missing++
		}
	})

	if st.Changed() {
		_, span := telemetry.Tracer("display").Start(ctx, "display.sync")
		span.SetAttributes(
			attribute.Int("tiles.spawned", st.Spawned),
			attribute.Int("tiles.despawned", st.Despawned),
			attribute.Int("tiles.kept", st.Kept),
			attribute.Int("tiles.missing", st.Missing),
		)
		span.End()
	}

	return st
}

// Rebuild tears down every visual and redraws the whole maze.
func (s *Synchronizer) Rebuild(ctx context.Context, m *maze.Maze) Stats {
	dropped := s.Clear()
	st := s.Sync(ctx, m)
	st.Despawned += dropped
	return st
}

func (s *Synchronizer) spawn(cell maze.Cell, kind maze.TileKind) bool {
	glyph, ok := s.assets.Glyph(kind.String())
	if !ok {
		return false
	}
	x, y := s.layout.GridToWorld(cell)
	id := s.scene.Spawn(Visual{
		Kind:  kind,
		Cell:  cell,
		X:     x,
		Y:     y,
		Scale: scaleFor(kind),
		Glyph: glyph,
	})
	s.tiles[cell] = record{id: id, kind: kind}
	return true
}

// Invalidate drops the visual at cell, if any, so the next Sync redraws it
// from current state. It returns true if a visual was removed.
func (s *Synchronizer) Invalidate(cell maze.Cell) bool {
	rec, ok := s.tiles[cell]
	if !ok {
		return false
	}
	s.scene.Despawn(rec.id)
	delete(s.tiles, cell)
	return true
}

// DropDots removes every dot visual and returns how many were removed.
// Dot cells are redrawn on the next Sync.
func (s *Synchronizer) DropDots() int {
	return s.drop(func(r record) bool { return r.kind == maze.Dot })
}

// Clear removes every visual and returns how many were removed.
func (s *Synchronizer) Clear() int {
	return s.drop(func(record) bool { return true })
}

func (s *Synchronizer) drop(match func(record) bool) int {
	n := 0
	for cell, rec := range s.tiles {
		if !match(rec) {
			continue
		}
		s.scene.Despawn(rec.id)
		delete(s.tiles, cell)
		n++
	}
	return n
}

// At returns the visual registered for cell.
func (s *Synchronizer) At(cell maze.Cell) (EntityID, bool) {
	rec, ok := s.tiles[cell]
	return rec.id, ok
}

// Len returns the number of live visuals.
func (s *Synchronizer) Len() int {
	return len(s.tiles)
}
