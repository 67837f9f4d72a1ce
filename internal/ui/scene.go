package ui

import (
	"sort"

	"github.com/samdwyer/mazeman/internal/display"
)

// Scene holds the tile visuals currently on screen.
type Scene struct {
	next     display.EntityID
	entities map[display.EntityID]display.Visual
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{entities: make(map[display.EntityID]display.Visual)}
}

// Spawn adds a visual and returns its handle.
func (s *Scene) Spawn(v display.Visual) display.EntityID {
	s.next++
	s.entities[s.next] = v
	return s.next
}

// Despawn removes a visual. Unknown handles are ignored.
func (s *Scene) Despawn(id display.EntityID) {
	delete(s.entities, id)
}

// Len returns the number of live visuals.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Visuals returns live visuals in spawn order.
func (s *Scene) Visuals() []display.Visual {
	ids := make([]display.EntityID, 0, len(s.entities))
	for id := range s.entities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]display.Visual, len(ids))
	for i, id := range ids {
		out[i] = s.entities[id]
	}
	return out
}
