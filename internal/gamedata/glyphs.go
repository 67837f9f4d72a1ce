package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// TileDef describes how a named tile visual is drawn, as loaded from tiles.json.
type TileDef struct {
	Name  string `json:"name"`  // Asset name (e.g., "wall")
	Glyph string `json:"glyph"` // Single character for rendering
	Color string `json:"color"` // Hex color code (e.g., "#2121DE")
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// Glyph is a resolved, drawable tile visual.
type Glyph struct {
	Name  string
	Rune  rune
	Style tcell.Style
}

// GlyphSet maps asset names to glyphs.
type GlyphSet struct {
	glyphs map[string]Glyph
}

// NewGlyphSet resolves tile definitions into glyphs.
// Definitions with an unparseable color fall back to white.
func NewGlyphSet(defs []TileDef) (*GlyphSet, error) {
	set := &GlyphSet{glyphs: make(map[string]Glyph, len(defs))}
	for _, def := range defs {
		r, size := utf8.DecodeRuneInString(def.Glyph)
		if size == 0 || r == utf8.RuneError {
			return nil, fmt.Errorf("tile %q: invalid glyph %q", def.Name, def.Glyph)
		}
		color, err := ParseHexColor(def.Color)
		if err != nil {
			color = tcell.ColorWhite
		}
		set.glyphs[def.Name] = Glyph{
			Name:  def.Name,
			Rune:  r,
			Style: tcell.StyleDefault.Foreground(color),
		}
	}
	return set, nil
}

// LoadGlyphSet builds a glyph set from the embedded tiles.json.
func LoadGlyphSet() (*GlyphSet, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	if len(file.Tiles) == 0 {
		return nil, errors.New("no tiles loaded from tiles.json")
	}
	return NewGlyphSet(file.Tiles)
}

// Glyph returns the glyph registered under name.
func (s *GlyphSet) Glyph(name string) (Glyph, bool) {
	g, ok := s.glyphs[name]
	return g, ok
}

// Count returns the number of glyphs in the set.
func (s *GlyphSet) Count() int {
	return len(s.glyphs)
}
