// Package maze provides the level grid, its loader and world/grid coordinate mapping.
package maze

// TileKind identifies the contents of a single maze cell.
type TileKind uint8

const (
	// Wall blocks movement.
	Wall TileKind = iota
	// Path is empty floor.
	Path
	// Dot is floor holding an uneaten dot.
	Dot
	// Cherry is floor holding a cherry.
	Cherry
)

// KindFromRune maps a level-file character to a tile kind.
// Unknown characters are treated as open path.
func KindFromRune(r rune) TileKind {
	switch r {
	case 'W':
		return Wall
	case 'D':
		return Dot
	case 'C':
		return Cherry
	default:
		return Path
	}
}

// Walkable returns true if an actor may occupy a tile of this kind.
func (k TileKind) Walkable() bool {
	return k != Wall
}

// Rune returns the level-file character for the kind.
func (k TileKind) Rune() rune {
	switch k {
	case Wall:
		return 'W'
	case Dot:
		return 'D'
	case Cherry:
		return 'C'
	default:
		return ' '
	}
}

// String returns the asset name for the kind.
func (k TileKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Dot:
		return "dot"
	case Cherry:
		return "cherry"
	default:
		return "unknown"
	}
}
