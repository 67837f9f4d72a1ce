// Package gamedata provides embedded game data: tile glyphs and the default level.
package gamedata

import "embed"

// dataFS embeds the glyph table and bundled levels at build time.
//
//go:embed *.json levels/*.txt
var dataFS embed.FS
