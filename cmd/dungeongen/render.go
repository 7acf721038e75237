package main

import (
	"strings"

	"github.com/dungeonforge/dungeon-api/internal/entities"
)

// Cell glyphs for the terminal map preview
var cellGlyphs = map[entities.CellType]rune{
	entities.CellWall:       '#',
	entities.CellFloor:      '.',
	entities.CellDoor:       '+',
	entities.CellRoomCenter: '@',
}

// renderMap draws the grid as ASCII art, one rune per cell
func renderMap(dungeon *entities.Dungeon) string {
	var sb strings.Builder
	for _, row := range dungeon.Grid {
		for _, cell := range row {
			glyph, ok := cellGlyphs[cell]
			if !ok {
				glyph = '?'
			}
			sb.WriteRune(glyph)
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}
