// Package tilegrid holds the destructible tile map that movement, AI and rock
// physics consult. It has no dependencies on ebitengine, donburi, or resolv.
package tilegrid

import "math"

// Code is a tile-type value stored in a grid cell.
type Code int

const (
	Invalid Code = -1 // returned for out-of-bounds queries
	Empty   Code = 0  // tunnel
	Surface Code = 1
	SoftA   Code = 2
	SoftB   Code = 3
	SoftC   Code = 4
	SoftD   Code = 5
	Bedrock Code = 6 // cell occupied by a resting rock
)

func (c Code) String() string {
	switch c {
	case Empty:
		return "empty"
	case Surface:
		return "surface"
	case SoftA:
		return "soft_a"
	case SoftB:
		return "soft_b"
	case SoftC:
		return "soft_c"
	case SoftD:
		return "soft_d"
	case Bedrock:
		return "bedrock"
	}
	return "invalid"
}

// IsSoft reports whether c is one of the diggable dirt variants.
func IsSoft(c Code) bool {
	return c >= SoftA && c <= SoftD
}

// IsWalkableNormal reports whether an enemy outside ghost mode may enter c.
func IsWalkableNormal(c Code) bool {
	return c == Empty
}

// IsWalkableForGhost reports whether a ghosting enemy may enter c.
func IsWalkableForGhost(c Code) bool {
	return c == Empty || IsSoft(c)
}

// IsWalkableForPlayer reports whether the player may move onto c, digging it if soft.
func IsWalkableForPlayer(c Code) bool {
	return c == Empty || IsSoft(c)
}

// Grid is a fixed-size row-major array of tile codes addressed by pixel or cell.
type Grid struct {
	width, height int
	tileSize      int
	cells         []Code
}

// New creates a width x height grid filled with Empty.
func New(width, height, tileSize int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		cells:    make([]Code, width*height),
	}
}

// FromCodes builds a grid from row-major codes. Missing trailing cells stay Empty.
func FromCodes(width, height, tileSize int, codes []Code) *Grid {
	g := New(width, height, tileSize)
	copy(g.cells, codes)
	return g
}

func (g *Grid) Width() int    { return g.width }
func (g *Grid) Height() int   { return g.height }
func (g *Grid) TileSize() int { return g.tileSize }

// InBounds reports whether the cell exists.
func (g *Grid) InBounds(cx, cy int) bool {
	return cx >= 0 && cx < g.width && cy >= 0 && cy < g.height
}

// CellOf converts a pixel coordinate to its cell, flooring negatives so that
// -0.5 maps to cell -1 rather than 0.
func (g *Grid) CellOf(px, py float64) (int, int) {
	ts := float64(g.tileSize)
	return int(math.Floor(px / ts)), int(math.Floor(py / ts))
}

// CellCenter returns the pixel center of a cell.
func (g *Grid) CellCenter(cx, cy int) (float64, float64) {
	ts := float64(g.tileSize)
	return float64(cx)*ts + ts/2, float64(cy)*ts + ts/2
}

// TileAtCell returns the code at a cell, or Invalid out of bounds.
func (g *Grid) TileAtCell(cx, cy int) Code {
	if !g.InBounds(cx, cy) {
		return Invalid
	}
	return g.cells[cy*g.width+cx]
}

// SetTileCell writes a code; out-of-bounds writes are ignored.
func (g *Grid) SetTileCell(cx, cy int, c Code) {
	if !g.InBounds(cx, cy) {
		return
	}
	g.cells[cy*g.width+cx] = c
}

// TileAt returns the code under a pixel coordinate, or Invalid out of bounds.
func (g *Grid) TileAt(px, py float64) Code {
	cx, cy := g.CellOf(px, py)
	return g.TileAtCell(cx, cy)
}

// SetTile writes the code under a pixel coordinate.
func (g *Grid) SetTile(px, py float64, c Code) {
	cx, cy := g.CellOf(px, py)
	g.SetTileCell(cx, cy, c)
}

// Codes returns a copy of the row-major cell codes.
func (g *Grid) Codes() []Code {
	out := make([]Code, len(g.cells))
	copy(out, g.cells)
	return out
}

// NearestEmpty searches expanding square rings around (cx, cy), radius 0
// first, and returns the first Empty cell found scanning each ring row by row.
func (g *Grid) NearestEmpty(cx, cy, maxRadius int) (int, int, bool) {
	for radius := 0; radius <= maxRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				// interior cells were covered by smaller rings
				if abs(dx) != radius && abs(dy) != radius {
					continue
				}
				nx, ny := cx+dx, cy+dy
				if g.TileAtCell(nx, ny) == Empty {
					return nx, ny, true
				}
			}
		}
	}
	return 0, 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
