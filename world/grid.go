package world

import (
	"image"

	"tilequest/config"
)

// Grid owns the layered tile data for one map: base terrain, optional
// decorations, the derived collision layer and the biome classification.
// All four layers share identical dimensions. Mutation goes through SetTile
// and SetDecoration so the collision layer never drifts out of sync.
type Grid struct {
	Width  int
	Height int

	Base       [][]TileKind
	Decoration [][]DecorationKind
	Collision  [][]bool
	Biome      [][]BiomeKind

	// waterBlocks controls whether water counts as blocking when collision
	// is rebuilt. Overworld water is walkable, town water is not.
	waterBlocks bool

	walls      []image.Rectangle
	wallsDirty bool
}

// NewGrid creates a grid of the given dimensions filled with grass.
// Degenerate dimensions are clamped to the smallest usable map.
func NewGrid(width, height int) *Grid {
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}

	g := &Grid{
		Width:      width,
		Height:     height,
		Base:       make([][]TileKind, height),
		Decoration: make([][]DecorationKind, height),
		Collision:  make([][]bool, height),
		Biome:      make([][]BiomeKind, height),
		wallsDirty: true,
	}
	for y := 0; y < height; y++ {
		g.Base[y] = make([]TileKind, width)
		g.Decoration[y] = make([]DecorationKind, width)
		g.Collision[y] = make([]bool, width)
		g.Biome[y] = make([]BiomeKind, width)
	}
	return g
}

// IsValidPosition reports whether the tile coordinates are inside the grid.
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// SetTile writes a base tile and refreshes the collision cell.
func (g *Grid) SetTile(x, y int, kind TileKind) {
	if !g.IsValidPosition(x, y) {
		return
	}
	g.Base[y][x] = kind
	g.refreshCollision(x, y)
}

// SetDecoration writes a decoration overlay and refreshes the collision cell.
func (g *Grid) SetDecoration(x, y int, kind DecorationKind) {
	if !g.IsValidPosition(x, y) {
		return
	}
	g.Decoration[y][x] = kind
	g.refreshCollision(x, y)
}

// SetBlocking forces the collision value of one cell, bypassing the derived
// rule. Patch placement uses this to keep overworld pools walkable.
func (g *Grid) SetBlocking(x, y int, blocking bool) {
	if !g.IsValidPosition(x, y) {
		return
	}
	g.Collision[y][x] = blocking
	g.wallsDirty = true
}

// refreshCollision rederives one collision cell from its tile and decoration.
func (g *Grid) refreshCollision(x, y int) {
	blocking := g.Base[y][x].Blocks() || g.Decoration[y][x].Blocks()
	if g.waterBlocks && g.Base[y][x] == TileWater {
		blocking = true
	}
	g.Collision[y][x] = blocking
	g.wallsDirty = true
}

// RebuildCollision rederives the whole collision layer from the tile and
// decoration layers. Generators call this after bulk edits.
func (g *Grid) RebuildCollision() {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.refreshCollision(x, y)
		}
	}
}

// TileAt returns the base tile at the given tile coordinates.
// Out of bounds returns stone wall, matching the out-of-bounds collision rule.
func (g *Grid) TileAt(x, y int) TileKind {
	if !g.IsValidPosition(x, y) {
		return TileStoneWall
	}
	return g.Base[y][x]
}

// DecorationAt returns the decoration overlay at the given tile coordinates.
func (g *Grid) DecorationAt(x, y int) DecorationKind {
	if !g.IsValidPosition(x, y) {
		return DecorationNone
	}
	return g.Decoration[y][x]
}

// IsWall returns true if the tile at (x, y) blocks movement.
// Out of bounds is considered a wall.
func (g *Grid) IsWall(x, y int) bool {
	if !g.IsValidPosition(x, y) {
		return true
	}
	return g.Collision[y][x]
}

// IsWalkable returns true if the tile at (x, y) can be stepped on.
func (g *Grid) IsWalkable(x, y int) bool {
	return g.IsValidPosition(x, y) && !g.Collision[y][x]
}

// TileAtPosition resolves a pixel position to its base tile.
// The second return value is false when the position is off the map.
func (g *Grid) TileAtPosition(pixelX, pixelY int) (TileKind, bool) {
	if pixelX < 0 || pixelY < 0 {
		return TileGrass, false
	}
	x := pixelX / config.TileSize
	y := pixelY / config.TileSize
	if !g.IsValidPosition(x, y) {
		return TileGrass, false
	}
	return g.Base[y][x], true
}

// Walls returns one tile-sized blocking rectangle (in pixels) per blocking
// cell. The list is cached and rebuilt lazily after mutations.
func (g *Grid) Walls() []image.Rectangle {
	if !g.wallsDirty {
		return g.walls
	}
	g.walls = g.walls[:0]
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Collision[y][x] {
				px := x * config.TileSize
				py := y * config.TileSize
				g.walls = append(g.walls, image.Rect(px, py, px+config.TileSize, py+config.TileSize))
			}
		}
	}
	g.wallsDirty = false
	return g.walls
}

// AddBorderWalls rings the map edge with impassable stone wall.
func (g *Grid) AddBorderWalls() {
	for x := 0; x < g.Width; x++ {
		g.SetTile(x, 0, TileStoneWall)
		g.SetTile(x, g.Height-1, TileStoneWall)
	}
	for y := 0; y < g.Height; y++ {
		g.SetTile(0, y, TileStoneWall)
		g.SetTile(g.Width-1, y, TileStoneWall)
	}
}

// FindWalkable scans outward from the map center for the first walkable tile.
// It falls back to the center itself if the whole map is blocked.
func (g *Grid) FindWalkable() (int, int) {
	cx, cy := g.Width/2, g.Height/2
	maxRadius := g.Width
	if g.Height > maxRadius {
		maxRadius = g.Height
	}
	for radius := 0; radius < maxRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				x, y := cx+dx, cy+dy
				if g.IsWalkable(x, y) {
					return x, y
				}
			}
		}
	}
	return cx, cy
}
