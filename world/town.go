package world

import (
	"fmt"
	"math"
	"math/rand"
)

// Town layout tuning.
const (
	streetWidth         = 5
	minSideStreets      = 3
	maxSideStreets      = 5
	sideStreetClearance = 15
	targetBuildings     = 15
	buildingAttempts    = 100
	townDecorations     = 40
)

// Building is one placed town structure and its door tile.
type Building struct {
	Name   string
	X, Y   int
	Width  int
	Height int
	DoorX  int
	DoorY  int
}

// expandedOverlaps reports whether the two buildings' rectangles, each grown
// by one tile in every direction, intersect. Keeping a one-tile gap between
// buildings leaves room for NPC anchors and decoration spacing.
func (b Building) expandedOverlaps(other Building) bool {
	return b.X-1 < other.X+other.Width+1 &&
		b.X+b.Width+1 > other.X-1 &&
		b.Y-1 < other.Y+other.Height+1 &&
		b.Y+b.Height+1 > other.Y-1
}

// TownMap is the town: a grid plus building metadata and derived anchors.
type TownMap struct {
	*Grid
	Seed            int64
	Buildings       []Building
	NPCAnchors      [][2]int
	DungeonEntrance [2]int
}

// SpawnPosition returns a walkable tile near the town crossroads.
func (m *TownMap) SpawnPosition() (int, int) {
	cx, cy := m.Width/2, m.Height/2+streetWidth
	if m.IsWalkable(cx, cy) {
		return cx, cy
	}
	return m.FindWalkable()
}

// TownGenerator handles procedural generation of the town map.
type TownGenerator struct {
	rng  *rand.Rand
	seed int64
}

// NewTownGenerator creates a town generator for the given seed.
func NewTownGenerator(seed int64) *TownGenerator {
	return &TownGenerator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// SetSeed reseeds the generator for reproducible towns.
func (g *TownGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.seed = seed
}

// Generate builds the town: streets first, then buildings, then decorative
// features and the derived anchor points.
func (g *TownGenerator) Generate(width, height int) *TownMap {
	grid := NewGrid(width, height)
	grid.waterBlocks = true
	m := &TownMap{Grid: grid, Seed: g.seed}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			grid.Biome[y][x] = BiomePlains
			grid.SetTile(x, y, TileGrass)
		}
	}

	g.layStreets(grid)
	g.placeImportantBuildings(m)
	g.placeElderHome(m)
	g.placeRegularBuildings(m)
	g.placeFountain(grid)
	g.placeDecorations(m)
	g.placeDungeonEntrance(m)
	g.deriveNPCAnchors(m)

	grid.AddBorderWalls()
	grid.RebuildCollision()
	grid.Walls()

	return m
}

// layStreets draws the main crossroads through the town center plus a few
// side streets kept clear of the main axes.
func (g *TownGenerator) layStreets(grid *Grid) {
	cx, cy := grid.Width/2, grid.Height/2
	half := streetWidth / 2

	for y := 0; y < grid.Height; y++ {
		for x := cx - half; x <= cx+half; x++ {
			grid.SetTile(x, y, TileRoad)
		}
	}
	for x := 0; x < grid.Width; x++ {
		for y := cy - half; y <= cy+half; y++ {
			grid.SetTile(x, y, TileRoad)
		}
	}

	count := minSideStreets + g.rng.Intn(maxSideStreets-minSideStreets+1)
	placed := 0
	for attempts := 0; placed < count && attempts < buildingAttempts; attempts++ {
		if g.rng.Intn(2) == 0 {
			x := 1 + g.rng.Intn(maxInt(1, grid.Width-2))
			if absInt(x-cx) < sideStreetClearance {
				continue
			}
			for y := 0; y < grid.Height; y++ {
				grid.SetTile(x, y, TileRoad)
			}
		} else {
			y := 1 + g.rng.Intn(maxInt(1, grid.Height-2))
			if absInt(y-cy) < sideStreetClearance {
				continue
			}
			for x := 0; x < grid.Width; x++ {
				grid.SetTile(x, y, TileRoad)
			}
		}
		placed++
	}
}

// placeImportantBuildings puts the named buildings in the four quadrants
// around the crossroads, one quadrant at a time, rejecting overlaps.
func (g *TownGenerator) placeImportantBuildings(m *TownMap) {
	names := []string{"inn", "tavern", "blacksmith", "shop", "market stall"}
	quadrants := [][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	cx, cy := m.Width/2, m.Height/2

	for i, name := range names {
		quad := quadrants[i%len(quadrants)]
		placedOne := false
		for attempt := 0; attempt < 10 && !placedOne; attempt++ {
			w := 6 + g.rng.Intn(3)
			h := 5 + g.rng.Intn(3)
			offX := streetWidth + g.rng.Intn(maxInt(1, m.Width/4))
			offY := streetWidth + g.rng.Intn(maxInt(1, m.Height/4))
			x := clampInt(cx+quad[0]*offX-w/2, 2, m.Width-w-2)
			y := clampInt(cy+quad[1]*offY-h/2, 2, m.Height-h-2)

			b := Building{Name: name, X: x, Y: y, Width: w, Height: h}
			if g.overlapsAny(m, b) {
				continue
			}
			g.carveBuilding(m, b)
			placedOne = true
		}
		if !placedOne {
			fmt.Printf("town: gave up placing %s\n", name)
		}
	}
}

// placeElderHome tries a privileged spot north of the crossroads first, then
// falls back to a handful of random attempts elsewhere.
func (g *TownGenerator) placeElderHome(m *TownMap) {
	w, h := 8, 6
	cx, cy := m.Width/2, m.Height/2

	x := clampInt(cx-w/2, 2, m.Width-w-2)
	y := clampInt(cy-m.Height/4-h, 2, m.Height-h-2)
	b := Building{Name: "elder's home", X: x, Y: y, Width: w, Height: h}
	if !g.overlapsAny(m, b) && !g.coversRoad(m.Grid, b) {
		g.carveBuilding(m, b)
		return
	}

	for attempt := 0; attempt < 10; attempt++ {
		x = 2 + g.rng.Intn(maxInt(1, m.Width-w-4))
		y = 2 + g.rng.Intn(maxInt(1, m.Height-h-4))
		b = Building{Name: "elder's home", X: x, Y: y, Width: w, Height: h}
		if g.overlapsAny(m, b) || g.coversRoad(m.Grid, b) {
			continue
		}
		g.carveBuilding(m, b)
		return
	}
	fmt.Println("town: gave up placing elder's home")
}

// placeRegularBuildings fills the town toward the target count by sampling a
// road tile and trying four candidate offsets beside it.
func (g *TownGenerator) placeRegularBuildings(m *TownMap) {
	for attempt := 0; attempt < buildingAttempts && len(m.Buildings) < targetBuildings; attempt++ {
		rx := g.rng.Intn(m.Width)
		ry := g.rng.Intn(m.Height)
		if m.Base[ry][rx] != TileRoad {
			continue
		}

		w := 5 + g.rng.Intn(3)
		h := 4 + g.rng.Intn(3)
		candidates := [][2]int{
			{rx + 2, ry + 2},
			{rx - w - 2, ry + 2},
			{rx + 2, ry - h - 2},
			{rx - w - 2, ry - h - 2},
		}
		for _, c := range candidates {
			x := clampInt(c[0], 2, m.Width-w-2)
			y := clampInt(c[1], 2, m.Height-h-2)
			b := Building{Name: "house", X: x, Y: y, Width: w, Height: h}
			if g.overlapsAny(m, b) || g.coversRoad(m.Grid, b) {
				continue
			}
			g.carveBuilding(m, b)
			break
		}
	}
}

// overlapsAny reports whether the candidate collides with any placed
// building under the one-tile-expanded bounding check.
func (g *TownGenerator) overlapsAny(m *TownMap, b Building) bool {
	for _, other := range m.Buildings {
		if b.expandedOverlaps(other) {
			return true
		}
	}
	return false
}

// coversRoad reports whether the candidate rectangle would pave over street.
func (g *TownGenerator) coversRoad(grid *Grid, b Building) bool {
	for y := b.Y; y < b.Y+b.Height; y++ {
		for x := b.X; x < b.X+b.Width; x++ {
			if grid.TileAt(x, y) == TileRoad {
				return true
			}
		}
	}
	return false
}

// carveBuilding writes the building's walls, floor and door into the grid
// and records it on the map.
func (g *TownGenerator) carveBuilding(m *TownMap, b Building) {
	for y := b.Y; y < b.Y+b.Height; y++ {
		for x := b.X; x < b.X+b.Width; x++ {
			if x == b.X || x == b.X+b.Width-1 || y == b.Y || y == b.Y+b.Height-1 {
				m.SetTile(x, y, TileStoneWall)
			} else {
				m.SetTile(x, y, TileStoneFloor)
			}
			m.SetDecoration(x, y, DecorationNone)
		}
	}

	b.DoorX = b.X + b.Width/2
	b.DoorY = b.Y + b.Height - 1
	m.SetTile(b.DoorX, b.DoorY, TileDoor)
	m.Buildings = append(m.Buildings, b)
}

// placeFountain puts a circular water feature at the crossroads center.
func (g *TownGenerator) placeFountain(grid *Grid) {
	cx, cy := grid.Width/2, grid.Height/2
	radius := 2
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if math.Hypot(float64(x-cx), float64(y-cy)) <= float64(radius) {
				grid.SetTile(x, y, TileWater)
			}
		}
	}
}

// placeDecorations scatters trees, bushes and rocks on plain grass tiles
// that aren't adjacent to a road or building.
func (g *TownGenerator) placeDecorations(m *TownMap) {
	kinds := []DecorationKind{DecorationTree, DecorationBush, DecorationRock}
	placed := 0
	for attempt := 0; attempt < townDecorations*4 && placed < townDecorations; attempt++ {
		x := 1 + g.rng.Intn(maxInt(1, m.Width-2))
		y := 1 + g.rng.Intn(maxInt(1, m.Height-2))
		if m.Base[y][x] != TileGrass || m.Decoration[y][x] != DecorationNone {
			continue
		}
		if g.nextToStructure(m.Grid, x, y) {
			continue
		}
		m.SetDecoration(x, y, kinds[g.rng.Intn(len(kinds))])
		placed++
	}
}

// nextToStructure reports whether any of the 8 neighbors is road, wall,
// floor or door.
func (g *TownGenerator) nextToStructure(grid *Grid, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			switch grid.TileAt(x+dx, y+dy) {
			case TileRoad, TileStoneWall, TileStoneFloor, TileDoor:
				return true
			}
		}
	}
	return false
}

// placeDungeonEntrance scans a vertical band near the north edge for the
// first road tile and marks it with a ring of wall, leaving the entrance
// tile itself open.
func (g *TownGenerator) placeDungeonEntrance(m *TownMap) {
	cx := m.Width / 2
	half := streetWidth / 2

	for y := 2; y < m.Height/4; y++ {
		for x := cx - half; x <= cx+half; x++ {
			if m.Base[y][x] != TileRoad {
				continue
			}
			m.DungeonEntrance = [2]int{x, y}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					// Keep the approach from the south open.
					if dx == 0 && dy == 1 {
						continue
					}
					m.SetTile(x+dx, y+dy, TileStoneWall)
				}
			}
			m.SetTile(x, y, TileRoad)
			fmt.Printf("town: dungeon entrance at (%d, %d)\n", x, y)
			return
		}
	}
	// No road tile in the band; fall back to the top of the main street.
	m.DungeonEntrance = [2]int{cx, 2}
}

// deriveNPCAnchors computes one standing spot per building, preferring the
// tile in front of the door and trying the other three sides if blocked.
func (g *TownGenerator) deriveNPCAnchors(m *TownMap) {
	for _, b := range m.Buildings {
		candidates := [][2]int{
			{b.DoorX, b.DoorY + 1},
			{b.X + b.Width/2, b.Y - 1},
			{b.X - 1, b.Y + b.Height/2},
			{b.X + b.Width, b.Y + b.Height/2},
		}
		for _, c := range candidates {
			if m.IsWalkable(c[0], c[1]) {
				m.NPCAnchors = append(m.NPCAnchors, c)
				break
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
