package world

import (
	"math"
	"math/rand"
)

// Terrain generation tuning.
const (
	decorationChance = 0.10
	patchesPerKind   = 4
	minStructures    = 3
	maxStructures    = 7
)

// TerrainMap is the overworld: a grid plus the seed it was generated from.
type TerrainMap struct {
	*Grid
	Seed int64
}

// SpawnPosition returns a walkable tile near the map center.
func (m *TerrainMap) SpawnPosition() (int, int) {
	return m.FindWalkable()
}

// TerrainGenerator handles procedural generation of the overworld.
type TerrainGenerator struct {
	rng   *rand.Rand
	noise *NoiseField
	seed  int64
}

// NewTerrainGenerator creates a terrain generator for the given seed.
func NewTerrainGenerator(seed int64) *TerrainGenerator {
	return &TerrainGenerator{
		rng:   rand.New(rand.NewSource(seed)),
		noise: NewNoiseField(seed),
		seed:  seed,
	}
}

// SetSeed reseeds the generator for reproducible terrain.
func (g *TerrainGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.noise = NewNoiseField(seed)
	g.seed = seed
}

// Generate builds a complete overworld map. The steps run in a fixed order
// because later passes read state written by earlier ones.
func (g *TerrainGenerator) Generate(width, height int) *TerrainMap {
	grid := NewGrid(width, height)
	m := &TerrainMap{Grid: grid, Seed: g.seed}

	elevation := make([][]float64, grid.Height)
	moisture := make([][]float64, grid.Height)
	for y := 0; y < grid.Height; y++ {
		elevation[y] = make([]float64, grid.Width)
		moisture[y] = make([]float64, grid.Width)
		for x := 0; x < grid.Width; x++ {
			elevation[y][x] = g.noise.Elevation(float64(x), float64(y))
			moisture[y][x] = g.noise.Moisture(float64(x), float64(y))
		}
	}

	g.carveRegionOverrides(grid, elevation, moisture)

	normalizeField(elevation)
	normalizeField(moisture)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			biome := ClassifyBiome(elevation[y][x], moisture[y][x])
			grid.Biome[y][x] = biome
			grid.SetTile(x, y, pickBaseTile(g.rng, biome))
			if g.rng.Float64() < decorationChance {
				grid.SetDecoration(x, y, pickDecoration(g.rng, biome))
			}
		}
	}

	g.addPatches(grid)
	g.addStructures(grid)
	grid.AddBorderWalls()
	grid.Walls()

	return m
}

// carveRegionOverrides forces a desert quadrant, a mountain quadrant and a
// swamp pocket by overwriting the raw fields before normalization. These are
// hard carve-outs, not post-classification patches.
func (g *TerrainGenerator) carveRegionOverrides(grid *Grid, elevation, moisture [][]float64) {
	halfW, halfH := grid.Width/2, grid.Height/2

	// Desert: south-west quadrant, mid elevation, bone dry.
	for y := halfH; y < grid.Height; y++ {
		for x := 0; x < halfW; x++ {
			elevation[y][x] = 0.3
			moisture[y][x] = -1.0
		}
	}

	// Mountains: north-east quadrant, pushed above every noise value.
	for y := 0; y < halfH; y++ {
		for x := halfW; x < grid.Width; x++ {
			elevation[y][x] = 1.5
		}
	}

	// Swamp: a pocket in the south-east quadrant, low and saturated.
	for y := halfH + grid.Height/8; y < grid.Height-grid.Height/8; y++ {
		for x := halfW + grid.Width/8; x < grid.Width-grid.Width/8; x++ {
			elevation[y][x] = -0.8
			moisture[y][x] = 1.5
		}
	}
}

// addPatches scatters organic blobs of stone, sand, dirt and water over the
// base terrain. Each patch kind uses its own edge-jitter formula so the blobs
// read differently in game.
func (g *TerrainGenerator) addPatches(grid *Grid) {
	for i := 0; i < patchesPerKind; i++ {
		g.addJitterPatch(grid, TileStone, 3, 6)
		g.addJitterPatch(grid, TileSand, 4, 8)
		g.addWavyPatch(grid, TileDirt, 3, 6)
		g.addPool(grid, 2, 4)
	}
}

// addJitterPatch fills cells whose distance from a random center stays under
// the radius after a per-cell random offset. Used for stone outcrops and
// sand dunes.
func (g *TerrainGenerator) addJitterPatch(grid *Grid, kind TileKind, minRadius, maxRadius int) {
	cx := g.rng.Intn(grid.Width)
	cy := g.rng.Intn(grid.Height)
	radius := minRadius + g.rng.Intn(maxRadius-minRadius+1)

	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !grid.IsValidPosition(x, y) {
				continue
			}
			dist := math.Hypot(float64(x-cx), float64(y-cy))
			if dist+g.rng.Float64()*2.0-1.0 < float64(radius) {
				grid.SetTile(x, y, kind)
			}
		}
	}
}

// addWavyPatch fills cells inside a sinusoidally rippled radius, giving dirt
// patches an uneven, trampled edge.
func (g *TerrainGenerator) addWavyPatch(grid *Grid, kind TileKind, minRadius, maxRadius int) {
	cx := g.rng.Intn(grid.Width)
	cy := g.rng.Intn(grid.Height)
	radius := minRadius + g.rng.Intn(maxRadius-minRadius+1)

	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !grid.IsValidPosition(x, y) {
				continue
			}
			angle := math.Atan2(float64(y-cy), float64(x-cx))
			edge := float64(radius) + math.Sin(angle*3)*1.5
			if math.Hypot(float64(x-cx), float64(y-cy)) < edge {
				grid.SetTile(x, y, kind)
			}
		}
	}
}

// addPool places a tight water pool. Overworld pools stay walkable, so the
// collision cell is forced clear after the tile write.
func (g *TerrainGenerator) addPool(grid *Grid, minRadius, maxRadius int) {
	cx := g.rng.Intn(grid.Width)
	cy := g.rng.Intn(grid.Height)
	radius := minRadius + g.rng.Intn(maxRadius-minRadius+1)

	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !grid.IsValidPosition(x, y) {
				continue
			}
			if math.Hypot(float64(x-cx), float64(y-cy)) < float64(radius)*0.8 {
				grid.SetTile(x, y, TileWater)
				grid.SetDecoration(x, y, DecorationNone)
				grid.SetBlocking(x, y, false)
			}
		}
	}
}

// addStructures scatters abandoned built features over the map: intact
// rooms, crumbled ruins and lone wall runs. Placement is unconditional;
// overlapping structures are accepted as visual noise.
func (g *TerrainGenerator) addStructures(grid *Grid) {
	count := minStructures + g.rng.Intn(maxStructures-minStructures+1)
	for i := 0; i < count; i++ {
		switch g.rng.Intn(3) {
		case 0:
			g.addRoomStructure(grid)
		case 1:
			g.addRuin(grid)
		case 2:
			g.addWallRun(grid)
		}
	}
}

// addRoomStructure carves a small intact building: four walls around a stone
// floor with a doorway punched through one random side.
func (g *TerrainGenerator) addRoomStructure(grid *Grid) {
	w := 5 + g.rng.Intn(4)
	h := 5 + g.rng.Intn(4)
	x := 1 + g.rng.Intn(maxInt(1, grid.Width-w-2))
	y := 1 + g.rng.Intn(maxInt(1, grid.Height-h-2))

	for ty := y; ty < y+h; ty++ {
		for tx := x; tx < x+w; tx++ {
			if tx == x || tx == x+w-1 || ty == y || ty == y+h-1 {
				grid.SetTile(tx, ty, TileStoneWall)
			} else {
				grid.SetTile(tx, ty, TileStoneFloor)
			}
			grid.SetDecoration(tx, ty, DecorationNone)
		}
	}

	// Doorway on a random side, kept off the corners.
	switch g.rng.Intn(4) {
	case 0:
		grid.SetTile(x+1+g.rng.Intn(w-2), y, TileStoneFloor)
	case 1:
		grid.SetTile(x+1+g.rng.Intn(w-2), y+h-1, TileStoneFloor)
	case 2:
		grid.SetTile(x, y+1+g.rng.Intn(h-2), TileStoneFloor)
	case 3:
		grid.SetTile(x+w-1, y+1+g.rng.Intn(h-2), TileStoneFloor)
	}
}

// addRuin carves the same rectangle as a room but drops each wall cell with
// a 30% chance, leaving a collapsed shell.
func (g *TerrainGenerator) addRuin(grid *Grid) {
	w := 5 + g.rng.Intn(4)
	h := 5 + g.rng.Intn(4)
	x := 1 + g.rng.Intn(maxInt(1, grid.Width-w-2))
	y := 1 + g.rng.Intn(maxInt(1, grid.Height-h-2))

	for ty := y; ty < y+h; ty++ {
		for tx := x; tx < x+w; tx++ {
			if tx == x || tx == x+w-1 || ty == y || ty == y+h-1 {
				if g.rng.Float64() < 0.3 {
					continue
				}
				grid.SetTile(tx, ty, TileStoneWall)
			} else {
				grid.SetTile(tx, ty, TileStoneFloor)
			}
			grid.SetDecoration(tx, ty, DecorationNone)
		}
	}
}

// addWallRun places a free-standing wall segment, straight or L-shaped.
func (g *TerrainGenerator) addWallRun(grid *Grid) {
	length := 4 + g.rng.Intn(6)
	x := 1 + g.rng.Intn(maxInt(1, grid.Width-length-2))
	y := 1 + g.rng.Intn(maxInt(1, grid.Height-length-2))
	horizontal := g.rng.Intn(2) == 0

	for i := 0; i < length; i++ {
		if horizontal {
			grid.SetTile(x+i, y, TileStoneWall)
		} else {
			grid.SetTile(x, y+i, TileStoneWall)
		}
	}

	// Half the runs get a perpendicular elbow.
	if g.rng.Intn(2) == 0 {
		elbow := 2 + g.rng.Intn(4)
		for i := 0; i < elbow; i++ {
			if horizontal {
				grid.SetTile(x+length-1, y+i, TileStoneWall)
			} else {
				grid.SetTile(x+i, y+length-1, TileStoneWall)
			}
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
