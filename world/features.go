package world

import (
	"math"
)

// placeRoomFeatures lays down each room's type-specific interior: puzzle
// markers, hazards and the ritual chamber dressing. These are tile and
// decoration writes only, not separately modeled geometry.
func (g *DungeonGenerator) placeRoomFeatures(m *DungeonMap) {
	for _, r := range m.Rooms {
		switch r.Kind {
		case RoomHallOfEchoes:
			g.placeEchoStones(m, r)
		case RoomGolemForge:
			g.placeGolemForge(m, r)
		case RoomChasmOfWhispers:
			g.placeChasm(m, r)
		case RoomGalleryOfShadows:
			g.placePaintings(m, r)
		case RoomSanctumOfSeals:
			g.placeSeals(m, r)
		case RoomRitualChamber:
			g.placeRitualCircle(m, r)
		}
	}
}

// placeEchoStones scatters the five sound markers over the hall's floor.
func (g *DungeonGenerator) placeEchoStones(m *DungeonMap, r *Room) {
	placed := 0
	for attempt := 0; attempt < 50 && placed < 5; attempt++ {
		x := r.X + 1 + g.rng.Intn(r.Width-2)
		y := r.Y + 1 + g.rng.Intn(r.Height-2)
		if m.TileAt(x, y) != TileStoneFloor || m.DecorationAt(x, y) != DecorationNone {
			continue
		}
		m.SetDecoration(x, y, DecorationEchoStone)
		placed++
	}
}

// placeGolemForge puts the dormant titan at the room center and its three
// fragments on a ring at 120 degree spacing.
func (g *DungeonGenerator) placeGolemForge(m *DungeonMap, r *Room) {
	cx, cy := r.Center()
	m.SetDecoration(cx, cy, DecorationGolemCore)

	radius := float64(minInt(r.Width, r.Height))/2 - 2
	if radius < 2 {
		radius = 2
	}
	for i := 0; i < 3; i++ {
		angle := float64(i) * 2 * math.Pi / 3
		x := cx + int(radius*math.Cos(angle))
		y := cy + int(radius*math.Sin(angle))
		if m.TileAt(x, y) == TileStoneFloor {
			m.SetDecoration(x, y, DecorationGolemFragment)
		}
	}
}

// placeChasm floods the middle of the room with a chasm and carves a
// jittered single-tile bridge across it. A one-tile floor ring stays clear
// along the walls so doors never open straight into the drop.
func (g *DungeonGenerator) placeChasm(m *DungeonMap, r *Room) {
	top := r.Y + 2
	bottom := r.Y + r.Height - 3
	for y := top; y <= bottom; y++ {
		for x := r.X + 2; x < r.X+r.Width-2; x++ {
			m.SetTile(x, y, TileChasm)
			m.SetDecoration(x, y, DecorationNone)
		}
	}

	// Bridge from the south lip to the north lip, wobbling by one tile.
	x, _ := r.Center()
	for y := bottom; y >= top; y-- {
		m.SetTile(x, y, TileBridge)
		x += g.rng.Intn(3) - 1
		x = clampInt(x, r.X+2, r.X+r.Width-3)
	}
}

// placePaintings mounts four painting markers on floor cells hugging the
// gallery's side walls.
func (g *DungeonGenerator) placePaintings(m *DungeonMap, r *Room) {
	spots := [][2]int{
		{r.X + 1, r.Y + 1},
		{r.X + r.Width - 2, r.Y + 1},
		{r.X + 1, r.Y + r.Height - 2},
		{r.X + r.Width - 2, r.Y + r.Height - 2},
	}
	for _, s := range spots {
		if m.TileAt(s[0], s[1]) == TileStoneFloor {
			m.SetDecoration(s[0], s[1], DecorationPainting)
		}
	}
}

// placeSeals puts an elemental sigil at each cardinal point of the sanctum,
// one tile in from the wall.
func (g *DungeonGenerator) placeSeals(m *DungeonMap, r *Room) {
	cx, cy := r.Center()
	spots := [][2]int{
		{cx, r.Y + 1},
		{r.X + r.Width - 2, cy},
		{cx, r.Y + r.Height - 2},
		{r.X + 1, cy},
	}
	for _, s := range spots {
		if m.TileAt(s[0], s[1]) == TileStoneFloor {
			m.SetDecoration(s[0], s[1], DecorationSealSigil)
		}
	}
}

// placeRitualCircle paints the circular ritual floor, rings it with braziers
// and raises the altar at its center.
func (g *DungeonGenerator) placeRitualCircle(m *DungeonMap, r *Room) {
	cx, cy := r.Center()
	radius := float64(minInt(r.Width, r.Height))/2 - 1

	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		for x := r.X + 1; x < r.X+r.Width-1; x++ {
			dist := math.Hypot(float64(x-cx), float64(y-cy))
			if dist < radius-1 {
				m.SetTile(x, y, TileRitualFloor)
			} else if dist < radius {
				m.SetTile(x, y, TileRitualFloor)
				m.SetDecoration(x, y, DecorationRitualBrazier)
			}
		}
	}
	m.SetDecoration(cx, cy, DecorationBossAltar)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
