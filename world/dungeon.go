package world

import (
	"fmt"
	"math/rand"
)

// RoomKind identifies the typed rooms of the dungeon sequence.
type RoomKind int

// Dungeon room kinds, in generation order from the entrance up to the
// ritual chamber.
const (
	RoomEntrance RoomKind = iota
	RoomOuterCourtyard
	RoomHallOfEchoes
	RoomGolemForge
	RoomChasmOfWhispers
	RoomGalleryOfShadows
	RoomSanctumOfSeals
	RoomRitualChamber
)

// roomSequence is the fixed order rooms are generated and connected in.
var roomSequence = []RoomKind{
	RoomEntrance,
	RoomOuterCourtyard,
	RoomHallOfEchoes,
	RoomGolemForge,
	RoomChasmOfWhispers,
	RoomGalleryOfShadows,
	RoomSanctumOfSeals,
	RoomRitualChamber,
}

// String returns the display name of the room kind.
func (k RoomKind) String() string {
	switch k {
	case RoomEntrance:
		return "Entrance"
	case RoomOuterCourtyard:
		return "Outer Courtyard"
	case RoomHallOfEchoes:
		return "Hall of Echoes"
	case RoomGolemForge:
		return "Golem Forge"
	case RoomChasmOfWhispers:
		return "Chasm of Whispers"
	case RoomGalleryOfShadows:
		return "Gallery of Shadows"
	case RoomSanctumOfSeals:
		return "Sanctum of Seals"
	case RoomRitualChamber:
		return "Ritual Chamber"
	default:
		return "Unknown"
	}
}

// roomBounds holds the size window a room kind is rolled within.
type roomBounds struct {
	minW, maxW int
	minH, maxH int
}

// roomBoundsByKind configures the per-kind room size windows.
// Heights stay below the vertical band spacing so consecutive rooms never
// collide.
var roomBoundsByKind = map[RoomKind]roomBounds{
	RoomEntrance:         {9, 13, 5, 7},
	RoomOuterCourtyard:   {12, 18, 6, 9},
	RoomHallOfEchoes:     {14, 20, 6, 8},
	RoomGolemForge:       {12, 16, 7, 9},
	RoomChasmOfWhispers:  {16, 22, 7, 9},
	RoomGalleryOfShadows: {14, 20, 6, 8},
	RoomSanctumOfSeals:   {11, 15, 7, 9},
	RoomRitualChamber:    {13, 17, 8, 9},
}

// Room is a rectangular, walled, typed dungeon area. Rooms are created once
// during generation and only gain doors and connections afterward.
type Room struct {
	Kind      RoomKind
	X, Y      int
	Width     int
	Height    int
	Connected []*Room
	Doors     [][2]int
}

// Center returns the room's integer center tile.
func (r *Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains reports whether the tile lies inside the room, border included.
func (r *Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// IsBorder reports whether the tile lies on the room's perimeter.
func (r *Room) IsBorder(x, y int) bool {
	if !r.Contains(x, y) {
		return false
	}
	return x == r.X || x == r.X+r.Width-1 || y == r.Y || y == r.Y+r.Height-1
}

// IsConnectedTo reports whether a direct connection to the other room exists.
func (r *Room) IsConnectedTo(other *Room) bool {
	for _, c := range r.Connected {
		if c == other {
			return true
		}
	}
	return false
}

// AddConnection records an undirected adjacency between two rooms.
// Self-loops and duplicate edges are ignored.
func (r *Room) AddConnection(other *Room) {
	if r == other || r.IsConnectedTo(other) {
		return
	}
	r.Connected = append(r.Connected, other)
	other.Connected = append(other.Connected, r)
}

// AddDoor registers a door tile on the room, once per position.
func (r *Room) AddDoor(x, y int) {
	for _, d := range r.Doors {
		if d[0] == x && d[1] == y {
			return
		}
	}
	r.Doors = append(r.Doors, [2]int{x, y})
}

// DungeonMap is the generated dungeon: the grid plus the room graph.
type DungeonMap struct {
	*Grid
	Seed  int64
	Rooms []*Room

	// ExitGate is the door in the entrance room's south wall that leads
	// back out of the dungeon.
	ExitGate [2]int

	entrance *Room
	ritual   *Room
}

// RoomAt returns the room containing the tile, or nil when the tile is in a
// corridor or solid rock.
func (m *DungeonMap) RoomAt(x, y int) *Room {
	for _, r := range m.Rooms {
		if r.Contains(x, y) {
			return r
		}
	}
	return nil
}

// RoomOfKind returns the first room of the given kind, or nil.
func (m *DungeonMap) RoomOfKind(kind RoomKind) *Room {
	for _, r := range m.Rooms {
		if r.Kind == kind {
			return r
		}
	}
	return nil
}

// SpawnPosition returns the entrance room's center, falling back to a
// generic walkable-tile search if the entrance is somehow missing.
func (m *DungeonMap) SpawnPosition() (int, int) {
	if m.entrance != nil {
		return m.entrance.Center()
	}
	return m.FindWalkable()
}

// ExitPosition returns the ritual chamber's center, falling back to the map
// center.
func (m *DungeonMap) ExitPosition() (int, int) {
	if m.ritual != nil {
		return m.ritual.Center()
	}
	return m.Width / 2, m.Height / 2
}

// UnlockRitualChamber rewrites every sealed door of the ritual chamber from
// wall back to door. Running it twice is a no-op the second time.
func (m *DungeonMap) UnlockRitualChamber() {
	if m.ritual == nil {
		return
	}
	for _, d := range m.ritual.Doors {
		m.SetTile(d[0], d[1], TileDoor)
	}
}

// DungeonGenerator handles procedural generation of the puzzle dungeon.
type DungeonGenerator struct {
	rng  *rand.Rand
	seed int64

	corridors [][2]int
}

// NewDungeonGenerator creates a dungeon generator for the given seed.
func NewDungeonGenerator(seed int64) *DungeonGenerator {
	return &DungeonGenerator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// SetSeed reseeds the generator for reproducible dungeons.
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.seed = seed
}

// Generate builds the full dungeon: the fixed room sequence bottom to top,
// corridors between consecutive rooms, shortcut connections, doors, room
// features and finally the ritual chamber seal.
func (g *DungeonGenerator) Generate(width, height int) *DungeonMap {
	grid := NewGrid(width, height)
	m := &DungeonMap{Grid: grid, Seed: g.seed}
	g.corridors = g.corridors[:0]

	// Dungeons start as solid rock.
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			grid.SetTile(x, y, TileStoneWall)
		}
	}

	g.placeRooms(m)
	g.connectSequence(m)
	g.addShortcuts(m)
	g.placeDoors(m)
	g.carveEntranceGate(m)
	g.placeRoomFeatures(m)
	g.sealRitualChamber(m)

	grid.Walls()
	fmt.Printf("dungeon: generated %d rooms, %d corridor tiles\n", len(m.Rooms), len(g.corridors))

	return m
}

// placeRooms rolls and carves each room of the sequence. Vertical placement
// divides the map into one band per room plus one, entrance at the bottom.
func (g *DungeonGenerator) placeRooms(m *DungeonMap) {
	band := m.Height / (len(roomSequence) + 1)

	for i, kind := range roomSequence {
		bounds := roomBoundsByKind[kind]
		w := bounds.minW + g.rng.Intn(bounds.maxW-bounds.minW+1)
		h := bounds.minH + g.rng.Intn(bounds.maxH-bounds.minH+1)

		x := m.Width/2 - w/2 + g.rng.Intn(21) - 10
		x = clampInt(x, 1, maxInt(1, m.Width-w-1))
		y := m.Height - (i+1)*band - h/2
		y = clampInt(y, 1, maxInt(1, m.Height-h-1))

		room := &Room{Kind: kind, X: x, Y: y, Width: w, Height: h}
		g.carveRoom(m.Grid, room)
		m.Rooms = append(m.Rooms, room)

		switch kind {
		case RoomEntrance:
			m.entrance = room
		case RoomRitualChamber:
			m.ritual = room
		}
	}
}

// carveRoom writes the room rectangle: wall perimeter, stone floor interior.
func (g *DungeonGenerator) carveRoom(grid *Grid, r *Room) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if r.IsBorder(x, y) {
				grid.SetTile(x, y, TileStoneWall)
			} else {
				grid.SetTile(x, y, TileStoneFloor)
			}
		}
	}
}

// connectSequence carves a corridor between each pair of consecutive rooms.
func (g *DungeonGenerator) connectSequence(m *DungeonMap) {
	for i := 0; i < len(m.Rooms)-1; i++ {
		g.connectRooms(m, m.Rooms[i], m.Rooms[i+1])
		m.Rooms[i].AddConnection(m.Rooms[i+1])
	}
}

// addShortcuts adds 2-4 extra connections between rooms that aren't already
// directly connected, using the same carving routine.
func (g *DungeonGenerator) addShortcuts(m *DungeonMap) {
	count := 2 + g.rng.Intn(3)
	placed := 0
	for attempt := 0; attempt < 40 && placed < count; attempt++ {
		a := m.Rooms[g.rng.Intn(len(m.Rooms))]
		b := m.Rooms[g.rng.Intn(len(m.Rooms))]
		if a == b || a.IsConnectedTo(b) {
			continue
		}
		g.connectRooms(m, a, b)
		a.AddConnection(b)
		placed++
	}
}

// connectRooms carves an L-shaped corridor between two room centers,
// stepping along x first and then y. Cells inside any room are skipped;
// every carved cell walls in its free neighbors.
func (g *DungeonGenerator) connectRooms(m *DungeonMap, a, b *Room) {
	x, y := a.Center()
	tx, ty := b.Center()

	for x != tx {
		g.carveCorridorCell(m, x, y)
		if tx > x {
			x++
		} else {
			x--
		}
	}
	for y != ty {
		g.carveCorridorCell(m, x, y)
		if ty > y {
			y++
		} else {
			y--
		}
	}
	g.carveCorridorCell(m, x, y)
}

// carveCorridorCell opens one corridor tile and walls in its 8 neighbors
// unless they are already floor or belong to a room.
func (g *DungeonGenerator) carveCorridorCell(m *DungeonMap, x, y int) {
	if m.RoomAt(x, y) != nil {
		return
	}
	if m.TileAt(x, y) != TileStoneFloor {
		m.SetTile(x, y, TileStoneFloor)
		g.corridors = append(g.corridors, [2]int{x, y})
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !m.IsValidPosition(nx, ny) {
				continue
			}
			if m.TileAt(nx, ny) == TileStoneFloor || m.RoomAt(nx, ny) != nil {
				continue
			}
			m.SetTile(nx, ny, TileStoneWall)
		}
	}
}

// placeDoors converts room border walls that touch a corridor into doors and
// registers each door on its room.
func (g *DungeonGenerator) placeDoors(m *DungeonMap) {
	dirs := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for _, c := range g.corridors {
		for _, d := range dirs {
			nx, ny := c[0]+d[0], c[1]+d[1]
			if m.TileAt(nx, ny) != TileStoneWall {
				continue
			}
			for _, r := range m.Rooms {
				if r.IsBorder(nx, ny) {
					m.SetTile(nx, ny, TileDoor)
					r.AddDoor(nx, ny)
					break
				}
			}
		}
	}
}

// carveEntranceGate opens a door in the middle of the entrance room's south
// wall. It is the way back to the surface, so it is tracked on the map
// rather than in the room's corridor doors.
func (g *DungeonGenerator) carveEntranceGate(m *DungeonMap) {
	if m.entrance == nil {
		return
	}
	x := m.entrance.X + m.entrance.Width/2
	y := m.entrance.Y + m.entrance.Height - 1
	m.SetTile(x, y, TileDoor)
	m.ExitGate = [2]int{x, y}
}

// sealRitualChamber closes every door of the ritual chamber back into wall.
// The dungeon handler reopens them once all puzzles are solved.
func (g *DungeonGenerator) sealRitualChamber(m *DungeonMap) {
	if m.ritual == nil {
		return
	}
	for _, d := range m.ritual.Doors {
		m.SetTile(d[0], d[1], TileStoneWall)
	}
}
