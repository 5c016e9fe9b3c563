package world

import (
	"testing"
)

func TestTownBuildingSeparation(t *testing.T) {
	for _, seed := range []int64{1, 42, 1337} {
		m := NewTownGenerator(seed).Generate(100, 100)
		for i := 0; i < len(m.Buildings); i++ {
			for j := i + 1; j < len(m.Buildings); j++ {
				if m.Buildings[i].expandedOverlaps(m.Buildings[j]) {
					t.Errorf("seed %d: buildings %q and %q overlap within one tile",
						seed, m.Buildings[i].Name, m.Buildings[j].Name)
				}
			}
		}
	}
}

func TestTownDegenerateSizeClamped(t *testing.T) {
	// Generation must survive map sizes too small for any layout.
	for _, dims := range [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 5}} {
		m := NewTownGenerator(1).Generate(dims[0], dims[1])
		if m.Width < 2 || m.Height < 2 {
			t.Fatalf("dimensions %v not clamped: %dx%d", dims, m.Width, m.Height)
		}
	}
}

func TestTownReproducibility(t *testing.T) {
	m1 := NewTownGenerator(42).Generate(100, 100)
	m2 := NewTownGenerator(42).Generate(100, 100)

	if len(m1.Buildings) != len(m2.Buildings) {
		t.Fatalf("building count mismatch: %d != %d", len(m1.Buildings), len(m2.Buildings))
	}
	for y := 0; y < m1.Height; y++ {
		for x := 0; x < m1.Width; x++ {
			if m1.Base[y][x] != m2.Base[y][x] {
				t.Fatalf("tile mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestTownDungeonEntrance(t *testing.T) {
	m := NewTownGenerator(42).Generate(100, 100)

	ex, ey := m.DungeonEntrance[0], m.DungeonEntrance[1]
	if !m.IsValidPosition(ex, ey) {
		t.Fatalf("entrance (%d,%d) is off the map", ex, ey)
	}
	if !m.IsWalkable(ex, ey) {
		t.Errorf("entrance tile (%d,%d) must stay walkable", ex, ey)
	}
	// The approach from the south stays open too.
	if !m.IsWalkable(ex, ey+1) {
		t.Errorf("entrance approach (%d,%d) is blocked", ex, ey+1)
	}
}

func TestTownWaterBlocks(t *testing.T) {
	m := NewTownGenerator(42).Generate(100, 100)

	found := false
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Base[y][x] == TileWater {
				found = true
				if !m.IsWall(x, y) {
					t.Fatalf("town water at (%d,%d) must block movement", x, y)
				}
			}
		}
	}
	if !found {
		t.Error("expected the fountain to place water tiles")
	}
}

func TestTownCollisionConsistency(t *testing.T) {
	m := NewTownGenerator(7).Generate(100, 100)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			want := m.Base[y][x].Blocks() || m.Decoration[y][x].Blocks() || m.Base[y][x] == TileWater
			if m.Collision[y][x] != want {
				t.Fatalf("collision at (%d,%d) = %v, want %v (tile %v)",
					x, y, m.Collision[y][x], want, m.Base[y][x])
			}
		}
	}
}

func TestTownNPCAnchorsWalkable(t *testing.T) {
	m := NewTownGenerator(42).Generate(100, 100)

	if len(m.NPCAnchors) == 0 {
		t.Fatal("expected NPC anchors for placed buildings")
	}
	for _, a := range m.NPCAnchors {
		if !m.IsWalkable(a[0], a[1]) {
			t.Errorf("NPC anchor (%d,%d) is not walkable", a[0], a[1])
		}
	}
}
