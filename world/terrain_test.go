package world

import (
	"testing"
)

func TestTerrainReproducibility(t *testing.T) {
	m1 := NewTerrainGenerator(42).Generate(80, 80)
	m2 := NewTerrainGenerator(42).Generate(80, 80)

	for y := 0; y < m1.Height; y++ {
		for x := 0; x < m1.Width; x++ {
			if m1.Base[y][x] != m2.Base[y][x] {
				t.Fatalf("base tile mismatch at (%d,%d): %v != %v", x, y, m1.Base[y][x], m2.Base[y][x])
			}
			if m1.Decoration[y][x] != m2.Decoration[y][x] {
				t.Fatalf("decoration mismatch at (%d,%d)", x, y)
			}
			if m1.Biome[y][x] != m2.Biome[y][x] {
				t.Fatalf("biome mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestTerrainDifferentSeeds(t *testing.T) {
	m1 := NewTerrainGenerator(42).Generate(80, 80)
	m2 := NewTerrainGenerator(1337).Generate(80, 80)

	identical := true
	for y := 0; y < m1.Height && identical; y++ {
		for x := 0; x < m1.Width && identical; x++ {
			if m1.Base[y][x] != m2.Base[y][x] {
				identical = false
			}
		}
	}
	if identical {
		t.Error("terrain with different seeds should not be identical")
	}
}

func TestTerrainCollisionConsistency(t *testing.T) {
	m := NewTerrainGenerator(42).Generate(80, 80)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			want := m.Base[y][x].Blocks() || m.Decoration[y][x].Blocks()
			if m.Collision[y][x] != want {
				t.Fatalf("collision at (%d,%d) = %v, want %v (tile %v, deco %d)",
					x, y, m.Collision[y][x], want, m.Base[y][x], m.Decoration[y][x])
			}
		}
	}
}

func TestTerrainBorderWalls(t *testing.T) {
	m := NewTerrainGenerator(7).Generate(60, 40)

	for x := 0; x < m.Width; x++ {
		if !m.IsWall(x, 0) || !m.IsWall(x, m.Height-1) {
			t.Fatalf("border at x=%d is open", x)
		}
	}
	for y := 0; y < m.Height; y++ {
		if !m.IsWall(0, y) || !m.IsWall(m.Width-1, y) {
			t.Fatalf("border at y=%d is open", y)
		}
	}
}

func TestTerrainQuadrantCarveOuts(t *testing.T) {
	m := NewTerrainGenerator(42).Generate(120, 120)

	// The north-east quadrant is forced above every noise value, so its
	// biome must come out mountain everywhere.
	for y := 1; y < m.Height/2-1; y++ {
		for x := m.Width/2 + 1; x < m.Width-1; x++ {
			if m.Biome[y][x] != BiomeMountain {
				t.Fatalf("north-east quadrant cell (%d,%d) is %v, want mountain", x, y, m.Biome[y][x])
			}
		}
	}

	// The south-west quadrant is forced bone dry.
	desert := 0
	total := 0
	for y := m.Height/2 + 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width/2-1; x++ {
			total++
			if m.Biome[y][x] == BiomeDesert {
				desert++
			}
		}
	}
	if desert != total {
		t.Errorf("south-west quadrant: %d/%d cells desert", desert, total)
	}
}

func TestTerrainSpawnIsWalkable(t *testing.T) {
	m := NewTerrainGenerator(99).Generate(80, 80)
	x, y := m.SpawnPosition()
	if !m.IsWalkable(x, y) {
		t.Errorf("spawn position (%d,%d) is not walkable", x, y)
	}
}
