package world

import (
	"testing"

	"tilequest/config"
)

func TestGridCollisionStaysInSync(t *testing.T) {
	g := NewGrid(10, 10)

	g.SetTile(3, 3, TileStoneWall)
	if !g.IsWall(3, 3) {
		t.Error("stone wall should block")
	}

	g.SetTile(3, 3, TileGrass)
	if g.IsWall(3, 3) {
		t.Error("grass should not block")
	}

	g.SetDecoration(3, 3, DecorationTree)
	if !g.IsWall(3, 3) {
		t.Error("tree decoration should block")
	}

	g.SetDecoration(3, 3, DecorationFlower)
	if g.IsWall(3, 3) {
		t.Error("flower decoration should not block")
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(10, 10)

	if !g.IsWall(-1, 5) || !g.IsWall(5, 10) {
		t.Error("out of bounds should read as wall")
	}
	if g.IsWalkable(10, 5) {
		t.Error("out of bounds should not be walkable")
	}
	if g.IsValidPosition(10, 0) || g.IsValidPosition(0, -1) {
		t.Error("out of bounds should not be valid")
	}
	if g.TileAt(-1, -1) != TileStoneWall {
		t.Error("out of bounds tile should read as stone wall")
	}
}

func TestGridDegenerateSizeClamped(t *testing.T) {
	g := NewGrid(1, 0)
	if g.Width < 2 || g.Height < 2 {
		t.Fatalf("degenerate dimensions not clamped: %dx%d", g.Width, g.Height)
	}
	g.AddBorderWalls()
}

func TestGridWallsMatchCollision(t *testing.T) {
	g := NewGrid(8, 8)
	g.SetTile(2, 2, TileStoneWall)
	g.SetTile(5, 6, TileStoneWall)
	g.SetDecoration(1, 4, DecorationRock)

	walls := g.Walls()
	if len(walls) != 3 {
		t.Fatalf("expected 3 wall rects, got %d", len(walls))
	}
	for _, r := range walls {
		if r.Dx() != config.TileSize || r.Dy() != config.TileSize {
			t.Errorf("wall rect %v is not tile sized", r)
		}
		x := r.Min.X / config.TileSize
		y := r.Min.Y / config.TileSize
		if !g.Collision[y][x] {
			t.Errorf("wall rect %v does not cover a blocking cell", r)
		}
	}

	// Mutations invalidate the cache.
	g.SetTile(2, 2, TileGrass)
	if len(g.Walls()) != 2 {
		t.Error("walls cache not rebuilt after mutation")
	}
}

func TestGridTileAtPosition(t *testing.T) {
	g := NewGrid(10, 10)
	g.SetTile(4, 7, TileWater)

	kind, ok := g.TileAtPosition(4*config.TileSize+3, 7*config.TileSize+15)
	if !ok || kind != TileWater {
		t.Errorf("expected water at pixel position, got %v (ok=%v)", kind, ok)
	}

	if _, ok := g.TileAtPosition(-5, 0); ok {
		t.Error("negative pixel position should not resolve")
	}
}
