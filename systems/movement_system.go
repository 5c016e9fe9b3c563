package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tilequest/config"
	"tilequest/engine"
	"tilequest/world"
)

// MovementSystem owns the player's pixel position and converts keyboard
// input into collision-checked movement and interaction events.
type MovementSystem struct {
	bus *engine.EventBus

	X       int
	Y       int
	facingX int
	facingY int
}

// NewMovementSystem creates a movement system with the player facing south.
func NewMovementSystem(bus *engine.EventBus) *MovementSystem {
	return &MovementSystem{bus: bus, facingY: 1}
}

// SetPosition teleports the player to a tile, e.g. after a map transition.
func (s *MovementSystem) SetPosition(tileX, tileY int) {
	s.X = tileX * config.TileSize
	s.Y = tileY * config.TileSize
}

// TilePosition returns the tile the player currently stands on.
func (s *MovementSystem) TilePosition() (int, int) {
	cx := s.X + config.TileSize/2
	cy := s.Y + config.TileSize/2
	return cx / config.TileSize, cy / config.TileSize
}

// Update applies one tick of input: axis movement with per-axis collision,
// then the interact key against the tile the player faces.
func (s *MovementSystem) Update(grid *world.Grid) {
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= config.PlayerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += config.PlayerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= config.PlayerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += config.PlayerSpeed
	}

	moved := false
	if dx != 0 && s.canOccupy(grid, s.X+dx, s.Y) {
		s.X += dx
		moved = true
	}
	if dy != 0 && s.canOccupy(grid, s.X, s.Y+dy) {
		s.Y += dy
		moved = true
	}

	if dx != 0 || dy != 0 {
		s.facingX, s.facingY = sign(dx), sign(dy)
	}
	if moved {
		s.bus.Emit(PlayerMoveEvent{X: s.X + config.TileSize/2, Y: s.Y + config.TileSize/2})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyE) {
		tx := s.X + config.TileSize/2 + s.facingX*config.TileSize
		ty := s.Y + config.TileSize/2 + s.facingY*config.TileSize
		s.bus.Emit(InteractEvent{X: tx, Y: ty})
	}
}

// canOccupy checks the four corners of the player's tile-sized box against
// the collision grid.
func (s *MovementSystem) canOccupy(grid *world.Grid, px, py int) bool {
	inset := 1
	corners := [4][2]int{
		{px + inset, py + inset},
		{px + config.TileSize - inset, py + inset},
		{px + inset, py + config.TileSize - inset},
		{px + config.TileSize - inset, py + config.TileSize - inset},
	}
	for _, c := range corners {
		if grid.IsWall(c[0]/config.TileSize, c[1]/config.TileSize) {
			return false
		}
	}
	return true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
