package systems

import (
	"tilequest/config"
	"tilequest/engine"
	"tilequest/world"
)

// CameraSystem handles viewport positioning and scrolling. It follows a
// pixel-space target and clamps the viewport to the active map's bounds.
type CameraSystem struct {
	bus *engine.EventBus

	X int
	Y int
}

// NewCameraSystem creates a new camera system.
func NewCameraSystem(bus *engine.EventBus) *CameraSystem {
	return &CameraSystem{bus: bus}
}

// Update centers the camera on the target pixel position, constrained to
// the map boundaries, and emits an event when the viewport moved.
func (s *CameraSystem) Update(grid *world.Grid, targetX, targetY int) {
	mapW := grid.Width * config.TileSize
	mapH := grid.Height * config.TileSize

	x := targetX - config.WindowWidth/2
	y := targetY - config.WindowHeight/2

	if x < 0 {
		x = 0
	} else if x > mapW-config.WindowWidth {
		x = mapW - config.WindowWidth
	}
	if y < 0 {
		y = 0
	} else if y > mapH-config.WindowHeight {
		y = mapH - config.WindowHeight
	}

	// Maps smaller than the viewport pin to the origin.
	if mapW <= config.WindowWidth {
		x = 0
	}
	if mapH <= config.WindowHeight {
		y = 0
	}

	if x != s.X || y != s.Y {
		s.X, s.Y = x, y
		s.bus.Emit(CameraUpdateEvent{X: x, Y: y})
	}
}

// WorldToScreen converts world pixel coordinates to screen coordinates.
func (s *CameraSystem) WorldToScreen(worldX, worldY int) (screenX, screenY int) {
	return worldX - s.X, worldY - s.Y
}

// ScreenToWorld converts screen coordinates to world pixel coordinates.
func (s *CameraSystem) ScreenToWorld(screenX, screenY int) (worldX, worldY int) {
	return screenX + s.X, screenY + s.Y
}

// VisibleTiles returns the tile rectangle covered by the viewport, expanded
// by one tile so edge tiles draw while scrolling.
func (s *CameraSystem) VisibleTiles(grid *world.Grid) (minX, minY, maxX, maxY int) {
	minX = s.X/config.TileSize - 1
	minY = s.Y/config.TileSize - 1
	maxX = (s.X+config.WindowWidth)/config.TileSize + 1
	maxY = (s.Y+config.WindowHeight)/config.TileSize + 1

	minX = clamp(minX, 0, grid.Width-1)
	minY = clamp(minY, 0, grid.Height-1)
	maxX = clamp(maxX, 0, grid.Width-1)
	maxY = clamp(maxY, 0, grid.Height-1)
	return
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
