package config

// Screen and map layout configuration
const (
	// Tile size in pixels
	TileSize = 16

	// Window dimensions in tiles
	ScreenWidth  = 40
	ScreenHeight = 30

	// Window dimensions in pixels (derived from tile dimensions)
	WindowWidth  = ScreenWidth * TileSize
	WindowHeight = ScreenHeight * TileSize

	// Default map dimensions in tiles
	OverworldWidth  = 160
	OverworldHeight = 160
	TownWidth       = 100
	TownHeight      = 100
	DungeonWidth    = 100
	DungeonHeight   = 100

	// Player movement speed in pixels per tick
	PlayerSpeed = 2
)

// GetWindowSize returns the recommended window size in pixels.
func GetWindowSize() (width, height int) {
	return WindowWidth * 2, WindowHeight * 2
}
