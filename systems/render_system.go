package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"tilequest/config"
	"tilequest/world"
)

// tileColors maps each base tile kind to its flat fill color.
var tileColors = map[world.TileKind]color.RGBA{
	world.TileGrass:       {58, 121, 57, 255},
	world.TileDirt:        {121, 92, 52, 255},
	world.TileSand:        {212, 192, 120, 255},
	world.TileWater:       {52, 96, 168, 255},
	world.TileStone:       {130, 130, 130, 255},
	world.TileStoneFloor:  {88, 84, 80, 255},
	world.TileStoneWall:   {52, 50, 48, 255},
	world.TileDoor:        {139, 69, 19, 255},
	world.TileRoad:        {160, 144, 110, 255},
	world.TileBridge:      {150, 110, 60, 255},
	world.TileRitualFloor: {96, 60, 110, 255},
	world.TileChasm:       {18, 18, 28, 255},
}

// decorationColors maps decorations to their overlay colors.
var decorationColors = map[world.DecorationKind]color.RGBA{
	world.DecorationTree:          {28, 80, 28, 255},
	world.DecorationRock:          {105, 105, 105, 255},
	world.DecorationBush:          {46, 100, 46, 255},
	world.DecorationFlower:        {200, 120, 180, 255},
	world.DecorationReed:          {90, 130, 70, 255},
	world.DecorationEchoStone:     {120, 180, 220, 255},
	world.DecorationGolemCore:     {190, 120, 40, 255},
	world.DecorationGolemFragment: {220, 160, 70, 255},
	world.DecorationPainting:      {170, 140, 200, 255},
	world.DecorationSealSigil:     {220, 60, 60, 255},
	world.DecorationRitualBrazier: {240, 150, 40, 255},
	world.DecorationBossAltar:     {240, 230, 140, 255},
}

// RenderSystem draws the visible slice of the active map and the player as
// flat colored quads.
type RenderSystem struct {
	camera *CameraSystem
	pixel  *ebiten.Image
}

// NewRenderSystem creates a render system tied to the camera.
func NewRenderSystem(camera *CameraSystem) *RenderSystem {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &RenderSystem{camera: camera, pixel: pixel}
}

// Draw renders the map tiles inside the viewport, then the player.
func (s *RenderSystem) Draw(screen *ebiten.Image, grid *world.Grid, playerX, playerY int) {
	minX, minY, maxX, maxY := s.camera.VisibleTiles(grid)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			s.fillTile(screen, x, y, tileColors[grid.Base[y][x]])
			if deco := grid.Decoration[y][x]; deco != world.DecorationNone {
				s.fillDecoration(screen, x, y, decorationColors[deco])
			}
		}
	}

	// Player quad, slightly inset.
	sx, sy := s.camera.WorldToScreen(playerX, playerY)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(config.TileSize-4), float64(config.TileSize-4))
	op.GeoM.Translate(float64(sx+2), float64(sy+2))
	op.ColorScale.ScaleWithColor(color.RGBA{230, 220, 90, 255})
	screen.DrawImage(s.pixel, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
}

// fillTile fills one full tile cell in screen space.
func (s *RenderSystem) fillTile(screen *ebiten.Image, tileX, tileY int, c color.RGBA) {
	sx, sy := s.camera.WorldToScreen(tileX*config.TileSize, tileY*config.TileSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(config.TileSize), float64(config.TileSize))
	op.GeoM.Translate(float64(sx), float64(sy))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(s.pixel, op)
}

// fillDecoration fills the inner part of a tile cell, leaving the base tile
// visible as a border.
func (s *RenderSystem) fillDecoration(screen *ebiten.Image, tileX, tileY int, c color.RGBA) {
	sx, sy := s.camera.WorldToScreen(tileX*config.TileSize, tileY*config.TileSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(config.TileSize-6), float64(config.TileSize-6))
	op.GeoM.Translate(float64(sx+3), float64(sy+3))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(s.pixel, op)
}
