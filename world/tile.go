// Package world implements the procedural map core: layered tile grids,
// noise-driven biome terrain, town layout and the multi-room puzzle dungeon.
package world

// TileKind is the discrete category of a grid cell's base surface.
type TileKind int

// Base tile kinds
const (
	TileGrass TileKind = iota
	TileDirt
	TileSand
	TileWater
	TileStone
	TileStoneFloor
	TileStoneWall
	TileDoor
	TileRoad
	TileBridge
	TileRitualFloor
	TileChasm
)

// DecorationKind is an optional overlay placed on top of a base tile.
type DecorationKind int

// Decoration kinds. DecorationNone marks an empty overlay cell.
const (
	DecorationNone DecorationKind = iota
	DecorationTree
	DecorationRock
	DecorationBush
	DecorationFlower
	DecorationReed
	DecorationEchoStone
	DecorationGolemCore
	DecorationGolemFragment
	DecorationPainting
	DecorationSealSigil
	DecorationRitualBrazier
	DecorationBossAltar
)

// BiomeKind classifies the ambient terrain style of a cell.
type BiomeKind int

// Biome kinds
const (
	BiomePlains BiomeKind = iota
	BiomeForest
	BiomeDesert
	BiomeSwamp
	BiomeMountain
)

// Blocks reports whether the tile kind is impassable on its own.
func (t TileKind) Blocks() bool {
	switch t {
	case TileStoneWall, TileChasm:
		return true
	default:
		return false
	}
}

// Blocks reports whether the decoration kind makes its cell impassable.
func (d DecorationKind) Blocks() bool {
	switch d {
	case DecorationTree, DecorationRock, DecorationGolemCore, DecorationBossAltar:
		return true
	default:
		return false
	}
}

// String returns a short name for the tile kind, used in logs and tests.
func (t TileKind) String() string {
	switch t {
	case TileGrass:
		return "grass"
	case TileDirt:
		return "dirt"
	case TileSand:
		return "sand"
	case TileWater:
		return "water"
	case TileStone:
		return "stone"
	case TileStoneFloor:
		return "stone_floor"
	case TileStoneWall:
		return "stone_wall"
	case TileDoor:
		return "door"
	case TileRoad:
		return "road"
	case TileBridge:
		return "bridge"
	case TileRitualFloor:
		return "ritual_floor"
	case TileChasm:
		return "chasm"
	default:
		return "unknown"
	}
}

// String returns a short name for the biome kind.
func (b BiomeKind) String() string {
	switch b {
	case BiomePlains:
		return "plains"
	case BiomeForest:
		return "forest"
	case BiomeDesert:
		return "desert"
	case BiomeSwamp:
		return "swamp"
	case BiomeMountain:
		return "mountain"
	default:
		return "unknown"
	}
}
