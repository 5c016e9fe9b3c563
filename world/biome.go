package world

import (
	"math/rand"
)

// biomeRange binds a biome to the elevation/moisture window that selects it.
// Classification is first-match in declaration order, so broader biomes must
// come after the ones they would otherwise shadow.
type biomeRange struct {
	biome        BiomeKind
	elevationMin float64
	elevationMax float64
	moistureMin  float64
	moistureMax  float64
}

// biomeTable is scanned top to bottom; the first row whose both windows
// contain the inputs wins. Plains is the fallback when nothing matches.
var biomeTable = []biomeRange{
	{BiomeMountain, 0.75, 1.0, 0.0, 1.0},
	{BiomeDesert, 0.0, 0.75, 0.0, 0.25},
	{BiomeSwamp, 0.0, 0.35, 0.7, 1.0},
	{BiomeForest, 0.35, 0.75, 0.55, 1.0},
	{BiomePlains, 0.0, 0.75, 0.25, 0.7},
}

// ClassifyBiome maps a normalized elevation/moisture pair to a biome.
// Both inputs are expected in [0,1]; anything unmatched falls back to plains.
func ClassifyBiome(elevation, moisture float64) BiomeKind {
	for _, r := range biomeTable {
		if elevation >= r.elevationMin && elevation <= r.elevationMax &&
			moisture >= r.moistureMin && moisture <= r.moistureMax {
			return r.biome
		}
	}
	return BiomePlains
}

// weightedTile pairs a candidate tile with its selection weight.
type weightedTile struct {
	kind   TileKind
	weight int
}

// weightedDecoration pairs a candidate decoration with its selection weight.
type weightedDecoration struct {
	kind   DecorationKind
	weight int
}

// baseTilesByBiome holds the weighted base-tile distribution for each biome.
var baseTilesByBiome = map[BiomeKind][]weightedTile{
	BiomePlains:   {{TileGrass, 80}, {TileDirt, 20}},
	BiomeForest:   {{TileGrass, 70}, {TileDirt, 30}},
	BiomeDesert:   {{TileSand, 90}, {TileDirt, 10}},
	BiomeSwamp:    {{TileDirt, 45}, {TileWater, 30}, {TileGrass, 25}},
	BiomeMountain: {{TileStone, 70}, {TileDirt, 30}},
}

// decorationsByBiome holds the weighted decoration distribution for each
// biome, drawn from when the flat decoration chance hits.
var decorationsByBiome = map[BiomeKind][]weightedDecoration{
	BiomePlains:   {{DecorationFlower, 40}, {DecorationBush, 35}, {DecorationTree, 25}},
	BiomeForest:   {{DecorationTree, 70}, {DecorationBush, 20}, {DecorationFlower, 10}},
	BiomeDesert:   {{DecorationRock, 80}, {DecorationBush, 20}},
	BiomeSwamp:    {{DecorationReed, 70}, {DecorationBush, 20}, {DecorationTree, 10}},
	BiomeMountain: {{DecorationRock, 75}, {DecorationBush, 25}},
}

// pickBaseTile draws a base tile from the biome's weighted distribution.
func pickBaseTile(rng *rand.Rand, biome BiomeKind) TileKind {
	tiles := baseTilesByBiome[biome]
	if len(tiles) == 0 {
		return TileGrass
	}
	total := 0
	for _, t := range tiles {
		total += t.weight
	}
	roll := rng.Intn(total)
	for _, t := range tiles {
		roll -= t.weight
		if roll < 0 {
			return t.kind
		}
	}
	return tiles[0].kind
}

// pickDecoration draws a decoration from the biome's weighted distribution.
func pickDecoration(rng *rand.Rand, biome BiomeKind) DecorationKind {
	decos := decorationsByBiome[biome]
	if len(decos) == 0 {
		return DecorationNone
	}
	total := 0
	for _, d := range decos {
		total += d.weight
	}
	roll := rng.Intn(total)
	for _, d := range decos {
		roll -= d.weight
		if roll < 0 {
			return d.kind
		}
	}
	return decos[0].kind
}
