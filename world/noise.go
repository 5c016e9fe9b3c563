package world

import (
	"github.com/aquilax/go-perlin"
)

// Noise parameters shared by both fields.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseScale   = 0.05
)

// NoiseField produces the two coherent scalar fields terrain generation is
// built on. Elevation and moisture use independent generators seeded from the
// map seed and seed+1 so the fields are uncorrelated but fully reproducible.
type NoiseField struct {
	elevation *perlin.Perlin
	moisture  *perlin.Perlin
}

// NewNoiseField creates a noise field pair for the given seed.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{
		elevation: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		moisture:  perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed+1),
	}
}

// Elevation samples the raw elevation field at a tile coordinate.
func (n *NoiseField) Elevation(x, y float64) float64 {
	return n.elevation.Noise2D(x*noiseScale, y*noiseScale)
}

// Moisture samples the raw moisture field at a tile coordinate.
func (n *NoiseField) Moisture(x, y float64) float64 {
	return n.moisture.Noise2D(x*noiseScale, y*noiseScale)
}

// normalizeField rescales a raw noise grid to [0,1] in place using its
// observed min/max. A perfectly constant field would divide by zero, so it
// normalizes to all zeros instead.
func normalizeField(field [][]float64) {
	if len(field) == 0 || len(field[0]) == 0 {
		return
	}
	min, max := field[0][0], field[0][0]
	for y := range field {
		for x := range field[y] {
			v := field[y][x]
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	span := max - min
	if span == 0 {
		for y := range field {
			for x := range field[y] {
				field[y][x] = 0
			}
		}
		return
	}

	for y := range field {
		for x := range field[y] {
			field[y][x] = (field[y][x] - min) / span
		}
	}
}
