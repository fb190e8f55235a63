package world

import (
	"log"
	"time"

	"cardboard/internal/config"
	"cardboard/internal/geom"
)

// Generator turns fractal noise into solid blocks. It is safe for concurrent
// use once built.
type Generator struct {
	noise Brownian
}

// NewGenerator builds a generator from explicit parameters.
func NewGenerator(kind config.NoiseSource, seed int64, octaves int, wavelength float64) *Generator {
	return &Generator{noise: NewBrownian(NewSource(kind, seed), octaves, wavelength)}
}

// NewGeneratorFromConfig builds a generator from the current world gen settings.
func NewGeneratorFromConfig() *Generator {
	s := config.GetWorldGen()
	return NewGenerator(s.Noise, s.Seed, s.Octaves, s.Wavelength)
}

// GenerateBlocks returns the solid blocks inside box using the configured noise.
func GenerateBlocks(box geom.Box3) []Block {
	return NewGeneratorFromConfig().GenerateBlocks(box)
}

// GenerateBlocks samples the noise at every lattice point of box. A point is
// solid when the noise, mapped to [0, 1], reaches the point's height within
// the box, mapped the same way. Output is ordered by y, then x, then z.
func (g *Generator) GenerateBlocks(box geom.Box3) []Block {
	start := time.Now()

	yScale := 0.0
	if box.Max.Y > box.Min.Y {
		yScale = 1.0 / float64(box.Max.Y-box.Min.Y)
	}

	var blocks []Block
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		normalizedY := float64(y-box.Min.Y) * yScale
		for x := box.Min.X; x <= box.Max.X; x++ {
			for z := box.Min.Z; z <= box.Max.Z; z++ {
				v := g.noise.Eval3(float64(x), float64(y), float64(z))
				if 0.5*(v+1) >= normalizedY {
					blocks = append(blocks, Block{X: x, Y: y, Z: z})
				}
			}
		}
	}

	log.Printf("world: generated %v..%v in %.3fms, %d blocks",
		box.Min, box.Max, float64(time.Since(start).Microseconds())/1000, len(blocks))
	return blocks
}
