package config

import (
	"runtime"
	"sync"
)

// NoiseSource selects the coherent noise used for terrain density.
type NoiseSource int

const (
	NoiseSimplex NoiseSource = iota
	NoiseValue
)

func (s NoiseSource) String() string {
	switch s {
	case NoiseSimplex:
		return "simplex"
	case NoiseValue:
		return "value"
	default:
		return "unknown"
	}
}

// WorldGenSettings holds world generation configuration
type WorldGenSettings struct {
	mu         sync.RWMutex
	seed       int64
	octaves    int
	wavelength float64
	noise      NoiseSource
	workers    int
}

var globalWorldGenSettings = &WorldGenSettings{
	seed:       1,
	octaves:    4,
	wavelength: 16,
	noise:      NoiseSimplex,
	workers:    runtime.NumCPU(),
}

// WorldGen is a point-in-time copy of the generation settings.
type WorldGen struct {
	Seed       int64
	Octaves    int
	Wavelength float64
	Noise      NoiseSource
	Workers    int
}

// GetWorldGen returns a consistent snapshot of all generation settings
func GetWorldGen() WorldGen {
	s := globalWorldGenSettings
	s.mu.RLock()
	defer s.mu.RUnlock()
	return WorldGen{
		Seed:       s.seed,
		Octaves:    s.octaves,
		Wavelength: s.wavelength,
		Noise:      s.noise,
		Workers:    s.workers,
	}
}

func GetSeed() int64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.seed
}

func SetSeed(seed int64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.seed = seed
}

// GetOctaves returns the number of fractal noise octaves
func GetOctaves() int {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.octaves
}

func SetOctaves(octaves int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	if octaves < 1 {
		octaves = 1
	}
	if octaves > 8 {
		octaves = 8
	}
	globalWorldGenSettings.octaves = octaves
}

// GetWavelength returns the base noise wavelength in blocks
func GetWavelength() float64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.wavelength
}

func SetWavelength(wavelength float64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	if wavelength < 1 {
		wavelength = 1
	}
	globalWorldGenSettings.wavelength = wavelength
}

func GetNoiseSource() NoiseSource {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.noise
}

func SetNoiseSource(source NoiseSource) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.noise = source
}

// GetGenerationWorkers returns how many chunks may be generated concurrently
func GetGenerationWorkers() int {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.workers
}

func SetGenerationWorkers(n int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.workers = clampWorkers(n)
}
