package config

import (
	"runtime"
	"sync"
)

// RenderSettings holds render configuration
type RenderSettings struct {
	mu            sync.RWMutex
	horizonRadius float32 // in blocks
	fpsLimit      int
	vsync         bool
	meshWorkers   int
}

var globalRenderSettings = &RenderSettings{
	horizonRadius: 60,
	fpsLimit:      0, // uncapped, vsync paces the loop
	vsync:         true,
	meshWorkers:   max(1, runtime.NumCPU()/2),
}

// GetHorizonRadius returns the radius around the start position inside which
// chunks are generated.
func GetHorizonRadius() float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.horizonRadius
}

// SetHorizonRadius sets the horizon radius in blocks
func SetHorizonRadius(radius float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// One chunk at minimum, anything past the far plane is wasted
	if radius < 17 {
		radius = 17
	}
	if radius > 200 {
		radius = 200
	}

	globalRenderSettings.horizonRadius = radius
}

// GetFPSLimit returns the frame cap, 0 means uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 240 {
		limit = 240
	}

	globalRenderSettings.fpsLimit = limit
}

func GetVSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

func SetVSync(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = enabled
}

// GetMeshWorkers returns how many goroutines build chunk meshes at init
func GetMeshWorkers() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.meshWorkers
}

func SetMeshWorkers(n int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.meshWorkers = clampWorkers(n)
}

func clampWorkers(n int) int {
	if n < 1 {
		return 1
	}
	if n > 64 {
		return 64
	}
	return n
}
