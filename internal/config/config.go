package config

import "sync"

// ViewSettings holds presentation configuration read by the viewer.
type ViewSettings struct {
	mu         sync.RWMutex
	pixelScale int // screen pixels per grid cell
	legend     bool
}

var globalViewSettings = &ViewSettings{
	pixelScale: 1,
	legend:     false,
}

// GetPixelScale returns how many screen pixels each grid cell covers
func GetPixelScale() int {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.pixelScale
}

// SetPixelScale sets the cell size in screen pixels
func SetPixelScale(scale int) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()

	// Clamp to reasonable values
	if scale < 1 {
		scale = 1
	}
	if scale > 8 {
		scale = 8
	}

	globalViewSettings.pixelScale = scale
}

// GetLegend returns whether the band legend is drawn over the map
func GetLegend() bool {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.legend
}

// SetLegend toggles the band legend
func SetLegend(enabled bool) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.legend = enabled
}
