package constant

import (
	"math"
	"time"
)

// Camera
const (
	CameraFOV  = 75.0 // Vertical, degrees
	CameraNear = 0.1
	CameraFar  = 1000.0
)

// Camera placement, looking at the origin
var (
	CameraPosition = [3]float64{0, 2, 5}
	CameraTarget   = [3]float64{0, 0, 0}
)

// Lighting, fixed and not exposed through configuration
const (
	AmbientColor     = "#ffffff"
	AmbientIntensity = 0.5

	PointColor         = "#ffffff"
	PointIntensity     = 0.8
	PointDistance      = 100.0
	PointShadowMapSize = 1024
	PointShadowNear    = 0.5
	PointShadowFar     = 50.0
)

// PointPosition is the point light's world position
var PointPosition = [3]float64{2, 5, 5}

// BackgroundColor is the renderer clear color
const BackgroundColor = "#000000"

// Geometry
const (
	RadialSegments = 32
	CymbalTilt     = math.Pi / 16
	KickRoll       = math.Pi / 2
)

// Terminal surface
const (
	// PixelsPerCellX / PixelsPerCellY map a terminal cell to surface pixels (upper half block)
	PixelsPerCellX = 1
	PixelsPerCellY = 2

	// LegendRows is the height of the key legend bar at the bottom of the window
	LegendRows = 1

	// LegendPressDuration is how long a struck key stays highlighted in the legend
	LegendPressDuration = 100 * time.Millisecond

	// ShadowBias offsets shadow ray origins off the surface to avoid self-shadowing
	ShadowBias = 1e-4
)
