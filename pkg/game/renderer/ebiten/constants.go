// Package ebiten provides an Ebiten-based graphical renderer drawing the
// map from above.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorFloor         = color.RGBA{60, 60, 80, 255}    // Room floors
	colorWall          = color.RGBA{180, 180, 200, 255} // Solid walls
	colorDoorOpen      = color.RGBA{0, 220, 0, 255}     // Bright green
	colorDoorLocked    = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorKey           = color.RGBA{100, 150, 255, 255} // Bright blue
	colorDecor         = color.RGBA{255, 150, 255, 255} // Bright pink
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorWon           = color.RGBA{100, 255, 150, 255} // Green for success
	colorPanel         = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 640

	baseFontSize = 16.0

	headerHeight = 40
	mapMargin    = 20

	// messageLines is how many of the latest messages are drawn
	messageLines = 5

	// keyTurnStep is the pointer delta one frame of a held turn key adds
	keyTurnStep = 4.0

	keyRadius    = 6
	playerRadius = 8
)
