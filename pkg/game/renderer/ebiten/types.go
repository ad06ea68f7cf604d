package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/renderer"
)

// renderSnapshot holds the latest scene handed over by the game loop
type renderSnapshot struct {
	valid bool
	scene renderer.Scene
}

// EbitenRenderer is the Ebiten-based graphical renderer. Ebiten calls
// Update and Draw on its own goroutine while the game loop calls
// RenderFrame and PollInput on another.
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int
	title        string

	monoFontSource *text.GoTextFaceSource
	cachedFace     *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Input gathered by Update since the game loop last polled
	pending    engineinput.Frame
	inputMutex sync.Mutex
	tick       chan struct{}

	// Last cursor position, for pointer deltas
	cursorX     int
	cursorKnown bool

	done      chan struct{}
	closeOnce sync.Once

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
