package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/logger"
)

type keyCode struct {
	key  ebiten.Key
	code string
}

// heldKeys act for as long as they are down
var heldKeys = []keyCode{
	{ebiten.KeyW, "w"},
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
}

// releasedKeys act once, on the frame they come up
var releasedKeys = []keyCode{
	{ebiten.KeySpace, "space"},
	{ebiten.KeyG, "g"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.closed() {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		logger.Log.WithField("width", w).WithField("height", h).Info("window opened")
	}

	e.pushInput(e.checkInput())
	return nil
}

// checkInput reads the keyboard and mouse into a frame
func (e *EbitenRenderer) checkInput() engineinput.Frame {
	f := engineinput.NewFrame()

	for _, k := range heldKeys {
		if ebiten.IsKeyPressed(k.key) {
			f.Apply(intentFor(k.code), keyTurnStep)
		}
	}
	for _, k := range releasedKeys {
		if inpututil.IsKeyJustReleased(k.key) {
			f.Apply(intentFor(k.code), keyTurnStep)
		}
	}

	x, _ := ebiten.CursorPosition()
	if e.cursorKnown {
		f.PointerDX += float64(x - e.cursorX)
	}
	e.cursorX, e.cursorKnown = x, true

	return f
}

func intentFor(code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device: engineinput.DeviceKeyboard,
		Code:   code,
	}))
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
