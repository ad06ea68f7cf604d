package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/logger"
)

// New creates a new Ebiten renderer
func New(title string) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		title:        title,
		pending:      engineinput.NewFrame(),
		tick:         make(chan struct{}, 1),
		done:         make(chan struct{}),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten game loop. It must be called from the main
// goroutine and returns when the window closes or Close is called.
func (e *EbitenRenderer) Run() error {
	defer e.Close()
	err := ebiten.RunGame(e)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Close stops the window and releases any game loop waiting for input
func (e *EbitenRenderer) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
		logger.Log.Debug("ebiten renderer closed")
	})
}

func (e *EbitenRenderer) closed() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// RenderFrame stores the scene for the next Draw
func (e *EbitenRenderer) RenderFrame(s renderer.Scene) {
	e.snapshotMutex.Lock()
	e.snapshot = renderSnapshot{valid: true, scene: s}
	e.snapshotMutex.Unlock()
}

// PollInput waits for the next Ebiten tick and returns the input gathered
// since the previous poll. Once the window is gone it reports Quit.
func (e *EbitenRenderer) PollInput() engineinput.Frame {
	select {
	case <-e.tick:
	case <-e.done:
		f := engineinput.NewFrame()
		f.Release(engineinput.ActionQuit)
		return f
	}

	e.inputMutex.Lock()
	defer e.inputMutex.Unlock()
	f := e.pending
	e.pending = engineinput.NewFrame()
	return f
}

// pushInput merges a tick's input and wakes the game loop
func (e *EbitenRenderer) pushInput(f engineinput.Frame) {
	e.inputMutex.Lock()
	e.pending.Merge(f)
	e.inputMutex.Unlock()

	select {
	case e.tick <- struct{}{}:
	default:
		// game loop has not caught up; the input stays merged in pending
	}
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)
