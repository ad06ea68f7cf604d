// Package renderer turns game state into a scene that a backend can draw,
// and defines the interface those backends implement.
package renderer

import (
	"escaperoom/pkg/engine/input"
)

// Renderer defines the interface for game rendering backends.
// Implementations include the terminal (tui) and a window (ebiten).
type Renderer interface {
	// Init prepares the backend (colours, window, input)
	Init() error

	// RenderFrame draws one frame. The scene is a copy and may be kept.
	RenderFrame(s Scene)

	// PollInput returns the input gathered since the previous call.
	// Terminal backends block until a command is typed.
	PollInput() input.Frame

	// Close releases the backend
	Close()
}
