// Package session runs the frame loop between a game and a renderer.
package session

import (
	"math"

	"github.com/sirupsen/logrus"

	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/logger"
)

// CommandFrames is how many frames a typed command walks for
const CommandFrames = 15

// CommandTurn is how far one typed turn command rotates the player
const CommandTurn = math.Pi / 12

// Options tune the frame loop to its renderer
type Options struct {
	// FramesPerInput repeats each polled movement for this many frames
	FramesPerInput int
	// ExitOnWin ends the loop as soon as the game is won
	ExitOnWin bool
}

// Run polls input, steps the game and draws, until the player quits
func Run(g *state.Game, r renderer.Renderer, opts Options) {
	dt := g.Config.FrameDT
	r.RenderFrame(renderer.BuildScene(g))

	for {
		in := r.PollInput()
		events := gameplay.Step(g, in, dt)

		carry := input.NewFrame()
		carry.MoveX, carry.MoveZ = in.MoveX, in.MoveZ
		for i := 1; i < opts.FramesPerInput && !carry.Idle() && g.Status != state.StatusWon; i++ {
			events = append(events, gameplay.Step(g, carry, dt)...)
		}

		r.RenderFrame(renderer.BuildScene(g))

		for _, ev := range events {
			logger.Log.WithFields(logrus.Fields{
				"event": ev.Kind,
				"room":  ev.Room,
				"frame": g.Frame,
			}).Debug("game event")

			switch ev.Kind {
			case gameplay.EventQuit:
				logger.Log.WithField("frame", g.Frame).Info("player quit")
				return
			case gameplay.EventWon:
				if opts.ExitOnWin {
					return
				}
			}
		}
	}
}

// TurnStep returns the pointer delta that turns the player by CommandTurn
// in a single frame
func TurnStep(g *state.Game) float64 {
	perUnit := g.Config.TurnSpeed * g.Config.FrameDT
	if perUnit == 0 {
		return 0
	}
	return CommandTurn / perUnit
}
