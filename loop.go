package main

import (
	"os"
	"os/signal"
	"syscall"

	ebitenrenderer "escaperoom/pkg/game/renderer/ebiten"
	"escaperoom/pkg/game/renderer/tui"
	"escaperoom/pkg/game/session"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/logger"
)

func runTUI(g *state.Game) error {
	r := tui.NewStdio(session.TurnStep(g))
	if err := r.Init(); err != nil {
		return err
	}
	defer r.Close()

	session.Run(g, r, session.Options{FramesPerInput: session.CommandFrames, ExitOnWin: true})
	return nil
}

// runEbiten runs the window on the main goroutine and the game loop beside it
func runEbiten(g *state.Game) error {
	r := ebitenrenderer.New("Escape Room")
	if err := r.Init(); err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		<-sigs
		logger.Log.Info("received shutdown signal, closing window")
		r.Close()
	}()

	go func() {
		session.Run(g, r, session.Options{FramesPerInput: 1})
		r.Close()
	}()

	return r.Run()
}
