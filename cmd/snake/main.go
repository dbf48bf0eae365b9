package main

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Nishj0gi/snake-evolution/pkg/config"
	"github.com/Nishj0gi/snake-evolution/pkg/game"
	"github.com/Nishj0gi/snake-evolution/pkg/input"
	"github.com/Nishj0gi/snake-evolution/pkg/renderer"
	"github.com/Nishj0gi/snake-evolution/pkg/spectator"
)

// setupLogging points logrus at a file; the terminal belongs to the renderer
func setupLogging() {
	if err := os.MkdirAll(config.DataDir, 0755); err == nil {
		if f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			log.SetOutput(f)
			return
		}
	}
	log.SetOutput(io.Discard)
}

func main() {
	setupLogging()

	scores := game.OpenHighScores(config.HighScoreFile)
	defer scores.Close()

	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer inputHandler.Stop()

	render := renderer.NewTerminalRenderer()
	render.HideCursor()
	defer render.ShowCursor()

	feed := spectator.NewServer(config.SpectatorAddr)
	feed.Start()

	var session *game.Session
	var recorder *game.Recorder

	stopRecorder := func() {
		if recorder != nil {
			recorder.Close()
			recorder = nil
		}
	}
	defer stopRecorder()

	startRound := func(mode game.Mode) {
		stopRecorder()
		session = game.NewSession(mode, scores)
		r, err := game.NewRecorder(config.RecordDir)
		if err != nil {
			log.WithError(err).Warn("session recording disabled")
		} else {
			recorder = r
			log.WithField("session", r.SessionID).WithField("mode", mode.String()).Info("round started")
		}
		render.Render(session.Snapshot())
	}

	toMenu := func() {
		stopRecorder()
		session = nil
		render.RenderMenu(scores.All())
	}

	inputChan := inputHandler.GetInputChan()
	ticker := time.NewTicker(config.BaseTick)
	defer ticker.Stop()

	render.RenderMenu(scores.All())

	for {
		select {
		case ev := <-inputChan:
			action := input.ParseAction(ev)
			if action == input.ActionQuit {
				return
			}

			switch {
			case session == nil: // menu
				switch action {
				case input.ActionSelectClassic:
					startRound(game.ModeClassic)
				case input.ActionSelectTimeAttack:
					startRound(game.ModeTimeAttack)
				case input.ActionSelectSurvival:
					startRound(game.ModeSurvival)
				}

			case session.Mode == game.ModeGameOver:
				switch action {
				case input.ActionRestart:
					startRound(session.LastMode)
				case input.ActionConfirm:
					toMenu()
				}

			default: // playing
				if action == input.ActionMenu {
					toMenu()
					continue
				}
				if dir, ok := input.Direction(action); ok {
					session.Snake.SetDirection(dir)
				}
			}

		case <-ticker.C:
			if session == nil || !session.Mode.Simulating() {
				continue
			}
			session.Update()
			snap := session.Snapshot()
			if recorder != nil {
				recorder.RecordStep(game.StepRecord{Tick: snap.Tick, State: snap})
			}
			feed.Publish(snap)

			if session.Mode == game.ModeGameOver {
				stopRecorder()
				render.RenderGameOver(snap)
			} else {
				render.Render(snap)
			}
		}
	}
}
