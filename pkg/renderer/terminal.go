package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Nishj0gi/snake-evolution/pkg/config"
	"github.com/Nishj0gi/snake-evolution/pkg/game"
)

// TerminalRenderer draws the menu, the playing field and the game-over
// screen with ANSI escapes and emoji cells. It only ever reads snapshots.
type TerminalRenderer struct {
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellHead
	cellBody
	cellFood
	cellObstacle
	cellParticle
	cellCrash
	cellPowerUpBase // + power-up type
)

var powerUpChars = []string{"🔵", "🟡", "🟣", "🟠"} // SpeedBoost, Shield, Score x2, Ghost

// NewTerminalRenderer creates a renderer with a pre-allocated cell board
func NewTerminalRenderer() *TerminalRenderer {
	board := make([][]int, config.GridHeight)
	for i := range board {
		board[i] = make([]int, config.GridWidth)
	}
	return &TerminalRenderer{board: board}
}

// clearScreen clears the terminal using ANSI escape codes
func (r *TerminalRenderer) clearScreen() {
	fmt.Print("\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Print("\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Print("\033[?25l")
}

// RenderMenu draws the title screen with the high-score table
func (r *TerminalRenderer) RenderMenu(scores map[string]int) {
	r.clearScreen()
	r.buffer.Reset()

	r.buffer.WriteString("\n  🐍 SNAKE EVOLUTION 🐍\n\n")
	r.buffer.WriteString("  1 - CLASSIC MODE\n")
	r.buffer.WriteString("  2 - TIME ATTACK (60s)\n")
	r.buffer.WriteString("  3 - SURVIVAL MODE (Obstacles)\n\n")
	r.buffer.WriteString("  Q - QUIT\n\n")

	r.buffer.WriteString("  HIGH SCORES\n")
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		label := strings.ReplaceAll(k, "_", " ")
		r.buffer.WriteString(fmt.Sprintf("    %-12s %d\n", label, scores[k]))
	}

	fmt.Print(r.buffer.String())
}

// RenderGameOver draws the end-of-run screen
func (r *TerminalRenderer) RenderGameOver(snap game.Snapshot) {
	r.clearScreen()
	r.buffer.Reset()

	r.buffer.WriteString("\n  💀 GAME OVER 💀\n\n")
	r.buffer.WriteString(fmt.Sprintf("  Mode:  %s\n", snap.LastMode))
	r.buffer.WriteString(fmt.Sprintf("  Score: %d\n", snap.Score))
	if snap.NewBest && snap.Score > 0 {
		r.buffer.WriteString("\n  🏆 NEW HIGH SCORE!\n")
	}
	r.buffer.WriteString("\n  R - RESTART\n")
	r.buffer.WriteString("  SPACE - MENU\n")

	fmt.Print(r.buffer.String())
}

// Render draws one frame of a running game
func (r *TerminalRenderer) Render(snap game.Snapshot) {
	r.clearScreen()
	r.buffer.Reset()

	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	for _, o := range snap.Obstacles {
		r.set(o, cellObstacle)
	}
	r.set(snap.Food, cellFood)
	for _, pu := range snap.PowerUps {
		r.set(pu.Pos, cellPowerUpBase+pu.Type)
	}
	for _, p := range snap.Particles {
		cell := game.Point{X: int(p.X), Y: int(p.Y)}
		if r.at(cell) == cellEmpty {
			r.set(cell, cellParticle)
		}
	}
	for i, p := range snap.Snake {
		if i == 0 {
			r.set(p, cellHead)
		} else {
			r.set(p, cellBody)
		}
	}
	if snap.CrashPoint != nil {
		r.set(*snap.CrashPoint, cellCrash)
	}

	r.buffer.WriteString("\n  🐍 SNAKE EVOLUTION 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Mode: %s", snap.Score, snap.Mode))
	if snap.Mode == "TIME ATTACK" {
		r.buffer.WriteString(fmt.Sprintf("  |  Time: %ds", snap.TimeRemaining))
	}
	r.buffer.WriteString("\n")

	if len(snap.Effects) > 0 {
		parts := make([]string, 0, len(snap.Effects))
		for _, e := range snap.Effects {
			parts = append(parts, fmt.Sprintf("%s: %ds", e.Name, e.RemainingTicks/config.FPS))
		}
		r.buffer.WriteString("  " + strings.Join(parts, "  |  ") + "\n")
	} else {
		r.buffer.WriteString("\n")
	}

	// Top border
	r.buffer.WriteString("  " + strings.Repeat(config.CharWall, config.GridWidth+2) + "\n")

	for y := 0; y < config.GridHeight; y++ {
		r.buffer.WriteString("  " + config.CharWall)
		for x := 0; x < config.GridWidth; x++ {
			switch cell := r.board[y][x]; {
			case cell == cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cell == cellHead:
				r.buffer.WriteString(config.CharHead)
			case cell == cellBody:
				r.buffer.WriteString(config.CharBody)
			case cell == cellFood:
				r.buffer.WriteString(config.CharFood)
			case cell == cellObstacle:
				r.buffer.WriteString(config.CharObstacle)
			case cell == cellParticle:
				r.buffer.WriteString(config.CharParticle)
			case cell == cellCrash:
				r.buffer.WriteString(config.CharCrash)
			default:
				r.buffer.WriteString(powerUpChar(cell - cellPowerUpBase))
			}
		}
		r.buffer.WriteString(config.CharWall + "\n")
	}

	// Bottom border
	r.buffer.WriteString("  " + strings.Repeat(config.CharWall, config.GridWidth+2) + "\n")

	r.buffer.WriteString("\n  Arrows/WASD to move, ESC for menu, Q to quit\n")

	fmt.Print(r.buffer.String())
}

func (r *TerminalRenderer) set(p game.Point, cell int) {
	if p.X >= 0 && p.X < config.GridWidth && p.Y >= 0 && p.Y < config.GridHeight {
		r.board[p.Y][p.X] = cell
	}
}

func (r *TerminalRenderer) at(p game.Point) int {
	if p.X >= 0 && p.X < config.GridWidth && p.Y >= 0 && p.Y < config.GridHeight {
		return r.board[p.Y][p.X]
	}
	return cellEmpty
}

func powerUpChar(t int) string {
	if t >= 0 && t < len(powerUpChars) {
		return powerUpChars[t]
	}
	return config.CharEmpty
}
