package game

import (
	"math/rand"

	"github.com/Nishj0gi/snake-evolution/pkg/config"
)

// Spawning is rejection sampling over uniform random cells. The grid has 1200
// cells against at most a few dozen occupied ones, so the loop terminates
// quickly in practice; attempts are still bounded and backed by a full-grid
// sweep so a pathological board can never hang or crash the session.

func spawnCell(occupied func(Point) bool) (Point, bool) {
	for attempts := 0; attempts < config.SpawnAttempts; attempts++ {
		p := Point{
			X: rand.Intn(config.GridWidth),
			Y: rand.Intn(config.GridHeight),
		}
		if !occupied(p) {
			return p, true
		}
	}
	// Sweep fallback: take the first free cell, if any
	for y := 0; y < config.GridHeight; y++ {
		for x := 0; x < config.GridWidth; x++ {
			p := Point{X: x, Y: y}
			if !occupied(p) {
				return p, true
			}
		}
	}
	return Point{}, false
}

// spawnFood relocates the food to a cell free of snake and obstacles
func (s *Session) spawnFood() {
	if p, ok := spawnCell(func(p Point) bool {
		return s.Snake.Occupies(p) || s.obstacleAt(p)
	}); ok {
		s.Food = p
	}
}

// trySpawnPowerUp places a random power-up if the field has capacity.
// The capacity gate is independent of the interval counter in Update.
func (s *Session) trySpawnPowerUp() {
	if len(s.PowerUps) >= config.MaxPowerUpsOnBoard {
		return
	}
	p, ok := spawnCell(func(p Point) bool {
		return s.Snake.Occupies(p) || p == s.Food || s.powerUpAt(p) || s.obstacleAt(p)
	})
	if !ok {
		return
	}
	s.PowerUps = append(s.PowerUps, PowerUp{
		Type: PowerUpType(rand.Intn(int(powerUpTypeCount))),
		Pos:  p,
	})
}

// trySpawnObstacle adds one obstacle cell when the snake length is a positive
// multiple of the length step and the obstacle count is below length/step.
// Survival mode only; obstacles persist until the session resets.
func (s *Session) trySpawnObstacle() {
	length := len(s.Snake.Body)
	if length == 0 || length%config.ObstacleLengthStep != 0 {
		return
	}
	if len(s.Obstacles) >= length/config.ObstacleLengthStep {
		return
	}
	if p, ok := spawnCell(func(p Point) bool {
		return s.Snake.Occupies(p) || p == s.Food || s.powerUpAt(p) || s.obstacleAt(p)
	}); ok {
		s.Obstacles = append(s.Obstacles, p)
	}
}

func (s *Session) powerUpAt(p Point) bool {
	for _, pu := range s.PowerUps {
		if pu.Pos == p {
			return true
		}
	}
	return false
}
