package game

import "github.com/Nishj0gi/snake-evolution/pkg/config"

// Snake is the player entity: an ordered body (head first), the current
// direction, deferred growth, and one countdown slot per power-up type.
type Snake struct {
	Body        []Point
	Direction   Point
	GrowPending int

	// timers holds remaining ticks per power-up type; 0 means inactive.
	// The type set is closed and small, so a fixed table beats a map here.
	timers [powerUpTypeCount]int
}

// NewSnake creates a three-segment snake in the middle of the grid, moving right
func NewSnake() *Snake {
	startX := config.GridWidth / 2
	startY := config.GridHeight / 2
	return &Snake{
		Body: []Point{
			{X: startX, Y: startY},
			{X: startX - 1, Y: startY},
			{X: startX - 2, Y: startY},
		},
		Direction: DirRight,
	}
}

// Head returns the current head cell
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Move advances the snake one cell in its current direction.
// With ghost active the head wraps around the grid edges; without it an
// out-of-bounds head blocks the move. Stepping onto the body (excluding the
// head, checked before insertion) blocks the move regardless of ghost.
// Returns false when blocked; the snake does not move in that case.
func (s *Snake) Move(ghost bool) bool {
	head := s.Head()
	newHead := Point{X: head.X + s.Direction.X, Y: head.Y + s.Direction.Y}

	if !ghost {
		if newHead.X < 0 || newHead.X >= config.GridWidth ||
			newHead.Y < 0 || newHead.Y >= config.GridHeight {
			return false
		}
	} else {
		newHead.X = mod(newHead.X, config.GridWidth)
		newHead.Y = mod(newHead.Y, config.GridHeight)
	}

	for _, p := range s.Body[1:] {
		if p == newHead {
			return false
		}
	}

	s.Body = append([]Point{newHead}, s.Body...)
	if s.GrowPending > 0 {
		s.GrowPending--
	} else {
		s.Body = s.Body[:len(s.Body)-1]
	}
	return true
}

// Grow defers growth to the next moves
func (s *Snake) Grow(amount int) {
	s.GrowPending += amount
}

// SetDirection changes the requested direction. A change that would step
// straight onto the neck (instant 180° reversal) is silently ignored.
func (s *Snake) SetDirection(dir Point) {
	if len(s.Body) > 1 {
		head := s.Head()
		neck := s.Body[1]
		if (Point{X: head.X + dir.X, Y: head.Y + dir.Y}) == neck {
			return
		}
	}
	s.Direction = dir
}

// Activate starts (or restarts) a power-up timer at full duration
func (s *Snake) Activate(t PowerUpType) {
	s.timers[t] = config.PowerUpDuration
}

// HasEffect reports whether a power-up is currently active
func (s *Snake) HasEffect(t PowerUpType) bool {
	return s.timers[t] > 0
}

// ConsumeShield removes the shield effect after it absorbed a collision
func (s *Snake) ConsumeShield() {
	s.timers[Shield] = 0
}

// TickEffects decrements every active power-up timer by one tick.
// Entries are dropped the tick they reach zero.
func (s *Snake) TickEffects() {
	for t := range s.timers {
		if s.timers[t] > 0 {
			s.timers[t]--
		}
	}
}

// ActiveEffects returns DTOs for all running timers, in type order
func (s *Snake) ActiveEffects() []ActiveEffect {
	var effects []ActiveEffect
	for t := PowerUpType(0); t < powerUpTypeCount; t++ {
		if s.timers[t] > 0 {
			effects = append(effects, ActiveEffect{
				Type:           int(t),
				Name:           t.String(),
				RemainingTicks: s.timers[t],
			})
		}
	}
	return effects
}

// Occupies reports whether any body cell equals p
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// mod wraps like Python's %, keeping the result non-negative
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
