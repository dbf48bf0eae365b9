package game

import (
	"math"

	"github.com/Nishj0gi/snake-evolution/pkg/config"
)

// Session owns everything that belongs to one run: the snake, the food, the
// power-ups and obstacles on the field, the cosmetic particles, the score and
// the mode-specific counters. A new game gets a brand new Session; only the
// high-score table survives across sessions.
type Session struct {
	Mode     Mode
	LastMode Mode
	Snake    *Snake
	Food     Point

	PowerUps  []PowerUp
	Obstacles []Point
	Particles []Particle

	Score         int
	Tick          int
	TimeRemaining int // ticks, counts down in time attack

	CrashPoint *Point
	NewBest    bool

	Scores *HighScoreTable

	moveCounter    int
	powerUpCounter int
}

// NewSession starts a fresh run in the given mode. The high-score table is
// shared across sessions and may be nil in tests.
func NewSession(mode Mode, scores *HighScoreTable) *Session {
	s := &Session{
		Mode:          mode,
		Snake:         NewSnake(),
		TimeRemaining: config.TimeAttackDuration,
		Scores:        scores,
	}
	s.spawnFood()
	return s
}

// effectiveSpeed derives the current moves-per-second value
func (s *Session) effectiveSpeed() float64 {
	speed := config.BaseSpeed * config.SpeedMultiplier
	if s.Snake.HasEffect(SpeedBoost) {
		speed *= config.BoostFactor
	}
	if s.Mode == ModeClassic {
		speed += config.ClassicRamp * float64(len(s.Snake.Body))
	}
	return speed
}

// cadence converts speed into ticks between moves
func (s *Session) cadence() int {
	c := int(math.Round(config.FPS / s.effectiveSpeed()))
	if c < 1 {
		c = 1
	}
	return c
}

// Update advances the simulation by one tick. It does nothing outside the
// three playing modes; Menu and GameOver are handled by the caller.
func (s *Session) Update() {
	if !s.Mode.Simulating() {
		return
	}
	s.Tick++

	s.updateParticles()
	s.Snake.TickEffects()

	s.moveCounter++
	if s.moveCounter >= s.cadence() {
		s.moveCounter = 0
		if !s.step() {
			return
		}
	}

	s.powerUpCounter++
	if s.powerUpCounter >= config.PowerUpSpawnInterval {
		s.powerUpCounter = 0
		s.trySpawnPowerUp()
	}

	if s.Mode == ModeSurvival {
		s.trySpawnObstacle()
	}

	if s.Mode == ModeTimeAttack {
		s.TimeRemaining--
		if s.TimeRemaining <= 0 {
			s.finish(nil)
		}
	}
}

// step performs one snake advance and resolves everything that depends on
// the new head position. Returns false when the session ended.
func (s *Session) step() bool {
	ghost := s.Snake.HasEffect(Ghost)

	if !s.Snake.Move(ghost) {
		crash := s.attemptedHead(ghost)
		if s.Snake.HasEffect(Shield) {
			s.Snake.ConsumeShield()
			s.EmitParticles(s.Snake.Head(), config.ShieldParticles)
		} else {
			s.finish(&crash)
			return false
		}
	}

	head := s.Snake.Head()

	if s.Mode == ModeSurvival && !ghost && s.obstacleAt(head) {
		if s.Snake.HasEffect(Shield) {
			s.Snake.ConsumeShield()
			s.removeObstacle(head)
			s.EmitParticles(head, config.ShieldParticles)
		} else {
			crash := head
			s.finish(&crash)
			return false
		}
	}

	if head == s.Food {
		s.Snake.Grow(1)
		points := config.FoodScore
		if s.Snake.HasEffect(ScoreMultiplier) {
			points *= config.ScoreMultiplierBonus
		}
		s.Score += points
		s.EmitParticles(s.Food, config.FoodParticles)
		s.spawnFood()
	}

	kept := s.PowerUps[:0]
	for _, pu := range s.PowerUps {
		if pu.Pos == head {
			s.Snake.Activate(pu.Type)
			s.EmitParticles(pu.Pos, config.PowerUpParticles)
			continue
		}
		kept = append(kept, pu)
	}
	s.PowerUps = kept

	return true
}

// attemptedHead recomputes the head cell a blocked move was aiming for
func (s *Session) attemptedHead(ghost bool) Point {
	head := s.Snake.Head()
	p := Point{X: head.X + s.Snake.Direction.X, Y: head.Y + s.Snake.Direction.Y}
	if ghost {
		p.X = mod(p.X, config.GridWidth)
		p.Y = mod(p.Y, config.GridHeight)
	}
	return p
}

// finish transitions the session to GameOver, recording the last mode and
// submitting the score. crash is nil for a time-attack expiry.
func (s *Session) finish(crash *Point) {
	s.LastMode = s.Mode
	s.Mode = ModeGameOver
	s.CrashPoint = crash
	if s.Scores != nil {
		s.NewBest = s.Scores.Submit(s.LastMode, s.Score)
	}
}

func (s *Session) obstacleAt(p Point) bool {
	for _, o := range s.Obstacles {
		if o == p {
			return true
		}
	}
	return false
}

// removeObstacle drops the single obstacle cell at p (shield absorption)
func (s *Session) removeObstacle(p Point) {
	for i, o := range s.Obstacles {
		if o == p {
			s.Obstacles[i] = s.Obstacles[len(s.Obstacles)-1]
			s.Obstacles = s.Obstacles[:len(s.Obstacles)-1]
			return
		}
	}
}

// TimeRemainingSeconds returns the countdown for display, zero outside time attack
func (s *Session) TimeRemainingSeconds() int {
	mode := s.Mode
	if mode == ModeGameOver {
		mode = s.LastMode
	}
	if mode != ModeTimeAttack {
		return 0
	}
	sec := s.TimeRemaining / config.FPS
	if sec < 0 {
		return 0
	}
	return sec
}

// Snapshot builds the read-only view consumed by the renderer, the recorder
// and the spectator feed.
func (s *Session) Snapshot() Snapshot {
	body := make([]Point, len(s.Snake.Body))
	copy(body, s.Snake.Body)

	obstacles := make([]Point, len(s.Obstacles))
	copy(obstacles, s.Obstacles)

	powerUps := make([]PowerUpInfo, len(s.PowerUps))
	for i, pu := range s.PowerUps {
		powerUps[i] = PowerUpInfo{Type: int(pu.Type), Name: pu.Type.String(), Pos: pu.Pos}
	}

	var particles []ParticleInfo
	for _, p := range s.Particles {
		particles = append(particles, ParticleInfo{X: p.X, Y: p.Y, Life: p.Life})
	}

	snap := Snapshot{
		Mode:          s.Mode.String(),
		Tick:          s.Tick,
		Snake:         body,
		Direction:     s.Snake.Direction,
		GhostActive:   s.Snake.HasEffect(Ghost),
		Food:          s.Food,
		Obstacles:     obstacles,
		PowerUps:      powerUps,
		Effects:       s.Snake.ActiveEffects(),
		Particles:     particles,
		Score:         s.Score,
		TimeRemaining: s.TimeRemainingSeconds(),
		CrashPoint:    s.CrashPoint,
		NewBest:       s.NewBest,
	}
	if s.Mode == ModeGameOver {
		snap.LastMode = s.LastMode.String()
	}
	if s.Scores != nil {
		snap.HighScores = s.Scores.All()
	}
	return snap
}
