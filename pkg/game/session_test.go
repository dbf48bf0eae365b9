package game

import (
	"path/filepath"
	"testing"

	"github.com/Nishj0gi/snake-evolution/pkg/config"
)

// TestFoodPickup covers Scenario A: eating grows the snake, scores and respawns
func TestFoodPickup(t *testing.T) {
	s := NewSession(ModeClassic, nil)
	head := s.Snake.Head()
	s.Food = Point{X: head.X + 1, Y: head.Y}
	s.Snake.Direction = DirRight

	if !s.step() {
		t.Fatal("Step onto food should not end the session")
	}

	if s.Score != config.FoodScore {
		t.Errorf("Expected score %d, got %d", config.FoodScore, s.Score)
	}
	if s.Snake.GrowPending != 1 {
		t.Errorf("Expected one pending growth unit, got %d", s.Snake.GrowPending)
	}
	if s.Snake.Occupies(s.Food) || s.obstacleAt(s.Food) {
		t.Errorf("Respawned food landed on an occupied cell: %v", s.Food)
	}

	before := len(s.Snake.Body)
	if !s.step() {
		t.Fatal("Follow-up step should succeed")
	}
	if len(s.Snake.Body) != before+1 {
		t.Errorf("Expected length %d after deferred growth, got %d", before+1, len(s.Snake.Body))
	}
}

// TestScoreMultiplierDoublesFood checks the x2 effect on food points
func TestScoreMultiplierDoublesFood(t *testing.T) {
	s := NewSession(ModeClassic, nil)
	s.Snake.Activate(ScoreMultiplier)
	head := s.Snake.Head()
	s.Food = Point{X: head.X + 1, Y: head.Y}
	s.Snake.Direction = DirRight

	s.step()

	want := config.FoodScore * config.ScoreMultiplierBonus
	if s.Score != want {
		t.Errorf("Expected doubled score %d, got %d", want, s.Score)
	}
}

// TestWallCollisionEndsGame covers Scenario B including the high-score rule
func TestWallCollisionEndsGame(t *testing.T) {
	scores := OpenHighScores(filepath.Join(t.TempDir(), "hs.db"))
	defer scores.Close()

	s := NewSession(ModeClassic, scores)
	s.Score = 50
	s.Snake.Body = []Point{
		{X: config.GridWidth - 1, Y: 10},
		{X: config.GridWidth - 2, Y: 10},
		{X: config.GridWidth - 3, Y: 10},
	}
	s.Snake.Direction = DirRight

	if s.step() {
		t.Fatal("Wall collision without shield should end the session")
	}
	if s.Mode != ModeGameOver {
		t.Errorf("Expected GameOver, got %v", s.Mode)
	}
	if s.LastMode != ModeClassic {
		t.Errorf("Expected last mode CLASSIC, got %v", s.LastMode)
	}
	if !s.NewBest || scores.Best(ModeClassic) != 50 {
		t.Errorf("Score 50 should be the new best, table has %d", scores.Best(ModeClassic))
	}

	// A worse follow-up run must not touch the table
	s2 := NewSession(ModeClassic, scores)
	s2.Score = 30
	s2.Snake.Body = []Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}
	s2.Snake.Direction = DirLeft
	s2.step()

	if s2.NewBest {
		t.Error("30 should not beat the stored 50")
	}
	if scores.Best(ModeClassic) != 50 {
		t.Errorf("Best should remain 50, got %d", scores.Best(ModeClassic))
	}
}

// TestShieldAbsorbsCollision covers Scenario C: one fatal collision cancelled
func TestShieldAbsorbsCollision(t *testing.T) {
	s := NewSession(ModeClassic, nil)
	s.Snake.Activate(Shield)
	s.Snake.Body = []Point{
		{X: config.GridWidth - 1, Y: 10},
		{X: config.GridWidth - 2, Y: 10},
		{X: config.GridWidth - 3, Y: 10},
	}
	s.Snake.Direction = DirRight

	if !s.step() {
		t.Fatal("Shield should cancel the fatal collision")
	}
	if s.Mode == ModeGameOver {
		t.Error("Session should continue after a shield save")
	}
	if s.Snake.HasEffect(Shield) {
		t.Error("Shield is single use and should be consumed")
	}
	if len(s.Particles) == 0 {
		t.Error("Shield save should emit a particle burst")
	}

	// Second fatal collision without reacquiring: game over
	if s.step() {
		t.Error("Second collision should end the session, shield is gone")
	}
	if s.Mode != ModeGameOver {
		t.Errorf("Expected GameOver after second collision, got %v", s.Mode)
	}
}

// TestTimeAttackExpiry covers Scenario D: countdown reaching zero ends the game
func TestTimeAttackExpiry(t *testing.T) {
	s := NewSession(ModeTimeAttack, nil)
	s.TimeRemaining = 1

	s.Update()

	if s.Mode != ModeGameOver {
		t.Errorf("Expected GameOver on expiry, got %v", s.Mode)
	}
	if s.LastMode != ModeTimeAttack {
		t.Errorf("Expected last mode TIME ATTACK, got %v", s.LastMode)
	}
	if s.CrashPoint != nil {
		t.Error("Time expiry is not a crash")
	}
}

// TestSurvivalObstacleSpawn covers Scenario E: length 15, fewer than 3 obstacles
func TestSurvivalObstacleSpawn(t *testing.T) {
	s := NewSession(ModeSurvival, nil)
	body := make([]Point, 0, 15)
	for i := 0; i < 15; i++ {
		body = append(body, Point{X: 5 + i, Y: 5})
	}
	s.Snake.Body = body
	s.Obstacles = []Point{{X: 1, Y: 1}, {X: 2, Y: 1}}

	s.trySpawnObstacle()

	if len(s.Obstacles) != 3 {
		t.Fatalf("Expected a third obstacle, got %d", len(s.Obstacles))
	}
	for _, o := range s.Obstacles {
		if s.Snake.Occupies(o) || o == s.Food || s.powerUpAt(o) {
			t.Errorf("Obstacle spawned on an occupied cell: %v", o)
		}
	}

	// At the cap, no further spawn
	s.trySpawnObstacle()
	if len(s.Obstacles) != 3 {
		t.Errorf("Obstacle count is capped at length/step, got %d", len(s.Obstacles))
	}
}

// TestObstacleShieldRemovesSingleCell: the absorbed obstacle cell disappears
func TestObstacleShieldRemovesSingleCell(t *testing.T) {
	s := NewSession(ModeSurvival, nil)
	s.Snake.Activate(Shield)
	head := s.Snake.Head()
	hit := Point{X: head.X + 1, Y: head.Y}
	other := Point{X: 1, Y: 1}
	s.Obstacles = []Point{hit, other}
	s.Snake.Direction = DirRight
	s.Food = Point{X: 0, Y: 0}

	if !s.step() {
		t.Fatal("Shield should absorb the obstacle collision")
	}
	if s.obstacleAt(hit) {
		t.Error("Absorbed obstacle cell should be removed")
	}
	if !s.obstacleAt(other) {
		t.Error("Only the hit cell may be removed, not all obstacles")
	}
	if s.Snake.HasEffect(Shield) {
		t.Error("Shield should be consumed by the absorption")
	}
}

// TestGhostIgnoresObstacles: ghosted movement passes over obstacle cells
func TestGhostIgnoresObstacles(t *testing.T) {
	s := NewSession(ModeSurvival, nil)
	s.Snake.Activate(Ghost)
	head := s.Snake.Head()
	s.Obstacles = []Point{{X: head.X + 1, Y: head.Y}}
	s.Snake.Direction = DirRight
	s.Food = Point{X: 0, Y: 0}

	if !s.step() {
		t.Fatal("Ghost should pass over the obstacle")
	}
	if s.Mode == ModeGameOver {
		t.Error("No game over while ghosted over an obstacle")
	}
}

// TestPowerUpPickup: stepping on a power-up activates and removes it
func TestPowerUpPickup(t *testing.T) {
	s := NewSession(ModeClassic, nil)
	head := s.Snake.Head()
	target := Point{X: head.X + 1, Y: head.Y}
	s.PowerUps = []PowerUp{{Type: Ghost, Pos: target}}
	s.Food = Point{X: 0, Y: 0}
	s.Snake.Direction = DirRight

	s.step()

	if !s.Snake.HasEffect(Ghost) {
		t.Error("Picked-up power-up should be active")
	}
	if len(s.PowerUps) != 0 {
		t.Errorf("Picked-up power-up should leave the field, %d remain", len(s.PowerUps))
	}
}

// TestCadenceDerivation checks the speed-to-ticks conversion
func TestCadenceDerivation(t *testing.T) {
	s := NewSession(ModeTimeAttack, nil)

	// base 8 moves/s at 60 FPS: round(60/8) = 8 ticks per move
	if got := s.cadence(); got != 8 {
		t.Errorf("Expected cadence 8, got %d", got)
	}

	s.Snake.Activate(SpeedBoost)
	// 8 * 1.5 = 12 moves/s: round(60/12) = 5
	if got := s.cadence(); got != 5 {
		t.Errorf("Expected boosted cadence 5, got %d", got)
	}
}

// TestClassicSpeedRamp: classic mode speeds up with snake length
func TestClassicSpeedRamp(t *testing.T) {
	s := NewSession(ModeClassic, nil)
	short := s.effectiveSpeed()

	body := make([]Point, 0, 40)
	for i := 0; i < 40; i++ {
		body = append(body, Point{X: i % config.GridWidth, Y: 2 + i/config.GridWidth})
	}
	s.Snake.Body = body

	if long := s.effectiveSpeed(); long <= short {
		t.Errorf("Longer snake should be faster in classic: %.2f vs %.2f", long, short)
	}

	s.Mode = ModeSurvival
	if ramped := s.effectiveSpeed(); ramped != config.BaseSpeed*config.SpeedMultiplier {
		t.Errorf("Length ramp must apply in classic only, got %.2f", ramped)
	}
}

// TestMenuAndGameOverDoNotSimulate: Update is a no-op outside playing modes
func TestMenuAndGameOverDoNotSimulate(t *testing.T) {
	for _, mode := range []Mode{ModeMenu, ModeGameOver} {
		s := NewSession(mode, nil)
		before := s.Snake.Head()
		for i := 0; i < 100; i++ {
			s.Update()
		}
		if s.Snake.Head() != before {
			t.Errorf("Mode %v must not advance the snake", mode)
		}
		if s.Tick != 0 {
			t.Errorf("Mode %v must not count ticks, got %d", mode, s.Tick)
		}
	}
}

// TestUpdateMovesAtCadence: the snake advances exactly once per cadence window
func TestUpdateMovesAtCadence(t *testing.T) {
	s := NewSession(ModeTimeAttack, nil)
	s.Food = Point{X: 0, Y: 0} // keep it out of the way
	start := s.Snake.Head()

	cadence := s.cadence()
	for i := 0; i < cadence-1; i++ {
		s.Update()
	}
	if s.Snake.Head() != start {
		t.Fatal("Snake moved before the cadence window elapsed")
	}

	s.Update()
	want := Point{X: start.X + 1, Y: start.Y}
	if s.Snake.Head() != want {
		t.Errorf("Expected head %v after cadence ticks, got %v", want, s.Snake.Head())
	}
}

// TestSnapshotIsDetached: mutating the session does not bleed into a snapshot
func TestSnapshotIsDetached(t *testing.T) {
	s := NewSession(ModeClassic, nil)
	snap := s.Snapshot()

	s.Snake.Body[0] = Point{X: 0, Y: 0}
	s.Obstacles = append(s.Obstacles, Point{X: 3, Y: 3})

	if snap.Snake[0] == (Point{X: 0, Y: 0}) {
		t.Error("Snapshot body should be a copy")
	}
	if len(snap.Obstacles) != 0 {
		t.Error("Snapshot obstacles should be a copy")
	}
	if snap.Mode != "CLASSIC" {
		t.Errorf("Expected mode CLASSIC, got %s", snap.Mode)
	}
}
