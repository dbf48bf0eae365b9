package game

// Point represents a coordinate on the game grid
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction unit deltas. Up decreases Y (screen coordinates).
var (
	DirUp    = Point{X: 0, Y: -1}
	DirDown  = Point{X: 0, Y: 1}
	DirLeft  = Point{X: -1, Y: 0}
	DirRight = Point{X: 1, Y: 0}
)

// PowerUpType represents the different power-up kinds
type PowerUpType int

const (
	SpeedBoost PowerUpType = iota
	Shield
	ScoreMultiplier
	Ghost

	powerUpTypeCount // must stay last
)

// String returns the display name of the power-up type
func (t PowerUpType) String() string {
	switch t {
	case SpeedBoost:
		return "Speed Boost"
	case Shield:
		return "Shield"
	case ScoreMultiplier:
		return "Score x2"
	case Ghost:
		return "Ghost Mode"
	default:
		return "Unknown"
	}
}

// PowerUp is an item on the field waiting to be picked up.
// It has no expiry of its own; the duration starts counting on pickup.
type PowerUp struct {
	Type PowerUpType `json:"type"`
	Pos  Point       `json:"pos"`
}

// Mode represents the session state machine
type Mode int

const (
	ModeMenu Mode = iota
	ModeClassic
	ModeTimeAttack
	ModeSurvival
	ModeGameOver
)

// String returns the display name of the mode
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "MENU"
	case ModeClassic:
		return "CLASSIC"
	case ModeTimeAttack:
		return "TIME ATTACK"
	case ModeSurvival:
		return "SURVIVAL"
	case ModeGameOver:
		return "GAME OVER"
	default:
		return "UNKNOWN"
	}
}

// Key returns the storage key for a playable mode, or "" otherwise
func (m Mode) Key() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeTimeAttack:
		return "time_attack"
	case ModeSurvival:
		return "survival"
	default:
		return ""
	}
}

// Simulating reports whether the tick routine runs in this mode
func (m Mode) Simulating() bool {
	return m == ModeClassic || m == ModeTimeAttack || m == ModeSurvival
}

// ActiveEffect is a DTO for a running power-up timer
type ActiveEffect struct {
	Type           int    `json:"type"`
	Name           string `json:"name"`
	RemainingTicks int    `json:"remainingTicks"`
}

// PowerUpInfo is a DTO for a power-up on the field
type PowerUpInfo struct {
	Type int    `json:"type"`
	Name string `json:"name"`
	Pos  Point  `json:"pos"`
}

// ParticleInfo is a DTO for a cosmetic particle, in fractional cell coordinates
type ParticleInfo struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Life int     `json:"life"`
}

// Snapshot is a read-only view of the session handed to the renderer,
// the recorder and the spectator feed once per frame
type Snapshot struct {
	Mode          string         `json:"mode"`
	LastMode      string         `json:"lastMode,omitempty"`
	Tick          int            `json:"tick"`
	Snake         []Point        `json:"snake"`
	Direction     Point          `json:"direction"`
	GhostActive   bool           `json:"ghostActive"`
	Food          Point          `json:"food"`
	Obstacles     []Point        `json:"obstacles"`
	PowerUps      []PowerUpInfo  `json:"powerUps"`
	Effects       []ActiveEffect `json:"effects"`
	Particles     []ParticleInfo `json:"particles,omitempty"`
	Score         int            `json:"score"`
	TimeRemaining int            `json:"timeRemaining"` // seconds, time attack only
	HighScores    map[string]int `json:"highScores,omitempty"`
	CrashPoint    *Point         `json:"crashPoint,omitempty"`
	NewBest       bool           `json:"newBest"`
}

// StepRecord is one line of a recorded session
type StepRecord struct {
	Tick  int      `json:"tick"`
	State Snapshot `json:"state"`
}
