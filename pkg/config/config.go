package config

import "time"

// Grid dimensions in cells (the classic 800x600 window at 20px cells)
const (
	GridWidth  = 40
	GridHeight = 30
)

// Tick rate settings
const (
	FPS      = 60
	BaseTick = time.Second / FPS
)

// Speed settings
const (
	BaseSpeed       = 8.0  // moves per second
	SpeedMultiplier = 1.0  // global factor
	BoostFactor     = 1.5  // SpeedBoost effect on speed
	ClassicRamp     = 0.05 // extra speed per body segment in classic mode
)

// Power-up settings
const (
	PowerUpDuration      = 300      // ticks a picked-up power-up stays active
	PowerUpSpawnInterval = FPS * 10 // ticks between spawn attempts
	MaxPowerUpsOnBoard   = 2        // capacity gate, checked independently of the interval
	ScoreMultiplierBonus = 2        // food score factor while ScoreMultiplier is active
	FoodScore            = 10
)

// Survival mode obstacle settings
const (
	ObstacleLengthStep = 5 // one obstacle allowed per this many body segments
)

// Time attack settings
const (
	TimeAttackDuration = 60 * FPS // ticks
)

// Spawner settings
const (
	SpawnAttempts = 1024 // rejection sampling bound before the grid sweep fallback
)

// Particle settings
const (
	ParticleLife     = 30 // ticks
	FoodParticles    = 15
	PowerUpParticles = 15
	ShieldParticles  = 20
)

// Storage paths
const (
	DataDir       = "data"
	HighScoreFile = "data/highscores.db"
	LogFile       = "data/snake.log"
	RecordDir     = "records"
)

// Spectator feed settings
const (
	SpectatorAddr = "localhost:8089"
)

// Emoji characters for rendering
const (
	CharEmpty    = "  " // two spaces to match emoji width
	CharWall     = "⬜"
	CharHead     = "🟢"
	CharBody     = "🟩"
	CharFood     = "🔴"
	CharObstacle = "🪨"
	CharParticle = "✨"
	CharCrash    = "💥"
)
