package game

import "github.com/tomz197/arcade-asteroids/internal/physics"

// Game tuning constants.
// All gameplay parameters are centralized here; none of them are configurable.

// Scoring
const (
	ScoreLargeAsteroid = 100
	ScoreSmallAsteroid = 50
	LifeBonusThreshold = 4000
)

// Player
const (
	InitialLives       = 3
	RespawnDelay       = 3.0  // Seconds between losing a life and the ship reappearing
	InvulnerableTime   = 2.0  // Seconds of invulnerability after a respawn or a new wave
	FlashInterval      = 0.20 // Seconds between visibility toggles while invulnerable
	RotationSpeed      = 3.5  // Radians per second
	ThrustAcceleration = 4.0  // Units per second squared
	MaxForwardSpeed    = 7.0  // Forward thrust is cut off above this forward speed
)

// Weapons
const (
	MissileSpeed  = 9.0
	MissileOffset = 0.40 // Distance in front of the ship where missiles appear
	FireCooldown  = 0.5  // Seconds
)

// Spawning
const (
	BaseWaveSize          = 10
	LargeAsteroidSpeed    = 1.5
	SmallAsteroidSpeed    = 2.5
	WaveDifficultyDivisor = 15.0 // Asteroid speed grows by 1/15 per wave
)

// DefaultArea is the play area objects wrap around.
var DefaultArea = physics.Area{
	Min: physics.Vec3{X: -10, Y: -7.5},
	Max: physics.Vec3{X: 10, Y: 7.5},
}

// Timer names.
const (
	timerInvulnerable = "invulnerable"
	timerFlash        = "flashShip"
	timerRespawn      = "respawn"
	timerFire         = "allow firing"
)
