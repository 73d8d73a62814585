// Package cue names the sound cues the game asks its audio collaborator to play.
package cue

const (
	Shoot     = "Shoot"   // Missile fired
	Hit       = "Snared"  // Missile destroyed an asteroid
	LifeLost  = "Error"   // Ship collided with an asteroid
	BonusLife = "Victory" // Score crossed the bonus life threshold
)
