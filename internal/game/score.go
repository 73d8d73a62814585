package game

// Scoreboard tracks score and lives. Every LifeBonusThreshold points earned
// grant one extra life; points beyond the threshold carry over to the next one.
type Scoreboard struct {
	score int
	lives int
	bonus int // Points earned since the last bonus life
}

// NewScoreboard returns a scoreboard for a fresh session.
func NewScoreboard() Scoreboard {
	return Scoreboard{lives: InitialLives}
}

// Reset starts a fresh session.
func (s *Scoreboard) Reset() {
	*s = NewScoreboard()
}

// Add awards points and returns how many bonus lives they earned.
// Negative amounts are ignored so the score never decreases.
func (s *Scoreboard) Add(points int) (granted int) {
	if points <= 0 {
		return 0
	}
	s.score += points
	s.bonus += points
	for s.bonus >= LifeBonusThreshold {
		s.bonus -= LifeBonusThreshold
		s.lives++
		granted++
	}
	return granted
}

// LoseLife removes one life and returns the lives left.
func (s *Scoreboard) LoseLife() int {
	s.lives--
	return s.lives
}

// Score returns the accumulated score.
func (s *Scoreboard) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Scoreboard) Lives() int { return s.lives }

// Bonus returns the points counted toward the next bonus life.
func (s *Scoreboard) Bonus() int { return s.bonus }
