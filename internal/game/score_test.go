package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/arcade-asteroids/internal/audio/cue"
)

func TestScoreboardBonusLives(t *testing.T) {
	tests := []struct {
		name    string
		adds    []int
		granted int
		bonus   int
	}{
		{"below threshold", []int{100, 50, 50}, 0, 200},
		{"exactly threshold", []int{4000}, 1, 0},
		{"carry over", []int{3950, 100}, 1, 50},
		{"many small", repeat(50, 170), 2, 500},
		{"single large add", []int{9000}, 2, 1000},
		{"ignores negative", []int{-100, 100}, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScoreboard()
			granted := 0
			prev := s.Score()
			for _, p := range tt.adds {
				granted += s.Add(p)
				assert.GreaterOrEqual(t, s.Score(), prev, "score never decreases")
				prev = s.Score()
			}
			assert.Equal(t, tt.granted, granted)
			assert.Equal(t, tt.bonus, s.Bonus())
			assert.Equal(t, InitialLives+tt.granted, s.Lives())
		})
	}
}

func TestScoreboardMatchesThresholdArithmetic(t *testing.T) {
	s := NewScoreboard()
	s.Add(1500)
	initial := s.Bonus()

	total, granted := 0, 0
	for i := range 200 {
		p := 50 + (i%3)*50
		total += p
		granted += s.Add(p)
	}
	assert.Equal(t, (initial+total)/LifeBonusThreshold, granted)
	assert.Equal(t, (initial+total)%LifeBonusThreshold, s.Bonus())
}

func TestScoreboardLoseLifeAndReset(t *testing.T) {
	s := NewScoreboard()
	assert.Equal(t, 2, s.LoseLife())
	s.Add(4100)
	s.Reset()
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Bonus())
	assert.Equal(t, InitialLives, s.Lives())
}

func TestAddScorePlaysBonusCue(t *testing.T) {
	h := startGameplay(t)
	h.g.addScore(3 * LifeBonusThreshold)
	assert.Equal(t, 3, h.audio.count(cue.BonusLife))
	assert.Equal(t, InitialLives+3, h.g.Lives())
}

func repeat(v, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}
