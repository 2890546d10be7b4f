package cannon

const (
	startScore   = 1
	startLevel   = 1
	levelStepPts = 10 // points per level in the threshold formula
)

// Tracker holds the score and level counters.
type Tracker struct {
	score int
	level int
}

// NewTracker starts at score 1, level 1.
func NewTracker() *Tracker {
	return &Tracker{score: startScore, level: startLevel}
}

// Score returns the current score.
func (t *Tracker) Score() int { return t.score }

// Level returns the current level.
func (t *Tracker) Level() int { return t.level }

// RecordHit adds one point and levels up when the new score is a multiple of
// 10×level, using the level before the increment. Thresholds therefore land
// at cumulative scores 10, 20, 30, ... Returns true on level-up.
func (t *Tracker) RecordHit() bool {
	t.score++
	if t.score%(levelStepPts*t.level) == 0 {
		t.level++
		return true
	}
	return false
}

// ReplenishDue reports whether the score sits exactly on the threshold that
// produced the current level. It is false on level 1.
func (t *Tracker) ReplenishDue() bool {
	if t.level <= startLevel {
		return false
	}
	return t.score%(levelStepPts*(t.level-1)) == 0
}

// NextThreshold returns the score at which the next level-up happens.
func (t *Tracker) NextThreshold() int {
	step := levelStepPts * t.level
	return (t.score/step + 1) * step
}
