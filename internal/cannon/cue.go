package cannon

// Cue is a fire-and-forget sound trigger raised by the simulation.
// The core never waits on a cue and never learns whether it played.
type Cue int

const (
	CueFire      Cue = iota // ball leaves the launcher
	CueBounce               // ball reflects off the ceiling or a side wall
	CueHit                  // ball destroys a target
	CueMoveStart            // launcher starts rolling; loops until CueMoveStop
	CueMoveStop             // launcher stops rolling
	CueGameOver             // ammunition exhausted
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueBounce:
		return "bounce"
	case CueHit:
		return "hit"
	case CueMoveStart:
		return "move_start"
	case CueMoveStop:
		return "move_stop"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CueSink receives cues. Implementations must not block the tick.
type CueSink interface {
	Trigger(c Cue)
}

// Muter is implemented by cue sinks whose output can be silenced.
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

// NopCues discards every cue. Used when audio is unavailable or muted.
type NopCues struct{}

// Trigger implements CueSink.
func (NopCues) Trigger(Cue) {}

// CueCounter counts cues by kind. The headless harness uses it to assert on
// audio side effects without a speaker.
type CueCounter struct {
	counts [cueCount]int
	last   []Cue
}

// Trigger implements CueSink.
func (cc *CueCounter) Trigger(c Cue) {
	if c < 0 || c >= cueCount {
		return
	}
	cc.counts[c]++
	cc.last = append(cc.last, c)
}

// Count returns how many times c was triggered.
func (cc *CueCounter) Count(c Cue) int {
	if c < 0 || c >= cueCount {
		return 0
	}
	return cc.counts[c]
}

// Sequence returns every cue in trigger order.
func (cc *CueCounter) Sequence() []Cue {
	return cc.last
}

// Reset clears all counts.
func (cc *CueCounter) Reset() {
	cc.counts = [cueCount]int{}
	cc.last = cc.last[:0]
}
