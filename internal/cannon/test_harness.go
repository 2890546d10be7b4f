package cannon

// TestSim is a headless harness used by tests and the headless report. It
// drives a Session exactly as a frontend would, with deterministic seeding,
// a recording cue sink and a structured EventLog.
type TestSim struct {
	Session *Session
	Log     *EventLog
	Cues    *CueCounter

	seed    int64
	verbose bool
	pending []InputEvent
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra   simOptionKind = iota // seed, verbose: applied before the session exists
	simOptState                        // score, level, ammo, launcher: applied to the session
	simOptTargets                      // target layout: applied last, replacing the spawned field
	simOptScreen                       // screen transition: applied after everything else
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the spawner seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithVerbose enables per-tick position logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithScore sets the starting score.
func WithScore(score int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Session.tracker.score = score
	}}
}

// WithLevel sets the starting level.
func WithLevel(level int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Session.tracker.level = level
	}}
}

// WithAmmo sets the balls left in the magazine.
func WithAmmo(n int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Session.projectile.ammo = n
	}}
}

// WithLauncherAt places the launcher at x facing d.
func WithLauncherAt(x float64, d Direction) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Session.launcher.place(x)
		ts.Session.launcher.SetDirection(d)
	}}
}

// WithNoTargets empties the field. Combined with StartPlaying the next tick
// spawns a fresh batch.
func WithNoTargets() SimOption {
	return SimOption{simOptTargets, func(ts *TestSim) {
		ts.Session.targets = nil
	}}
}

// WithTargetAt adds a chest at (x,y). The first WithTargetAt replaces the
// randomly spawned starting field.
func WithTargetAt(x, y int) SimOption {
	return SimOption{simOptTargets, func(ts *TestSim) {
		ts.Session.targets = append(ts.Session.targets, NewTarget(x, y, Chest))
	}}
}

// StartPlaying skips the main menu.
func StartPlaying() SimOption {
	return SimOption{simOptScreen, func(ts *TestSim) {
		ts.Session.setScreen(Playing)
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (seed, verbose)
//  2. Session
//  3. Counters and launcher placement
//  4. Target layout
//  5. Screen
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{seed: 1}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.Log = NewEventLog(ts.verbose)
	ts.Cues = &CueCounter{}
	ts.Session = NewSession(Options{Seed: ts.seed, Cues: ts.Cues, Log: ts.Log})
	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(ts)
		}
	}
	replaced := false
	for _, o := range opts {
		if o.kind != simOptTargets {
			continue
		}
		if !replaced {
			ts.Session.targets = nil
			replaced = true
		}
		o.fn(ts)
	}
	for _, o := range opts {
		if o.kind == simOptScreen {
			o.fn(ts)
		}
	}
	return ts
}

// Press queues a key-down for the next tick.
func (ts *TestSim) Press(k Key) {
	ts.pending = append(ts.pending, KeyDownEvent(k))
}

// Release queues a key-up for the next tick.
func (ts *TestSim) Release(k Key) {
	ts.pending = append(ts.pending, KeyUpEvent(k))
}

// Click queues a pointer press at (x,y) for the next tick.
func (ts *TestSim) Click(x, y int) {
	ts.pending = append(ts.pending, PointerDown(x, y))
}

// Queue appends arbitrary events for the next tick.
func (ts *TestSim) Queue(evs ...InputEvent) {
	ts.pending = append(ts.pending, evs...)
}

// Step runs one tick with whatever input is queued.
func (ts *TestSim) Step() bool {
	evs := ts.pending
	ts.pending = nil
	return ts.Session.Tick(evs)
}

// RunTicks advances n ticks. Queued input is applied on the first one.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		if !ts.Step() {
			return
		}
	}
}

// RunUntil advances up to maxTicks, stopping early once predicate is true.
// Returns the session tick at which it was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		running := ts.Step()
		if predicate(ts) {
			return ts.Session.TickCount()
		}
		if !running {
			break
		}
	}
	return -1
}

// RunPolicy lets p play for up to maxTicks or until the game is over.
// Returns the number of ticks run.
func (ts *TestSim) RunPolicy(p Policy, maxTicks int) int {
	n := 0
	for ; n < maxTicks; n++ {
		if ts.Session.Screen() == GameOver {
			break
		}
		ts.Queue(p.Events(ts.Session)...)
		if !ts.Step() {
			n++
			break
		}
	}
	return n
}

// Ball returns the ball position.
func (ts *TestSim) Ball() (x, y float64) {
	return ts.Session.projectile.Position()
}
