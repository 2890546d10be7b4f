package cannon

import (
	"fmt"
	"time"
)

// Screen is the top-level screen state.
type Screen int

const (
	MainMenu Screen = iota
	Playing
	GameOver
)

func (s Screen) String() string {
	switch s {
	case MainMenu:
		return "main_menu"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Menu hit regions in arena coordinates.
var (
	NewGameRegion = Rect{X: 168, Y: 346, W: 250, H: 80}
	ExitRegion    = Rect{X: 168, Y: 611, W: 250, H: 80}
)

const (
	TicksPerSecond = 60
	launcherRate   = 1.0 // arena units per tick while an arrow is held
	initialTargets = 1
)

// Options configures a Session. The zero value is usable: it seeds from the
// clock, discards cues and records nothing.
type Options struct {
	Seed int64
	Cues CueSink
	Log  *EventLog
	Feed *EventFeed
}

// Session is the game loop controller. It owns every entity and is driven
// one tick at a time by a frontend; it never blocks and never sleeps.
type Session struct {
	screen  Screen
	running bool
	tick    int

	launcher   *Launcher
	projectile *Projectile
	tracker    *Tracker
	spawner    *Spawner
	targets    []*Target

	cues CueSink
	log  *EventLog
	feed *EventFeed

	shots int
	hits  int
}

// NewSession builds a session on the main menu with one target in the field.
func NewSession(opts Options) *Session {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cues := opts.Cues
	if cues == nil {
		cues = NopCues{}
	}
	s := &Session{
		screen:     MainMenu,
		running:    true,
		launcher:   NewLauncher(),
		projectile: NewProjectile(),
		tracker:    NewTracker(),
		spawner:    NewSpawner(seed),
		cues:       cues,
		log:        opts.Log,
		feed:       opts.Feed,
	}
	s.targets = s.spawner.Spawn(initialTargets)
	return s
}

// Screen returns the current screen state.
func (s *Session) Screen() Screen { return s.screen }

// Running is false once the exit region was clicked or Quit was received.
func (s *Session) Running() bool { return s.running }

// TickCount returns the number of completed ticks.
func (s *Session) TickCount() int { return s.tick }

// Launcher returns the launcher for rendering.
func (s *Session) Launcher() *Launcher { return s.launcher }

// Projectile returns the ball for rendering.
func (s *Session) Projectile() *Projectile { return s.projectile }

// Tracker returns the score/level counters.
func (s *Session) Tracker() *Tracker { return s.tracker }

// Targets returns the active targets. Callers must not modify the slice.
func (s *Session) Targets() []*Target { return s.targets }

// Ammo returns the number of balls left.
func (s *Session) Ammo() int { return s.projectile.Ammo() }

// ToggleMute flips the mute state of the cue sink, if it supports one, and
// reports whether sound is now muted. Sinks without a mute control stay
// silent or audible as they are and report false.
func (s *Session) ToggleMute() bool {
	m, ok := s.cues.(Muter)
	if !ok {
		return false
	}
	muted := !m.Muted()
	m.SetMuted(muted)
	s.record("state", "mute", fmt.Sprintf("%t", muted), 0)
	return muted
}

// Tick applies every queued event in order, advances one update and
// reports whether the session is still running.
func (s *Session) Tick(events []InputEvent) bool {
	for _, ev := range events {
		s.HandleEvent(ev)
		if !s.running {
			break
		}
	}
	if s.running {
		s.Update()
	}
	s.tick++
	return s.running
}

// HandleEvent applies one input event.
func (s *Session) HandleEvent(ev InputEvent) {
	switch ev.Kind {
	case EventQuit:
		s.stop("quit")
	case EventKeyDown:
		s.keyDown(ev.Key)
	case EventKeyUp:
		s.keyUp(ev.Key)
	case EventPointerDown:
		s.pointerDown(ev.X, ev.Y)
	case EventPointerUp:
		// no pointer-up affordances
	}
}

func (s *Session) keyDown(k Key) {
	if s.screen != Playing {
		return
	}
	switch k {
	case KeyLeft:
		s.roll(Left)
	case KeyRight:
		s.roll(Right)
	case KeyUp, KeyDown:
		// reserved
	case KeySpace:
		s.fire()
	}
}

func (s *Session) keyUp(k Key) {
	switch k {
	case KeyLeft, KeyRight:
		s.halt()
	case KeyUp, KeyDown:
		// reserved
	}
}

func (s *Session) roll(d Direction) {
	s.launcher.SetDirection(d)
	s.launcher.SetSpeed(launcherRate)
	s.cues.Trigger(CueMoveStart)
	s.record("input", "roll", d.String(), s.launcher.X())
}

func (s *Session) halt() {
	if !s.launcher.Moving() {
		return
	}
	s.launcher.SetSpeed(0)
	s.cues.Trigger(CueMoveStop)
	s.record("input", "halt", fmt.Sprintf("x=%.0f", s.launcher.X()), s.launcher.X())
}

// fire launches the ball if it is on the pad. Ammunition is only spent on
// an accepted launch, so repeated presses during a flight cost nothing.
func (s *Session) fire() {
	if s.projectile.State() != Ready {
		return
	}
	if !s.projectile.Launch(s.launcher.Direction(), s.launcher.X()) {
		return
	}
	s.shots++
	s.cues.Trigger(CueFire)
	x, _ := s.projectile.Position()
	s.record("fire", "launch",
		fmt.Sprintf("%s from x=%.0f", s.launcher.Direction(), x), x)
	s.record("ammo", "spent", fmt.Sprintf("%d left", s.projectile.Ammo()), float64(s.projectile.Ammo()))
}

func (s *Session) pointerDown(x, y int) {
	if s.screen != MainMenu {
		return
	}
	switch {
	case NewGameRegion.Contains(x, y):
		s.setScreen(Playing)
	case ExitRegion.Contains(x, y):
		s.stop("exit_region")
	}
}

// Update advances the simulation by one tick for the current screen.
func (s *Session) Update() {
	if s.screen != Playing {
		return
	}

	s.launcher.Advance(1)

	res := s.projectile.Update(s.targets, s.tracker, s.cues)
	s.targets = res.Targets
	for i := 0; i < res.Bounces; i++ {
		x, y := s.projectile.Position()
		s.record("bounce", "wall", fmt.Sprintf("(%.0f,%.0f)", x, y), 0)
	}
	for _, t := range res.Hits {
		tx, ty := t.Position()
		s.hits++
		s.record("hit", "target", fmt.Sprintf("%s at (%d,%d)", t.Kind(), tx, ty), 0)
		s.record("score", "change", fmt.Sprintf("%d", s.tracker.Score()), float64(s.tracker.Score()))
	}
	if res.LevelUp {
		s.record("level", "up", fmt.Sprintf("%d", s.tracker.Level()), float64(s.tracker.Level()))
	}
	if res.Landed {
		s.record("land", "rearm", fmt.Sprintf("%d ammo", s.projectile.Ammo()), 0)
	}
	if s.log != nil && s.log.Verbose() {
		x, y := s.projectile.Position()
		s.log.AddVerbose(s.tick, "move", "ball", fmt.Sprintf("(%.1f,%.1f)", x, y), 0)
		s.log.AddVerbose(s.tick, "move", "launcher", fmt.Sprintf("%.1f", s.launcher.X()), s.launcher.X())
	}

	if len(s.targets) == 0 {
		s.respawn()
	}

	if s.projectile.Ammo() <= 0 {
		s.setScreen(GameOver)
	}
}

// respawn refills the field with level-many targets and tops up the
// magazine when the score sits on a level threshold.
func (s *Session) respawn() {
	level := s.tracker.Level()
	s.targets = s.spawner.Spawn(level)
	s.record("spawn", "batch", fmt.Sprintf("%d targets at level %d", len(s.targets), level), float64(len(s.targets)))
	// ReplenishDue checks the threshold that raised the level, not the new
	// level's threshold. The new one is always ahead of the score here.
	if s.tracker.ReplenishDue() {
		s.projectile.Refill()
		s.record("ammo", "refill", fmt.Sprintf("%d", s.projectile.Ammo()), float64(s.projectile.Ammo()))
	}
}

func (s *Session) setScreen(next Screen) {
	if next == s.screen {
		return
	}
	prev := s.screen
	s.screen = next
	s.record("state", "change", fmt.Sprintf("%s → %s", prev, next), 0)
	if next == GameOver {
		s.halt()
		s.cues.Trigger(CueGameOver)
	}
}

func (s *Session) stop(reason string) {
	if !s.running {
		return
	}
	s.running = false
	s.record("state", "exit", reason, 0)
}

func (s *Session) record(category, key, value string, num float64) {
	if s.log == nil && s.feed == nil {
		return
	}
	e := LogEntry{Tick: s.tick, Category: category, Key: key, Value: value, NumVal: num}
	if s.log != nil {
		s.log.Add(e.Tick, e.Category, e.Key, e.Value, e.NumVal)
	}
	if s.feed != nil {
		s.feed.Add(e)
	}
}

// Summary is a snapshot of a session's outcome.
type Summary struct {
	Screen Screen
	Score  int
	Level  int
	Ammo   int
	Shots  int
	Hits   int
	Ticks  int
}

// Summary returns the current outcome counters.
func (s *Session) Summary() Summary {
	return Summary{
		Screen: s.screen,
		Score:  s.tracker.Score(),
		Level:  s.tracker.Level(),
		Ammo:   s.projectile.Ammo(),
		Shots:  s.shots,
		Hits:   s.hits,
		Ticks:  s.tick,
	}
}

func (sm Summary) String() string {
	return fmt.Sprintf("score %d  level %d  shots %d  hits %d  time %s",
		sm.Score, sm.Level, sm.Shots, sm.Hits, TicksToDuration(sm.Ticks).Round(time.Second))
}

// TicksToDuration converts a tick count at TicksPerSecond to wall time.
func TicksToDuration(ticks int) time.Duration {
	return time.Duration(ticks) * time.Second / TicksPerSecond
}
