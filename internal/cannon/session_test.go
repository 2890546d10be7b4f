package cannon

import "testing"

func center(r Rect) (int, int) { return r.X + r.W/2, r.Y + r.H/2 }

func TestSession_StartsOnMainMenuWithOneTarget(t *testing.T) {
	s := NewSession(Options{Seed: 3})
	if s.Screen() != MainMenu {
		t.Fatalf("expected main menu, got %s", s.Screen())
	}
	if !s.Running() {
		t.Fatal("new session should be running")
	}
	if len(s.Targets()) != 1 {
		t.Fatalf("expected one starting target, got %d", len(s.Targets()))
	}
	if s.Ammo() != DefaultAmmo {
		t.Fatalf("expected %d ammo, got %d", DefaultAmmo, s.Ammo())
	}
}

func TestSession_MenuClickRegions(t *testing.T) {
	ts := NewTestSim()
	ts.Click(10, 10)
	ts.Step()
	if ts.Session.Screen() != MainMenu {
		t.Fatalf("click outside regions changed screen to %s", ts.Session.Screen())
	}

	ts.Click(center(NewGameRegion))
	ts.Step()
	if ts.Session.Screen() != Playing {
		t.Fatalf("expected playing after new-game click, got %s", ts.Session.Screen())
	}
	if !ts.Log.HasEntry("state", "change", "main_menu → playing") {
		t.Fatalf("missing state change entry:\n%s", ts.Log.Format())
	}
}

func TestSession_ExitRegionStopsLoop(t *testing.T) {
	ts := NewTestSim()
	ts.Click(center(ExitRegion))
	if ts.Step() {
		t.Fatal("tick should report stopped after exit click")
	}
	if ts.Session.Running() {
		t.Fatal("session still running after exit click")
	}
}

func TestSession_ClicksIgnoredWhilePlaying(t *testing.T) {
	ts := NewTestSim(StartPlaying())
	ts.Click(center(ExitRegion))
	if !ts.Step() {
		t.Fatal("exit region must only work from the main menu")
	}
	if ts.Session.Screen() != Playing {
		t.Fatalf("expected still playing, got %s", ts.Session.Screen())
	}
}

func TestSession_QuitFromAnyScreen(t *testing.T) {
	for _, opts := range [][]SimOption{
		nil,
		{StartPlaying()},
		{StartPlaying(), WithAmmo(1)},
	} {
		ts := NewTestSim(opts...)
		if len(opts) == 2 {
			ts.Press(KeySpace)
			ts.Step()
			if ts.Session.Screen() != GameOver {
				t.Fatalf("setup: expected game over, got %s", ts.Session.Screen())
			}
		}
		ts.Queue(Quit())
		if ts.Step() {
			t.Fatalf("quit on %s did not stop the session", ts.Session.Screen())
		}
	}
}

func TestSession_FireFacingLeftFromX200(t *testing.T) {
	ts := NewTestSim(WithLauncherAt(200, Left), WithTargetAt(500, 60), StartPlaying())
	ts.Press(KeySpace)
	ts.Step()

	p := ts.Session.Projectile()
	if p.State() != Moving {
		t.Fatalf("expected moving after fire, got %s", p.State())
	}
	if vx, _ := p.Velocity(); vx >= 0 {
		t.Fatalf("expected vx < 0, got %.1f", vx)
	}
	if ts.Session.Ammo() != 11 {
		t.Fatalf("expected ammo 11, got %d", ts.Session.Ammo())
	}
	if ts.Cues.Count(CueFire) != 1 {
		t.Fatalf("expected one fire cue, got %d", ts.Cues.Count(CueFire))
	}
}

func TestSession_RepeatedFireSpendsOneBall(t *testing.T) {
	ts := NewTestSim(WithTargetAt(500, 60), StartPlaying())
	ts.Press(KeySpace)
	ts.Press(KeySpace)
	ts.Step()
	ts.Press(KeySpace)
	ts.RunTicks(5)
	if ts.Session.Ammo() != 11 {
		t.Fatalf("expected a single ball spent, ammo=%d", ts.Session.Ammo())
	}
	if n := ts.Log.Count("fire", "launch"); n != 1 {
		t.Fatalf("expected 1 launch entry, got %d", n)
	}
}

func TestSession_ArrowKeysRollLauncher(t *testing.T) {
	ts := NewTestSim(WithLauncherAt(200, Left), StartPlaying())
	ts.Press(KeyRight)
	ts.RunTicks(10)
	if x := ts.Session.Launcher().X(); x != 210 {
		t.Fatalf("expected x=210 after 10 ticks, got %.1f", x)
	}
	ts.Release(KeyRight)
	ts.RunTicks(10)
	if x := ts.Session.Launcher().X(); x != 210 {
		t.Fatalf("launcher kept rolling after key-up: %.1f", x)
	}
	if ts.Cues.Count(CueMoveStart) != 1 || ts.Cues.Count(CueMoveStop) != 1 {
		t.Fatalf("expected one start and one stop cue, got %d/%d",
			ts.Cues.Count(CueMoveStart), ts.Cues.Count(CueMoveStop))
	}
}

func TestSession_UpDownAreNoOps(t *testing.T) {
	ts := NewTestSim(WithLauncherAt(200, Left), StartPlaying())
	ts.Press(KeyUp)
	ts.Press(KeyDown)
	ts.RunTicks(3)
	ts.Release(KeyUp)
	ts.RunTicks(1)
	if ts.Session.Launcher().X() != 200 || ts.Session.Launcher().Moving() {
		t.Fatal("up/down must not move the launcher")
	}
	if len(ts.Cues.Sequence()) != 0 {
		t.Fatalf("up/down triggered cues: %v", ts.Cues.Sequence())
	}
}

func TestSession_KeysIgnoredOnMenu(t *testing.T) {
	ts := NewTestSim()
	ts.Press(KeyLeft)
	ts.Press(KeySpace)
	ts.RunTicks(5)
	if ts.Session.Launcher().Moving() || ts.Session.Ammo() != DefaultAmmo {
		t.Fatal("menu screen should ignore gameplay keys")
	}
}

func TestSession_LastBallEndsGame(t *testing.T) {
	ts := NewTestSim(WithAmmo(1), WithTargetAt(500, 60), StartPlaying())
	ts.Press(KeyRight)
	ts.Step()
	ts.Press(KeySpace)
	ts.Step()
	if ts.Session.Screen() != GameOver {
		t.Fatalf("expected game over at 0 ammo, got %s", ts.Session.Screen())
	}
	if ts.Cues.Count(CueGameOver) != 1 {
		t.Fatalf("expected game-over cue, got %d", ts.Cues.Count(CueGameOver))
	}
	if ts.Session.Launcher().Moving() || ts.Cues.Count(CueMoveStop) != 1 {
		t.Fatal("game over should stop the rolling launcher and its cue")
	}

	// Game over is terminal until exit.
	ts.Press(KeySpace)
	ts.Click(center(NewGameRegion))
	ts.RunTicks(10)
	if ts.Session.Screen() != GameOver {
		t.Fatalf("game over should not be left, got %s", ts.Session.Screen())
	}
}

func TestSession_EmptyFieldAtLevelThreeSpawnsThree(t *testing.T) {
	ts := NewTestSim(WithLevel(3), WithScore(25), WithNoTargets(), StartPlaying())
	ts.Step()
	targets := ts.Session.Targets()
	if len(targets) != 3 {
		t.Fatalf("expected 3 targets at level 3, got %d", len(targets))
	}
	minX, maxX, minY, maxY := SpawnArea()
	for _, tg := range targets {
		x, y := tg.Position()
		if x < minX || x > maxX || y < minY || y > maxY {
			t.Fatalf("spawned target at (%d,%d) out of bounds", x, y)
		}
	}
	if ts.Session.Ammo() != DefaultAmmo {
		t.Fatalf("ammo changed without a replenish: %d", ts.Session.Ammo())
	}
}

func TestSession_ClearingOnLevelUpReplenishesAmmo(t *testing.T) {
	ts := NewTestSim(WithScore(9), WithAmmo(5), WithTargetAt(100, 100), StartPlaying())
	p := ts.Session.Projectile()
	p.state, p.x, p.y, p.vx, p.vy = Moving, 110, 160, 0, -3

	ts.Step()
	if got := ts.Session.Tracker().Level(); got != 2 {
		t.Fatalf("expected level 2, got %d", got)
	}
	if got := len(ts.Session.Targets()); got != 2 {
		t.Fatalf("expected respawn of 2 targets, got %d", got)
	}
	if ts.Session.Ammo() != DefaultAmmo {
		t.Fatalf("expected ammo refilled to %d, got %d", DefaultAmmo, ts.Session.Ammo())
	}
	if !ts.Log.HasEntry("ammo", "refill", "12") {
		t.Fatalf("missing refill entry:\n%s", ts.Log.Format())
	}
}

func TestSession_ClearingOffThresholdKeepsAmmo(t *testing.T) {
	ts := NewTestSim(WithScore(4), WithAmmo(5), WithTargetAt(100, 100), StartPlaying())
	p := ts.Session.Projectile()
	p.state, p.x, p.y, p.vx, p.vy = Moving, 110, 160, 0, -3

	ts.Step()
	if ts.Session.Tracker().Score() != 5 {
		t.Fatalf("expected score 5, got %d", ts.Session.Tracker().Score())
	}
	if len(ts.Session.Targets()) != 1 {
		t.Fatalf("expected 1 new target at level 1, got %d", len(ts.Session.Targets()))
	}
	if ts.Session.Ammo() != 5 {
		t.Fatalf("ammo should stay 5, got %d", ts.Session.Ammo())
	}
}

func TestSession_FeedReceivesEvents(t *testing.T) {
	feed := NewEventFeed()
	s := NewSession(Options{Seed: 1, Feed: feed})
	s.Tick([]InputEvent{PointerDown(center(NewGameRegion))})
	s.Tick([]InputEvent{KeyDownEvent(KeySpace)})
	if feed.Len() < 2 {
		t.Fatalf("expected state and fire entries in the feed, got %d", feed.Len())
	}
	last := feed.Tail(2)
	if last[0].Category != "fire" || last[1].Category != "ammo" {
		t.Fatalf("unexpected feed tail: %v", last)
	}
}

func TestSession_SummaryCounts(t *testing.T) {
	ts := NewTestSim(WithScore(4), WithTargetAt(100, 100), StartPlaying())
	ts.Press(KeySpace)
	ts.Step()
	p := ts.Session.Projectile()
	p.x, p.y, p.vx, p.vy = 110, 160, 0, -3
	ts.Step()
	sm := ts.Session.Summary()
	if sm.Shots != 1 || sm.Hits != 1 || sm.Score != 5 || sm.Ticks != 2 {
		t.Fatalf("unexpected summary %+v", sm)
	}
	if sm.String() == "" {
		t.Fatal("summary string empty")
	}
}

func TestSession_KeyEventsRollAndHalt(t *testing.T) {
	ts := NewTestSim(StartPlaying())
	ts.Queue(KeyDownEvent(KeyRight), KeyDownEvent(KeyUp))
	ts.Step()
	l := ts.Session.Launcher()
	if !l.Moving() || l.Direction() != Right {
		t.Fatalf("expected rolling right, moving=%v dir=%v", l.Moving(), l.Direction())
	}
	ts.Queue(KeyUpEvent(KeyDown), KeyUpEvent(KeyRight))
	ts.Step()
	if l.Moving() {
		t.Fatal("key-up of the arrow should halt the launcher")
	}
	if ts.Cues.Count(CueMoveStart) != 1 || ts.Cues.Count(CueMoveStop) != 1 {
		t.Fatalf("unexpected move cues %v", ts.Cues.Sequence())
	}
}

// muteSink is a cue sink with a mute control.
type muteSink struct {
	CueCounter
	muted bool
}

func (m *muteSink) SetMuted(v bool) { m.muted = v }
func (m *muteSink) Muted() bool     { return m.muted }

func TestSession_ToggleMute(t *testing.T) {
	sink := &muteSink{}
	log := NewEventLog(false)
	s := NewSession(Options{Seed: 1, Cues: sink, Log: log})
	if !s.ToggleMute() || !sink.muted {
		t.Fatal("first toggle should mute")
	}
	if s.ToggleMute() || sink.muted {
		t.Fatal("second toggle should unmute")
	}
	if n := log.Count("state", "mute"); n != 2 {
		t.Fatalf("expected 2 mute entries, got %d", n)
	}

	plain := NewSession(Options{Seed: 1, Cues: &CueCounter{}})
	if plain.ToggleMute() {
		t.Fatal("a sink without a mute control never reports muted")
	}
}
