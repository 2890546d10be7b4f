package cannon

import (
	"math"
	"math/rand"
)

// Policy decides which input events to feed a Session on a tick.
type Policy interface {
	Events(s *Session) []InputEvent
}

// TrackerPolicy parks the launcher where a straight shot would cross the
// lowest target's centre, then fires. Wall reflections are folded in; the
// ceiling bounce is ignored, so it aims on the way up only.
type TrackerPolicy struct {
	holding Key
}

// aimTolerance is how close, in arena units, the launcher must be to its
// aim point before the policy fires.
const aimTolerance = 1.0

// Events implements Policy.
func (tp *TrackerPolicy) Events(s *Session) []InputEvent {
	switch s.Screen() {
	case MainMenu:
		return []InputEvent{PointerDown(NewGameRegion.X+NewGameRegion.W/2, NewGameRegion.Y+NewGameRegion.H/2)}
	case GameOver:
		return nil
	}
	if s.Projectile().State() == Moving || len(s.Targets()) == 0 {
		return tp.release()
	}

	goal := lowestTarget(s.Targets())
	aimX, dir := AimPoint(goal)
	lx := s.Launcher().X()

	var out []InputEvent
	switch {
	case lx < aimX-aimTolerance:
		out = tp.hold(KeyRight)
	case lx > aimX+aimTolerance:
		out = tp.hold(KeyLeft)
	default:
		out = tp.release()
		// Tap the facing key so the launcher turns without rolling.
		if s.Launcher().Direction() != dir {
			k := KeyLeft
			if dir == Right {
				k = KeyRight
			}
			out = append(out, KeyDownEvent(k), KeyUpEvent(k))
		}
		out = append(out, KeyDownEvent(KeySpace), KeyUpEvent(KeySpace))
	}
	return out
}

func (tp *TrackerPolicy) hold(k Key) []InputEvent {
	if tp.holding == k {
		return nil
	}
	var out []InputEvent
	if tp.holding != KeyOther {
		out = append(out, KeyUpEvent(tp.holding))
	}
	tp.holding = k
	return append(out, KeyDownEvent(k))
}

func (tp *TrackerPolicy) release() []InputEvent {
	if tp.holding == KeyOther {
		return nil
	}
	k := tp.holding
	tp.holding = KeyOther
	return []InputEvent{KeyUpEvent(k)}
}

func lowestTarget(ts []*Target) *Target {
	best := ts[0]
	for _, t := range ts[1:] {
		if t.y > best.y {
			best = t
		}
	}
	return best
}

// AimPoint returns the launcher x and facing whose shot crosses t's centre
// on the way up. Ties go to Left, then to the smaller x.
func AimPoint(t *Target) (float64, Direction) {
	p := NewProjectile()
	vx, vy := p.Velocity()
	cx := float64(t.x + TargetSize/2 - ProjectileSize/2)
	rise := float64(LaunchY - (t.y + TargetSize/2 - ProjectileSize/2))
	run := abs(vx) / abs(vy) * rise

	bestX, bestDir, bestErr := float64(launcherStartX), Left, math.Inf(1)
	for _, d := range []Direction{Left, Right} {
		for x := float64(launcherMinX); x <= launcherMaxX; x++ {
			muzzle := x
			if d == Right {
				muzzle += LauncherWidth
			}
			err := abs(foldWalls(muzzle+d.sign()*run) - cx)
			if err < bestErr {
				bestX, bestDir, bestErr = x, d, err
			}
		}
	}
	return bestX, bestDir
}

// foldWalls maps an unobstructed x onto the arena, reflecting at 0 and the
// right wall.
func foldWalls(x float64) float64 {
	const period = 2 * rightWall
	m := math.Mod(x, period)
	if m < 0 {
		m += period
	}
	if m > rightWall {
		m = period - m
	}
	return m
}

// RandomPolicy mashes keys. Used to fuzz invariants.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy returns a seeded RandomPolicy.
func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- test input
}

var randomKeys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeySpace, KeyOther}

// Events implements Policy.
func (rp *RandomPolicy) Events(s *Session) []InputEvent {
	if s.Screen() == MainMenu {
		return []InputEvent{PointerDown(NewGameRegion.X+10, NewGameRegion.Y+10)}
	}
	var out []InputEvent
	for i := rp.rng.Intn(3); i > 0; i-- {
		k := randomKeys[rp.rng.Intn(len(randomKeys))]
		switch rp.rng.Intn(3) {
		case 0:
			out = append(out, KeyUpEvent(k))
		case 1:
			out = append(out, KeyDownEvent(k))
		default:
			out = append(out, PointerDown(rp.rng.Intn(ArenaWidth), rp.rng.Intn(ArenaHeight)))
		}
	}
	return out
}
