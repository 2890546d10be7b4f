package cannon

const (
	ArenaWidth  = 600
	ArenaHeight = 800

	LauncherWidth  = 64
	LauncherY      = 698 // fixed vertical position of the launcher sprite
	launcherStartX = 200
	launcherMinX   = 3
	launcherMaxX   = 533
	launcherFrames = 2 // rolling animation frames
)

// Direction is the horizontal facing of the launcher and, at launch, the ball.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// sign returns -1 for Left and +1 for Right.
func (d Direction) sign() float64 {
	if d == Right {
		return 1
	}
	return -1
}

// Launcher is the player-controlled cannon rolling along the bottom edge.
type Launcher struct {
	x       float64
	dir     Direction
	speed   float64
	minX    float64
	maxX    float64
	frame   int
	moveAcc int // ticks spent rolling, drives the animation frame
}

// NewLauncher places a launcher at its start position facing left, at rest.
func NewLauncher() *Launcher {
	return &Launcher{
		x:    launcherStartX,
		dir:  Left,
		minX: launcherMinX,
		maxX: launcherMaxX,
	}
}

// SetDirection changes the facing without moving.
func (l *Launcher) SetDirection(d Direction) {
	l.dir = d
}

// SetSpeed sets the roll rate in arena units per tick. Negative rates are
// treated as zero; direction alone decides which way it rolls.
func (l *Launcher) SetSpeed(rate float64) {
	if rate < 0 {
		rate = 0
	}
	l.speed = rate
	if rate == 0 {
		l.frame = 0
		l.moveAcc = 0
	}
}

// Advance rolls the launcher by direction×speed×dt, clamped to its bounds.
func (l *Launcher) Advance(dt float64) {
	if l.speed == 0 || dt <= 0 {
		return
	}
	l.x += l.dir.sign() * l.speed * dt
	if l.x < l.minX {
		l.x = l.minX
	}
	if l.x > l.maxX {
		l.x = l.maxX
	}
	l.moveAcc++
	l.frame = l.moveAcc % launcherFrames
}

// Direction returns the current facing.
func (l *Launcher) Direction() Direction { return l.dir }

// X returns the left edge of the launcher sprite.
func (l *Launcher) X() float64 { return l.x }

// Speed returns the current roll rate.
func (l *Launcher) Speed() float64 { return l.speed }

// Moving reports whether the launcher is rolling.
func (l *Launcher) Moving() bool { return l.speed > 0 }

// Frame returns the sprite frame: 0 at rest, cycling while rolling.
func (l *Launcher) Frame() int { return l.frame }

// Bounds returns the clamping range for X.
func (l *Launcher) Bounds() (minX, maxX float64) { return l.minX, l.maxX }

// Rect returns the launcher's box in arena units.
func (l *Launcher) Rect() Rect {
	return Rect{X: int(l.x), Y: LauncherY, W: LauncherWidth, H: ArenaHeight - LauncherY}
}

// place moves the launcher directly, clamped. Used by the test harness.
func (l *Launcher) place(x float64) {
	if x < l.minX {
		x = l.minX
	}
	if x > l.maxX {
		x = l.maxX
	}
	l.x = x
}
