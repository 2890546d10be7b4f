package cannon

import "math"

const (
	ProjectileSize = 16  // side of the ball's square hit box
	LaunchY        = 708 // pad height the ball rests at and returns to
	floorY         = 800 // reaching this ends the flight
	rightWall      = 581 // ball's x at which it turns back left
	DefaultAmmo    = 12

	ballSpeedY = 3.0
	// The horizontal component keeps a 1.73 ratio to the vertical one
	// (roughly a 60° launch), rounded to whole units.
	ballSpeedXRatio = 1.73
)

// ProjectileState is the ball's flight state.
type ProjectileState int

const (
	Ready  ProjectileState = iota // resting on the launch pad
	Moving                        // in flight
)

func (s ProjectileState) String() string {
	if s == Moving {
		return "moving"
	}
	return "ready"
}

// Projectile is the cannon ball. Velocity is in screen space: vy < 0 moves
// up. Position and velocity only change while Moving; orientation and the
// pad position only change while Ready.
type Projectile struct {
	x, y   float64
	vx, vy float64
	state  ProjectileState
	orient Direction
	ammo   int
}

// NewProjectile returns a Ready ball on the pad with a full magazine.
func NewProjectile() *Projectile {
	return &Projectile{
		y:      LaunchY,
		vx:     math.Round(ballSpeedXRatio * ballSpeedY),
		vy:     -ballSpeedY,
		state:  Ready,
		orient: Left,
		ammo:   DefaultAmmo,
	}
}

// State returns Ready or Moving.
func (p *Projectile) State() ProjectileState { return p.state }

// Position returns the top-left corner of the ball.
func (p *Projectile) Position() (x, y float64) { return p.x, p.y }

// Velocity returns (vx, vy) in arena units per tick.
func (p *Projectile) Velocity() (vx, vy float64) { return p.vx, p.vy }

// Orientation returns the facing inherited at the last launch.
func (p *Projectile) Orientation() Direction { return p.orient }

// Ammo returns the number of balls left.
func (p *Projectile) Ammo() int { return p.ammo }

// HitBox returns the ball's collision box at its current position.
func (p *Projectile) HitBox() Rect {
	return Rect{X: int(p.x), Y: int(p.y), W: ProjectileSize, H: ProjectileSize}
}

// SetOrientation points vx along d. Ignored while Moving.
func (p *Projectile) SetOrientation(d Direction) bool {
	if p.state == Moving {
		return false
	}
	p.orient = d
	p.vx = d.sign() * abs(p.vx)
	return true
}

// SetPosition aligns the pad spawn point with a launcher at launcherX: the
// muzzle is on the left edge when facing Left and one launcher width to the
// right when facing Right. Ignored while Moving.
func (p *Projectile) SetPosition(launcherX float64) bool {
	if p.state == Moving {
		return false
	}
	p.x = launcherX
	if p.orient == Right {
		p.x += LauncherWidth
	}
	return true
}

// SetMoving starts the flight. Repeated calls while Moving are no-ops.
func (p *Projectile) SetMoving() bool {
	if p.state == Moving {
		return false
	}
	p.state = Moving
	return true
}

// Launch is the guarded fire command: it consumes one ball, takes the
// launcher's facing and position and starts the flight. It does nothing and
// returns false unless the ball is Ready and ammunition remains.
func (p *Projectile) Launch(d Direction, launcherX float64) bool {
	if p.state != Ready || p.ammo <= 0 {
		return false
	}
	p.ammo--
	p.SetOrientation(d)
	p.SetPosition(launcherX)
	p.SetMoving()
	return true
}

// Refill resets the magazine to DefaultAmmo.
func (p *Projectile) Refill() {
	p.ammo = DefaultAmmo
}

// StepResult summarises one Update call.
type StepResult struct {
	Targets []*Target // targets still active after this step
	Hits    []*Target // targets destroyed this step, in collection order
	Bounces int       // wall/ceiling reflections this step
	Landed  bool      // ball reached the floor and re-armed
	LevelUp bool      // at least one hit raised the level
}

// Update advances the ball one tick. While Ready it returns targets
// unchanged. While Moving it integrates, resolves walls, then tests the hit
// box against every target; each overlapping target is marked Hit, scored
// once on tracker and dropped from the returned slice.
func (p *Projectile) Update(targets []*Target, tracker *Tracker, cues CueSink) StepResult {
	res := StepResult{Targets: targets}
	if p.state != Moving {
		return res
	}
	if cues == nil {
		cues = NopCues{}
	}

	p.x += p.vx
	p.y += p.vy

	if p.y <= 0 {
		p.vy = abs(p.vy)
		res.Bounces++
		cues.Trigger(CueBounce)
	} else if p.y >= floorY {
		p.rearm()
		res.Landed = true
		return res
	}

	if p.x <= 0 {
		p.vx = abs(p.vx)
		res.Bounces++
		cues.Trigger(CueBounce)
	} else if p.x >= rightWall {
		p.vx = -abs(p.vx)
		res.Bounces++
		cues.Trigger(CueBounce)
	}

	box := p.HitBox()
	var hitIdx []int
	for i, t := range targets {
		if t.Status() == Normal && box.Intersects(t.Rect()) {
			hitIdx = append(hitIdx, i)
		}
	}
	if len(hitIdx) == 0 {
		return res
	}

	for _, i := range hitIdx {
		t := targets[i]
		t.MarkHit()
		res.Hits = append(res.Hits, t)
		if tracker != nil && tracker.RecordHit() {
			res.LevelUp = true
		}
		cues.Trigger(CueHit)
	}
	res.Targets = activeTargets(targets)
	return res
}

// rearm puts the ball back on the pad ready for the next shot.
func (p *Projectile) rearm() {
	p.state = Ready
	p.y = LaunchY
	p.vx = abs(p.vx)
	p.vy = -abs(p.vy)
}
