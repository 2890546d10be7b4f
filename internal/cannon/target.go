package cannon

import "math/rand"

const (
	TargetSize = 64
	TNTFrames  = 4

	spawnMinX = 20
	spawnMaxX = 520
	spawnMinY = 50
	spawnMaxY = 500

	tntOneIn = 4 // one target in tntOneIn is drawn as TNT
)

// TargetStatus is Normal until the ball touches the target.
type TargetStatus int

const (
	Normal TargetStatus = iota
	Hit
)

func (s TargetStatus) String() string {
	if s == Hit {
		return "hit"
	}
	return "normal"
}

// TargetKind only changes how a target is drawn; both kinds score 1.
type TargetKind int

const (
	Chest TargetKind = iota
	TNT
)

func (k TargetKind) String() string {
	if k == TNT {
		return "tnt"
	}
	return "chest"
}

// Target is a destructible 64×64 box placed by the Spawner.
type Target struct {
	x, y   int
	kind   TargetKind
	status TargetStatus
}

// NewTarget creates a Normal target at (x,y).
func NewTarget(x, y int, kind TargetKind) *Target {
	return &Target{x: x, y: y, kind: kind}
}

// Position returns the top-left corner.
func (t *Target) Position() (x, y int) { return t.x, t.y }

// Kind returns Chest or TNT.
func (t *Target) Kind() TargetKind { return t.kind }

// Status returns Normal or Hit.
func (t *Target) Status() TargetStatus { return t.status }

// Rect returns the target's box.
func (t *Target) Rect() Rect {
	return Rect{X: t.x, Y: t.y, W: TargetSize, H: TargetSize}
}

// MarkHit flips the target to Hit. It never flips back.
func (t *Target) MarkHit() {
	t.status = Hit
}

// activeTargets returns the Normal targets of ts in order, in a new slice.
func activeTargets(ts []*Target) []*Target {
	out := make([]*Target, 0, len(ts))
	for _, t := range ts {
		if t.status == Normal {
			out = append(out, t)
		}
	}
	return out
}

// SpawnArea is the rectangle spawned target corners are drawn from,
// inclusive on both ends.
func SpawnArea() (minX, maxX, minY, maxY int) {
	return spawnMinX, spawnMaxX, spawnMinY, spawnMaxY
}

// Spawner places batches of targets uniformly inside the spawn area.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner returns a spawner seeded with seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- game only
}

// Spawn creates exactly n targets. n below 1 yields an empty batch.
func (sp *Spawner) Spawn(n int) []*Target {
	if n < 1 {
		return nil
	}
	out := make([]*Target, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, sp.one())
	}
	return out
}

func (sp *Spawner) one() *Target {
	x := spawnMinX + sp.rng.Intn(spawnMaxX-spawnMinX+1)
	y := spawnMinY + sp.rng.Intn(spawnMaxY-spawnMinY+1)
	kind := Chest
	if sp.rng.Intn(tntOneIn) == 0 {
		kind = TNT
	}
	return NewTarget(x, y, kind)
}
