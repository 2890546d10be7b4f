package cannon

import "testing"

// flying returns a Moving projectile at (x,y) with velocity (vx,vy).
func flying(x, y, vx, vy float64) *Projectile {
	p := NewProjectile()
	p.state = Moving
	p.x, p.y = x, y
	p.vx, p.vy = vx, vy
	return p
}

func TestProjectile_StartsReadyWithFullAmmo(t *testing.T) {
	p := NewProjectile()
	if p.State() != Ready {
		t.Fatalf("expected ready, got %s", p.State())
	}
	if p.Ammo() != DefaultAmmo {
		t.Fatalf("expected %d ammo, got %d", DefaultAmmo, p.Ammo())
	}
	vx, vy := p.Velocity()
	if vx != 5 || vy != -3 {
		t.Fatalf("expected velocity (5,-3), got (%.0f,%.0f)", vx, vy)
	}
}

func TestProjectile_LaunchLeftFromLauncherAt200(t *testing.T) {
	p := NewProjectile()
	if !p.Launch(Left, 200) {
		t.Fatal("launch from ready should be accepted")
	}
	if p.State() != Moving {
		t.Fatalf("expected moving, got %s", p.State())
	}
	vx, _ := p.Velocity()
	if vx >= 0 {
		t.Fatalf("expected negative vx facing left, got %.1f", vx)
	}
	if x, _ := p.Position(); x != 200 {
		t.Fatalf("expected muzzle at x=200, got %.1f", x)
	}
	if p.Ammo() != 11 {
		t.Fatalf("expected ammo 12→11, got %d", p.Ammo())
	}
}

func TestProjectile_LaunchRightOffsetsByLauncherWidth(t *testing.T) {
	p := NewProjectile()
	p.Launch(Right, 200)
	if x, _ := p.Position(); x != 200+LauncherWidth {
		t.Fatalf("expected muzzle at x=%d, got %.1f", 200+LauncherWidth, x)
	}
	if vx, _ := p.Velocity(); vx <= 0 {
		t.Fatalf("expected positive vx facing right, got %.1f", vx)
	}
}

func TestProjectile_RedundantLaunchIsNoOp(t *testing.T) {
	p := NewProjectile()
	p.Launch(Left, 200)
	if p.Launch(Right, 400) {
		t.Fatal("second launch while moving should be rejected")
	}
	if p.Ammo() != 11 {
		t.Fatalf("rejected launch must not spend ammo, got %d", p.Ammo())
	}
	if p.Orientation() != Left {
		t.Fatalf("orientation changed while moving: %s", p.Orientation())
	}
	if x, _ := p.Position(); x != 200 {
		t.Fatalf("position changed while moving: %.1f", x)
	}
}

func TestProjectile_GuardsRejectChangesWhileMoving(t *testing.T) {
	p := flying(100, 100, -5, -3)
	if p.SetOrientation(Right) {
		t.Fatal("SetOrientation accepted while moving")
	}
	if p.SetPosition(300) {
		t.Fatal("SetPosition accepted while moving")
	}
	if p.SetMoving() {
		t.Fatal("SetMoving reported a transition while already moving")
	}
	vx, _ := p.Velocity()
	x, _ := p.Position()
	if vx != -5 || x != 100 {
		t.Fatalf("state mutated by rejected calls: x=%.1f vx=%.1f", x, vx)
	}
}

func TestProjectile_LaunchWithEmptyMagazineRejected(t *testing.T) {
	p := NewProjectile()
	p.ammo = 0
	if p.Launch(Left, 200) {
		t.Fatal("launch with no ammo should be rejected")
	}
	if p.State() != Ready || p.Ammo() != 0 {
		t.Fatalf("expected ready with 0 ammo, got %s with %d", p.State(), p.Ammo())
	}
}

func TestProjectile_ReadyUpdateIsInert(t *testing.T) {
	p := NewProjectile()
	targets := []*Target{NewTarget(0, 690, Chest)}
	res := p.Update(targets, NewTracker(), nil)
	if len(res.Targets) != 1 || len(res.Hits) != 0 {
		t.Fatalf("ready ball should not collide, got %d hits", len(res.Hits))
	}
	if _, y := p.Position(); y != LaunchY {
		t.Fatalf("ready ball moved to y=%.1f", y)
	}
}

func TestProjectile_CeilingBounceFlipsVY(t *testing.T) {
	cues := &CueCounter{}
	p := flying(100, 2, 5, -3)
	res := p.Update(nil, nil, cues)
	_, vy := p.Velocity()
	if vy != 3 {
		t.Fatalf("expected vy reflected to +3, got %.1f", vy)
	}
	if res.Bounces != 1 || cues.Count(CueBounce) != 1 {
		t.Fatalf("expected one bounce cue, got bounces=%d cues=%d", res.Bounces, cues.Count(CueBounce))
	}
	_, y0 := p.Position()
	p.Update(nil, nil, cues)
	_, y1 := p.Position()
	if y1 <= y0 {
		t.Fatalf("ball should descend after ceiling bounce: y %.1f → %.1f", y0, y1)
	}
	if cues.Count(CueBounce) != 1 {
		t.Fatalf("descending ball should not bounce again, cues=%d", cues.Count(CueBounce))
	}
}

func TestProjectile_SideWallsForceVXInward(t *testing.T) {
	cases := []struct {
		name   string
		x, vx  float64
		wantVX float64
	}{
		{"left wall", 2, -5, 5},
		{"right wall", 579, 5, -5},
		{"past left wall heading inward", -10, 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cues := &CueCounter{}
			p := flying(tc.x, 300, tc.vx, -3)
			p.Update(nil, nil, cues)
			vx, _ := p.Velocity()
			if vx != tc.wantVX {
				t.Fatalf("expected vx=%.0f, got %.0f", tc.wantVX, vx)
			}
			if cues.Count(CueBounce) != 1 {
				t.Fatalf("expected bounce cue, got %d", cues.Count(CueBounce))
			}
		})
	}
}

func TestProjectile_FloorRearmsWithoutBounceCue(t *testing.T) {
	cues := &CueCounter{}
	p := flying(300, 798, -5, 3)
	res := p.Update(nil, nil, cues)
	if !res.Landed {
		t.Fatal("expected landed result")
	}
	if p.State() != Ready {
		t.Fatalf("expected ready after floor, got %s", p.State())
	}
	if _, y := p.Position(); y != LaunchY {
		t.Fatalf("expected y reset to %d, got %.1f", LaunchY, y)
	}
	vx, vy := p.Velocity()
	if vx != 5 || vy != -3 {
		t.Fatalf("expected re-armed velocity (5,-3), got (%.0f,%.0f)", vx, vy)
	}
	if cues.Count(CueBounce) != 0 {
		t.Fatal("floor contact must not play the bounce cue")
	}
}

func TestProjectile_HitRemovesTargetAndScoresOnce(t *testing.T) {
	cues := &CueCounter{}
	tr := NewTracker()
	hit := NewTarget(100, 100, Chest)
	far := NewTarget(400, 400, Chest)
	p := flying(110, 160, 0, -3)

	res := p.Update([]*Target{hit, far}, tr, cues)
	if len(res.Hits) != 1 || res.Hits[0] != hit {
		t.Fatalf("expected exactly the overlapping target hit, got %d hits", len(res.Hits))
	}
	if hit.Status() != Hit {
		t.Fatalf("hit target status = %s", hit.Status())
	}
	if len(res.Targets) != 1 || res.Targets[0] != far {
		t.Fatalf("expected only the far target left, got %d", len(res.Targets))
	}
	if tr.Score() != 2 {
		t.Fatalf("expected score 1→2, got %d", tr.Score())
	}
	if cues.Count(CueHit) != 1 {
		t.Fatalf("expected one hit cue, got %d", cues.Count(CueHit))
	}

	// The removed target is gone from the field for the next step.
	res = p.Update(res.Targets, tr, cues)
	if len(res.Hits) != 0 || tr.Score() != 2 {
		t.Fatalf("target scored twice: hits=%d score=%d", len(res.Hits), tr.Score())
	}
}

func TestProjectile_SeveralOverlapsInOneFrameAllScore(t *testing.T) {
	tr := NewTracker()
	a := NewTarget(100, 100, Chest)
	b := NewTarget(120, 120, TNT)
	c := NewTarget(400, 100, Chest)
	p := flying(110, 160, 0, -3)

	res := p.Update([]*Target{a, b, c}, tr, nil)
	if len(res.Hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(res.Hits))
	}
	if tr.Score() != 3 {
		t.Fatalf("expected score 3, got %d", tr.Score())
	}
	if len(res.Targets) != 1 || res.Targets[0] != c {
		t.Fatalf("expected only the untouched target left, got %d", len(res.Targets))
	}
}

func TestProjectile_EdgeContactIsNotAHit(t *testing.T) {
	// Ball box ends exactly where the target begins.
	tr := NewTracker()
	tgt := NewTarget(100, 100, Chest)
	p := flying(84, 150, 0, -3)
	res := p.Update([]*Target{tgt}, tr, nil)
	if len(res.Hits) != 0 {
		t.Fatal("touching edges should not count as overlap")
	}
}
