package cannon

import "testing"

func TestTarget_MarkHitIsOneWay(t *testing.T) {
	tg := NewTarget(50, 60, Chest)
	if tg.Status() != Normal {
		t.Fatalf("new target status = %s", tg.Status())
	}
	tg.MarkHit()
	tg.MarkHit()
	if tg.Status() != Hit {
		t.Fatalf("expected hit, got %s", tg.Status())
	}
	r := tg.Rect()
	if r.W != TargetSize || r.H != TargetSize || r.X != 50 || r.Y != 60 {
		t.Fatalf("unexpected rect %+v", r)
	}
}

func TestSpawner_BatchSizeMatchesLevel(t *testing.T) {
	sp := NewSpawner(7)
	for level := 1; level <= 6; level++ {
		if got := len(sp.Spawn(level)); got != level {
			t.Fatalf("level %d: expected %d targets, got %d", level, level, got)
		}
	}
	if got := sp.Spawn(0); len(got) != 0 {
		t.Fatalf("expected empty batch for n=0, got %d", len(got))
	}
}

func TestSpawner_PositionsStayInSafeRect(t *testing.T) {
	sp := NewSpawner(12345)
	minX, maxX, minY, maxY := SpawnArea()
	kinds := map[TargetKind]int{}
	for i := 0; i < 2000; i++ {
		for _, tg := range sp.Spawn(3) {
			x, y := tg.Position()
			if x < minX || x > maxX || y < minY || y > maxY {
				t.Fatalf("target at (%d,%d) outside [%d,%d]x[%d,%d]", x, y, minX, maxX, minY, maxY)
			}
			if tg.Status() != Normal {
				t.Fatalf("spawned target not normal: %s", tg.Status())
			}
			kinds[tg.Kind()]++
		}
	}
	if kinds[Chest] == 0 || kinds[TNT] == 0 {
		t.Fatalf("expected both kinds over 6000 spawns, got %v", kinds)
	}
	if kinds[TNT] > kinds[Chest] {
		t.Fatalf("TNT should be the minority kind, got %v", kinds)
	}
}

func TestSpawner_SameSeedSameLayout(t *testing.T) {
	a := NewSpawner(42).Spawn(5)
	b := NewSpawner(42).Spawn(5)
	for i := range a {
		ax, ay := a[i].Position()
		bx, by := b[i].Position()
		if ax != bx || ay != by || a[i].Kind() != b[i].Kind() {
			t.Fatalf("target %d differs: (%d,%d,%s) vs (%d,%d,%s)", i, ax, ay, a[i].Kind(), bx, by, b[i].Kind())
		}
	}
}

func TestRect_IntersectsAndContains(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"shared edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"empty", Rect{X: 1, Y: 1, W: 0, H: 5}, false},
	}
	for _, tc := range cases {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.b.Intersects(a); got != tc.want {
			t.Errorf("%s (swapped): Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
	if !a.Contains(0, 0) || a.Contains(10, 5) || a.Contains(-1, 5) {
		t.Fatal("Contains should include the top-left corner and exclude the far edges")
	}
}
