package coords

import (
	"math"
	"testing"

	"hexwar.io/internal/sim/lattice"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCubeToPixel_Formula(t *testing.T) {
	cfg := ProjectionConfig{Size: Point{X: 2, Y: 3}, Origin: Point{X: 10, Y: -4}, Orientation: Pointy}
	c := lattice.Cube{X: 2, Y: -1, Z: -1}
	p := CubeToPixel(c, cfg)
	wantX := (math.Sqrt(3)*2+math.Sqrt(3)/2*-1)*2 + 10
	wantY := (0*2+1.5*-1)*3 - 4
	if !near(p.X, wantX) || !near(p.Y, wantY) {
		t.Fatalf("CubeToPixel=%v want (%v,%v)", p, wantX, wantY)
	}
}

func TestCubeToPixel_ScalesWithSize(t *testing.T) {
	base := ProjectionConfig{Size: Point{X: 1, Y: 1}, Orientation: Flat}
	scaled := base
	scaled.Size = Point{X: 4, Y: 4}
	for _, c := range []lattice.Cube{{X: 1}, {X: -2, Y: 3, Z: 1}, {X: 5, Y: -7, Z: 2}} {
		p1 := CubeToPixel(c, base)
		p4 := CubeToPixel(c, scaled)
		if !near(p4.X, 4*p1.X) || !near(p4.Y, 4*p1.Y) {
			t.Fatalf("scale mismatch for %v: %v vs %v", c, p1, p4)
		}
	}
}

func TestCubeToPixel_TranslatesWithOrigin(t *testing.T) {
	base := DefaultProjection()
	moved := base
	moved.Origin = Point{X: base.Origin.X + 7.5, Y: base.Origin.Y - 2}
	for _, c := range []lattice.Cube{{}, {X: 1}, {X: -3, Y: 1, Z: 2}} {
		p := CubeToPixel(c, base)
		q := CubeToPixel(c, moved)
		if !near(q.X-p.X, 7.5) || !near(q.Y-p.Y, -2) {
			t.Fatalf("translation mismatch for %v: %v vs %v", c, p, q)
		}
	}
}

func TestCubeToPixel_DoesNotMutateConfig(t *testing.T) {
	cfg := DefaultProjection()
	before := cfg
	_ = CubeToPixel(lattice.Cube{X: 3, Y: -1, Z: -2}, cfg)
	if cfg != before {
		t.Fatalf("config changed: %+v -> %+v", before, cfg)
	}
}

func TestParseOrientation(t *testing.T) {
	for in, want := range map[string]string{"": "pointy", "POINTY": "pointy", " flat ": "flat"} {
		o, err := ParseOrientation(in)
		if err != nil || o.Name != want {
			t.Fatalf("ParseOrientation(%q)=%v,%v", in, o.Name, err)
		}
	}
	if _, err := ParseOrientation("diagonal"); err == nil {
		t.Fatalf("expected error")
	}
}
