package boardgen

import (
	"math"
	"math/rand"
	"testing"

	"hexwar.io/internal/sim/lattice"
)

type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

func TestGenerate_NeverStopDepthTwo(t *testing.T) {
	got := Generate(lattice.Origin, Options{MaxDepth: 2, StopProbability: 0.2, Rand: constRand(0.5)})
	want := []lattice.Cube{
		{},
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: -1}, {Z: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("len=%d want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d]=%v want %v", i, got[i], want[i])
		}
	}
}

func TestGenerate_AlwaysStopIsEmpty(t *testing.T) {
	got := Generate(lattice.Origin, Options{MaxDepth: 10, StopProbability: 0.2, Rand: constRand(0)})
	if len(got) != 0 {
		t.Fatalf("expected empty board, got %v", got)
	}
}

func TestGenerate_ZeroDepthIsEmpty(t *testing.T) {
	if got := Generate(lattice.Origin, Options{MaxDepth: 0, Rand: constRand(0.9)}); len(got) != 0 {
		t.Fatalf("expected empty board, got %v", got)
	}
}

func TestGenerate_BoardInvariants(t *testing.T) {
	bound := int(math.Pow(6, 10))
	for seed := int64(1); seed <= 25; seed++ {
		pts := Generate(lattice.Origin, Options{MaxDepth: 10, StopProbability: 0.2, Rand: rand.New(rand.NewSource(seed))})
		if len(pts) > bound {
			t.Fatalf("seed %d: %d points exceeds 6^10", seed, len(pts))
		}
		seen := map[lattice.Cube]bool{}
		for i, p := range pts {
			if seen[p] {
				t.Fatalf("seed %d: duplicate point %v", seed, p)
			}
			seen[p] = true
			if i == 0 {
				if p != lattice.Origin {
					t.Fatalf("seed %d: first point %v is not the start", seed, p)
				}
				continue
			}
			if lattice.IsValid(p) {
				t.Fatalf("seed %d: %v is a center, generator should walk corners", seed, p)
			}
			if !hasEarlierParent(pts[:i], p) {
				t.Fatalf("seed %d: %v is not adjacent to any earlier point", seed, p)
			}
		}
	}
}

func hasEarlierParent(earlier []lattice.Cube, p lattice.Cube) bool {
	for _, q := range earlier {
		for _, a := range lattice.Adjacent(q) {
			if a == p {
				return true
			}
		}
	}
	return false
}

func TestGenerate_SeededIsReproducible(t *testing.T) {
	a := Generate(lattice.Origin, Options{MaxDepth: 8, StopProbability: 0.2, Rand: rand.New(rand.NewSource(7))})
	b := Generate(lattice.Origin, Options{MaxDepth: 8, StopProbability: 0.2, Rand: rand.New(rand.NewSource(7))})
	if len(a) != len(b) {
		t.Fatalf("len mismatch %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

// recursiveWalk is the straightforward recursive form of the walk.
func recursiveWalk(start lattice.Cube, maxDepth int, stop float64, rng Rand) []lattice.Cube {
	var out []lattice.Cube
	seen := map[lattice.Cube]bool{}
	var visit func(p lattice.Cube, depth int)
	visit = func(p lattice.Cube, depth int) {
		if rng.Float64() < stop {
			return
		}
		if depth == 0 {
			return
		}
		if seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
		for _, n := range lattice.Adjacent(p) {
			visit(n, depth-1)
		}
	}
	visit(start, maxDepth)
	return out
}

func TestGenerate_MatchesRecursiveOrder(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		want := recursiveWalk(lattice.Origin, 7, 0.2, rand.New(rand.NewSource(seed)))
		got := Generate(lattice.Origin, Options{MaxDepth: 7, StopProbability: 0.2, Rand: rand.New(rand.NewSource(seed))})
		if len(got) != len(want) {
			t.Fatalf("seed %d: len %d want %d", seed, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("seed %d: point %d = %v want %v", seed, i, got[i], want[i])
			}
		}
	}
}

func TestGenerate_CenterStepStaysHome(t *testing.T) {
	got := Generate(lattice.Origin, Options{MaxDepth: 5, Rand: constRand(0.9), Step: lattice.Neighbors})
	if len(got) != 1 || got[0] != lattice.Origin {
		t.Fatalf("walking center neighbors from a center should only record the start, got %v", got)
	}
}

func TestGenerate_DiagonalTriplesAreDistinctPoints(t *testing.T) {
	start := lattice.Cube{X: 1, Y: 1, Z: 1}
	step := func(c lattice.Cube) []lattice.Cube {
		if c == start {
			return []lattice.Cube{lattice.Origin, start}
		}
		return nil
	}
	got := Generate(start, Options{MaxDepth: 3, Rand: constRand(0.9), Step: step})
	want := []lattice.Cube{start, lattice.Origin}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestGenerate_KeepsRawTriplesReachedTwice(t *testing.T) {
	// (1,1,0) and (0,0,-1) differ by (1,1,1); both are recorded.
	pts := Generate(lattice.Origin, Options{MaxDepth: 3, Rand: constRand(0.9)})
	var sawA, sawB bool
	for _, p := range pts {
		switch p {
		case lattice.Cube{X: 1, Y: 1}:
			sawA = true
		case lattice.Cube{Z: -1}:
			sawB = true
		}
	}
	if !sawA || !sawB {
		t.Fatalf("missing a raw triple: (1,1,0)=%v (0,0,-1)=%v in %v", sawA, sawB, pts)
	}
}
