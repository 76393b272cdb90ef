// Package boardgen builds simulated boards when no live vertex feed is wired in.
package boardgen

import (
	"math/rand"

	"hexwar.io/internal/sim/lattice"
)

const (
	DefaultMaxDepth        = 6
	DefaultStopProbability = 0.2
)

// Rand is the slice of *rand.Rand the generator needs.
type Rand interface {
	Float64() float64
}

type processRand struct{}

func (processRand) Float64() float64 { return rand.Float64() }

type Options struct {
	MaxDepth        int
	StopProbability float64
	// Rand nil means the process-wide (unseeded) source.
	Rand Rand
	// Step nil means lattice.Adjacent.
	Step func(lattice.Cube) []lattice.Cube
}

type frame struct {
	p     lattice.Cube
	depth int
}

// Generate runs a randomized depth-first walk from start and returns the points
// it recorded, in visit order. At every visit a stop roll ends the branch with
// probability StopProbability, then depth 0 and already-seen points end it too.
// Points are compared structurally. With the default Step every record after
// start is a corner (its axis sum is not a multiple of 3); the start itself is
// recorded as given.
func Generate(start lattice.Cube, opt Options) []lattice.Cube {
	rng := opt.Rand
	if rng == nil {
		rng = processRand{}
	}
	step := opt.Step
	if step == nil {
		step = lattice.Adjacent
	}

	var out []lattice.Cube
	seen := make(map[lattice.Cube]struct{})
	stack := []frame{{p: start, depth: opt.MaxDepth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if rng.Float64() < opt.StopProbability {
			continue
		}
		if f.depth <= 0 {
			continue
		}
		if _, ok := seen[f.p]; ok {
			continue
		}
		seen[f.p] = struct{}{}
		out = append(out, f.p)

		next := step(f.p)
		// Reverse push keeps pre-order: next[0] is expanded fully before next[1].
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, frame{p: next[i], depth: f.depth - 1})
		}
	}
	return out
}
