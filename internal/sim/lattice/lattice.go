// Package lattice defines the cube-addressed triangular mesh the board lives on.
//
// Every integer triple is a point. Points whose axis sum is a multiple of 3 are
// cell centers (IsValid); all other points are corners, the positions players own.
// A unit step along one axis always moves the sum off its residue class, so a
// corner's center neighbors are the cells it touches and a corner's non-center
// neighbors are the corners joined to it by a cell edge.
//
// Points are compared structurally: two triples are the same point only when
// all three axes match.
package lattice

import (
	"fmt"

	"hexwar.io/internal/sim/mathx"
)

type Cube struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

var Origin = Cube{}

func (c Cube) Sum() int { return c.X + c.Y + c.Z }

func (c Cube) Add(o Cube) Cube { return Cube{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z} }

func (c Cube) IsOrigin() bool { return c == Origin }

// String is the "x;y;z" key the board feed tooling uses.
func (c Cube) String() string { return fmt.Sprintf("%d;%d;%d", c.X, c.Y, c.Z) }

// IsValid reports whether c is a cell center: x+y+z ≡ 0 (mod 3).
func IsValid(c Cube) bool {
	return mathx.Mod(c.Sum(), 3) == 0
}

// unitSteps is the perturbation order used everywhere; generation replays depend on it.
var unitSteps = [6]Cube{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: -1}, {Z: 1},
}

// Perturbations returns the six points one unit away from c along a single axis.
func Perturbations(c Cube) [6]Cube {
	var out [6]Cube
	for i, d := range unitSteps {
		out[i] = c.Add(d)
	}
	return out
}

// Neighbors returns the unit perturbations of c that are valid (cell centers).
// A corner has exactly three; a center has none.
func Neighbors(c Cube) []Cube {
	out := make([]Cube, 0, 3)
	for _, p := range Perturbations(c) {
		if IsValid(p) {
			out = append(out, p)
		}
	}
	return out
}

// Adjacent returns the unit perturbations of c that are corners. From a corner
// these are the three corners sharing an edge with it; from a center they are
// the six corners of that cell.
func Adjacent(c Cube) []Cube {
	out := make([]Cube, 0, 6)
	for _, p := range Perturbations(c) {
		if !IsValid(p) {
			out = append(out, p)
		}
	}
	return out
}
