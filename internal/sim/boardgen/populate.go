package boardgen

import (
	"hexwar.io/internal/sim/lattice"
	"hexwar.io/internal/sim/ownership"
)

// DemoOwners are the addresses the simulated board hands out by default.
var DemoOwners = []ownership.OwnerID{
	"0x121a184B7e0d081B9F745e0e9ec408d7C26560F2",
	"0x5dead1f49F17A4463956A5B6aabd6D96A900337D",
	"0x3Ae6280f3524001Dc74C20E152eF155E56a6BEeb",
}

// Populate gives each point a uniformly chosen owner and a 1-based id.
func Populate(points []lattice.Cube, owners []ownership.OwnerID, rng Rand) []ownership.Vertex {
	if len(owners) == 0 {
		owners = DemoOwners
	}
	if rng == nil {
		rng = processRand{}
	}
	out := make([]ownership.Vertex, len(points))
	for i, p := range points {
		idx := int(rng.Float64() * float64(len(owners)))
		if idx >= len(owners) {
			idx = len(owners) - 1
		}
		out[i] = ownership.Vertex{ID: uint64(i + 1), Owner: owners[idx], Pos: p}
	}
	return out
}
