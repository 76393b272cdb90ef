package boardgen

import (
	"testing"

	"hexwar.io/internal/sim/lattice"
	"hexwar.io/internal/sim/ownership"
)

type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestPopulate_AssignsOwnersAndIDs(t *testing.T) {
	pts := []lattice.Cube{{}, {X: 1}, {X: -1}, {Y: 1}}
	owners := []ownership.OwnerID{"A", "B"}
	got := Populate(pts, owners, &seqRand{vals: []float64{0.1, 0.7, 0.49, 0.999999}})
	wantOwners := []ownership.OwnerID{"A", "B", "A", "B"}
	for i, v := range got {
		if v.ID != uint64(i+1) {
			t.Fatalf("vertex %d id=%d", i, v.ID)
		}
		if v.Pos != pts[i] {
			t.Fatalf("vertex %d pos=%v want %v", i, v.Pos, pts[i])
		}
		if v.Owner != wantOwners[i] {
			t.Fatalf("vertex %d owner=%s want %s", i, v.Owner, wantOwners[i])
		}
	}
}

func TestPopulate_DefaultsToDemoOwners(t *testing.T) {
	got := Populate([]lattice.Cube{{X: 1}}, nil, constRand(0.99))
	if got[0].Owner != DemoOwners[len(DemoOwners)-1] {
		t.Fatalf("owner=%s", got[0].Owner)
	}
}
