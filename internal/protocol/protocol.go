package protocol

import (
	"hexwar.io/internal/sim/lattice"
	"hexwar.io/internal/sim/ownership"
)

const Version = "1.0"

// Hex is the contract's (a, b, c) location triple.
type Hex struct {
	A int `json:"a"`
	B int `json:"b"`
	C int `json:"c"`
}

func (h Hex) Cube() lattice.Cube { return lattice.Cube{X: h.A, Y: h.B, Z: h.C} }

func HexFromCube(c lattice.Cube) Hex { return Hex{A: c.X, B: c.Y, C: c.Z} }

// VertexRecord is one owned vertex as served by the board feed. Contract reads
// name the location "loc"; the simulated feed names it "position". Either is
// accepted, position wins when both are present.
type VertexRecord struct {
	ID       uint64 `json:"id"`
	Owner    string `json:"owner"`
	Position *Hex   `json:"position,omitempty"`
	Loc      *Hex   `json:"loc,omitempty"`
}

func (r VertexRecord) Hex() Hex {
	switch {
	case r.Position != nil:
		return *r.Position
	case r.Loc != nil:
		return *r.Loc
	default:
		return Hex{}
	}
}

func (r VertexRecord) Vertex() ownership.Vertex {
	return ownership.Vertex{ID: r.ID, Owner: ownership.OwnerID(r.Owner), Pos: r.Hex().Cube()}
}

func ToVertices(recs []VertexRecord) []ownership.Vertex {
	out := make([]ownership.Vertex, len(recs))
	for i, r := range recs {
		out[i] = r.Vertex()
	}
	return out
}

func FromVertices(vs []ownership.Vertex) []VertexRecord {
	out := make([]VertexRecord, len(vs))
	for i, v := range vs {
		h := HexFromCube(v.Pos)
		out[i] = VertexRecord{ID: v.ID, Owner: string(v.Owner), Position: &h}
	}
	return out
}
