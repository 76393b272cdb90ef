package view

import "hexwar.io/internal/sim/ownership"

// Change is one cell whose controlling owner differs between two views.
// An empty From or To means the cell was neutral or absent.
type Change struct {
	Key  string `json:"key"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Diff lists ownership changes from prev to next in next's cell order, followed
// by cells that were owned in prev and have disappeared from next.
func Diff(prev, next View) []Change {
	before := make(map[string]string, len(prev.Cells))
	for _, c := range prev.Cells {
		before[c.Key] = c.Owner
	}

	var out []Change
	for _, c := range next.Cells {
		was, ok := before[c.Key]
		delete(before, c.Key)
		if (ok && was == c.Owner) || (!ok && c.Owner == "") {
			continue
		}
		out = append(out, Change{Key: c.Key, From: was, To: c.Owner})
	}
	for _, c := range prev.Cells {
		if was, ok := before[c.Key]; ok && was != "" {
			out = append(out, Change{Key: c.Key, From: was})
		}
	}
	return out
}

// SourceVertices recovers the snapshot v was built from.
func (v View) SourceVertices() []ownership.Vertex {
	out := make([]ownership.Vertex, len(v.Vertices))
	for i, pv := range v.Vertices {
		out[i] = ownership.Vertex{ID: pv.ID, Owner: ownership.OwnerID(pv.Owner), Pos: pv.Cube}
	}
	return out
}
