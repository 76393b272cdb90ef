// Package view assembles everything a renderer needs from one vertex snapshot:
// placed vertices, tallied cells with their controlling owner, and per-owner
// totals. Build is pure; call it again for every new snapshot.
package view

import (
	"sort"

	"hexwar.io/internal/sim/coords"
	"hexwar.io/internal/sim/lattice"
	"hexwar.io/internal/sim/ownership"
)

type Vertex struct {
	ID         uint64       `json:"id"`
	Owner      string       `json:"owner"`
	OwnerShort string       `json:"owner_short"`
	Cube       lattice.Cube `json:"cube"`
	Pixel      coords.Pixel `json:"pixel"`
}

type Vote struct {
	Owner string `json:"owner"`
	Count int    `json:"count"`
}

type Cell struct {
	Key    string        `json:"key"`
	Offset coords.Offset `json:"offset"`
	Center lattice.Cube  `json:"center"`
	Pixel  coords.Pixel  `json:"pixel"`
	Votes  []Vote        `json:"votes"`
	// Owner is empty for neutral cells.
	Owner string `json:"owner,omitempty"`
}

type OwnerSummary struct {
	Owner    string `json:"owner"`
	Vertices int    `json:"vertices"`
	Cells    int    `json:"cells"`
}

type View struct {
	Orientation string         `json:"orientation"`
	Vertices    []Vertex       `json:"vertices"`
	Cells       []Cell         `json:"cells"`
	Owners      []OwnerSummary `json:"owners"`
	Neutral     int            `json:"neutral_cells"`
}

func Build(vertices []ownership.Vertex, cfg coords.ProjectionConfig) View {
	v := View{
		Orientation: cfg.Orientation.Name,
		Vertices:    make([]Vertex, 0, len(vertices)),
	}

	summary := map[ownership.OwnerID]*OwnerSummary{}
	touch := func(o ownership.OwnerID) *OwnerSummary {
		s := summary[o]
		if s == nil {
			s = &OwnerSummary{Owner: string(o)}
			summary[o] = s
		}
		return s
	}

	for _, in := range vertices {
		v.Vertices = append(v.Vertices, Vertex{
			ID:         in.ID,
			Owner:      string(in.Owner),
			OwnerShort: in.Owner.Short(),
			Cube:       in.Pos,
			Pixel:      coords.CubeToPixel(in.Pos, cfg),
		})
		touch(in.Owner).Vertices++
	}

	tally := ownership.Aggregate(vertices)
	cells := tally.Cells()
	v.Cells = make([]Cell, 0, len(cells))
	for _, off := range cells {
		h := tally[off]
		center := coords.OffsetToCube(off)
		c := Cell{
			Key:    off.Key(),
			Offset: off,
			Center: center,
			Pixel:  coords.CubeToPixel(center, cfg),
		}
		for _, o := range h.Owners() {
			c.Votes = append(c.Votes, Vote{Owner: string(o), Count: h.Count(o)})
		}
		if owner, ok := ownership.MajorityOwner(h); ok {
			c.Owner = string(owner)
			touch(owner).Cells++
		} else {
			v.Neutral++
		}
		v.Cells = append(v.Cells, c)
	}

	v.Owners = make([]OwnerSummary, 0, len(summary))
	for _, s := range summary {
		v.Owners = append(v.Owners, *s)
	}
	sort.Slice(v.Owners, func(i, j int) bool {
		a, b := v.Owners[i], v.Owners[j]
		if a.Cells != b.Cells {
			return a.Cells > b.Cells
		}
		return a.Owner < b.Owner
	})
	return v
}

// Cell looks up one cell by offset.
func (v View) Cell(o coords.Offset) (Cell, bool) {
	i := sort.Search(len(v.Cells), func(i int) bool { return !v.Cells[i].Offset.Less(o) })
	if i < len(v.Cells) && v.Cells[i].Offset == o {
		return v.Cells[i], true
	}
	return Cell{}, false
}
