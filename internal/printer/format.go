package printer

import (
	"fmt"
	"io"
	"strings"

	"hexwar.io/internal/sim/ownership"
	"hexwar.io/internal/sim/view"
)

// FormatOwners writes the per-owner summary of v and returns the number of rows.
func FormatOwners(w io.Writer, v view.View) int {
	if len(v.Owners) == 0 {
		fmt.Fprintln(w, "No vertices on the board")
		return 0
	}
	bold.Fprintf(w, "%-14s %8s %6s\n", "OWNER", "VERTICES", "CELLS")
	fmt.Fprintf(w, "%-14s %8s %6s\n", strings.Repeat("-", 14), "--------", "------")
	for _, o := range v.Owners {
		fmt.Fprintf(w, "%-14s %8d %6d\n", ownership.OwnerID(o.Owner).Short(), o.Vertices, o.Cells)
	}
	fmt.Fprintf(w, "\n%d cells, %d neutral\n", len(v.Cells), v.Neutral)
	return len(v.Owners)
}

// FormatCell writes the vote histogram of one cell.
func FormatCell(w io.Writer, c view.Cell) {
	owner := "neutral"
	if c.Owner != "" {
		owner = ownership.OwnerID(c.Owner).Short()
	}
	fmt.Fprintf(w, "cell %s  center %s  pixel (%.2f, %.2f)  owner %s\n",
		c.Key, c.Center, c.Pixel.X, c.Pixel.Y, owner)
	for _, vote := range c.Votes {
		fmt.Fprintf(w, "  %-14s %s %d\n", ownership.OwnerID(vote.Owner).Short(), strings.Repeat("#", vote.Count), vote.Count)
	}
}
