package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"hexwar.io/internal/feed"
	"hexwar.io/internal/printer"
	"hexwar.io/internal/protocol"
	"hexwar.io/internal/sim/coords"
	"hexwar.io/internal/sim/view"
)

type renderOptions struct {
	feedPath string
	out      string
	table    bool
	cell     string
}

func newRenderCmd(a *app) *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compute the board view of one feed snapshot",
		Long: `Read one vertex feed, aggregate corner votes per cell and print the board.

Output:
  default  - view JSON (vertices, cells, owner summary)
  --table  - owner summary table
  --cell   - vote histogram of one cell, addressed as "row;col"

Examples:
  hexboard render --feed board.json --table
  hexboard render --feed board.json.zst --cell "0;0"
  hexboard generate | hexboard render --feed -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, a, o)
		},
	}
	cmd.Flags().StringVarP(&o.feedPath, "feed", "f", "", "Feed file, or - for stdin")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Write view JSON to this file instead of stdout")
	cmd.Flags().BoolVar(&o.table, "table", false, "Print the owner summary table")
	cmd.Flags().StringVar(&o.cell, "cell", "", "Print the vote histogram of cell \"row;col\"")
	_ = cmd.MarkFlagRequired("feed")
	return cmd
}

func readFeed(cmd *cobra.Command, path string) ([]protocol.VertexRecord, error) {
	if path != "-" {
		return feed.ReadFile(path)
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, protocol.Errorf(protocol.ErrFeedSource, "read stdin: %w", err)
	}
	return protocol.DecodeFeed(raw)
}

func feedError(path string, err error) error {
	return printer.Error("failed to load feed", err.Error(), []string{
		fmt.Sprintf("Check that %s is a JSON array of {id, owner, position:{a,b,c}} records", path),
	})
}

func runRender(cmd *cobra.Command, a *app, o renderOptions) error {
	recs, err := readFeed(cmd, o.feedPath)
	if err != nil {
		return feedError(o.feedPath, err)
	}
	v := view.Build(protocol.ToVertices(recs), a.tuning.ProjectionConfig())
	w := cmd.OutOrStdout()

	if o.cell != "" {
		off, err := coords.ParseOffsetKey(o.cell)
		if err != nil {
			return printer.Error("invalid cell", err.Error(), []string{`Address cells as "row;col", e.g. --cell "0;0"`})
		}
		c, ok := v.Cell(off)
		if !ok {
			return printer.Error("cell not on board", fmt.Sprintf("No vertex touches cell %s", off.Key()), nil)
		}
		printer.FormatCell(w, c)
		return nil
	}
	if o.table {
		printer.FormatOwners(w, v)
		return nil
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if o.out == "" {
		_, err = w.Write(b)
		return err
	}
	if err := os.WriteFile(o.out, b, 0o644); err != nil {
		return printer.Error("failed to write view", err.Error(), nil)
	}
	printer.Success("wrote %d cells to %s\n", len(v.Cells), o.out)
	return nil
}
