package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"hexwar.io/internal/feed"
	"hexwar.io/internal/printer"
	"hexwar.io/internal/protocol"
	"hexwar.io/internal/sim/boardgen"
	"hexwar.io/internal/sim/lattice"
	"hexwar.io/internal/sim/ownership"
)

type generateOptions struct {
	depth  int
	stop   float64
	seed   int64
	owners []string
	out    string
}

func newGenerateCmd(a *app) *cobra.Command {
	var o generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a simulated vertex feed",
		Long: `Walk the corner mesh from the origin with a randomized depth-first search
and hand every visited point to a random owner.

Flags left unset take their values from the generator section of the
tuning file.

Examples:
  hexboard generate --seed 42 --out board.json
  hexboard generate --depth 8 --stop 0.1 --out board.json.zst`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := a.tuning.Generator
			if !cmd.Flags().Changed("depth") {
				o.depth = g.MaxDepth
			}
			if !cmd.Flags().Changed("stop") {
				o.stop = g.StopProbability
			}
			if !cmd.Flags().Changed("seed") {
				o.seed = g.Seed
			}
			owners := a.tuning.GeneratorOwners()
			if cmd.Flags().Changed("owner") {
				owners = owners[:0]
				for _, s := range o.owners {
					owners = append(owners, ownership.OwnerID(s))
				}
			}
			return runGenerate(cmd, o, owners)
		},
	}
	cmd.Flags().IntVar(&o.depth, "depth", boardgen.DefaultMaxDepth, "Maximum walk depth")
	cmd.Flags().Float64Var(&o.stop, "stop", boardgen.DefaultStopProbability, "Probability a visit ends its branch")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "Random seed (0 = unseeded)")
	cmd.Flags().StringSliceVar(&o.owners, "owner", nil, "Owner address (repeatable)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Output file (stdout if empty; .zst compresses)")
	return cmd
}

func runGenerate(cmd *cobra.Command, o generateOptions, owners []ownership.OwnerID) error {
	if o.depth < 0 || o.stop < 0 || o.stop > 1 {
		return printer.Error("invalid generator settings",
			fmt.Sprintf("depth=%d stop=%g", o.depth, o.stop),
			[]string{"Use --depth >= 0 and --stop within [0,1]"})
	}

	var rng boardgen.Rand
	if o.seed != 0 {
		rng = rand.New(rand.NewSource(o.seed))
	}
	points := boardgen.Generate(lattice.Origin, boardgen.Options{
		MaxDepth:        o.depth,
		StopProbability: o.stop,
		Rand:            rng,
	})
	recs := protocol.FromVertices(boardgen.Populate(points, owners, rng))

	if o.out == "" {
		b, err := protocol.EncodeFeed(recs)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	}
	if err := feed.WriteFile(o.out, recs); err != nil {
		return printer.Error("failed to write feed", err.Error(), nil)
	}
	printer.Success("wrote %d vertices to %s\n", len(recs), o.out)
	return nil
}
