// Package commands wires the hexboard subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hexwar.io/internal/printer"
	"hexwar.io/internal/sim/tuning"
)

var versionString = "dev"

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	tuning     tuning.Tuning
}

func newRootCmd() *cobra.Command {
	a := &app{tuning: tuning.Defaults()}
	root := &cobra.Command{
		Use:   "hexboard",
		Short: "Hex board ownership engine",
		Long: `hexboard turns a snapshot of owned lattice vertices into a board of hex
cells, each claimed by the owner holding a majority of its corners.

Feeds are JSON arrays of {id, owner, position:{a,b,c}} records, plain or
zstd-compressed.`,
		Version: versionString,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			t, err := tuning.LoadOrDefaults(a.configPath)
			if err != nil {
				return printer.Error("invalid configuration", err.Error(), []string{
					fmt.Sprintf("Fix %s", a.configPath),
					"Pass --config \"\" to run with built-in defaults",
				})
			}
			a.tuning = t
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "configs/tuning.yaml", "Tuning file (missing file means defaults)")

	root.AddCommand(newGenerateCmd(a), newRenderCmd(a), newWatchCmd(a), newReplayCmd(a))
	return root
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func SetVersionInfo(v, c, d string) {
	versionString = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
