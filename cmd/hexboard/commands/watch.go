package commands

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hexwar.io/internal/feed"
	"hexwar.io/internal/printer"
	"hexwar.io/internal/protocol"
	"hexwar.io/internal/sim/ownership"
	"hexwar.io/internal/sim/view"
	"hexwar.io/internal/viewlog"
)

type watchOptions struct {
	feedPath string
	interval time.Duration
	logDir   string
	cycles   uint64
}

func newWatchCmd(a *app) *cobra.Command {
	var o watchOptions
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render a feed file on every poll interval",
		Long: `Poll a feed file, rebuild the board from each fresh snapshot and log a
one-line summary. With --log-dir every view is also appended to hourly
views-YYYY-MM-DD-HH.jsonl.zst files.

Examples:
  hexboard watch --feed board.json
  hexboard watch --feed board.json --interval 2s --log-dir ./views`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("interval") {
				o.interval = a.tuning.PollInterval()
			}
			return runWatch(cmd, a, o)
		},
	}
	cmd.Flags().StringVarP(&o.feedPath, "feed", "f", "", "Feed file to poll")
	cmd.Flags().DurationVar(&o.interval, "interval", 5*time.Second, "Poll interval")
	cmd.Flags().StringVar(&o.logDir, "log-dir", "", "Directory for the compressed view log (disabled if empty)")
	cmd.Flags().Uint64Var(&o.cycles, "cycles", 0, "Stop after this many rendered snapshots (0 = until interrupted)")
	_ = cmd.MarkFlagRequired("feed")
	return cmd
}

func runWatch(cmd *cobra.Command, a *app, o watchOptions) error {
	if o.interval <= 0 {
		return printer.Error("invalid interval", o.interval.String(), []string{"Use a positive --interval such as 5s"})
	}
	logger := log.New(cmd.ErrOrStderr(), "[watch] ", log.LstdFlags|log.Lmicroseconds)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var vlog *viewlog.ViewLogger
	if o.logDir != "" {
		vlog = viewlog.NewViewLogger(o.logDir)
		defer func() {
			if err := vlog.Close(); err != nil {
				logger.Printf("view log close: %v", err)
			}
		}()
		logger.Printf("view log: dir=%s run=%s", o.logDir, vlog.RunID())
	}

	cfg := a.tuning.ProjectionConfig()
	var (
		rendered uint64
		prev     view.View
	)
	handle := func(ctx context.Context, seq uint64, recs []protocol.VertexRecord) error {
		v := view.Build(protocol.ToVertices(recs), cfg)
		leader := "none"
		if len(v.Owners) > 0 && v.Owners[0].Cells > 0 {
			leader = ownership.OwnerID(v.Owners[0].Owner).Short()
		}
		logger.Printf("poll %d: vertices=%d cells=%d neutral=%d changed=%d leader=%s",
			seq, len(v.Vertices), len(v.Cells), v.Neutral, len(view.Diff(prev, v)), leader)
		prev = v
		if vlog != nil {
			if err := vlog.WriteView(seq, v); err != nil {
				return err
			}
		}
		rendered++
		if o.cycles > 0 && rendered >= o.cycles {
			cancel()
		}
		return nil
	}

	logger.Printf("polling %s every %s", o.feedPath, o.interval)
	p := feed.NewPoller(feed.FileSource{Path: o.feedPath}, o.interval, logger, handle)
	if err := p.Run(ctx); err != nil {
		return printer.Error("watch stopped", err.Error(), nil)
	}
	return nil
}
