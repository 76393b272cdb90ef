package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"hexwar.io/internal/printer"
	"hexwar.io/internal/sim/ownership"
	"hexwar.io/internal/sim/view"
	"hexwar.io/internal/viewlog"
)

type replayOptions struct {
	logDir  string
	run     string
	fromSeq uint64
	toSeq   uint64
	changes bool
}

func newReplayCmd(a *app) *cobra.Command {
	var o replayOptions
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Verify a view log and report ownership changes",
		Long: `Read every views-*.jsonl.zst file written by "watch --log-dir", rebuild
each board from its logged vertices and check the result against the
logged digest.

Examples:
  hexboard replay --log-dir ./views
  hexboard replay --log-dir ./views --run 3f2a --changes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, a, o)
		},
	}
	cmd.Flags().StringVar(&o.logDir, "log-dir", "", "Directory holding the view log")
	cmd.Flags().StringVar(&o.run, "run", "", "Only entries whose run id starts with this prefix")
	cmd.Flags().Uint64Var(&o.fromSeq, "from-seq", 0, "First sequence number to check (inclusive)")
	cmd.Flags().Uint64Var(&o.toSeq, "to-seq", 0, "Last sequence number to check (inclusive, 0 = all)")
	cmd.Flags().BoolVar(&o.changes, "changes", false, "Print cell ownership changes between consecutive entries of a run")
	_ = cmd.MarkFlagRequired("log-dir")
	return cmd
}

type replayState struct {
	opt     replayOptions
	w       io.Writer
	cfgView func([]ownership.Vertex) view.View
	prev    map[string]view.View
	checked uint64
}

func runReplay(cmd *cobra.Command, a *app, o replayOptions) error {
	files, err := viewlog.ListFiles(o.logDir)
	if err != nil {
		return printer.Error("failed to list view log", err.Error(), nil)
	}
	if len(files) == 0 {
		return printer.Error("no view log found", fmt.Sprintf("No views-*.jsonl.zst files in %s", o.logDir),
			[]string{"Record one first:\n  hexboard watch --feed board.json --log-dir " + o.logDir})
	}

	cfg := a.tuning.ProjectionConfig()
	st := &replayState{
		opt:     o,
		w:       cmd.OutOrStdout(),
		cfgView: func(vs []ownership.Vertex) view.View { return view.Build(vs, cfg) },
		prev:    map[string]view.View{},
	}
	for _, path := range files {
		if err := viewlog.ReadFile(path, st.entry); err != nil {
			return printer.Error("replay failed", err.Error(), nil)
		}
	}
	fmt.Fprintf(st.w, "replay ok: checked=%d views runs=%d\n", st.checked, len(st.prev))
	return nil
}

func (st *replayState) entry(e viewlog.Entry) error {
	if st.opt.run != "" && !strings.HasPrefix(e.RunID, st.opt.run) {
		return nil
	}
	if e.Seq < st.opt.fromSeq || (st.opt.toSeq != 0 && e.Seq > st.opt.toSeq) {
		return nil
	}

	got := st.cfgView(e.View.SourceVertices())
	if got.Digest() != e.Digest {
		return fmt.Errorf("digest mismatch run=%s seq=%d: got=%s want=%s", e.RunID, e.Seq, got.Digest(), e.Digest)
	}
	st.checked++

	if prev, ok := st.prev[e.RunID]; ok && st.opt.changes {
		for _, c := range view.Diff(prev, got) {
			fmt.Fprintf(st.w, "run %s seq %d: cell %s %s -> %s\n",
				shortRun(e.RunID), e.Seq, c.Key, ownerLabel(c.From), ownerLabel(c.To))
		}
	}
	st.prev[e.RunID] = got
	return nil
}

func ownerLabel(o string) string {
	if o == "" {
		return "neutral"
	}
	return ownership.OwnerID(o).Short()
}

func shortRun(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
