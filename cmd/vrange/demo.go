package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vrange/internal/demo"
	"github.com/vango-dev/vrange/pkg/observe"
	"github.com/vango-dev/vrange/pkg/vdom"
)

func demoCmd(flags *globalFlags) *cobra.Command {
	var (
		clicks  int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Click through a demo and report reconciliation stats",
		Long: `Mount a demo, click its button N times and print the final markup
with the operations each pass performed.

Without a name, lists the available demos.

Examples:
  vrange demo
  vrange demo counter --clicks 3
  vrange demo todo -n 5 -v`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range demo.Names() {
					d, _ := demo.Lookup(name)
					info(out, "%-10s %s", name, d.Description)
				}
				return nil
			}

			cfg, logger, err := flags.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			rec := observe.NewRecorder(0)
			s, err := demo.Start(args[0], "",
				vdom.WithObserver(rec),
				vdom.WithLogger(logger),
				vdom.WithMaxDepth(cfg.Render.MaxDepth),
			)
			if err != nil {
				return err
			}
			if err := s.Click(clicks); err != nil {
				return err
			}

			fmt.Fprintln(out, s.AppHTML())
			fmt.Fprintln(out)
			for i, p := range rec.Passes() {
				info(out, "#%d %-6s mounted=%d reused=%d replaced=%d appended=%d (%s)",
					i, p.Phase, p.Mounted, p.Reused, p.Replaced, p.Appended, p.Duration)
			}
			if verbose {
				fmt.Fprintln(out)
				for _, r := range rec.Records() {
					if r.Op == observe.OpPass {
						continue
					}
					line := fmt.Sprintf("%-7s %s", r.Op, r.Node)
					if r.Prev != "" {
						line += " (was " + r.Prev + ")"
					}
					info(out, "%s", strings.TrimSpace(line))
				}
			}
			success(out, "%d clicks on %s", clicks, args[0])
			return nil
		},
	}

	cmd.Flags().IntVarP(&clicks, "clicks", "n", 1, "Number of clicks to simulate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every reconciliation record")

	return cmd
}
