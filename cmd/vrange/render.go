package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vrange/internal/demo"
	"github.com/vango-dev/vrange/internal/snapshot"
	"github.com/vango-dev/vrange/pkg/vdom"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		hostFile string
		save     bool
		appOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "render <demo>",
		Short: "Mount a demo and print the document",
		Long: `Mount a demo into a host document and print the result.

The host document defaults to a minimal page with <div id="app">.

Examples:
  vrange render counter
  vrange render todo --app
  vrange render counter --host page.html --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			source := ""
			if hostFile != "" {
				data, err := os.ReadFile(hostFile)
				if err != nil {
					return fmt.Errorf("read host document: %w", err)
				}
				source = string(data)
			}

			s, err := demo.Start(args[0], source,
				vdom.WithLogger(logger),
				vdom.WithMaxDepth(cfg.Render.MaxDepth),
			)
			if err != nil {
				return err
			}

			page := s.HTML()
			if appOnly {
				page = s.AppHTML()
			}
			out := cmd.OutOrStdout()
			if !save {
				fmt.Fprintln(out, page)
				return nil
			}

			store, err := snapshot.Open(cfg.Snapshot)
			if err != nil {
				return err
			}
			loc, err := store.Save(cmd.Context(), snapshot.Key(args[0], time.Now()), []byte(page))
			if err != nil {
				return err
			}
			success(out, "snapshot saved to %s", loc)
			return nil
		},
	}

	cmd.Flags().StringVar(&hostFile, "host", "", "HTML file containing an element with id=\"app\"")
	cmd.Flags().BoolVar(&save, "save", false, "Save to the configured snapshot store instead of printing")
	cmd.Flags().BoolVar(&appOnly, "app", false, "Print only the content of the host element")

	return cmd
}
