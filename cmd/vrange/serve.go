package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vrange/internal/demo"
	"github.com/vango-dev/vrange/internal/inspect"
	"github.com/vango-dev/vrange/internal/snapshot"
	"github.com/vango-dev/vrange/pkg/observe"
	"github.com/vango-dev/vrange/pkg/vdom"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [demo]",
		Short: "Run the inspector server",
		Long: `Mount a demo and serve it over HTTP.

Routes:
  GET  /health     liveness
  GET  /snapshot   current document
  POST /snapshot   save the document to the snapshot store
  POST /dispatch   {"target": "add", "event": "click"}
  GET  /records    reconciliation log
  GET  /ws         live reconciliation log (websocket)
  GET  /metrics    Prometheus metrics

Examples:
  vrange serve
  vrange serve todo --addr :8080`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Inspect.Addr = addr
			}
			name := "counter"
			if len(args) == 1 {
				name = args[0]
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector())
			rec := observe.NewRecorder(1000)
			obs := observe.Multi(
				rec,
				observe.NewMetrics(observe.WithRegistry(reg)),
				observe.NewTracing(),
			)

			s, err := demo.Start(name, "",
				vdom.WithObserver(obs),
				vdom.WithLogger(logger),
				vdom.WithMaxDepth(cfg.Render.MaxDepth),
			)
			if err != nil {
				return err
			}
			store, err := snapshot.Open(cfg.Snapshot)
			if err != nil {
				return err
			}

			srv := inspect.NewServer(inspect.Options{
				Config:   cfg.Inspect,
				Session:  s,
				Recorder: rec,
				Store:    store,
				Gatherer: reg,
				Logger:   logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from vrange.json)")

	return cmd
}
