package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/plus3/marblecrush/config"
	"github.com/plus3/marblecrush/sim"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type simOptions struct {
	frames          int
	refillChance    float64
	refillThreshold float64
	metricsAddr     string
	linger          time.Duration
}

func newSimCommand(root *rootOptions) *cobra.Command {
	defaults := sim.DefaultOptions(config.Default().Grid())
	opts := &simOptions{
		frames:          defaults.Frames,
		refillChance:    defaults.RefillChance,
		refillThreshold: defaults.RefillThreshold,
	}

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run a headless random player and print a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(cmd)
			if err != nil {
				return err
			}
			logger := cfg.Logger(cmd.ErrOrStderr())
			logStart(logger, "sim", cfg)

			runOpts := sim.DefaultOptions(cfg.Grid())
			runOpts.RefillKey = cfg.Input.RefillKey
			runOpts.Seed = cfg.Seed
			runOpts.Frames = opts.frames
			runOpts.RefillChance = opts.refillChance
			runOpts.RefillThreshold = opts.refillThreshold

			if opts.metricsAddr == "" {
				report, err := sim.Run(cmd.Context(), runOpts, logger)
				if err != nil {
					return err
				}
				return report.Generate(cmd.OutOrStdout())
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector())
			runOpts.Registerer = reg

			server := &http.Server{
				Addr:              opts.metricsAddr,
				Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
				ReadHeaderTimeout: 5 * time.Second,
			}

			g, gctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				logger.Info("serving metrics", "addr", opts.metricsAddr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("metrics server: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				defer server.Shutdown(context.Background())

				report, err := sim.Run(gctx, runOpts, logger)
				if err != nil {
					return err
				}
				if err := report.Generate(cmd.OutOrStdout()); err != nil {
					return err
				}

				if opts.linger > 0 {
					logger.Info("holding metrics endpoint open", "linger", opts.linger)
					select {
					case <-time.After(opts.linger):
					case <-gctx.Done():
					}
				}
				return nil
			})
			return g.Wait()
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.frames, "frames", opts.frames, "number of frames to simulate")
	flags.Float64Var(&opts.refillChance, "refill-chance", opts.refillChance, "chance per frame of pressing the refill key")
	flags.Float64Var(&opts.refillThreshold, "refill-threshold", opts.refillThreshold, "vacant fraction that forces a refill")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the run")
	flags.DurationVar(&opts.linger, "linger", 0, "keep the metrics endpoint open this long after the run")
	return cmd
}
