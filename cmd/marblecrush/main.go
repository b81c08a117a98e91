package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/plus3/marblecrush/config"
	"github.com/plus3/marblecrush/marble"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	seed       uint64
	refillKey  string
	radius     int
	rows       int
	cols       int
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(&rootOptions{}).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:          "marblecrush",
		Short:        "Click a marble to clear its colour, press the refill key to fill the gaps",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.Uint64Var(&opts.seed, "seed", 0, "colour seed (0 picks one at random)")
	flags.StringVar(&opts.refillKey, "refill-key", "", "key that refills vacant cells")
	flags.IntVar(&opts.radius, "radius", 0, "marble radius in pixels")
	flags.IntVar(&opts.rows, "rows", 0, "grid rows")
	flags.IntVar(&opts.cols, "cols", 0, "grid columns")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(newPlayCommand(opts))
	root.AddCommand(newTermCommand(opts))
	root.AddCommand(newSimCommand(opts))
	return root
}

// load reads the config file and applies any flags set on the command line.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("refill-key") {
		cfg.Input.RefillKey = o.refillKey
	}
	if flags.Changed("radius") {
		cfg.Board.Radius = o.radius
	}
	if flags.Changed("rows") {
		cfg.Board.Rows = o.rows
	}
	if flags.Changed("cols") {
		cfg.Board.Cols = o.cols
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newController(cfg config.Config) *marble.Controller {
	return marble.NewController(
		cfg.Grid(),
		marble.NewColourSource(cfg.Seed),
		marble.WithRefillKey(cfg.Input.RefillKey),
	)
}

func logStart(logger *slog.Logger, mode string, cfg config.Config) {
	g := cfg.Grid()
	logger.Info("starting",
		"mode", mode,
		"grid", fmt.Sprintf("%dx%d", g.Cols, g.Rows),
		"radius", g.Radius,
		"seed", cfg.Seed,
		"refill_key", cfg.Input.RefillKey)
}
