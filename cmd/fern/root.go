package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"fernview/internal/config"
	"fernview/internal/fern"
	"fernview/internal/tui"
)

type rootOptions struct {
	configPath string
	seed       uint64
	batch      int
	interval   time.Duration
	logPath    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var o rootOptions
	cmd := &cobra.Command{
		Use:          "fern",
		Short:        "Grow a Barnsley fern in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the viewer owns the terminal, so logs only go to a file
			var w io.Writer = io.Discard
			if o.logPath != "" {
				f, err := tea.LogToFile(o.logPath, "fern")
				if err != nil {
					return errors.Wrap(err, "open log")
				}
				defer f.Close()
				w = f
			}
			o.setupLogging(w)

			cfg, err := o.load()
			if err != nil {
				return err
			}
			seed := cfg.SeedOr(uint64(time.Now().UnixNano()))
			slog.Info("starting viewer", "seed", seed, "batch", cfg.Batch, "interval", cfg.Interval.Duration)
			m := tui.New(cfg, fern.NewRandSource(seed))
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	f := cmd.PersistentFlags()
	f.StringVarP(&o.configPath, "config", "c", "", "TOML config file")
	f.Uint64Var(&o.seed, "seed", 0, "seed for the draw source (0 = time based)")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().IntVar(&o.batch, "batch", 0, "points per tick")
	cmd.Flags().DurationVar(&o.interval, "interval", 0, "time between ticks")
	cmd.Flags().StringVar(&o.logPath, "log", "", "write logs to this file while the viewer runs")

	cmd.AddCommand(newRenderCmd(&o), newPointsCmd(&o), newBoundsCmd())
	return cmd
}

func (o *rootOptions) setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)
}

// load builds the config from defaults, the config file and flags.
func (o *rootOptions) load() (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if o.batch > 0 {
		cfg.Batch = o.batch
		cfg.History = max(cfg.History, cfg.Batch)
	}
	if o.interval > 0 {
		cfg.Interval.Duration = o.interval
	}
	return cfg, cfg.Validate()
}

// stderrLogging is used by the non-interactive subcommands.
func (o *rootOptions) stderrLogging() { o.setupLogging(os.Stderr) }
