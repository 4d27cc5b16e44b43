package main

import (
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"fernview/internal/export"
	"fernview/internal/fern"
)

func newRenderCmd(o *rootOptions) *cobra.Command {
	var (
		out     string
		points  int
		size    int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the fern to a PNG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.stderrLogging()
			cfg, err := o.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("points") {
				cfg.Points = points
			}
			if cmd.Flags().Changed("size") {
				cfg.Size = size
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			col, err := cfg.Colorful()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			start := time.Now()
			seed := cfg.SeedOr(uint64(start.UnixNano()))
			cloud, err := export.Collect(ctx, cfg.Points, cfg.Workers, cfg.Batch, func(w int) fern.Source {
				return fern.NewRandSource(seed + uint64(w))
			})
			if err != nil {
				return err
			}
			slog.Debug("points generated", "points", cloud.Len(), "workers", cfg.Workers, "elapsed", time.Since(start))

			opts := export.PNGOptions{Size: cfg.Size, Color: col, Alpha: cfg.Alpha, Radius: cfg.Radius}
			if err := export.SavePNG(out, cloud, opts); err != nil {
				return err
			}
			slog.Info("rendered fern", "path", out, "points", cloud.Len(), "seed", seed, "elapsed", time.Since(start))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "output", "o", "fern.png", "output PNG path")
	f.IntVarP(&points, "points", "n", 0, "number of points to draw")
	f.IntVar(&size, "size", 0, "image width and height in pixels")
	f.IntVarP(&workers, "workers", "w", 0, "independent chains generated in parallel")
	return cmd
}

