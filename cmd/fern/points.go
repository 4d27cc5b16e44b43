package main

import (
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"fernview/internal/export"
	"fernview/internal/fern"
)

func newPointsCmd(o *rootOptions) *cobra.Command {
	var (
		count     int
		drawsPath string
		start     string
	)
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Print chained fern points as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.stderrLogging()
			cfg, err := o.load()
			if err != nil {
				return err
			}
			prev, err := parsePoint(start)
			if err != nil {
				return err
			}

			var src fern.Source = fern.NewRandSource(cfg.SeedOr(uint64(time.Now().UnixNano())))
			if drawsPath != "" {
				f, err := os.Open(drawsPath)
				if err != nil {
					return errors.Wrap(err, "open draws")
				}
				draws, err := export.ReadDraws(f)
				f.Close()
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("count") {
					count = len(draws)
				}
				src = fern.NewScript(draws)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			cw := export.NewCSVWriter(cmd.OutOrStdout())
			_, err = fern.Stream(ctx, prev, count, cfg.Batch, src, cw.Write)
			if ferr := cw.Flush(); err == nil {
				err = ferr
			}
			return err
		},
	}
	f := cmd.Flags()
	f.IntVarP(&count, "count", "n", 10, "number of points")
	f.StringVar(&drawsPath, "draws", "", "replay draws from a file, one per line")
	f.StringVar(&start, "start", "0,0", "starting point x,y")
	return cmd
}

func parsePoint(s string) (fern.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fern.Point{}, errors.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return fern.Point{}, errors.Wrapf(err, "point %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return fern.Point{}, errors.Wrapf(err, "point %q", s)
	}
	return fern.Point{X: x, Y: y}, nil
}
