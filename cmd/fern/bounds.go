package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fernview/internal/fern"
)

func newBoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds",
		Short: "Print the extent of the fern attractor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := fern.Bounds()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "min_x=%g max_x=%g min_y=%g max_y=%g\n", b.MinX, b.MaxX, b.MinY, b.MaxY)
			return err
		},
	}
}
