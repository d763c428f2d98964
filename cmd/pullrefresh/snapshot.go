package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/pullrefresh/cmd/pullrefresh/internal/config"
	"github.com/go-drift/pullrefresh/cmd/pullrefresh/internal/snapshot"
	"github.com/go-drift/pullrefresh/pkg/graphics"
)

func newSnapshotCmd(flags *rootFlags) *cobra.Command {
	var (
		out     string
		width   int
		height  int
		pull    float64
		steps   int
		release bool
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a simulated pull to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			c, err := snapshot.Capture(cfg, snapshot.Options{
				Size:    graphics.Size{Width: width, Height: height},
				Pull:    pull,
				Steps:   steps,
				Release: release,
			})
			if err != nil {
				return err
			}
			if err := snapshot.WritePNG(out, snapshot.Render(c)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: movement=%d progress=%d refreshing=%t\n",
				out, c.Movement(), c.Progress(), c.IsRefreshing())
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "pull.png", "output PNG path")
	cmd.Flags().IntVar(&width, "width", 360, "frame width in device pixels")
	cmd.Flags().IntVar(&height, "height", 640, "frame height in device pixels")
	cmd.Flags().Float64Var(&pull, "pull", 120, "finger travel in device pixels")
	cmd.Flags().IntVar(&steps, "steps", 0, "move events in the drag (0 uses the default)")
	cmd.Flags().BoolVar(&release, "release", false, "release the pointer and let the header settle")
	return cmd
}
