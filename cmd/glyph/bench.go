package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/taigrr/glyph/pkg/config"
	"github.com/taigrr/glyph/pkg/render"
)

func newBenchCmd(cfg *config.Config, opts *options) *cobra.Command {
	var (
		frames int
		size   int
	)
	cmd := &cobra.Command{
		Use:   "bench [model.obj|model.glb]",
		Short: "Render frames off-screen and report throughput",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.verbose)

			resolved, err := resolveConfig(cmd, *cfg, opts.configPath)
			if err != nil {
				return err
			}
			sc, err := loadScene(resolved, modelArg(args))
			if err != nil {
				return err
			}
			if frames <= 0 || size <= 0 {
				return fmt.Errorf("frames and size must be positive")
			}

			ropts := renderOptions(resolved, 1, 1)
			ropts.Width, ropts.Height = size, size
			r := render.NewRenderer(ropts)
			cam := newCamera(resolved, ropts)

			// Orbit a full turn over the run so every frame differs.
			step := 360 / float32(frames)

			pb := progressbar.Default(int64(frames))
			defer pb.Close()

			var drawn int
			start := time.Now()
			for range frames {
				stats := r.Render(sc.mesh, cam)
				drawn += stats.Drawn
				cam.OrbitAroundTarget(step, 0)
				pb.Add(1)
			}
			elapsed := time.Since(start)

			fps := float64(frames) / elapsed.Seconds()
			slog.Info("benchmark complete",
				"model", sc.name,
				"frames", frames,
				"resolution", fmt.Sprintf("%dx%d", size, size),
				"elapsed", elapsed.Round(time.Millisecond),
				"fps", fmt.Sprintf("%.1f", fps),
				"avg_drawn", drawn/frames,
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%d frames in %v (%.1f frames/s)\n", frames, elapsed.Round(time.Millisecond), fps)
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 100, "Number of frames to render")
	cmd.Flags().IntVar(&size, "size", 1024, "Square frame size in pixels")
	return cmd
}
