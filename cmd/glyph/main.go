// glyph - Terminal 3D Model Viewer
// Renders OBJ and GLB meshes with a software rasterizer and prints them as
// braille characters.
//
// Controls:
//
//	W/S or Up/Down     - Zoom in/out
//	A/D or Left/Right  - Orbit left/right
//	R/F                - Orbit up/down
//	J/L and I/K        - Pan left/right and up/down
//	Space              - Reset camera
//	X/Esc              - Quit
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/glyph/pkg/config"
	"github.com/taigrr/glyph/pkg/render"
)

// options are the command-line settings that are not part of config.Config.
type options struct {
	configPath string
	pngPath    string
	pngScale   int
	verbose    bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var opts options

	cmd := &cobra.Command{
		Use:   "glyph [flags] [model.obj|model.glb]",
		Short: "Terminal 3D model viewer",
		Long: "glyph renders a triangle mesh with a software rasterizer and draws it\n" +
			"in the terminal using braille characters. Without a model it shows a cube.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.verbose)

			resolved, err := resolveConfig(cmd, cfg, opts.configPath)
			if err != nil {
				return err
			}

			scene, err := loadScene(resolved, modelArg(args))
			if err != nil {
				return err
			}

			switch {
			case opts.pngPath != "":
				return runPNG(resolved, scene, opts.pngPath, opts.pngScale)
			case resolved.Static:
				return runStatic(cmd.OutOrStdout(), resolved, scene)
			default:
				return runInteractive(cmd.Context(), resolved, scene)
			}
		},
	}

	bindConfigFlags(cmd, &cfg)
	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	f.BoolVar(&opts.verbose, "verbose", false, "Log debug output to stderr")
	cmd.Flags().StringVar(&opts.pngPath, "png", "", "Write a single frame to a PNG file and exit")
	cmd.Flags().IntVar(&opts.pngScale, "png-scale", 4, "Pixel scale factor for --png")

	cmd.AddCommand(newBenchCmd(&cfg, &opts))
	return cmd
}

func bindConfigFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.PersistentFlags()
	f.BoolVarP(&cfg.Static, "static", "s", cfg.Static, "Print one frame and exit")
	f.IntVarP(&cfg.Width, "width", "W", cfg.Width, "Frame width in terminal cells")
	f.IntVarP(&cfg.Height, "height", "H", cfg.Height, "Frame height in terminal cells")
	f.Bool("no-culling", false, "Disable back-face culling")
	f.StringVar(&cfg.Shading, "shading", cfg.Shading, "Normal mode: flat or smooth")
	f.String("camera-pos", cfg.CameraPos.String(), "Camera position as x,y,z")
	f.String("camera-target", cfg.CameraTarget.String(), "Camera target as x,y,z")
	f.Float32Var(&cfg.CameraSpeed, "camera-speed", cfg.CameraSpeed, "Pan speed in units per second")
	f.Float32Var(&cfg.CameraRotationSpeed, "camera-rotation-speed", cfg.CameraRotationSpeed, "Orbit speed in degrees per second")
	f.Float32Var(&cfg.CameraZoomSpeed, "camera-zoom-speed", cfg.CameraZoomSpeed, "Zoom speed in units per second")
	f.Float32Var(&cfg.LightAmbient, "light-ambient", cfg.LightAmbient, "Ambient light coefficient")
	f.Float32Var(&cfg.LightDiffuse, "light-diffuse", cfg.LightDiffuse, "Diffuse light coefficient")
	f.Float32Var(&cfg.LightSpecular, "light-specular", cfg.LightSpecular, "Specular light coefficient")
	f.Uint32Var(&cfg.LightShininess, "light-shininess", cfg.LightShininess, "Specular exponent")
	f.Float32Var(&cfg.FOV, "fov", cfg.FOV, "Vertical field of view in degrees")
	f.Float32Var(&cfg.Near, "near", cfg.Near, "Near clipping plane")
	f.Float32Var(&cfg.Far, "far", cfg.Far, "Far clipping plane")
	f.IntVarP(&cfg.MaxFPS, "max-fps", "f", cfg.MaxFPS, "Frame rate limit")
	f.BoolVar(&cfg.ShowFPS, "show-fps", cfg.ShowFPS, "Show the frame rate")
}

// resolveConfig layers the config file under any flags given explicitly on
// the command line and validates the result.
func resolveConfig(cmd *cobra.Command, flagged config.Config, path string) (config.Config, error) {
	cfg := flagged
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = overlayFlags(cmd, loaded, flagged)
	}

	f := cmd.Flags()
	if f.Changed("no-culling") {
		noCulling, _ := f.GetBool("no-culling")
		cfg.BackfaceCulling = !noCulling
	}
	for name, dst := range map[string]*config.Point{"camera-pos": &cfg.CameraPos, "camera-target": &cfg.CameraTarget} {
		if !f.Changed(name) {
			continue
		}
		s, _ := f.GetString(name)
		v, err := config.ParseVec3(s)
		if err != nil {
			return cfg, fmt.Errorf("--%s: %w", name, err)
		}
		*dst = config.Point(v)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// overlayFlags copies every explicitly set flag value from flagged onto base.
func overlayFlags(cmd *cobra.Command, base, flagged config.Config) config.Config {
	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("static", func() { base.Static = flagged.Static })
	set("width", func() { base.Width = flagged.Width })
	set("height", func() { base.Height = flagged.Height })
	set("shading", func() { base.Shading = flagged.Shading })
	set("camera-speed", func() { base.CameraSpeed = flagged.CameraSpeed })
	set("camera-rotation-speed", func() { base.CameraRotationSpeed = flagged.CameraRotationSpeed })
	set("camera-zoom-speed", func() { base.CameraZoomSpeed = flagged.CameraZoomSpeed })
	set("light-ambient", func() { base.LightAmbient = flagged.LightAmbient })
	set("light-diffuse", func() { base.LightDiffuse = flagged.LightDiffuse })
	set("light-specular", func() { base.LightSpecular = flagged.LightSpecular })
	set("light-shininess", func() { base.LightShininess = flagged.LightShininess })
	set("fov", func() { base.FOV = flagged.FOV })
	set("near", func() { base.Near = flagged.Near })
	set("far", func() { base.Far = flagged.Far })
	set("max-fps", func() { base.MaxFPS = flagged.MaxFPS })
	set("show-fps", func() { base.ShowFPS = flagged.ShowFPS })
	return base
}

// logLevel is raised to Warn while the interactive view owns the screen.
var logLevel slog.LevelVar

func setupLogging(verbose bool) {
	logLevel.Set(slog.LevelInfo)
	if verbose {
		logLevel.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &logLevel}))
	slog.SetDefault(logger)
	render.SetLogger(logger.With("component", "render"))
}

func modelArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
