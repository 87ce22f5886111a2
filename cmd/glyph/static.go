package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/taigrr/glyph/pkg/config"
	"github.com/taigrr/glyph/pkg/output"
	"github.com/taigrr/glyph/pkg/render"
	"golang.org/x/term"
)

// frameCells returns the frame size in terminal cells. When stdout is a
// terminal the frame is shrunk to fit it.
func frameCells(cfg config.Config) (cols, rows int) {
	cols, rows = cfg.Width, cfg.Height
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return cols, rows
	}
	tw, th, err := term.GetSize(fd)
	if err != nil {
		slog.Debug("terminal size unavailable", "error", err)
		return cols, rows
	}
	if cfg.ShowFPS {
		th--
	}
	return max(1, min(cols, tw)), max(1, min(rows, th))
}

func runStatic(w io.Writer, cfg config.Config, sc *scene) error {
	cols, rows := frameCells(cfg)
	opts := renderOptions(cfg, cols, rows)
	r := render.NewRenderer(opts)
	cam := newCamera(cfg, opts)

	stats := r.Render(sc.mesh, cam)
	if cfg.ShowFPS {
		fmt.Fprintln(w, output.HUD(0, stats.Triangles, stats.Drawn, cols))
	}
	_, err := io.WriteString(w, r.Frame(output.BrailleFormatter{}))
	return err
}

func runPNG(cfg config.Config, sc *scene, path string, scale int) error {
	opts := renderOptions(cfg, cfg.Width, cfg.Height)
	r := render.NewRenderer(opts)
	stats := r.Render(sc.mesh, newCamera(cfg, opts))
	if err := r.FrameBuffer().SavePNG(path, scale); err != nil {
		return fmt.Errorf("save frame: %w", err)
	}
	slog.Info("wrote frame", "path", path, "width", opts.Width*max(scale, 1), "height", opts.Height*max(scale, 1), "drawn", stats.Drawn)
	return nil
}
