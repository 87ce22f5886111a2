package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/glyph/pkg/config"
	"github.com/taigrr/glyph/pkg/control"
	"github.com/taigrr/glyph/pkg/output"
	"github.com/taigrr/glyph/pkg/render"
)

var hudColor = color.RGBA{0, 255, 128, 255}

// input is a terminal event reduced to what the main loop acts on.
type input struct {
	action        control.Action
	hasAction     bool
	reset         bool
	quit          bool
	resized       bool
	width, height int
}

// translate maps a raw terminal event to an input. ok is false for events
// the viewer ignores.
func translate(ev any) (in input, ok bool) {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		return input{resized: true, width: ev.Width, height: ev.Height}, true
	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape", "ctrl+c", "x"):
			return input{quit: true}, true
		case ev.MatchString("space"):
			return input{reset: true}, true
		}
		for _, key := range control.Keys() {
			if ev.MatchString(key) {
				a, _ := control.ActionForKey(key)
				return input{action: a, hasAction: true}, true
			}
		}
	}
	return input{}, false
}

// viewport splits the terminal into the frame area and an optional HUD row.
func viewport(cfg config.Config, width, height int) (frame, hud uv.Rectangle) {
	rows := height
	if cfg.ShowFPS {
		rows--
	}
	cols := max(1, min(cfg.Width, width))
	rows = max(1, min(cfg.Height, rows))
	top := 0
	if cfg.ShowFPS {
		hud = uv.Rect(0, 0, cols, 1)
		top = 1
	}
	return uv.Rect(0, top, cols, rows), hud
}

func runInteractive(ctx context.Context, cfg config.Config, sc *scene) error {
	// Log lines would tear through the alternate screen.
	if logLevel.Level() > slog.LevelDebug {
		logLevel.Set(slog.LevelWarn)
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	frameArea, hudArea := viewport(cfg, width, height)
	opts := renderOptions(cfg, frameArea.Dx(), frameArea.Dy())
	renderer := render.NewRenderer(opts)
	cam := newCamera(cfg, opts)
	ctrl := control.NewController(cam, control.Speeds{
		Rotation: cfg.CameraRotationSpeed,
		Zoom:     cfg.CameraZoomSpeed,
		Pan:      cfg.CameraSpeed,
	}, cfg.MaxFPS)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Events are read on their own goroutine and handed to the main loop,
	// which owns the camera and renderer.
	inputs := make(chan input, 64)
	go func() {
		for ev := range term.Events() {
			in, ok := translate(ev)
			if !ok {
				continue
			}
			select {
			case inputs <- in:
			case <-ctx.Done():
				return
			}
		}
	}()

	var fps output.FPSCounter
	targetDuration := time.Second / time.Duration(cfg.MaxFPS)
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

	drain:
		for {
			select {
			case in := <-inputs:
				switch {
				case in.quit:
					return nil
				case in.reset:
					ctrl.Reset()
				case in.resized:
					width, height = in.width, in.height
					term.Erase()
					term.Resize(width, height)
					frameArea, hudArea = viewport(cfg, width, height)
					opts = renderOptions(cfg, frameArea.Dx(), frameArea.Dy())
					renderer.Resize(opts.Width, opts.Height)
					cam.Width, cam.Height = float32(opts.Width), float32(opts.Height)
				case in.hasAction:
					ctrl.Apply(in.action)
				}
			default:
				break drain
			}
		}

		now := time.Now()
		dt := now.Sub(lastFrame)
		lastFrame = now
		fps.Add(dt)

		ctrl.Update(float32(min(dt.Seconds(), 0.1)))

		stats := renderer.Render(sc.mesh, cam)
		output.DrawBraille(term, frameArea, renderer.FrameBuffer())
		if cfg.ShowFPS {
			output.DrawText(term, hudArea, output.HUD(fps.FPS(), stats.Triangles, stats.Drawn, hudArea.Dx()), hudColor)
		}
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
