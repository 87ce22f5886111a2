package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/taigrr/glyph/pkg/config"
	"github.com/taigrr/glyph/pkg/math3d"
)

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glyph.yaml")
	if err := os.WriteFile(path, []byte("width: 100\nheight: 30\nfov: 45\ncamera_speed: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--config", path, "-W", "40", "--no-culling", "--camera-pos", "0,1,3", "--camera-speed", "3"}); err != nil {
		t.Fatal(err)
	}
	base := config.Default()
	base.Width = 40
	base.CameraSpeed = 3

	cfg, err := resolveConfig(cmd, base, path)
	if err != nil {
		t.Fatalf("resolveConfig: %v", err)
	}
	if cfg.Width != 40 {
		t.Errorf("width = %d, want flag value 40", cfg.Width)
	}
	if cfg.Height != 30 || cfg.FOV != 45 {
		t.Errorf("file values lost: height=%d fov=%v", cfg.Height, cfg.FOV)
	}
	if cfg.CameraSpeed != 3 {
		t.Errorf("camera_speed = %v, want flag value 3", cfg.CameraSpeed)
	}
	if cfg.BackfaceCulling {
		t.Error("--no-culling did not disable culling")
	}
	if got := cfg.CameraPos.Vec3(); got != math3d.V3(0, 1, 3) {
		t.Errorf("camera_pos = %v, want 0,1,3", got)
	}
}

func TestResolveConfigRejectsInvalid(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--near", "10"}); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Near = 10
	if _, err := resolveConfig(cmd, cfg, ""); err == nil {
		t.Error("resolveConfig accepted near >= far")
	}
}

func TestRunStaticCube(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 20, 10
	cfg.ShowFPS = true

	sc, err := loadScene(cfg, "")
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := runStatic(&out, cfg, sc); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(ansi.Strip(out.String()), "\n")
	if !strings.Contains(lines[0], "tris") {
		t.Errorf("first line %q is not the HUD", lines[0])
	}
	frame := strings.Join(lines[1:], "\n")
	if strings.Count(frame, "\r\n") != 10 {
		t.Errorf("frame has %d rows, want 10", strings.Count(frame, "\r\n"))
	}
	if strings.TrimSpace(strings.ReplaceAll(frame, "\r", "")) == "" {
		t.Error("cube frame is blank")
	}
}

func TestRunPNG(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 8, 4
	sc, err := loadScene(cfg, "")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := runPNG(cfg, sc, path, 2); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	if _, err := loadScene(config.Default(), filepath.Join(t.TempDir(), "nope.obj")); err == nil {
		t.Error("loadScene of a missing file should fail")
	}
}

func TestViewport(t *testing.T) {
	cfg := config.Default()
	cfg.ShowFPS = true
	frame, hud := viewport(cfg, 200, 60)
	if frame.Dx() != 80 || frame.Dy() != 24 || frame.Min.Y != 1 {
		t.Errorf("frame = %v, want 80x24 below the HUD", frame)
	}
	if hud.Dy() != 1 {
		t.Errorf("hud = %v, want one row", hud)
	}

	frame, _ = viewport(cfg, 40, 10)
	if frame.Dx() != 40 || frame.Dy() != 9 {
		t.Errorf("small terminal frame = %v, want 40x9", frame)
	}
}
