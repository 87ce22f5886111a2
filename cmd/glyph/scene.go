package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/taigrr/glyph/pkg/config"
	"github.com/taigrr/glyph/pkg/models"
	"github.com/taigrr/glyph/pkg/output"
	"github.com/taigrr/glyph/pkg/render"
)

// maxMeshExtent is the size of the largest side of a loaded mesh after
// normalization; the default camera at distance 2 frames it fully.
const maxMeshExtent = 2

type scene struct {
	name string
	mesh *models.Mesh
}

// loadScene loads the model at path, or the built-in cube when path is
// empty, and normalizes it around the origin.
func loadScene(cfg config.Config, path string) (*scene, error) {
	shading, err := models.ParseShading(cfg.Shading)
	if err != nil {
		return nil, err
	}

	raw := models.Cube()
	name := "cube"
	if path != "" {
		raw, err = models.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		name = filepath.Base(path)
	}

	raw.Fit(maxMeshExtent)
	raw.Centering()

	mesh, err := models.Build(raw, shading)
	if err != nil {
		return nil, fmt.Errorf("build mesh: %w", err)
	}
	slog.Info("loaded model", "name", name, "vertices", mesh.VertexCount(), "triangles", mesh.Len(), "shading", shading)
	return &scene{name: name, mesh: mesh}, nil
}

// renderOptions sizes the frame for cols×rows braille cells.
func renderOptions(cfg config.Config, cols, rows int) render.Options {
	w, h := output.FrameSize(cols, rows)
	return render.Options{
		Width:           w,
		Height:          h,
		BackfaceCulling: cfg.BackfaceCulling,
		Ambient:         cfg.LightAmbient,
		Diffuse:         cfg.LightDiffuse,
		Specular:        cfg.LightSpecular,
		Shininess:       cfg.LightShininess,
	}
}

func newCamera(cfg config.Config, opts render.Options) *render.LookAtCamera {
	return render.NewLookAtCamera(
		cfg.CameraPos.Vec3(),
		cfg.CameraTarget.Vec3(),
		float32(opts.Width),
		float32(opts.Height),
		cfg.FOV*math32.Pi/180,
		cfg.Near,
		cfg.Far,
	)
}
