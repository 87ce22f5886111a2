package render

import (
	"log/slog"

	"github.com/taigrr/glyph/pkg/math3d"
	"github.com/taigrr/glyph/pkg/models"
	"github.com/taigrr/glyph/pkg/output"
)

// Mesh is the geometry the renderer draws. *models.Mesh implements it.
type Mesh interface {
	Len() int
	Triangle(i int) models.Triangle
	Bounds() math3d.AABB
}

// Options configures a Renderer.
type Options struct {
	Width, Height   int
	BackfaceCulling bool

	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess uint32
}

// FrameStats counts what happened to each triangle in a frame.
type FrameStats struct {
	Triangles      int
	Drawn          int
	BehindCamera   int
	OutsideFrustum int
	BackFacing     int
	Degenerate     int

	// MeshCulled is set when the whole mesh fell outside the view frustum
	// and no triangle was processed.
	MeshCulled bool
}

func (s *FrameStats) count(o Outcome) {
	switch o {
	case Drawn:
		s.Drawn++
	case BehindCamera:
		s.BehindCamera++
	case OutsideFrustum:
		s.OutsideFrustum++
	case BackFacing:
		s.BackFacing++
	case Degenerate:
		s.Degenerate++
	}
}

// LogValue implements slog.LogValuer.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("triangles", s.Triangles),
		slog.Int("drawn", s.Drawn),
		slog.Int("behind", s.BehindCamera),
		slog.Int("outside", s.OutsideFrustum),
		slog.Int("backfacing", s.BackFacing),
		slog.Int("degenerate", s.Degenerate),
		slog.Bool("mesh_culled", s.MeshCulled),
	)
}

// Renderer owns the frame and depth buffers and draws one frame at a time.
// A single directional light shines from the viewer, (0,0,1) in view space.
type Renderer struct {
	fb     *FrameBuffer
	zb     *ZBuffer
	raster Rasterizer
	vertex VertexShader
	frag   FragmentShader
	light  math3d.Direction3
}

// NewRenderer creates a renderer with buffers sized to opts.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		fb:     NewFrameBuffer(opts.Width, opts.Height),
		zb:     NewZBuffer(opts.Width, opts.Height),
		raster: Rasterizer{CullBackfaces: opts.BackfaceCulling},
		frag: FragmentShader{
			Ambient:   opts.Ambient,
			Diffuse:   opts.Diffuse,
			Specular:  opts.Specular,
			Shininess: opts.Shininess,
		},
		light: math3d.UnitZ,
	}
	Logger().Info("renderer created",
		"width", opts.Width,
		"height", opts.Height,
		"culling", opts.BackfaceCulling)
	return r
}

// Resize replaces the buffers with cleared ones of the new size.
func (r *Renderer) Resize(width, height int) {
	if width == r.fb.Width() && height == r.fb.Height() {
		return
	}
	r.fb = NewFrameBuffer(width, height)
	r.zb = NewZBuffer(width, height)
}

// FrameBuffer returns the buffer holding the last rendered frame.
func (r *Renderer) FrameBuffer() *FrameBuffer {
	return r.fb
}

// Frame formats the last rendered frame.
func (r *Renderer) Frame(f output.Formatter) string {
	return f.Format(r.fb)
}

// Render clears the buffers and draws every triangle of mesh as seen by cam.
func (r *Renderer) Render(mesh Mesh, cam Camera) FrameStats {
	r.fb.Clear()
	r.zb.Clear()

	stats := FrameStats{Triangles: mesh.Len()}
	view, proj := cam.View(), cam.Proj()

	frustum := NewFrustumFromMatrix(proj.Mul(view))
	if !frustum.IntersectAABBSides(mesh.Bounds()) {
		stats.MeshCulled = true
		Logger().Debug("mesh outside view frustum", "bounds", mesh.Bounds())
		return stats
	}

	for i := range mesh.Len() {
		tri := mesh.Triangle(i)
		var pv [3]ProcessedVertex
		for k := range 3 {
			pv[k] = r.vertex.Process(tri.V[k], view, proj)
		}
		stats.count(r.raster.RasterizeTriangle(pv, r.light, r.zb, r.fb, r.frag))
	}

	Logger().Debug("frame rendered", "stats", stats)
	return stats
}
