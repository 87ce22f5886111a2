package render

import (
	"github.com/taigrr/glyph/pkg/math3d"
	"github.com/taigrr/glyph/pkg/models"
)

// ProcessedVertex is the vertex shader's output for one vertex.
type ProcessedVertex struct {
	NDC        math3d.Vec3    // after perspective divide
	ViewPos    math3d.Vec3    // view-space position
	ViewNormal math3d.Normal3 // view-space normal
	InvW       float32        // 1/clip.w, 0 when clip.w is 0
}

// VertexShader moves vertices from model space to view and NDC space.
type VertexShader struct{}

// Process transforms v by the view and projection matrices.
func (VertexShader) Process(v models.Vertex, view, proj math3d.Mat4) ProcessedVertex {
	viewPos := view.TransformPoint(v.Position)
	clip := proj.MulVec4(math3d.V4FromV3(viewPos, 1))

	var invW float32
	if clip.W != 0 {
		invW = 1 / clip.W
	}

	return ProcessedVertex{
		NDC:        clip.PerspectiveDivide(),
		ViewPos:    viewPos,
		ViewNormal: view.TransformNormal(v.Normal),
		InvW:       invW,
	}
}

// viewDir is the direction from a view-space surface towards the eye.
var viewDir = math3d.UnitZ

// FragmentShader computes per-pixel Phong-style lighting.
type FragmentShader struct {
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess uint32
}

// Process returns the light intensity in [0, 1] for a surface with the
// given normal lit from direction light. Both are view-space unit vectors.
func (fs FragmentShader) Process(normal math3d.Normal3, light math3d.Direction3) float32 {
	diffuse := max(0, normal.Dot(light)) * fs.Diffuse

	r := light.Vec3().Negate().Reflect(normal)
	spec := powi(max(0, r.Dot(viewDir.Vec3())), fs.Shininess) * fs.Specular

	return clamp01(fs.Ambient + diffuse + spec)
}

// powi raises base to an integer power by repeated squaring.
func powi(base float32, exp uint32) float32 {
	result := float32(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
