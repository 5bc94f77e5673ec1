package renderer

import (
	"zeecraft/internal/graphics"
	"zeecraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is the simulation state a renderer may read after a step. Grid must
// not be modified.
type Frame struct {
	Grid *world.Grid

	// Revision changes whenever Grid's contents change.
	Revision uint64

	Eye  mgl32.Vec3
	View mgl32.Mat4

	Selected    world.BlockID
	EditEnabled bool

	Target      world.Cell
	ShowOutline bool
}

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *graphics.Camera
	Frame  Frame
	View   mgl32.Mat4
	Proj   mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
