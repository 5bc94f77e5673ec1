package wireframe

import (
	"zeecraft/internal/graphics"
	"zeecraft/internal/graphics/renderer"
	"zeecraft/internal/profiling"
	"zeecraft/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// edgeVertices are the 12 edges of a unit cube centred on the origin.
var edgeVertices = []float32{
	// Front face
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	// Back face
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

	// Connecting edges
	-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

// Wireframe outlines the edit target using the outline block variant.
type Wireframe struct {
	shadersDir string
	shader     *graphics.Shader
	vao        uint32
	vbo        uint32
}

// NewWireframe creates a new wireframe renderable
func NewWireframe(shadersDir string) *Wireframe {
	return &Wireframe{shadersDir: shadersDir}
}

// Init initializes the wireframe rendering system
func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.LoadShader(w.shadersDir, "wireframe")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(edgeVertices)*4, gl.Ptr(edgeVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindVertexArray(0)
	return nil
}

// Render outlines the target cell while the frame allows it.
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	if !ctx.Frame.ShowOutline {
		return
	}
	defer profiling.Track("renderer.renderOutline")()
	w.renderOutline(ctx.Frame.Target, ctx.View, ctx.Proj)
}

func (w *Wireframe) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
	}
	if w.shader != nil {
		w.shader.Delete()
	}
}

func (w *Wireframe) renderOutline(c world.Cell, view, projection mgl32.Mat4) {
	w.shader.Use()
	w.shader.SetMat4("proj", projection)
	w.shader.SetMat4("view", view)

	// Slightly oversized so the lines are not hidden by the block faces.
	model := mgl32.Translate3D(float32(c.X), float32(c.Y), float32(c.Z)).
		Mul4(mgl32.Scale3D(1.01, 1.01, 1.01))

	w.shader.SetMat4("model", model)
	w.shader.SetVec3("color", world.BlockOutline.Color())

	gl.BindVertexArray(w.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, 24)
	gl.BindVertexArray(0)
}
