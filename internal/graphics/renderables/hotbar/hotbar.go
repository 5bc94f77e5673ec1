package hotbar

import (
	"zeecraft/internal/graphics"
	"zeecraft/internal/graphics/renderer"
	"zeecraft/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	frameColor    = mgl32.Vec4{0.1, 0.1, 0.1, 0.6}
	selectedColor = mgl32.Vec4{1, 1, 1, 1}
)

var quadVertices = []float32{
	0, 0,
	1, 0,
	1, 1,
	1, 1,
	0, 1,
	0, 0,
}

// Hotbar draws the selectable block colours with the current one framed. It
// is hidden while editing is disabled.
type Hotbar struct {
	shadersDir string
	shader     *graphics.Shader
	vao        uint32
	vbo        uint32

	width, height int
}

func NewHotbar(shadersDir string) *Hotbar {
	return &Hotbar{shadersDir: shadersDir}
}

func (h *Hotbar) Init() error {
	var err error
	h.shader, err = graphics.LoadShader(h.shadersDir, "hotbar")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)

	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

	gl.BindVertexArray(0)
	return nil
}

func (h *Hotbar) Render(ctx renderer.RenderContext) {
	if !ctx.Frame.EditEnabled || h.width == 0 || h.height == 0 {
		return
	}
	defer profiling.Track("renderer.renderHotbar")()

	h.shader.Use()
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BindVertexArray(h.vao)

	for _, s := range Layout(h.width, h.height, ctx.Frame.Selected) {
		outer := frameColor
		if s.Selected {
			outer = selectedColor
		}
		h.quad(s.Rect.Outer(), outer)

		c := s.Block.Color()
		h.quad(s.Rect, c.Vec4(1))
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (h *Hotbar) quad(r Rect, color mgl32.Vec4) {
	h.shader.SetVec4("rect", r.NDC(h.width, h.height))
	h.shader.SetVec4("color", color)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (h *Hotbar) SetViewport(width, height int) {
	h.width, h.height = width, height
}

func (h *Hotbar) Dispose() {
	if h.vao != 0 {
		gl.DeleteVertexArrays(1, &h.vao)
	}
	if h.vbo != 0 {
		gl.DeleteBuffers(1, &h.vbo)
	}
	if h.shader != nil {
		h.shader.Delete()
	}
}
