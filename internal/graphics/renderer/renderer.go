package renderer

import (
	"zeecraft/internal/graphics"
	"zeecraft/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer configures GL state and initialises every renderable. On
// failure the ones already initialised are disposed.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		camera: graphics.NewCamera(width, height),
	}

	for _, rb := range rs {
		if err := rb.Init(); err != nil {
			r.Dispose()
			return nil, err
		}
		rb.SetViewport(width, height)
		r.renderables = append(r.renderables, rb)
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	return r, nil
}

// Render draws one frame.
func (r *Renderer) Render(f Frame) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		Frame:  f,
		View:   f.View,
		Proj:   r.camera.GetProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// UpdateViewport updates the camera and every renderable after a resize.
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}
