package blocks

import (
	"zeecraft/internal/graphics"
	"zeecraft/internal/graphics/renderer"
	"zeecraft/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// lightDir is the fixed directional light used for face shading.
var lightDir = mgl32.Vec3{0.4, 1.0, 0.3}.Normalize()

// Blocks draws every visible grid cell as an instanced, flat-coloured cube.
type Blocks struct {
	shadersDir string
	shader     *graphics.Shader

	vao         uint32
	cubeVBO     uint32
	instanceVBO uint32

	instances []float32
	count     int32
	revision  uint64
}

// NewBlocks creates a new blocks renderable
func NewBlocks(shadersDir string) *Blocks {
	return &Blocks{shadersDir: shadersDir}
}

// Init compiles the shader and sets up the cube and instance buffers.
func (b *Blocks) Init() error {
	var err error
	b.shader, err = graphics.LoadShader(b.shadersDir, "blocks")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, cubeStride*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, cubeStride*4, 3*4)

	gl.GenBuffers(1, &b.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.instanceVBO)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, instanceStride*4, 0)
	gl.VertexAttribDivisor(2, 1)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, instanceStride*4, 3*4)
	gl.VertexAttribDivisor(3, 1)

	gl.BindVertexArray(0)
	return nil
}

// Render uploads the instance list when the grid changed, then draws it.
func (b *Blocks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderBlocks")()

	f := ctx.Frame
	if f.Grid == nil {
		return
	}
	if f.Revision != b.revision {
		b.upload(f)
	}
	if b.count == 0 {
		return
	}

	b.shader.Use()
	b.shader.SetMat4("proj", ctx.Proj)
	b.shader.SetMat4("view", ctx.View)
	b.shader.SetVec3("lightDir", lightDir)

	gl.BindVertexArray(b.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, cubeVertexCount, b.count)
	gl.BindVertexArray(0)
}

func (b *Blocks) upload(f renderer.Frame) {
	defer profiling.Track("renderer.uploadBlocks")()

	b.instances = BuildInstances(f.Grid, b.instances)
	b.count = int32(len(b.instances) / instanceStride)
	b.revision = f.Revision

	gl.BindBuffer(gl.ARRAY_BUFFER, b.instanceVBO)
	if len(b.instances) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(b.instances)*4, gl.Ptr(b.instances), gl.DYNAMIC_DRAW)
}

func (b *Blocks) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (b *Blocks) Dispose() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.cubeVBO != 0 {
		gl.DeleteBuffers(1, &b.cubeVBO)
	}
	if b.instanceVBO != 0 {
		gl.DeleteBuffers(1, &b.instanceVBO)
	}
	if b.shader != nil {
		b.shader.Delete()
	}
}
