package graphics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a linked GL program with a cache of uniform locations.
type Shader struct {
	program  uint32
	uniforms map[string]int32
}

// LoadShader builds the program from dir/name/name.vert and
// dir/name/name.frag.
func LoadShader(dir, name string) (*Shader, error) {
	base := filepath.Join(dir, name, name)

	var src [2]string
	for i, ext := range [2]string{".vert", ".frag"} {
		data, err := os.ReadFile(base + ext)
		if err != nil {
			return nil, fmt.Errorf("shader %s: %w", name, err)
		}
		src[i] = string(data)
	}

	program, err := link(src[0], src[1])
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", name, err)
	}
	return &Shader{program: program, uniforms: make(map[string]int32)}, nil
}

func (s *Shader) Use() {
	gl.UseProgram(s.program)
}

// Delete releases the program. Safe to call twice.
func (s *Shader) Delete() {
	if s.program == 0 {
		return
	}
	gl.DeleteProgram(s.program)
	s.program = 0
}

func (s *Shader) uniform(name string) int32 {
	loc, ok := s.uniforms[name]
	if !ok {
		loc = gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
		s.uniforms[name] = loc
	}
	return loc
}

func (s *Shader) SetFloat(name string, v float32) {
	gl.Uniform1f(s.uniform(name), v)
}

func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(s.uniform(name), 1, &v[0])
}

func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(s.uniform(name), 1, &v[0])
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.uniform(name), 1, false, &m[0])
}

func link(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compile(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vert)

	frag, err := compile(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) { gl.GetProgramInfoLog(program, n, nil, buf) })
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}
	return program, nil
}

func compile(src string, kind uint32) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) { gl.GetShaderInfoLog(sh, n, nil, buf) })
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile: %s", msg)
	}
	return sh, nil
}

// infoLog reads a GL info log of length n through fill.
func infoLog(n int32, fill func(buf *uint8)) string {
	buf := make([]byte, n+1)
	fill(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}
