// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/skydrop/internal/engine/lighting"
	"github.com/Faultbox/skydrop/internal/logger"
	"github.com/Faultbox/skydrop/pkg/math"
)

// Program is a linked GL program with a uniform location cache.
type Program struct {
	id        uint32
	name      string
	locations map[string]int32
}

// LoadProgram compiles the two stages named by src. Errors name the failing
// stage and source file.
func LoadProgram(src lighting.Sources, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := compileProgram(src.Vertex, vertexSrc, src.Fragment, fragmentSrc)
	if err != nil {
		return nil, err
	}
	logger.Info("shader program linked",
		zap.Uint32("program", id),
		zap.Stringer("sources", src))
	return &Program{
		id:        id,
		name:      src.String(),
		locations: make(map[string]int32),
	}, nil
}

// compileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func compileProgram(vertexName, vertexSrc, fragmentName, fragmentSrc string) (uint32, error) {
	// Compile vertex shader
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, stageLabel("vertex", vertexName))
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	// Compile fragment shader
	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, stageLabel("fragment", fragmentName))
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link %s+%s: %s", vertexName, fragmentName, trimLog(log))
	}

	return program, nil
}

func stageLabel(stage, name string) string {
	return stage + " shader " + name
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, label string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s: %s", label, trimLog(log))
	}

	return shader, nil
}

func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\n ")
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Location returns the cached uniform location, -1 when the uniform is
// absent or optimized out by the driver.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		logger.Debug("uniform not active",
			zap.String("program", p.name),
			zap.String("uniform", name))
	}
	p.locations[name] = loc
	return loc
}

// SetMat4 uploads a column-major 4x4 matrix.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, m.Ptr())
}

// SetMat3 uploads a column-major 3x3 matrix.
func (p *Program) SetMat3(name string, m math.Mat3) {
	gl.UniformMatrix3fv(p.Location(name), 1, false, m.Ptr())
}

func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.Location(name), v.X, v.Y, v.Z)
}

func (p *Program) SetVec4(name string, v math.Vec4) {
	gl.Uniform4f(p.Location(name), v[0], v[1], v[2], v[3])
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.Location(name), v)
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Location(name), v)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
