// This file is part of Gbuffer.
//
// Gbuffer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gbuffer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gbuffer.  If not, see <https://www.gnu.org/licenses/>.

package gl32

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gbuffer/curated"
	"github.com/jetsetilly/gbuffer/gpu"
)

type program struct {
	id   uint32
	name string
}

// matches fragment shader output declarations. for example:
//
//	out vec3 gPosition;
//	layout(location = 1) out vec3 gNormal;
var fragOutput = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?out\s+\w+\s+(\w+)\s*;`)

// CreateProgram implements the gpu.Context interface.
func (ctx *Context) CreateProgram(name string, vertex string, fragment string) (gpu.Program, error) {
	vertHandle, err := compile(name, "vertex", gl.VERTEX_SHADER, vertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compile(name, "fragment", gl.FRAGMENT_SHADER, fragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragHandle)

	prg := &program{
		id:   gl.CreateProgram(),
		name: name,
	}
	if prg.id == 0 {
		return nil, curated.Errorf(gpu.ResourceExhausted, "program", glError(gl.GetError()))
	}

	gl.AttachShader(prg.id, vertHandle)
	gl.AttachShader(prg.id, fragHandle)

	for i, m := range fragOutput.FindAllStringSubmatch(fragment, -1) {
		gl.BindFragDataLocation(prg.id, uint32(i), gl.Str(m[1]+"\x00"))
	}

	gl.LinkProgram(prg.id)

	var status int32
	gl.GetProgramiv(prg.id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prg.id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prg.id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(prg.id)
		return nil, curated.Errorf(gpu.ShaderLink, name, strings.TrimRight(log, "\x00\n"))
	}

	// shaders are no longer needed once the program has linked
	gl.DetachShader(prg.id, vertHandle)
	gl.DetachShader(prg.id, fragHandle)

	return prg, nil
}

func compile(name string, stage string, shaderType uint32, source string) (uint32, error) {
	if strings.TrimSpace(source) == "" {
		return 0, curated.Errorf(gpu.ShaderCompile, name, stage, "empty source")
	}

	handle := gl.CreateShader(shaderType)

	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(handle, 1, csource, nil)
	gl.CompileShader(handle)

	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		// logLength includes the NULL character
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
		gl.DeleteShader(handle)
		return 0, curated.Errorf(gpu.ShaderCompile, name, stage, strings.TrimRight(log, "\x00\n"))
	}

	return handle, nil
}

func (prg *program) ID() uint32 {
	return prg.id
}

func (prg *program) Name() string {
	return prg.name
}

func (prg *program) Destroy() {
	if prg.id != 0 {
		gl.DeleteProgram(prg.id)
		prg.id = 0
	}
}

func glError(e uint32) string {
	switch e {
	case gl.NO_ERROR:
		return "no error"
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	}
	return fmt.Sprintf("error %#04x", e)
}
