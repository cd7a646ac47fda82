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
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gbuffer/gpu"
)

// DrawFullscreen draws a single triangle that covers the viewport. The
// vertex shader of the current program must generate the vertices from
// gl_VertexID because no vertex attributes are supplied.
func (ctx *Context) DrawFullscreen() {
	// a core profile context requires a vertex array object to be bound for
	// any draw call, even one with no attributes
	if ctx.emptyVAO == 0 {
		gl.GenVertexArrays(1, &ctx.emptyVAO)
	}

	var last int32
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &last)
	gl.BindVertexArray(ctx.emptyVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(uint32(last))
}

// SetUniform1f sets the value of a float uniform in the program. The program
// must be in use. Uniforms that are not active in the program are ignored.
func (ctx *Context) SetUniform1f(prg gpu.Program, name string, v float32) {
	loc := gl.GetUniformLocation(prg.ID(), gl.Str(name+"\x00"))
	if loc < 0 {
		return
	}
	gl.Uniform1f(loc, v)
}

// Destroy releases objects created by the Context itself. Objects created
// through the gpu.Context interface are not affected.
func (ctx *Context) Destroy() {
	if ctx.emptyVAO != 0 {
		gl.DeleteVertexArrays(1, &ctx.emptyVAO)
		ctx.emptyVAO = 0
	}
}
