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

type state struct {
	lastDrawFramebuffer int32
	lastReadFramebuffer int32
	lastReadBuffer      int32
	lastProgram         int32
	lastActiveTexture   int32
	lastTexture         int32
	lastViewport        [4]int32
	lastClearColor      [4]float32

	lastEnableDepthTest   bool
	lastEnableCullFace    bool
	lastEnableBlend       bool
	lastEnableScissorTest bool
}

// StoreState implements the gpu.Context interface.
func (ctx *Context) StoreState() gpu.State {
	st := &state{}
	gl.GetIntegerv(gl.DRAW_FRAMEBUFFER_BINDING, &st.lastDrawFramebuffer)
	gl.GetIntegerv(gl.READ_FRAMEBUFFER_BINDING, &st.lastReadFramebuffer)
	gl.GetIntegerv(gl.READ_BUFFER, &st.lastReadBuffer)
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &st.lastProgram)
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &st.lastActiveTexture)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &st.lastTexture)
	gl.GetIntegerv(gl.VIEWPORT, &st.lastViewport[0])
	gl.GetFloatv(gl.COLOR_CLEAR_VALUE, &st.lastClearColor[0])
	st.lastEnableDepthTest = gl.IsEnabled(gl.DEPTH_TEST)
	st.lastEnableCullFace = gl.IsEnabled(gl.CULL_FACE)
	st.lastEnableBlend = gl.IsEnabled(gl.BLEND)
	st.lastEnableScissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return st
}

func enable(c uint32, v bool) {
	if v {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

// Restore implements the gpu.State interface.
func (st *state) Restore() {
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, uint32(st.lastDrawFramebuffer))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, uint32(st.lastReadFramebuffer))
	gl.ReadBuffer(uint32(st.lastReadBuffer))
	gl.UseProgram(uint32(st.lastProgram))
	gl.ActiveTexture(uint32(st.lastActiveTexture))
	gl.BindTexture(gl.TEXTURE_2D, uint32(st.lastTexture))
	gl.Viewport(st.lastViewport[0], st.lastViewport[1], st.lastViewport[2], st.lastViewport[3])
	gl.ClearColor(st.lastClearColor[0], st.lastClearColor[1], st.lastClearColor[2], st.lastClearColor[3])
	enable(gl.DEPTH_TEST, st.lastEnableDepthTest)
	enable(gl.CULL_FACE, st.lastEnableCullFace)
	enable(gl.BLEND, st.lastEnableBlend)
	enable(gl.SCISSOR_TEST, st.lastEnableScissorTest)
}
