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

package headless

import "github.com/jetsetilly/gbuffer/gpu"

type state struct {
	ctx         *Context
	framebuffer uint32
	program     uint32
	viewport    [4]int32
	clearColor  [4]float32
	caps        [gpu.NumCapabilities]bool
}

// StoreState implements the gpu.Context interface.
func (ctx *Context) StoreState() gpu.State {
	return &state{
		ctx:         ctx,
		framebuffer: ctx.framebuffer,
		program:     ctx.program,
		viewport:    ctx.viewport,
		clearColor:  ctx.clearColor,
		caps:        ctx.caps,
	}
}

// Restore implements the gpu.State interface. Objects destroyed since the
// state was stored are not restored. As with OpenGL, the binding reverts to
// zero.
func (st *state) Restore() {
	st.ctx.framebuffer = st.restorable(st.framebuffer)
	st.ctx.program = st.restorable(st.program)
	st.ctx.viewport = st.viewport
	st.ctx.clearColor = st.clearColor
	st.ctx.caps = st.caps
}

func (st *state) restorable(id uint32) uint32 {
	if _, ok := st.ctx.live[id]; ok {
		return id
	}
	return 0
}
