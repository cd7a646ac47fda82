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

// Package gpu defines the graphics context capabilities required to manage
// off-screen render targets. The Context interface is implemented by the gl32
// package, for a real OpenGL 3.2 core context, and by the headless package,
// which keeps account of objects without a GPU.
//
// Objects created by a Context (textures, framebuffers and programs) are owned
// by whoever created them and must be released with Destroy(). A Framebuffer
// references its attachments but does not own them; destroying a Framebuffer
// does not destroy the attached textures.
//
// The StoreState() function captures the parts of the context state that are
// changed by Context functions. The returned State can be used to put the
// context back as it was:
//
//	st := ctx.StoreState()
//	defer st.Restore()
//
// All functions must be called from the thread that owns the context.
package gpu
