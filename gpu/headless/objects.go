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

type texture struct {
	ctx    *Context
	id     uint32
	width  int32
	height int32
	format gpu.Format
}

func (tex *texture) ID() uint32         { return tex.id }
func (tex *texture) Width() int32       { return tex.width }
func (tex *texture) Height() int32      { return tex.height }
func (tex *texture) Format() gpu.Format { return tex.format }
func (tex *texture) Destroy()           { tex.ctx.release(tex.id) }

type framebuffer struct {
	ctx    *Context
	id     uint32
	width  int32
	height int32
	color  []gpu.Texture
	depth  gpu.Texture
}

func (fb *framebuffer) ID() uint32                      { return fb.id }
func (fb *framebuffer) Width() int32                    { return fb.width }
func (fb *framebuffer) Height() int32                   { return fb.height }
func (fb *framebuffer) ColorAttachments() []gpu.Texture { return fb.color }
func (fb *framebuffer) DepthAttachment() gpu.Texture    { return fb.depth }
func (fb *framebuffer) Destroy()                        { fb.ctx.release(fb.id) }

type program struct {
	ctx  *Context
	id   uint32
	name string
}

func (prg *program) ID() uint32   { return prg.id }
func (prg *program) Name() string { return prg.name }
func (prg *program) Destroy()     { prg.ctx.release(prg.id) }
