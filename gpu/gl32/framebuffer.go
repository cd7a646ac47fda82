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

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gbuffer/curated"
	"github.com/jetsetilly/gbuffer/gpu"
)

type framebuffer struct {
	id     uint32
	width  int32
	height int32
	color  []gpu.Texture
	depth  gpu.Texture
}

// CreateFramebuffer implements the gpu.Context interface. The framebuffer
// binding is unchanged on return.
func (ctx *Context) CreateFramebuffer(color []gpu.Texture, depth gpu.Texture) (gpu.Framebuffer, error) {
	if err := gpu.ValidateAttachments(color, depth); err != nil {
		return nil, err
	}

	fb := &framebuffer{
		color: append([]gpu.Texture{}, color...),
		depth: depth,
	}
	if len(color) > 0 {
		fb.width, fb.height = color[0].Width(), color[0].Height()
	} else {
		fb.width, fb.height = depth.Width(), depth.Height()
	}

	var last int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &last)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(last))

	gl.GenFramebuffers(1, &fb.id)
	if fb.id == 0 {
		return nil, curated.Errorf(gpu.ResourceExhausted, "framebuffer", glError(gl.GetError()))
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.id)

	drawBuffers := make([]uint32, len(color))
	for i, t := range color {
		drawBuffers[i] = gl.COLOR_ATTACHMENT0 + uint32(i)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, drawBuffers[i], gl.TEXTURE_2D, t.ID(), 0)
	}
	if depth != nil {
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, depth.ID(), 0)
	}

	if len(drawBuffers) > 0 {
		gl.DrawBuffers(int32(len(drawBuffers)), &drawBuffers[0])
	} else {
		gl.DrawBuffer(gl.NONE)
		gl.ReadBuffer(gl.NONE)
	}

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &fb.id)
		return nil, curated.Errorf(gpu.IncompleteFramebuffer, framebufferStatus(status))
	}

	return fb, nil
}

func framebufferStatus(status uint32) string {
	switch status {
	case gl.FRAMEBUFFER_UNDEFINED:
		return "undefined"
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "incomplete attachment"
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "missing attachment"
	case gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return "incomplete draw buffer"
	case gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return "incomplete read buffer"
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return "unsupported"
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return "incomplete multisample"
	}
	return fmt.Sprintf("status %#04x", status)
}

func (fb *framebuffer) ID() uint32 {
	return fb.id
}

func (fb *framebuffer) Width() int32 {
	return fb.width
}

func (fb *framebuffer) Height() int32 {
	return fb.height
}

func (fb *framebuffer) ColorAttachments() []gpu.Texture {
	return fb.color
}

func (fb *framebuffer) DepthAttachment() gpu.Texture {
	return fb.depth
}

// Destroy does not destroy the attached textures.
func (fb *framebuffer) Destroy() {
	if fb.id != 0 {
		gl.DeleteFramebuffers(1, &fb.id)
		fb.id = 0
	}
}
