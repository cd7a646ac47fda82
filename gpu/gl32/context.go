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
	"github.com/jetsetilly/gbuffer/gpu"
	"github.com/jetsetilly/gbuffer/logger"
)

const logTag = "gl32"

// Context is the OpenGL 3.2 implementation of gpu.Context.
type Context struct {
	vendor   string
	renderer string
	version  string

	// vertex array object used by DrawFullscreen()
	emptyVAO uint32
}

// Init must be called once the OpenGL context has been made current. It
// loads the OpenGL function pointers and returns a new Context.
func Init() (*Context, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("gl32: %w", err)
	}

	ctx := &Context{
		vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		version:  gl.GoStr(gl.GetString(gl.VERSION)),
	}

	logger.Logf(logger.Allow, logTag, "vendor: %s", ctx.vendor)
	logger.Logf(logger.Allow, logTag, "renderer: %s", ctx.renderer)
	logger.Logf(logger.Allow, logTag, "driver: %s", ctx.version)

	return ctx, nil
}

// Info returns the vendor, renderer and version strings of the context.
func (ctx *Context) Info() (string, string, string) {
	return ctx.vendor, ctx.renderer, ctx.version
}

// BindFramebuffer implements the gpu.Context interface.
func (ctx *Context) BindFramebuffer(fb gpu.Framebuffer) {
	if fb == nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID())
}

// Viewport implements the gpu.Context interface.
func (ctx *Context) Viewport(x int32, y int32, width int32, height int32) {
	gl.Viewport(x, y, width, height)
}

// UseProgram implements the gpu.Context interface.
func (ctx *Context) UseProgram(prg gpu.Program) {
	if prg == nil {
		gl.UseProgram(0)
		return
	}
	gl.UseProgram(prg.ID())
}

func capability(c gpu.Capability) uint32 {
	switch c {
	case gpu.DepthTest:
		return gl.DEPTH_TEST
	case gpu.CullFace:
		return gl.CULL_FACE
	case gpu.Blend:
		return gl.BLEND
	case gpu.ScissorTest:
		return gl.SCISSOR_TEST
	}
	panic(fmt.Sprintf("gl32: unknown capability (%d)", c))
}

// Enable implements the gpu.Context interface.
func (ctx *Context) Enable(c gpu.Capability) {
	gl.Enable(capability(c))
}

// Disable implements the gpu.Context interface.
func (ctx *Context) Disable(c gpu.Capability) {
	gl.Disable(capability(c))
}

// Clear implements the gpu.Context interface.
func (ctx *Context) Clear(r float32, g float32, b float32, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Blit copies the color attachment of the framebuffer to the default
// framebuffer, scaling it to the width and height given. Context state is
// unchanged on return.
func (ctx *Context) Blit(fb gpu.Framebuffer, attachment int, width int32, height int32) {
	st := ctx.StoreState()
	defer st.Restore()

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.ID())
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0 + uint32(attachment))
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, 0, fb.Width(), fb.Height(), 0, 0, width, height, gl.COLOR_BUFFER_BIT, gl.LINEAR)
}
