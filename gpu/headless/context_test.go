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

package headless_test

import (
	"testing"

	"github.com/jetsetilly/gbuffer/curated"
	"github.com/jetsetilly/gbuffer/gpu"
	"github.com/jetsetilly/gbuffer/gpu/headless"
	"github.com/jetsetilly/gbuffer/test"
)

const vert = "void main() { gl_Position = vec4(0.0); }"
const frag = "out vec4 c; void main() { c = vec4(1.0); }"

func TestImplements(t *testing.T) {
	test.DemandImplements[gpu.Context](t, headless.NewContext(640, 480))
}

func TestTextureAccounting(t *testing.T) {
	ctx := headless.NewContext(640, 480)

	a, err := ctx.CreateTexture(320, 200, gpu.RGB16F)
	test.DemandSuccess(t, err)
	b, err := ctx.CreateTexture(320, 200, gpu.Depth24)
	test.DemandSuccess(t, err)

	test.ExpectInequality(t, a.ID(), 0)
	test.ExpectInequality(t, a.ID(), b.ID())
	test.ExpectEquality(t, a.Width(), 320)
	test.ExpectEquality(t, a.Height(), 200)
	test.ExpectEquality(t, a.Format(), gpu.RGB16F)
	test.ExpectEquality(t, ctx.Live(headless.Texture), 2)

	a.Destroy()
	test.ExpectEquality(t, ctx.Live(headless.Texture), 1)
	test.ExpectFailure(t, ctx.IsLive(a))

	// destroying twice is not an error
	a.Destroy()
	test.ExpectEquality(t, ctx.Live(headless.Texture), 1)

	b.Destroy()
	test.ExpectEquality(t, ctx.LiveTotal(), 0)
	test.ExpectEquality(t, ctx.Created(headless.Texture), 2)
}

func TestTextureErrors(t *testing.T) {
	ctx := headless.NewContext(640, 480)

	_, err := ctx.CreateTexture(0, 200, gpu.RGB16F)
	test.ExpectSuccess(t, curated.Is(err, gpu.InvalidDimensions))

	_, err = ctx.CreateTexture(320, 200, gpu.FormatUndefined)
	test.ExpectSuccess(t, curated.Is(err, gpu.UnsupportedFormat))

	ctx.SetMaxTextureSize(256)
	_, err = ctx.CreateTexture(320, 200, gpu.RGB16F)
	test.ExpectSuccess(t, curated.Is(err, gpu.ResourceExhausted))
	_, err = ctx.CreateTexture(256, 200, gpu.RGB16F)
	test.ExpectSuccess(t, err)

	ctx.FailNext(headless.Texture, 1)
	_, err = ctx.CreateTexture(10, 10, gpu.RGB16F)
	test.ExpectSuccess(t, curated.Is(err, gpu.ResourceExhausted))
	_, err = ctx.CreateTexture(10, 10, gpu.RGB16F)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, ctx.Live(headless.Texture), 2)
}

func TestFramebuffer(t *testing.T) {
	ctx := headless.NewContext(640, 480)

	pos, _ := ctx.CreateTexture(64, 64, gpu.RGB16F)
	nrm, _ := ctx.CreateTexture(64, 64, gpu.RGB16F)
	dep, _ := ctx.CreateTexture(64, 64, gpu.Depth24)

	fb, err := ctx.CreateFramebuffer([]gpu.Texture{pos, nrm}, dep)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fb.Width(), 64)
	test.ExpectEquality(t, fb.Height(), 64)
	test.DemandEquality(t, len(fb.ColorAttachments()), 2)
	test.ExpectEquality(t, fb.ColorAttachments()[0].ID(), pos.ID())
	test.ExpectEquality(t, fb.ColorAttachments()[1].ID(), nrm.ID())
	test.ExpectEquality(t, fb.DepthAttachment().ID(), dep.ID())

	// destroying the framebuffer does not destroy the attachments
	fb.Destroy()
	test.ExpectEquality(t, ctx.Live(headless.Framebuffer), 0)
	test.ExpectEquality(t, ctx.Live(headless.Texture), 3)

	// destroyed attachment
	nrm.Destroy()
	_, err = ctx.CreateFramebuffer([]gpu.Texture{pos, nrm}, dep)
	test.ExpectSuccess(t, curated.Is(err, gpu.IncompleteFramebuffer))

	// depth texture as color attachment
	_, err = ctx.CreateFramebuffer([]gpu.Texture{dep}, nil)
	test.ExpectSuccess(t, curated.Is(err, gpu.IncompleteFramebuffer))

	ctx.FailNext(headless.Framebuffer, 1)
	_, err = ctx.CreateFramebuffer([]gpu.Texture{pos}, dep)
	test.ExpectSuccess(t, curated.Is(err, gpu.ResourceExhausted))
	test.ExpectEquality(t, ctx.Live(headless.Framebuffer), 0)
}

func TestProgram(t *testing.T) {
	ctx := headless.NewContext(640, 480)

	prg, err := ctx.CreateProgram("test", vert, frag)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prg.Name(), "test")
	test.ExpectEquality(t, ctx.Live(headless.Program), 1)

	_, err = ctx.CreateProgram("test", "", frag)
	test.ExpectSuccess(t, curated.Is(err, gpu.ShaderCompile))

	_, err = ctx.CreateProgram("test", vert, "#error unsupported\n"+frag)
	test.ExpectSuccess(t, curated.Is(err, gpu.ShaderCompile))
	test.ExpectSuccess(t, err.Error() == "gpu: test: compile fragment shader: unsupported")

	_, err = ctx.CreateProgram("test", vert, "out vec4 c;")
	test.ExpectSuccess(t, curated.Is(err, gpu.ShaderLink))

	test.ExpectEquality(t, ctx.Live(headless.Program), 1)
	prg.Destroy()
	test.ExpectEquality(t, ctx.Live(headless.Program), 0)
}

func TestState(t *testing.T) {
	ctx := headless.NewContext(640, 480)
	test.ExpectEquality(t, ctx.CurrentViewport(), [4]int32{0, 0, 640, 480})

	tex, _ := ctx.CreateTexture(64, 64, gpu.RGBA8)
	fb, _ := ctx.CreateFramebuffer([]gpu.Texture{tex}, nil)
	prg, _ := ctx.CreateProgram("test", vert, frag)

	ctx.Enable(gpu.Blend)

	st := ctx.StoreState()

	ctx.BindFramebuffer(fb)
	ctx.UseProgram(prg)
	ctx.Viewport(0, 0, 64, 64)
	ctx.Enable(gpu.DepthTest)
	ctx.Enable(gpu.CullFace)
	ctx.Disable(gpu.Blend)
	ctx.Clear(0, 0, 0, 1)

	test.ExpectEquality(t, ctx.BoundFramebuffer(), fb.ID())
	test.ExpectEquality(t, ctx.CurrentProgram(), prg.ID())
	test.ExpectEquality(t, ctx.CurrentViewport(), [4]int32{0, 0, 64, 64})
	test.ExpectSuccess(t, ctx.IsEnabled(gpu.DepthTest))
	test.ExpectFailure(t, ctx.IsEnabled(gpu.Blend))
	test.ExpectEquality(t, ctx.Clears(), 1)

	st.Restore()

	test.ExpectEquality(t, ctx.BoundFramebuffer(), 0)
	test.ExpectEquality(t, ctx.CurrentProgram(), 0)
	test.ExpectEquality(t, ctx.CurrentViewport(), [4]int32{0, 0, 640, 480})
	test.ExpectFailure(t, ctx.IsEnabled(gpu.DepthTest))
	test.ExpectFailure(t, ctx.IsEnabled(gpu.CullFace))
	test.ExpectSuccess(t, ctx.IsEnabled(gpu.Blend))
}

func TestDestroyBound(t *testing.T) {
	ctx := headless.NewContext(640, 480)

	tex, _ := ctx.CreateTexture(64, 64, gpu.RGBA8)
	fb, _ := ctx.CreateFramebuffer([]gpu.Texture{tex}, nil)
	ctx.BindFramebuffer(fb)

	// deleting a bound framebuffer reverts the binding to the default
	fb.Destroy()
	test.ExpectEquality(t, ctx.BoundFramebuffer(), 0)

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	ctx.BindFramebuffer(fb)
}
