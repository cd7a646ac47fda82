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

package overlay

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/jetsetilly/gbuffer/gpu"
	"github.com/jetsetilly/gbuffer/gpu/gl32"
)

//go:embed gui.vert
var vertexShader string

//go:embed gui.frag
var fragmentShader string

// renderer translates imgui draw data to OpenGL commands.
type renderer struct {
	ctx     *gl32.Context
	program gpu.Program

	// uniforms
	projMtx int32
	texture int32

	// attributes
	position uint32
	uv       uint32
	color    uint32

	vbo         uint32
	ebo         uint32
	fontTexture uint32
}

func newRenderer(ctx *gl32.Context, fonts imgui.FontAtlas) (*renderer, error) {
	rnd := &renderer{ctx: ctx}

	var err error
	rnd.program, err = ctx.CreateProgram("overlay", vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}

	handle := rnd.program.ID()
	rnd.projMtx = gl.GetUniformLocation(handle, gl.Str("ProjMtx\x00"))
	rnd.texture = gl.GetUniformLocation(handle, gl.Str("Texture\x00"))

	attrib := func(name string) (uint32, error) {
		loc := gl.GetAttribLocation(handle, gl.Str(name+"\x00"))
		if loc < 0 {
			return 0, fmt.Errorf("overlay: no %s attribute in program", name)
		}
		return uint32(loc), nil
	}
	if rnd.position, err = attrib("Position"); err != nil {
		rnd.destroy()
		return nil, err
	}
	if rnd.uv, err = attrib("UV"); err != nil {
		rnd.destroy()
		return nil, err
	}
	if rnd.color, err = attrib("Color"); err != nil {
		rnd.destroy()
		return nil, err
	}

	gl.GenBuffers(1, &rnd.vbo)
	gl.GenBuffers(1, &rnd.ebo)

	// create font texture. the atlas is built the first time the texture data
	// is requested
	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)

	image := fonts.TextureDataAlpha8()
	gl.GenTextures(1, &rnd.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, rnd.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height), 0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)
	fonts.SetTextureID(imgui.TextureID(rnd.fontTexture))

	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))

	return rnd, nil
}

func (rnd *renderer) destroy() {
	if rnd.vbo != 0 {
		gl.DeleteBuffers(1, &rnd.vbo)
		rnd.vbo = 0
	}
	if rnd.ebo != 0 {
		gl.DeleteBuffers(1, &rnd.ebo)
		rnd.ebo = 0
	}
	if rnd.fontTexture != 0 {
		gl.DeleteTextures(1, &rnd.fontTexture)
		imgui.CurrentIO().Fonts().SetTextureID(0)
		rnd.fontTexture = 0
	}
	if rnd.program != nil {
		rnd.program.Destroy()
		rnd.program = nil
	}
}

// render the draw data to the default framebuffer. display size is in screen
// coordinates and framebuffer size is in pixels.
func (rnd *renderer) render(drawData imgui.DrawData, displayWidth, displayHeight, fbWidth, fbHeight float32) {
	// nothing to do when minimised
	if fbWidth <= 0 || fbHeight <= 0 || displayWidth <= 0 || displayHeight <= 0 {
		return
	}

	st := rnd.ctx.StoreState()
	defer st.Restore()
	bst := storeBufferState()
	defer bst.restore()

	// scale coordinates for high DPI displays
	drawData.ScaleClipRects(imgui.Vec2{
		X: fbWidth / displayWidth,
		Y: fbHeight / displayHeight,
	})

	// alpha-blending enabled, no face culling, no depth testing, scissor
	// enabled, polygon fill
	rnd.ctx.BindFramebuffer(nil)
	rnd.ctx.Enable(gpu.Blend)
	rnd.ctx.Disable(gpu.CullFace)
	rnd.ctx.Disable(gpu.DepthTest)
	rnd.ctx.Enable(gpu.ScissorTest)
	rnd.ctx.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	// imgui space runs from (0,0) at the top left to the display size at the
	// bottom right
	projMtx := [4][4]float32{
		{2.0 / displayWidth, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -displayHeight, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}

	rnd.ctx.UseProgram(rnd.program)
	gl.Uniform1i(rnd.texture, 0)
	gl.UniformMatrix4fv(rnd.projMtx, 1, false, &projMtx[0][0])
	gl.ActiveTexture(gl.TEXTURE0)

	// the VAO is recreated every frame
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	defer gl.DeleteVertexArrays(1, &vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vbo)
	gl.EnableVertexAttribArray(rnd.position)
	gl.EnableVertexAttribArray(rnd.uv)
	gl.EnableVertexAttribArray(rnd.color)

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointerWithOffset(rnd.position, 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetPos))
	gl.VertexAttribPointerWithOffset(rnd.uv, 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetUv))
	gl.VertexAttribPointerWithOffset(rnd.color, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(vertexOffsetCol))

	indexSize := imgui.IndexBufferLayout()
	drawType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		var indexBufferOffset uintptr

		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rnd.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				clipRect := cmd.ClipRect()
				gl.Scissor(int32(clipRect.X), int32(fbHeight)-int32(clipRect.W), int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), drawType, indexBufferOffset)
			}
			indexBufferOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}
}

// bufferState is the part of the OpenGL state changed by render() that is not
// stored by gl32.Context.StoreState().
type bufferState struct {
	arrayBuffer        int32
	elementArrayBuffer int32
	vertexArray        int32
	polygonMode        [2]int32
	scissorBox         [4]int32
	blendSrcRgb        int32
	blendDstRgb        int32
	blendSrcAlpha      int32
	blendDstAlpha      int32
	blendEquationRgb   int32
	blendEquationAlpha int32
}

func storeBufferState() *bufferState {
	st := &bufferState{}
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &st.arrayBuffer)
	gl.GetIntegerv(gl.ELEMENT_ARRAY_BUFFER_BINDING, &st.elementArrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &st.vertexArray)
	gl.GetIntegerv(gl.POLYGON_MODE, &st.polygonMode[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &st.scissorBox[0])
	gl.GetIntegerv(gl.BLEND_SRC_RGB, &st.blendSrcRgb)
	gl.GetIntegerv(gl.BLEND_DST_RGB, &st.blendDstRgb)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &st.blendSrcAlpha)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &st.blendDstAlpha)
	gl.GetIntegerv(gl.BLEND_EQUATION_RGB, &st.blendEquationRgb)
	gl.GetIntegerv(gl.BLEND_EQUATION_ALPHA, &st.blendEquationAlpha)
	return st
}

func (st *bufferState) restore() {
	gl.BindVertexArray(uint32(st.vertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(st.arrayBuffer))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(st.elementArrayBuffer))
	gl.BlendEquationSeparate(uint32(st.blendEquationRgb), uint32(st.blendEquationAlpha))
	gl.BlendFuncSeparate(uint32(st.blendSrcRgb), uint32(st.blendDstRgb), uint32(st.blendSrcAlpha), uint32(st.blendDstAlpha))
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(st.polygonMode[0]))
	gl.Scissor(st.scissorBox[0], st.scissorBox[1], st.scissorBox[2], st.scissorBox[3])
}
