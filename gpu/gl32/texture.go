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
	"github.com/jetsetilly/gbuffer/curated"
	"github.com/jetsetilly/gbuffer/gpu"
)

type texture struct {
	id     uint32
	width  int32
	height int32
	format gpu.Format
}

// the internal format, pixel format and pixel type for each gpu.Format
func textureFormat(f gpu.Format) (int32, uint32, uint32) {
	switch f {
	case gpu.RGB16F:
		return gl.RGB16F, gl.RGB, gl.FLOAT
	case gpu.RGBA16F:
		return gl.RGBA16F, gl.RGBA, gl.FLOAT
	case gpu.RGB32F:
		return gl.RGB32F, gl.RGB, gl.FLOAT
	case gpu.RGBA32F:
		return gl.RGBA32F, gl.RGBA, gl.FLOAT
	case gpu.RGBA8:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
	case gpu.Depth24:
		return gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT
	case gpu.Depth32F:
		return gl.DEPTH_COMPONENT32F, gl.DEPTH_COMPONENT, gl.FLOAT
	}
	return 0, 0, 0
}

// CreateTexture implements the gpu.Context interface. The texture is created
// with nearest filtering and clamp-to-edge wrapping. The current texture
// binding is unchanged on return.
func (ctx *Context) CreateTexture(width int32, height int32, format gpu.Format) (gpu.Texture, error) {
	if err := gpu.ValidateTexture(width, height, format); err != nil {
		return nil, err
	}

	var last int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &last)
	defer gl.BindTexture(gl.TEXTURE_2D, uint32(last))

	tex := &texture{
		width:  width,
		height: height,
		format: format,
	}

	gl.GenTextures(1, &tex.id)
	if tex.id == 0 {
		return nil, curated.Errorf(gpu.ResourceExhausted, "texture", glError(gl.GetError()))
	}

	internal, pixels, typ := textureFormat(format)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, width, height, 0, pixels, typ, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	if e := gl.GetError(); e != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex.id)
		return nil, curated.Errorf(gpu.ResourceExhausted, "texture", glError(e))
	}

	return tex, nil
}

func (tex *texture) ID() uint32 {
	return tex.id
}

func (tex *texture) Width() int32 {
	return tex.width
}

func (tex *texture) Height() int32 {
	return tex.height
}

func (tex *texture) Format() gpu.Format {
	return tex.format
}

func (tex *texture) Destroy() {
	if tex.id != 0 {
		gl.DeleteTextures(1, &tex.id)
		tex.id = 0
	}
}
