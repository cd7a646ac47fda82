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

package gpu_test

import (
	"testing"

	"github.com/jetsetilly/gbuffer/curated"
	"github.com/jetsetilly/gbuffer/gpu"
	"github.com/jetsetilly/gbuffer/test"
)

func TestParseFormat(t *testing.T) {
	f, err := gpu.ParseFormat("rgb16f")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, gpu.RGB16F)

	f, err = gpu.ParseFormat(" DEPTH24 ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, gpu.Depth24)

	for _, f := range []gpu.Format{gpu.RGB16F, gpu.RGBA16F, gpu.RGB32F, gpu.RGBA32F, gpu.RGBA8, gpu.Depth24, gpu.Depth32F} {
		g, err := gpu.ParseFormat(f.String())
		test.ExpectSuccess(t, err, f)
		test.ExpectEquality(t, g, f)
	}

	f, err = gpu.ParseFormat("RGB8UI")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gpu.UnsupportedFormat))
	test.ExpectEquality(t, f, gpu.FormatUndefined)
}

func TestFormatProperties(t *testing.T) {
	test.ExpectSuccess(t, gpu.Depth24.IsDepth())
	test.ExpectSuccess(t, gpu.Depth32F.IsDepth())
	test.ExpectFailure(t, gpu.RGB16F.IsDepth())
	test.ExpectFailure(t, gpu.FormatUndefined.Valid())
	test.ExpectEquality(t, gpu.FormatUndefined.String(), "undefined")
	test.ExpectEquality(t, gpu.RGB16F.BytesPerPixel(), 6)
	test.ExpectEquality(t, gpu.RGBA8.BytesPerPixel(), 4)
}

type texture struct {
	w, h   int32
	format gpu.Format
}

func (t texture) ID() uint32         { return 1 }
func (t texture) Destroy()           {}
func (t texture) Width() int32       { return t.w }
func (t texture) Height() int32      { return t.h }
func (t texture) Format() gpu.Format { return t.format }

func TestValidateTexture(t *testing.T) {
	test.ExpectSuccess(t, gpu.ValidateTexture(1, 1, gpu.RGB16F))

	err := gpu.ValidateTexture(0, 100, gpu.RGB16F)
	test.ExpectSuccess(t, curated.Is(err, gpu.InvalidDimensions))
	err = gpu.ValidateTexture(100, -1, gpu.RGB16F)
	test.ExpectSuccess(t, curated.Is(err, gpu.InvalidDimensions))
	err = gpu.ValidateTexture(100, 100, gpu.FormatUndefined)
	test.ExpectSuccess(t, curated.Is(err, gpu.UnsupportedFormat))
}

func TestValidateAttachments(t *testing.T) {
	pos := texture{w: 64, h: 32, format: gpu.RGB16F}
	nrm := texture{w: 64, h: 32, format: gpu.RGB16F}
	dep := texture{w: 64, h: 32, format: gpu.Depth24}

	test.ExpectSuccess(t, gpu.ValidateAttachments([]gpu.Texture{pos, nrm}, dep))
	test.ExpectSuccess(t, gpu.ValidateAttachments([]gpu.Texture{pos, nrm}, nil))
	test.ExpectSuccess(t, gpu.ValidateAttachments(nil, dep))

	// no attachments
	err := gpu.ValidateAttachments(nil, nil)
	test.ExpectSuccess(t, curated.Is(err, gpu.IncompleteFramebuffer))

	// mismatched size
	small := texture{w: 32, h: 32, format: gpu.RGB16F}
	err = gpu.ValidateAttachments([]gpu.Texture{pos, small}, nil)
	test.ExpectSuccess(t, curated.Is(err, gpu.IncompleteFramebuffer))
	err = gpu.ValidateAttachments([]gpu.Texture{pos}, texture{w: 32, h: 32, format: gpu.Depth24})
	test.ExpectSuccess(t, curated.Is(err, gpu.IncompleteFramebuffer))

	// wrong format for attachment point
	err = gpu.ValidateAttachments([]gpu.Texture{dep}, nil)
	test.ExpectSuccess(t, curated.Is(err, gpu.IncompleteFramebuffer))
	err = gpu.ValidateAttachments([]gpu.Texture{pos}, nrm)
	test.ExpectSuccess(t, curated.Is(err, gpu.IncompleteFramebuffer))

	// too many
	many := make([]gpu.Texture, gpu.MaxColorAttachments+1)
	for i := range many {
		many[i] = pos
	}
	err = gpu.ValidateAttachments(many, nil)
	test.ExpectSuccess(t, curated.Is(err, gpu.IncompleteFramebuffer))
}
