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

package gpu

import (
	"strings"

	"github.com/jetsetilly/gbuffer/curated"
)

// Format is the pixel format of a Texture.
type Format int

// List of valid Format values.
const (
	FormatUndefined Format = iota
	RGB16F
	RGBA16F
	RGB32F
	RGBA32F
	RGBA8
	Depth24
	Depth32F
)

var formatNames = map[Format]string{
	RGB16F:   "RGB16F",
	RGBA16F:  "RGBA16F",
	RGB32F:   "RGB32F",
	RGBA32F:  "RGBA32F",
	RGBA8:    "RGBA8",
	Depth24:  "DEPTH24",
	Depth32F: "DEPTH32F",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "undefined"
}

// Valid returns true if the Format is one of the listed formats.
func (f Format) Valid() bool {
	_, ok := formatNames[f]
	return ok
}

// IsDepth returns true if the Format can be used as a depth attachment.
func (f Format) IsDepth() bool {
	return f == Depth24 || f == Depth32F
}

// BytesPerPixel returns the storage size of one pixel. Depth24 is assumed to
// be padded to four bytes.
func (f Format) BytesPerPixel() int {
	switch f {
	case RGB16F:
		return 6
	case RGBA16F:
		return 8
	case RGB32F:
		return 12
	case RGBA32F:
		return 16
	case RGBA8, Depth24, Depth32F:
		return 4
	}
	return 0
}

// ParseFormat returns the Format named by s. The comparison is case
// insensitive.
func ParseFormat(s string) (Format, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for f, n := range formatNames {
		if n == s {
			return f, nil
		}
	}
	return FormatUndefined, curated.Errorf(UnsupportedFormat, s)
}

// Capability is a context feature that can be enabled or disabled.
type Capability int

// List of valid Capability values.
const (
	DepthTest Capability = iota
	CullFace
	Blend
	ScissorTest
	NumCapabilities
)

func (c Capability) String() string {
	switch c {
	case DepthTest:
		return "depth test"
	case CullFace:
		return "cull face"
	case Blend:
		return "blend"
	case ScissorTest:
		return "scissor test"
	}
	return "unknown capability"
}
