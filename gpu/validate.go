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
	"fmt"

	"github.com/jetsetilly/gbuffer/curated"
)

// MaxColorAttachments is the number of color attachments guaranteed by an
// OpenGL 3.2 context.
const MaxColorAttachments = 8

// ValidateTexture checks the arguments to Context.CreateTexture().
func ValidateTexture(width int32, height int32, format Format) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(InvalidDimensions, width, height)
	}
	if !format.Valid() {
		return curated.Errorf(UnsupportedFormat, format)
	}
	return nil
}

// ValidateAttachments checks the arguments to Context.CreateFramebuffer().
// All attachments must be the same size, color attachments must not have a
// depth format and the depth attachment must have a depth format.
func ValidateAttachments(color []Texture, depth Texture) error {
	if len(color) == 0 && depth == nil {
		return curated.Errorf(IncompleteFramebuffer, "no attachments")
	}
	if len(color) > MaxColorAttachments {
		return curated.Errorf(IncompleteFramebuffer, fmt.Sprintf("too many color attachments (%d)", len(color)))
	}

	var w, h int32
	sized := false

	check := func(t Texture) error {
		if !sized {
			w, h = t.Width(), t.Height()
			sized = true
			return nil
		}
		if t.Width() != w || t.Height() != h {
			return curated.Errorf(IncompleteFramebuffer,
				fmt.Sprintf("attachment size mismatch (%dx%d and %dx%d)", w, h, t.Width(), t.Height()))
		}
		return nil
	}

	for i, t := range color {
		if t == nil {
			return curated.Errorf(IncompleteFramebuffer, fmt.Sprintf("color attachment %d is nil", i))
		}
		if t.Format().IsDepth() {
			return curated.Errorf(IncompleteFramebuffer, fmt.Sprintf("color attachment %d has depth format %s", i, t.Format()))
		}
		if err := check(t); err != nil {
			return err
		}
	}

	if depth != nil {
		if !depth.Format().IsDepth() {
			return curated.Errorf(IncompleteFramebuffer, fmt.Sprintf("depth attachment has color format %s", depth.Format()))
		}
		if err := check(depth); err != nil {
			return err
		}
	}

	return nil
}
