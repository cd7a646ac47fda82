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

package gbuffer

import "github.com/jetsetilly/gbuffer/gpu"

// Target is a read-only view of a render target. It can be bound for reading
// by a later rendering pass but cannot be destroyed, which remains the
// responsibility of the Manager.
type Target struct {
	Attachment Attachment
	tex        gpu.Texture
}

// ID returns the texture identifier in the graphics context.
func (t Target) ID() uint32 {
	return t.tex.ID()
}

// Width of the target in pixels.
func (t Target) Width() int32 {
	return t.tex.Width()
}

// Height of the target in pixels.
func (t Target) Height() int32 {
	return t.tex.Height()
}

// Format of the target.
func (t Target) Format() gpu.Format {
	return t.tex.Format()
}

// Targets is a list of render targets in attachment order.
type Targets []Target

// Lookup the target for the attachment. Returns false if there is no target
// for the attachment.
func (tgs Targets) Lookup(a Attachment) (Target, bool) {
	for _, t := range tgs {
		if t.Attachment == a {
			return t, true
		}
	}
	return Target{}, false
}

// Index returns the position of the attachment in the list. This is the color
// attachment number in the framebuffer. Returns -1 if there is no target for
// the attachment.
func (tgs Targets) Index(a Attachment) int {
	for i, t := range tgs {
		if t.Attachment == a {
			return i
		}
	}
	return -1
}
