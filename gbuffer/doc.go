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

// Package gbuffer manages the render targets of the geometry pass of a
// deferred renderer. A Manager owns a fixed set of render targets, a single
// framebuffer that attaches all of them, and the shader program used to
// write to them.
//
// The Manager is a state machine:
//
//	Uninitialized --Initialize()--> Ready --BeginGeometryPass()--> InPass
//	      ^                           |  ^                            |
//	      |                           |  +---------Pass.End()---------+
//	      +---------Destroy()---------+
//
// Initialize() and Resize() are valid from the Uninitialized and Ready states.
// The targets and framebuffer are created once for a resolution and are
// reused by every geometry pass at that resolution. Changing the resolution
// releases the old targets and framebuffer before the new ones are created.
// The shader program is loaded by the first successful Initialize() and is
// kept until Destroy().
//
// Rendering into the targets is only possible through the Pass returned by
// BeginGeometryPass(). The Pass binds the framebuffer, viewport and program,
// and enables depth testing and face culling. Pass.End() restores the context
// state as it was before the pass began:
//
//	err := mgr.GeometryPass(func(p *gbuffer.Pass) error {
//		p.Clear()
//		draw()
//		return nil
//	})
//
// The targets written by the geometry pass are retrieved with ReadTargets()
// for use by a later lighting pass. ReadTargets() is only valid once a pass
// has completed at the current resolution.
//
// A Manager must only be used from the goroutine that owns the graphics
// context. When built with the "assertions" build tag, calls from other
// goroutines and use before initialisation cause a panic.
package gbuffer
