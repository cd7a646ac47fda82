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

import (
	"github.com/jetsetilly/gbuffer/curated"
	"github.com/jetsetilly/gbuffer/gpu"
)

// Pass is an active geometry pass, returned by Manager.BeginGeometryPass().
// The Pass is the only way to render into the G-Buffer and is valid until
// End() is called.
type Pass struct {
	mgr   *Manager
	state gpu.State
	ended bool
}

// End the geometry pass, restoring the context state stored when the pass
// began. Calling End() more than once is not an error.
func (p *Pass) End() {
	if p.ended {
		return
	}
	p.ended = true
	p.mgr.endPass(p)
}

// Active returns true if End() has not been called.
func (p *Pass) Active() bool {
	return !p.ended
}

// Program returns the program in use for the pass.
func (p *Pass) Program() gpu.Program {
	return p.mgr.program
}

// Framebuffer returns the framebuffer bound for the pass.
func (p *Pass) Framebuffer() gpu.Framebuffer {
	return p.mgr.framebuffer
}

// Targets returns the render targets being written by the pass.
func (p *Pass) Targets() Targets {
	return p.mgr.readTargets()
}

// Width of the render targets.
func (p *Pass) Width() int32 {
	return p.mgr.width
}

// Height of the render targets.
func (p *Pass) Height() int32 {
	return p.mgr.height
}

// Clear every render target. Color targets are cleared to the ClearColor of
// the Config and the depth attachment to its maximum value.
func (p *Pass) Clear() error {
	if p.ended {
		return curated.Errorf(InvalidStateError, "clear after geometry pass has ended")
	}
	c := p.mgr.cfg.ClearColor
	p.mgr.ctx.Clear(c[0], c[1], c[2], c[3])
	return nil
}
