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

// Error patterns returned by Context implementations. Test for them with
// curated.Is() or curated.Has().
const (
	InvalidDimensions     = "gpu: invalid dimensions (%dx%d)"
	UnsupportedFormat     = "gpu: unsupported format (%v)"
	IncompleteFramebuffer = "gpu: incomplete framebuffer: %v"
	ShaderCompile         = "gpu: %s: compile %s shader: %s"
	ShaderLink            = "gpu: %s: link: %s"
	ResourceExhausted     = "gpu: cannot create %s: %v"
)
