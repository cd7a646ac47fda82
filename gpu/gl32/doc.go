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

// Package gl32 implements the gpu.Context interface for an OpenGL 3.2 core
// profile context. The context must have been created and made current, for
// example by the window package, before Init() is called.
//
// Fragment shader outputs are bound to draw buffers in the order they are
// declared in the fragment shader source. The first "out" variable is written
// to the first color attachment of the bound framebuffer, the second to the
// second color attachment, and so on.
package gl32
