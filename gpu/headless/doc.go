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

// Package headless implements the gpu.Context interface without a GPU. No
// pixel data is ever stored. Instead the Context keeps account of the objects
// that have been created and destroyed, and of the state that has been
// changed, so that the behaviour of render target management can be checked
// on machines without a display.
//
// The rules applied to texture and framebuffer creation are the same as those
// applied by the gl32 package before any OpenGL call is made. In addition,
// a framebuffer cannot be created with an attachment that has been destroyed.
//
// Shader programs are "compiled" by checking that both sources are non-empty
// and contain an entry point. A source containing a #error directive fails to
// compile with the message following the directive.
//
// Object creation can be made to fail with FailNext(). This is useful for
// testing how callers recover from resource exhaustion.
package headless
