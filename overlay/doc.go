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

// Package overlay draws a Dear ImGui interface over the default framebuffer
// of an OpenGL 3.2 context. Underlying functionality provided by
// "github.com/inkyblackness/imgui-go/v4".
//
// The overlay is created once the OpenGL context is current and is fed SDL
// events with HandleEvent(). Each frame, after everything else has been drawn
// to the default framebuffer, call Frame() with a function that calls the
// imgui widget functions:
//
//	ovl.Frame(size, func() {
//		imgui.Text("hello")
//	})
//
// The Tab key toggles the visibility of the overlay. All functions must be
// called from the thread that owns the OpenGL context.
package overlay
