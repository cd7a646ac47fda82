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

// Package shaders provides the GLSL source of shader programs by name. A
// program named "gbuffer" is made of two files: "gbuffer.vert" for the vertex
// stage and "gbuffer.frag" for the fragment stage.
//
// The following programs are embedded in the binary and available through the
// Embedded() provider:
//
//	gbuffer: geometry pass for meshes with position, normal and UV attributes
//	sphere: geometry pass that ray-casts a sphere over the whole viewport
//
// Programs on disk can be loaded with Dir(). Providers can be combined with
// Chain(), so that programs on disk can replace the embedded programs:
//
//	p := shaders.Chain(shaders.Dir(path), shaders.Embedded())
package shaders
