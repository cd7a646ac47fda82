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

// Object is implemented by everything created by a Context.
type Object interface {
	// the identifier of the object in the underlying context. zero is never
	// a valid identifier
	ID() uint32

	// release the object. calling Destroy() more than once is not an error
	Destroy()
}

// Texture is an image that can be attached to a Framebuffer and later bound
// for reading.
type Texture interface {
	Object
	Width() int32
	Height() int32
	Format() Format
}

// Framebuffer aggregates a fixed collection of textures as the destination of
// a rendering pass.
type Framebuffer interface {
	Object
	Width() int32
	Height() int32

	// the color attachments in attachment order. attachment N is the Nth
	// fragment shader output
	ColorAttachments() []Texture

	// the depth attachment. nil if there is no depth attachment
	DepthAttachment() Texture
}

// Program is a linked vertex and fragment shader pair.
type Program interface {
	Object
	Name() string
}

// State is a snapshot of context state returned by Context.StoreState().
type State interface {
	Restore()
}

// Context is the graphics context capability provider.
type Context interface {
	CreateTexture(width int32, height int32, format Format) (Texture, error)

	// create a framebuffer attaching the textures in the order supplied. the
	// depth texture can be nil
	CreateFramebuffer(color []Texture, depth Texture) (Framebuffer, error)

	CreateProgram(name string, vertex string, fragment string) (Program, error)

	StoreState() State

	// bind framebuffer as the rendering destination. a nil framebuffer binds
	// the default framebuffer
	BindFramebuffer(fb Framebuffer)

	Viewport(x int32, y int32, width int32, height int32)

	// use program for subsequent drawing. a nil program unbinds the current
	// program
	UseProgram(prg Program)

	Enable(c Capability)
	Disable(c Capability)

	// clear color and depth buffers of the bound framebuffer
	Clear(r float32, g float32, b float32, a float32)
}
