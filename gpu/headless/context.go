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

package headless

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gbuffer/curated"
	"github.com/jetsetilly/gbuffer/gpu"
	"github.com/jetsetilly/gbuffer/logger"
)

const logTag = "headless"

// Kind identifies the type of an object created by the Context.
type Kind int

// List of valid Kind values.
const (
	Texture Kind = iota
	Framebuffer
	Program
	numKinds
)

func (k Kind) String() string {
	switch k {
	case Texture:
		return "texture"
	case Framebuffer:
		return "framebuffer"
	case Program:
		return "program"
	}
	return "unknown"
}

// Context is the headless implementation of gpu.Context.
type Context struct {
	width  int32
	height int32

	nextID  uint32
	live    map[uint32]Kind
	created [numKinds]int
	fail    [numKinds]int

	framebuffer uint32
	program     uint32
	viewport    [4]int32
	clearColor  [4]float32
	caps        [gpu.NumCapabilities]bool

	// number of calls to Clear()
	clears int

	// maximum width or height of a texture. zero means no limit
	maxSize int32
}

// NewContext is the preferred method of initialisation for the Context type.
// The width and height describe the default framebuffer and are used for the
// initial viewport.
func NewContext(width int32, height int32) *Context {
	return &Context{
		width:    width,
		height:   height,
		live:     make(map[uint32]Kind),
		viewport: [4]int32{0, 0, width, height},
	}
}

func (ctx *Context) String() string {
	return fmt.Sprintf("headless %dx%d: %d textures, %d framebuffers, %d programs",
		ctx.width, ctx.height, ctx.Live(Texture), ctx.Live(Framebuffer), ctx.Live(Program))
}

// SetMaxTextureSize limits the width and height of textures that can be
// created. A value of zero removes the limit.
func (ctx *Context) SetMaxTextureSize(size int32) {
	ctx.maxSize = size
}

// FailNext causes the next n creation requests for the kind of object to fail.
func (ctx *Context) FailNext(kind Kind, n int) {
	ctx.fail[kind] = n
}

func (ctx *Context) injectedFailure(kind Kind) error {
	if ctx.fail[kind] <= 0 {
		return nil
	}
	ctx.fail[kind]--
	logger.Logf(logger.Allow, logTag, "injected failure creating %s", kind)
	return curated.Errorf(gpu.ResourceExhausted, kind, "injected failure")
}

func (ctx *Context) allocate(kind Kind) uint32 {
	ctx.nextID++
	ctx.live[ctx.nextID] = kind
	ctx.created[kind]++
	return ctx.nextID
}

func (ctx *Context) release(id uint32) {
	delete(ctx.live, id)
	if ctx.framebuffer == id {
		ctx.framebuffer = 0
	}
	if ctx.program == id {
		ctx.program = 0
	}
}

// Live returns the number of objects of the kind that have been created and
// not yet destroyed.
func (ctx *Context) Live(kind Kind) int {
	n := 0
	for _, k := range ctx.live {
		if k == kind {
			n++
		}
	}
	return n
}

// LiveTotal returns the number of objects of any kind that have been created
// and not yet destroyed.
func (ctx *Context) LiveTotal() int {
	return len(ctx.live)
}

// IsLive returns true if the object has been created and not destroyed.
func (ctx *Context) IsLive(o gpu.Object) bool {
	if o == nil {
		return false
	}
	_, ok := ctx.live[o.ID()]
	return ok
}

// Created returns the number of objects of the kind that have ever been
// created.
func (ctx *Context) Created(kind Kind) int {
	return ctx.created[kind]
}

// BoundFramebuffer returns the ID of the bound framebuffer. Zero indicates the
// default framebuffer.
func (ctx *Context) BoundFramebuffer() uint32 {
	return ctx.framebuffer
}

// CurrentProgram returns the ID of the program in use. Zero indicates that no
// program is in use.
func (ctx *Context) CurrentProgram() uint32 {
	return ctx.program
}

// CurrentViewport returns the current viewport as x, y, width and height.
func (ctx *Context) CurrentViewport() [4]int32 {
	return ctx.viewport
}

// IsEnabled returns true if the capability is enabled.
func (ctx *Context) IsEnabled(c gpu.Capability) bool {
	return ctx.caps[c]
}

// ClearColor returns the color given to the most recent call to Clear().
func (ctx *Context) ClearColor() [4]float32 {
	return ctx.clearColor
}

// Clears returns the number of times Clear() has been called.
func (ctx *Context) Clears() int {
	return ctx.clears
}

// CreateTexture implements the gpu.Context interface.
func (ctx *Context) CreateTexture(width int32, height int32, format gpu.Format) (gpu.Texture, error) {
	if err := gpu.ValidateTexture(width, height, format); err != nil {
		return nil, err
	}
	if ctx.maxSize > 0 && (width > ctx.maxSize || height > ctx.maxSize) {
		return nil, curated.Errorf(gpu.ResourceExhausted, Texture,
			fmt.Sprintf("%dx%d exceeds maximum size of %d", width, height, ctx.maxSize))
	}
	if err := ctx.injectedFailure(Texture); err != nil {
		return nil, err
	}

	return &texture{
		ctx:    ctx,
		id:     ctx.allocate(Texture),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// CreateFramebuffer implements the gpu.Context interface.
func (ctx *Context) CreateFramebuffer(color []gpu.Texture, depth gpu.Texture) (gpu.Framebuffer, error) {
	if err := gpu.ValidateAttachments(color, depth); err != nil {
		return nil, err
	}
	for i, t := range color {
		if !ctx.IsLive(t) {
			return nil, curated.Errorf(gpu.IncompleteFramebuffer, fmt.Sprintf("color attachment %d has been destroyed", i))
		}
	}
	if depth != nil && !ctx.IsLive(depth) {
		return nil, curated.Errorf(gpu.IncompleteFramebuffer, "depth attachment has been destroyed")
	}
	if err := ctx.injectedFailure(Framebuffer); err != nil {
		return nil, err
	}

	fb := &framebuffer{
		ctx:   ctx,
		id:    ctx.allocate(Framebuffer),
		color: append([]gpu.Texture{}, color...),
		depth: depth,
	}
	if len(color) > 0 {
		fb.width, fb.height = color[0].Width(), color[0].Height()
	} else {
		fb.width, fb.height = depth.Width(), depth.Height()
	}

	return fb, nil
}

func compile(name string, stage string, source string) error {
	if strings.TrimSpace(source) == "" {
		return curated.Errorf(gpu.ShaderCompile, name, stage, "empty source")
	}
	for _, l := range strings.Split(source, "\n") {
		l = strings.TrimSpace(l)
		if strings.HasPrefix(l, "#error") {
			return curated.Errorf(gpu.ShaderCompile, name, stage, strings.TrimSpace(strings.TrimPrefix(l, "#error")))
		}
	}
	return nil
}

// CreateProgram implements the gpu.Context interface.
func (ctx *Context) CreateProgram(name string, vertex string, fragment string) (gpu.Program, error) {
	if err := compile(name, "vertex", vertex); err != nil {
		return nil, err
	}
	if err := compile(name, "fragment", fragment); err != nil {
		return nil, err
	}
	if !strings.Contains(vertex, "main") {
		return nil, curated.Errorf(gpu.ShaderLink, name, "vertex shader has no main()")
	}
	if !strings.Contains(fragment, "main") {
		return nil, curated.Errorf(gpu.ShaderLink, name, "fragment shader has no main()")
	}
	if err := ctx.injectedFailure(Program); err != nil {
		return nil, err
	}

	return &program{
		ctx:  ctx,
		id:   ctx.allocate(Program),
		name: name,
	}, nil
}

// BindFramebuffer implements the gpu.Context interface. Binding a destroyed
// framebuffer panics.
func (ctx *Context) BindFramebuffer(fb gpu.Framebuffer) {
	if fb == nil {
		ctx.framebuffer = 0
		return
	}
	if !ctx.IsLive(fb) {
		panic(fmt.Sprintf("headless: binding framebuffer (%d) that is not live", fb.ID()))
	}
	ctx.framebuffer = fb.ID()
}

// Viewport implements the gpu.Context interface.
func (ctx *Context) Viewport(x int32, y int32, width int32, height int32) {
	ctx.viewport = [4]int32{x, y, width, height}
}

// UseProgram implements the gpu.Context interface. Using a destroyed program
// panics.
func (ctx *Context) UseProgram(prg gpu.Program) {
	if prg == nil {
		ctx.program = 0
		return
	}
	if !ctx.IsLive(prg) {
		panic(fmt.Sprintf("headless: using program (%d) that is not live", prg.ID()))
	}
	ctx.program = prg.ID()
}

// Enable implements the gpu.Context interface.
func (ctx *Context) Enable(c gpu.Capability) {
	ctx.caps[c] = true
}

// Disable implements the gpu.Context interface.
func (ctx *Context) Disable(c gpu.Capability) {
	ctx.caps[c] = false
}

// Clear implements the gpu.Context interface.
func (ctx *Context) Clear(r float32, g float32, b float32, a float32) {
	ctx.clearColor = [4]float32{r, g, b, a}
	ctx.clears++
}
