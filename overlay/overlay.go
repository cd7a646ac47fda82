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

package overlay

import (
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gbuffer/gpu/gl32"
	"github.com/jetsetilly/gbuffer/logger"
)

const logTag = "overlay"

// Size describes the dimensions of the window in screen coordinates and the
// dimensions of the default framebuffer in pixels. The two differ on high DPI
// displays.
type Size struct {
	WindowWidth  int32
	WindowHeight int32
	FBWidth      int32
	FBHeight     int32
}

// Overlay draws an imgui interface.
type Overlay struct {
	context *imgui.Context
	io      imgui.IO
	rnd     *renderer

	mouse   mouse
	visible bool
	last    time.Time
}

// New is the preferred method of initialisation for the Overlay type. The
// OpenGL context must be current.
func New(ctx *gl32.Context) (*Overlay, error) {
	ovl := &Overlay{
		context: imgui.CreateContext(nil),
		visible: true,
	}

	ovl.io = imgui.CurrentIO()

	// window positions are not saved between runs
	ovl.io.SetIniFilename("")

	ovl.io.Fonts().AddFontDefault()

	var err error
	ovl.rnd, err = newRenderer(ctx, ovl.io.Fonts())
	if err != nil {
		ovl.context.Destroy()
		return nil, err
	}

	logger.Logf(logger.Allow, logTag, "imgui %s", imgui.Version())

	return ovl, nil
}

// Destroy releases all resources used by the overlay.
func (ovl *Overlay) Destroy() {
	if ovl.rnd != nil {
		ovl.rnd.destroy()
		ovl.rnd = nil
	}
	if ovl.context != nil {
		ovl.context.Destroy()
		ovl.context = nil
	}
}

// HandleEvent forwards SDL mouse events to imgui. The Tab key toggles the
// visibility of the overlay.
func (ovl *Overlay) HandleEvent(ev sdl.Event) {
	if ovl.mouse.event(ev) {
		ovl.visible = !ovl.visible
	}
}

// Frame runs the draw function and renders the result. The draw function
// should only call imgui widget functions. Nothing is drawn if the overlay is
// not visible.
func (ovl *Overlay) Frame(sz Size, draw func()) {
	now := time.Now()
	delta := float32(now.Sub(ovl.last).Seconds())
	if ovl.last.IsZero() || delta <= 0 {
		delta = 1.0 / 60.0
	}
	ovl.last = now

	buttons, wheelX, wheelY := ovl.mouse.frame()

	if !ovl.visible {
		return
	}

	ovl.io.SetDisplaySize(imgui.Vec2{X: float32(sz.WindowWidth), Y: float32(sz.WindowHeight)})
	ovl.io.SetDeltaTime(delta)
	ovl.io.SetMousePosition(imgui.Vec2{X: ovl.mouse.x, Y: ovl.mouse.y})
	for i, b := range buttons {
		ovl.io.SetMouseButtonDown(i, b)
	}
	ovl.io.AddMouseWheelDelta(wheelX, wheelY)

	imgui.NewFrame()
	draw()
	imgui.Render()

	ovl.rnd.render(imgui.RenderedDrawData(),
		float32(sz.WindowWidth), float32(sz.WindowHeight),
		float32(sz.FBWidth), float32(sz.FBHeight))
}
