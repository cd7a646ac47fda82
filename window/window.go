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

package window

import (
	"fmt"
	"runtime"

	"github.com/jetsetilly/gbuffer/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const logTag = "sdl"

// Window is an SDL window with an OpenGL context.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext

	// events are passed to the handler before being processed by Poll()
	handler func(sdl.Event)
}

// New is the preferred method of initialisation for the Window type. A hidden
// window is useful for running the OpenGL backend without showing anything.
func New(title string, width int32, height int32, hidden bool) (*Window, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attrs {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, logTag, "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI | sdl.WINDOW_RESIZABLE)
	if hidden {
		flags |= sdl.WINDOW_HIDDEN
	}

	win := &Window{}

	win.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	win.glContext, err = win.window.GLCreateContext()
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = win.window.GLMakeCurrent(win.glContext)
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf(logger.Allow, logTag, "using GL version %d.%d core", major, minor)

	err = sdl.GLSetSwapInterval(1)
	if err != nil {
		logger.Logf(logger.Allow, logTag, "GLSetSwapInterval(1): %v", err)
	}

	return win, nil
}

// Destroy the window and the OpenGL context. All objects created in the
// context should be destroyed before calling this function.
func (win *Window) Destroy() error {
	if win.glContext != nil {
		sdl.GLDeleteContext(win.glContext)
		win.glContext = nil
	}
	if win.window != nil {
		err := win.window.Destroy()
		if err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
		win.window = nil
	}
	sdl.Quit()
	return nil
}

// SetTitle changes the text in the window's title bar.
func (win *Window) SetTitle(title string) {
	win.window.SetTitle(title)
}

// DrawableSize returns the size of the window's default framebuffer in
// pixels. This can differ from the window size on high DPI displays.
func (win *Window) DrawableSize() (int32, int32) {
	return win.window.GLGetDrawableSize()
}

// Size returns the size of the window in screen coordinates. See
// DrawableSize() for the size in pixels.
func (win *Window) Size() (int32, int32) {
	return win.window.GetSize()
}

// SetEventHandler sets the function that is called by Poll() for every event.
// A nil handler removes the existing handler.
func (win *Window) SetEventHandler(handler func(sdl.Event)) {
	win.handler = handler
}

// Swap the front and back buffers.
func (win *Window) Swap() {
	win.window.GLSwap()
}

// Poll handles all pending window events. Returns true for quit if the window
// has been closed or the escape key pressed, and true for resized if the
// drawable size may have changed.
func (win *Window) Poll() (quit bool, resized bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if win.handler != nil {
			win.handler(event)
		}
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				quit = true
			}
		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
				resized = true
			case sdl.WINDOWEVENT_CLOSE:
				quit = true
			}
		}
	}
	return quit, resized
}
