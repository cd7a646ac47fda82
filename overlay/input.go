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
	"github.com/veandco/go-sdl2/sdl"
)

// number of mouse buttons forwarded to imgui.
const numButtons = 3

// mouse records the state of the mouse between frames. a button that is
// pressed and released between two frames is reported as held for one frame,
// otherwise imgui would never see the press.
type mouse struct {
	x, y    float32
	held    [numButtons]bool
	pressed [numButtons]bool
	wheelX  float32
	wheelY  float32
}

// buttonIndex converts an SDL mouse button to the imgui button index. Returns
// false for buttons that are not forwarded.
func buttonIndex(button uint8) (int, bool) {
	switch button {
	case sdl.BUTTON_LEFT:
		return 0, true
	case sdl.BUTTON_RIGHT:
		return 1, true
	case sdl.BUTTON_MIDDLE:
		return 2, true
	}
	return 0, false
}

// event updates the mouse state. returns true if the event toggles the
// visibility of the overlay.
func (m *mouse) event(ev sdl.Event) bool {
	switch ev := ev.(type) {
	case *sdl.MouseMotionEvent:
		m.x = float32(ev.X)
		m.y = float32(ev.Y)

	case *sdl.MouseButtonEvent:
		if i, ok := buttonIndex(ev.Button); ok {
			if ev.Type == sdl.MOUSEBUTTONDOWN {
				m.held[i] = true
				m.pressed[i] = true
			} else {
				m.held[i] = false
			}
		}

	case *sdl.MouseWheelEvent:
		m.wheelX += float32(ev.X)
		m.wheelY += float32(ev.Y)

	case *sdl.KeyboardEvent:
		return ev.Type == sdl.KEYDOWN && ev.Repeat == 0 && ev.Keysym.Sym == sdl.K_TAB
	}

	return false
}

// frame returns the button state for the next frame and resets the pressed
// latch and wheel movement.
func (m *mouse) frame() (buttons [numButtons]bool, wheelX float32, wheelY float32) {
	for i := range buttons {
		buttons[i] = m.held[i] || m.pressed[i]
		m.pressed[i] = false
	}
	wheelX, wheelY = m.wheelX, m.wheelY
	m.wheelX, m.wheelY = 0, 0
	return buttons, wheelX, wheelY
}
