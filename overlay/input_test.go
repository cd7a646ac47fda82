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
	"testing"

	"github.com/jetsetilly/gbuffer/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestMouseClickBetweenFrames(t *testing.T) {
	var m mouse

	m.event(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT})
	m.event(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT})

	// press is reported for one frame only
	b, _, _ := m.frame()
	test.ExpectSuccess(t, b[0])
	b, _, _ = m.frame()
	test.ExpectFailure(t, b[0])
}

func TestMouseHeld(t *testing.T) {
	var m mouse

	m.event(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT})
	b, _, _ := m.frame()
	test.ExpectSuccess(t, b[1])
	b, _, _ = m.frame()
	test.ExpectSuccess(t, b[1])

	m.event(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT})
	b, _, _ = m.frame()
	test.ExpectFailure(t, b[1])

	// unforwarded button
	m.event(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_X1})
	b, _, _ = m.frame()
	test.ExpectFailure(t, b[0] || b[1] || b[2])
}

func TestMouseMotionAndWheel(t *testing.T) {
	var m mouse

	m.event(&sdl.MouseMotionEvent{X: 10, Y: 20})
	test.ExpectEquality(t, m.x, float32(10))
	test.ExpectEquality(t, m.y, float32(20))

	m.event(&sdl.MouseWheelEvent{X: 0, Y: 1})
	m.event(&sdl.MouseWheelEvent{X: 0, Y: 2})
	_, wx, wy := m.frame()
	test.ExpectEquality(t, wx, float32(0))
	test.ExpectEquality(t, wy, float32(3))

	_, _, wy = m.frame()
	test.ExpectEquality(t, wy, float32(0))
}

func TestToggle(t *testing.T) {
	var m mouse

	tab := &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_TAB}}
	test.ExpectSuccess(t, m.event(tab))

	tab.Repeat = 1
	test.ExpectFailure(t, m.event(tab))

	test.ExpectFailure(t, m.event(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_TAB}}))
	test.ExpectFailure(t, m.event(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_a}}))
}
