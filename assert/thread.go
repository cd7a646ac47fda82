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

package assert

import "fmt"

// Failure panics with the supplied message if assertions are enabled.
func Failure(msg string) {
	if Enabled {
		panic(fmt.Sprintf("assertion failed: %s", msg))
	}
}

// Thread remembers the goroutine it was created in.
type Thread struct {
	id uint64
}

// NewThread is the preferred method of initialisation for the Thread type.
// The current goroutine is recorded only when assertions are enabled.
func NewThread() Thread {
	if !Enabled {
		return Thread{}
	}
	return Thread{id: GetGoRoutineID()}
}

// Check that the current goroutine is the goroutine that created the Thread.
// The tag is included in the failure message.
func (th Thread) Check(tag string) {
	if !Enabled {
		return
	}
	if id := GetGoRoutineID(); id != th.id {
		Failure(fmt.Sprintf("%s: called from goroutine %d, expected %d", tag, id, th.id))
	}
}
