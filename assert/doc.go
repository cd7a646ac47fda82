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

// Package assert contains debugging helpers that are only active when the
// program is built with the "assertions" build tag:
//
//	go build -tags assertions
//
// The Failure() function panics with the supplied message when assertions are
// enabled and does nothing otherwise. It is used for conditions that are
// programming errors, which in a release build are returned as errors instead.
//
// The Thread type records the goroutine that created it. The Check() function
// will call Failure() if it is called from a different goroutine. This is
// useful for types that must only ever be used from one thread, such as types
// that issue commands to an OpenGL context.
package assert
