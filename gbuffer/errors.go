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

package gbuffer

import (
	"github.com/jetsetilly/gbuffer/assert"
	"github.com/jetsetilly/gbuffer/curated"
)

// Error patterns returned by the Manager. Test for them with curated.Is().
// Errors from the gpu and shaders packages are wrapped by
// InitializationError and can be found with curated.Has().
const (
	// resource creation failed. the Manager is left Uninitialized unless the
	// arguments were rejected before any resources were released
	InitializationError = "gbuffer: initialization: %v"

	// an operation that requires initialised resources was called before
	// Initialize()
	NotInitializedError = "gbuffer: not initialized: %s"

	// an operation was called in the wrong state. for example, beginning a
	// pass while a pass is already active
	InvalidStateError = "gbuffer: invalid state: %s"
)

// notInitialized creates a NotInitializedError. calling an operation before
// initialisation is a programming error so it is also an assertion failure.
func notInitialized(op string) error {
	err := curated.Errorf(NotInitializedError, op)
	assert.Failure(err.Error())
	return err
}
