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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function.
//
// The pattern string used to create a curated error is retained and can be
// tested for with the Is() and Has() functions. For example:
//
//	const NotReady = "device not ready: %s"
//
//	e := curated.Errorf(NotReady, "framebuffer")
//	if curated.Is(e, NotReady) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs anywhere in
// the chain of curated errors:
//
//	f := curated.Errorf("fatal: %v", e)
//	if curated.Has(f, NotReady) {
//		fmt.Println("true")
//	}
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of
// chains as being composed of parts separated by the sub-string ': '.
// Wrapping an error in a pattern that repeats the prefix of the wrapped error
// therefore does not result in the prefix being printed twice:
//
//	e := curated.Errorf("gl32: %v", "incomplete framebuffer")
//	f := curated.Errorf("gl32: %v", e)
//	fmt.Println(f) // gl32: incomplete framebuffer
//
// Curated errors support the Unwrap() convention of the standard errors
// package. The first error found in the values list is returned.
package curated
