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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test failure but allow the test to
// continue. The Demand*() functions are fatal to the test and should be used
// when subsequent checks depend on the value being correct. For example,
// testing that the lengths of two slices are equal before iterating over them
// in unison.
//
// It is worth describing how the ExpectSuccess() and ExpectFailure() functions
// handle the nil type because it is not obvious. The nil type is considered a
// success and consequently will cause ExpectFailure() to fail and
// ExpectSuccess() to succeed. This is because of how errors usually work (nil
// to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The CompareWriter.Compare() function can then be used
// to test for equality.
package test
