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


package test

import "strings"

// CompareWriter captures everything written to it so that output can be
// checked against expected text. The zero value is ready to use.
type CompareWriter struct {
	buffer strings.Builder
}

func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.buffer.Write(p)
}

// Clear discards captured output.
func (cw *CompareWriter) Clear() {
	cw.buffer.Reset()
}

// Compare returns true if the captured output is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.buffer.String() == s
}

// Contains returns true if s appears anywhere in the captured output.
func (cw *CompareWriter) Contains(s string) bool {
	return strings.Contains(cw.buffer.String(), s)
}

// Lines returns the captured output split into lines. A trailing newline
// does not produce an empty final line.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(cw.buffer.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (cw *CompareWriter) String() string {
	return cw.buffer.String()
}
