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

// Package memdump writes the object graph of Go values in the dot format
// understood by Graphviz. Underlying functionality provided by
// "github.com/bradleyjkemp/memviz".
//
// It is useful for confirming that released GPU objects are no longer
// referenced. For example, after a headless run:
//
//	f, _ := os.Create("gbuffer.dot")
//	memdump.Write(f, mgr)
//
// And then:
//
//	dot -Tsvg gbuffer.dot > gbuffer.svg
package memdump
