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

package shaders_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gbuffer/curated"
	"github.com/jetsetilly/gbuffer/shaders"
	"github.com/jetsetilly/gbuffer/test"
)

func TestEmbedded(t *testing.T) {
	p := shaders.Embedded()

	src, err := p.Source("gbuffer")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, src.Name, "gbuffer")
	test.ExpectSuccess(t, strings.HasPrefix(src.Vertex, "#version 150 core"))
	test.ExpectSuccess(t, strings.Contains(src.Fragment, "out vec3 gPosition;"))
	test.ExpectSuccess(t, strings.Contains(src.Fragment, "out vec3 gNormal;"))

	_, err = p.Source("sphere")
	test.ExpectSuccess(t, err)

	_, err = p.Source("phong")
	test.ExpectSuccess(t, curated.Is(err, shaders.NotFound))

	_, err = p.Source("../gbuffer")
	test.ExpectSuccess(t, curated.Is(err, shaders.SourceError))

	names := p.Names()
	test.DemandEquality(t, len(names), 2)
	test.ExpectEquality(t, names[0], "gbuffer")
	test.ExpectEquality(t, names[1], "sphere")
}

func writeProgram(t *testing.T, dir string, name string, vert string, frag string) {
	t.Helper()
	if vert != "" {
		test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, name+".vert"), []byte(vert), 0o600))
	}
	if frag != "" {
		test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, name+".frag"), []byte(frag), 0o600))
	}
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	writeProgram(t, dir, "gbuffer", "vertex", "fragment")
	writeProgram(t, dir, "partial", "vertex", "")

	p := shaders.Dir(dir)

	src, err := p.Source("gbuffer")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, src.Vertex, "vertex")
	test.ExpectEquality(t, src.Fragment, "fragment")

	// a vertex stage without a fragment stage is an error and not a missing
	// program
	_, err = p.Source("partial")
	test.ExpectSuccess(t, curated.Is(err, shaders.SourceError))

	_, err = p.Source("missing")
	test.ExpectSuccess(t, curated.Is(err, shaders.NotFound))

	names := p.Names()
	test.DemandEquality(t, len(names), 1)
	test.ExpectEquality(t, names[0], "gbuffer")
}

func TestChain(t *testing.T) {
	dir := t.TempDir()
	writeProgram(t, dir, "gbuffer", "vertex", "fragment")
	writeProgram(t, dir, "extra", "vertex", "fragment")

	p := shaders.Chain(shaders.Dir(dir), shaders.Embedded())

	// program on disk replaces embedded program
	src, err := p.Source("gbuffer")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, src.Vertex, "vertex")

	// embedded program not on disk
	src, err = p.Source("sphere")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(src.Vertex, "gl_VertexID"))

	_, err = p.Source("missing")
	test.ExpectSuccess(t, curated.Is(err, shaders.NotFound))

	// errors other than not found stop the search
	writeProgram(t, dir, "sphere", "vertex", "")
	_, err = p.Source("sphere")
	test.ExpectSuccess(t, curated.Is(err, shaders.SourceError))

	names := p.Names()
	test.DemandEquality(t, len(names), 3)
	test.ExpectEquality(t, names[0], "extra")
	test.ExpectEquality(t, names[1], "gbuffer")
	test.ExpectEquality(t, names[2], "sphere")
}
