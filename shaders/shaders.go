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

package shaders

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/jetsetilly/gbuffer/curated"
)

// Error patterns returned by Provider implementations.
const (
	NotFound    = "shaders: %s: not found"
	SourceError = "shaders: %s: %v"
)

// Source is the GLSL source for the vertex and fragment stages of a program.
type Source struct {
	Name     string
	Vertex   string
	Fragment string
}

// Provider implementations return the Source of named programs.
type Provider interface {
	// returns an error matching the NotFound pattern if the provider has no
	// program of that name
	Source(name string) (Source, error)

	// list of programs known to the provider, sorted by name
	Names() []string
}

//go:embed *.vert *.frag
var embedded embed.FS

// filesystem loads programs from a fs.FS.
type filesystem struct {
	fsys fs.FS
}

// Embedded returns a Provider for the programs compiled into the binary.
func Embedded() Provider {
	return filesystem{fsys: embedded}
}

// Dir returns a Provider for programs stored in the directory at path.
func Dir(path string) Provider {
	return filesystem{fsys: os.DirFS(path)}
}

func (p filesystem) read(name string, ext string) (string, error) {
	b, err := fs.ReadFile(p.fsys, name+ext)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", curated.Errorf(NotFound, name)
		}
		return "", curated.Errorf(SourceError, name, err)
	}
	return string(b), nil
}

// Source implements the Provider interface.
func (p filesystem) Source(name string) (Source, error) {
	if !fs.ValidPath(name) || strings.Contains(name, "/") {
		return Source{}, curated.Errorf(SourceError, name, "invalid program name")
	}

	src := Source{Name: name}

	var err error
	src.Vertex, err = p.read(name, ".vert")
	if err != nil {
		return Source{}, err
	}
	src.Fragment, err = p.read(name, ".frag")
	if err != nil {
		if curated.Is(err, NotFound) {
			return Source{}, curated.Errorf(SourceError, name, "vertex stage has no fragment stage")
		}
		return Source{}, err
	}

	return src, nil
}

// Names implements the Provider interface. Only programs with both stages
// are listed.
func (p filesystem) Names() []string {
	vert, err := fs.Glob(p.fsys, "*.vert")
	if err != nil {
		return nil
	}

	var names []string
	for _, v := range vert {
		n := strings.TrimSuffix(path.Base(v), ".vert")
		if _, err := fs.Stat(p.fsys, n+".frag"); err == nil {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

type chain []Provider

// Chain returns a Provider that asks each provider in turn for a program. The
// first provider that knows the program supplies it.
func Chain(providers ...Provider) Provider {
	return chain(providers)
}

// Source implements the Provider interface.
func (c chain) Source(name string) (Source, error) {
	for _, p := range c {
		src, err := p.Source(name)
		if err == nil {
			return src, nil
		}
		if !curated.Is(err, NotFound) {
			return Source{}, err
		}
	}
	return Source{}, curated.Errorf(NotFound, name)
}

// Names implements the Provider interface.
func (c chain) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range c {
		for _, n := range p.Names() {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	sort.Strings(names)
	return names
}
