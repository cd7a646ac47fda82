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
	"fmt"
	"strings"
)

// Stats is a summary of the Manager's resources.
type Stats struct {
	State      State
	Width      int32
	Height     int32
	Targets    int
	Depth      bool
	Generation int
	Passes     int

	// estimated size of the render targets, including the depth attachment
	Bytes int
}

// Stats returns a summary of the Manager's resources.
func (mgr *Manager) Stats() Stats {
	s := Stats{
		State:      mgr.state,
		Width:      mgr.width,
		Height:     mgr.height,
		Targets:    len(mgr.targets),
		Depth:      mgr.depth != nil,
		Generation: mgr.generation,
		Passes:     mgr.passes,
	}

	px := int(mgr.width) * int(mgr.height)
	for _, t := range mgr.targets {
		s.Bytes += px * t.Format().BytesPerPixel()
	}
	if mgr.depth != nil {
		s.Bytes += px * mgr.depth.Format().BytesPerPixel()
	}

	return s
}

func (s Stats) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("state: %s\n", s.State))
	b.WriteString(fmt.Sprintf("dimensions: %dx%d\n", s.Width, s.Height))
	b.WriteString(fmt.Sprintf("targets: %d", s.Targets))
	if s.Depth {
		b.WriteString(" + depth")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("memory: %.2fMB\n", float64(s.Bytes)/1048576))
	b.WriteString(fmt.Sprintf("generation: %d\n", s.Generation))
	b.WriteString(fmt.Sprintf("passes: %d\n", s.Passes))
	return b.String()
}
