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

package memdump

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gbuffer/logger"
)

// Write the object graph of the values to w. Values should be pointers so
// that the graph shows shared references. Nil values are ignored.
func Write(w io.Writer, values ...any) error {
	var roots []any
	for _, v := range values {
		if v != nil {
			roots = append(roots, v)
		}
	}
	if len(roots) == 0 {
		return fmt.Errorf("memdump: nothing to write")
	}

	memviz.Map(w, roots...)

	return nil
}

// WriteFile is the same as Write() but the graph is written to the named file.
// Any existing file is overwritten.
func WriteFile(filename string, values ...any) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memdump: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("memdump: %w", err)
		}
	}()

	if err := Write(f, values...); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "memdump", "written to %s", filename)

	return nil
}
