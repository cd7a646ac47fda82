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

	"github.com/jetsetilly/gbuffer/curated"
	"github.com/jetsetilly/gbuffer/gpu"
)

// Attachment identifies the content of a render target.
type Attachment int

// List of valid Attachment values.
const (
	Position Attachment = iota
	Normal
	Albedo
	Depth
	numAttachments
)

var attachmentNames = [numAttachments]string{"position", "normal", "albedo", "depth"}

func (a Attachment) String() string {
	if a < 0 || a >= numAttachments {
		return "unknown"
	}
	return attachmentNames[a]
}

// ParseAttachment returns the Attachment with the name s.
func ParseAttachment(s string) (Attachment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range attachmentNames {
		if n == s {
			return Attachment(i), nil
		}
	}
	return 0, curated.Errorf("gbuffer: unknown attachment (%s)", s)
}

// TargetConfig describes one color render target.
type TargetConfig struct {
	Attachment Attachment
	Format     gpu.Format
}

func (t TargetConfig) String() string {
	return fmt.Sprintf("%s (%s)", t.Attachment, t.Format)
}

// Config describes the render targets and the shader program of a Manager.
type Config struct {
	// color targets in attachment order. the Nth target is written by the
	// Nth output of the fragment shader
	Targets []TargetConfig

	// whether the framebuffer has a depth attachment and its format
	Depth       bool
	DepthFormat gpu.Format

	// name of the geometry pass program in the shaders.Provider
	Shader string

	// RGBA value used by Pass.Clear() for the color targets
	ClearColor [4]float32
}

// DefaultConfig returns a Config with position and normal targets in RGB16F
// format and a DEPTH24 depth attachment.
func DefaultConfig() Config {
	return Config{
		Targets: []TargetConfig{
			{Attachment: Position, Format: gpu.RGB16F},
			{Attachment: Normal, Format: gpu.RGB16F},
		},
		Depth:       true,
		DepthFormat: gpu.Depth24,
		Shader:      "gbuffer",
	}
}

func (cfg Config) String() string {
	s := strings.Builder{}
	for i, t := range cfg.Targets {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(t.String())
	}
	if cfg.Depth {
		s.WriteString(fmt.Sprintf(", depth (%s)", cfg.DepthFormat))
	}
	s.WriteString(fmt.Sprintf(" with %s shader", cfg.Shader))
	return s.String()
}

// validate checks that the targets described by the Config can be created.
func (cfg Config) validate() error {
	if len(cfg.Targets) == 0 {
		return fmt.Errorf("no color targets")
	}
	if len(cfg.Targets) > gpu.MaxColorAttachments {
		return fmt.Errorf("too many color targets (%d)", len(cfg.Targets))
	}

	var seen [numAttachments]bool
	for _, t := range cfg.Targets {
		if t.Attachment < 0 || t.Attachment >= numAttachments {
			return fmt.Errorf("unknown attachment (%d)", t.Attachment)
		}
		if t.Attachment == Depth {
			return fmt.Errorf("depth cannot be a color target")
		}
		if seen[t.Attachment] {
			return fmt.Errorf("duplicate %s target", t.Attachment)
		}
		seen[t.Attachment] = true

		if !t.Format.Valid() || t.Format.IsDepth() {
			return curated.Errorf(gpu.UnsupportedFormat, fmt.Sprintf("%s for %s target", t.Format, t.Attachment))
		}
	}

	if cfg.Depth && !cfg.DepthFormat.IsDepth() {
		return curated.Errorf(gpu.UnsupportedFormat, fmt.Sprintf("%s for depth attachment", cfg.DepthFormat))
	}

	if strings.TrimSpace(cfg.Shader) == "" {
		return fmt.Errorf("no shader program")
	}

	return nil
}
