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
	"strconv"
	"strings"
	"sync"

	"github.com/jetsetilly/gbuffer/gpu"
	"github.com/jetsetilly/gbuffer/prefs"
	"github.com/jetsetilly/gbuffer/resources"
)

// Preferences defines and collates the preference values used to configure a
// Manager. Use Config() to create a Config from the current values.
type Preferences struct {
	dsk *prefs.Disk

	// include an albedo color target after the position and normal targets
	Albedo prefs.Bool

	// include a depth attachment
	Depth prefs.Bool

	// formats of the targets. see gpu.ParseFormat() for valid values
	PositionFormat prefs.String
	NormalFormat   prefs.String
	AlbedoFormat   prefs.String
	DepthFormat    prefs.String

	// name of the geometry pass program
	Shader prefs.String

	// size of the render targets relative to the size of the display. not
	// used by the Manager but by the application deciding the dimensions to
	// pass to Initialize() and Resize()
	RenderScale prefs.Float

	// largest width or height returned by Scale()
	MaxSize prefs.Int

	// color that Pass.Clear() clears the color targets to. the value is a
	// string of four comma separated numbers between 0 and 1
	ClearColor *prefs.Generic

	crit       sync.Mutex
	clearColor [4]float32
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences but the values are
// loaded from the named preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.ClearColor = prefs.NewGeneric(p.setClearColor, p.getClearColor)
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("gbuffer.albedo", &p.Albedo)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gbuffer.depth", &p.Depth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gbuffer.positionFormat", &p.PositionFormat)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gbuffer.normalFormat", &p.NormalFormat)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gbuffer.albedoFormat", &p.AlbedoFormat)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gbuffer.depthFormat", &p.DepthFormat)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gbuffer.shader", &p.Shader)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gbuffer.renderScale", &p.RenderScale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gbuffer.maxSize", &p.MaxSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gbuffer.clearColor", p.ClearColor)
	if err != nil {
		return nil, err
	}

	for _, f := range []*prefs.String{&p.PositionFormat, &p.NormalFormat, &p.AlbedoFormat, &p.DepthFormat} {
		f.SetHookPre(func(v prefs.Value) error {
			_, err := gpu.ParseFormat(v.(string))
			return err
		})
	}

	p.RenderScale.SetHookPre(func(v prefs.Value) error {
		if s := v.(float64); s <= 0.0 || s > 4.0 {
			return fmt.Errorf("render scale must be greater than 0 and no more than 4 (%v)", s)
		}
		return nil
	})

	p.MaxSize.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < 1 || s > maxSizeLimit {
			return fmt.Errorf("max size must be between 1 and %d (%d)", maxSizeLimit, s)
		}
		return nil
	})

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Albedo.Set(false)
	p.Depth.Set(true)
	p.PositionFormat.Set(gpu.RGB16F.String())
	p.NormalFormat.Set(gpu.RGB16F.String())
	p.AlbedoFormat.Set(gpu.RGBA8.String())
	p.DepthFormat.Set(gpu.Depth24.String())
	p.Shader.Set("gbuffer")
	p.RenderScale.Set(1.0)
	p.MaxSize.Set(8192)
	p.ClearColor.Set("0,0,0,0")
}

// the upper limit of the MaxSize preference
const maxSizeLimit = 65536

func (p *Preferences) setClearColor(v prefs.Value) error {
	f := strings.Split(v.(string), ",")
	if len(f) != 4 {
		return fmt.Errorf("clear color must have four components (%s)", v)
	}

	var c [4]float32
	for i := range f {
		n, err := strconv.ParseFloat(strings.TrimSpace(f[i]), 32)
		if err != nil {
			return fmt.Errorf("clear color: %w", err)
		}
		if n < 0.0 || n > 1.0 {
			return fmt.Errorf("clear color components must be between 0 and 1 (%v)", n)
		}
		c[i] = float32(n)
	}

	p.crit.Lock()
	defer p.crit.Unlock()
	p.clearColor = c
	return nil
}

func (p *Preferences) getClearColor() prefs.Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	s := make([]string, len(p.clearColor))
	for i, c := range p.clearColor {
		s[i] = strconv.FormatFloat(float64(c), 'g', -1, 32)
	}
	return strings.Join(s, ",")
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns a Config from the current preference values.
func (p *Preferences) Config() (Config, error) {
	format := func(s *prefs.String) (gpu.Format, error) {
		return gpu.ParseFormat(s.Get().(string))
	}

	p.crit.Lock()
	cfg := Config{
		Depth:      p.Depth.Get().(bool),
		Shader:     p.Shader.Get().(string),
		ClearColor: p.clearColor,
	}
	p.crit.Unlock()

	f, err := format(&p.PositionFormat)
	if err != nil {
		return Config{}, err
	}
	cfg.Targets = append(cfg.Targets, TargetConfig{Attachment: Position, Format: f})

	f, err = format(&p.NormalFormat)
	if err != nil {
		return Config{}, err
	}
	cfg.Targets = append(cfg.Targets, TargetConfig{Attachment: Normal, Format: f})

	if p.Albedo.Get().(bool) {
		f, err = format(&p.AlbedoFormat)
		if err != nil {
			return Config{}, err
		}
		cfg.Targets = append(cfg.Targets, TargetConfig{Attachment: Albedo, Format: f})
	}

	cfg.DepthFormat, err = format(&p.DepthFormat)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Scale the width and height by the RenderScale preference. The returned
// values are never less than one and never more than the MaxSize preference.
func (p *Preferences) Scale(width int32, height int32) (int32, int32) {
	s := p.RenderScale.Get().(float64)
	m := int32(p.MaxSize.Get().(int))
	clamp := func(v int32) int32 {
		if v < 1 {
			return 1
		}
		if v > m {
			return m
		}
		return v
	}
	return clamp(int32(float64(width) * s)), clamp(int32(float64(height) * s))
}
