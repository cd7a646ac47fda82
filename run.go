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

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/jetsetilly/gbuffer/gbuffer"
	"github.com/jetsetilly/gbuffer/gpu/gl32"
	"github.com/jetsetilly/gbuffer/modalflag"
	"github.com/jetsetilly/gbuffer/overlay"
	"github.com/jetsetilly/gbuffer/shaders"
	"github.com/jetsetilly/gbuffer/statsview"
	"github.com/jetsetilly/gbuffer/window"
)

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	pf := addPrefsFlags(md)
	size := md.AddString("size", "1280x720", "initial window size")
	show := md.AddString("show", "normal", "render target to display: POSITION, NORMAL, ALBEDO")
	shader := md.AddString("shader", "sphere", "geometry pass program")
	shaderDir := md.AddString("shaders", "", "directory containing additional shaders")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md.Path())
	}

	pr, err := pf.load(md.Output)
	if err != nil {
		return err
	}

	cfg, err := pr.Config()
	if err != nil {
		return err
	}
	cfg.Shader = *shader

	attachment, err := gbuffer.ParseAttachment(*show)
	if err != nil {
		return err
	}
	if attachment == gbuffer.Depth {
		return fmt.Errorf("depth attachment cannot be displayed")
	}

	found := false
	for _, t := range cfg.Targets {
		found = found || t.Attachment == attachment
	}
	if !found {
		return fmt.Errorf("%s target is not configured (%s)", attachment, cfg)
	}

	width, height, err := parseDimensions(*size)
	if err != nil {
		return err
	}

	if *stats {
		stop, err := launchStats(md.Output)
		if err != nil {
			return err
		}
		defer stop()
	}

	d := &demo{
		show:  attachment,
		prefs: pr,
		done:  make(chan error, 1),
	}

	// create demo on the main thread
	sync.creator <- func() (GuiCreator, error) {
		err := d.create(cfg, shaderProvider(*shaderDir), width, height)
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	// wait for the demo to end. the demo is destroyed by the main thread when
	// the quit request is received
	return <-d.done
}

// demo renders the geometry pass to the render targets and displays one of
// them in a window. all functions are called from the main thread.
type demo struct {
	win *window.Window
	ctx *gl32.Context
	mgr *gbuffer.Manager
	ovl *overlay.Overlay

	prefs *gbuffer.Preferences
	show  gbuffer.Attachment

	// the render scale has been changed through the overlay
	rescale bool

	start time.Time
	ended bool
	done  chan error
}

func (d *demo) create(cfg gbuffer.Config, provider shaders.Provider, width int32, height int32) error {
	var err error

	d.win, err = window.New("gbuffer", width, height, false)
	if err != nil {
		return err
	}

	d.ctx, err = gl32.Init()
	if err != nil {
		_ = d.win.Destroy()
		return err
	}

	d.ovl, err = overlay.New(d.ctx)
	if err != nil {
		d.ctx.Destroy()
		_ = d.win.Destroy()
		return err
	}
	d.win.SetEventHandler(d.ovl.HandleEvent)

	d.mgr = gbuffer.NewManager(d.ctx, provider, cfg)

	err = d.mgr.Initialize(d.prefs.Scale(d.win.DrawableSize()))
	if err != nil {
		d.ovl.Destroy()
		d.ctx.Destroy()
		_ = d.win.Destroy()
		return err
	}

	vendor, renderer, version := d.ctx.Info()
	d.win.SetTitle(fmt.Sprintf("gbuffer: %s (%s %s %s)", d.show, vendor, renderer, version))
	d.start = time.Now()

	return nil
}

// end the demo. the error is returned to the run() function.
func (d *demo) end(err error) {
	if d.ended {
		return
	}
	d.ended = true
	d.done <- err
}

// Service implements the GuiCreator interface.
func (d *demo) Service() {
	if d.ended {
		return
	}

	quit, resized := d.win.Poll()
	if quit {
		d.end(nil)
		return
	}

	w, h := d.win.DrawableSize()

	if resized || d.rescale {
		d.rescale = false
		_, err := d.mgr.Resize(d.prefs.Scale(w, h))
		if err != nil {
			d.end(err)
			return
		}
	}

	err := d.mgr.GeometryPass(func(p *gbuffer.Pass) error {
		if err := p.Clear(); err != nil {
			return err
		}
		d.ctx.SetUniform1f(p.Program(), "Aspect", float32(p.Width())/float32(p.Height()))
		d.ctx.SetUniform1f(p.Program(), "Time", float32(time.Since(d.start).Seconds()))
		d.ctx.DrawFullscreen()
		return nil
	})
	if err != nil {
		d.end(err)
		return
	}

	tgs, err := d.mgr.ReadTargets()
	if err != nil {
		d.end(err)
		return
	}

	d.ctx.Viewport(0, 0, w, h)
	d.ctx.Clear(0, 0, 0, 1)
	d.ctx.Blit(d.mgr.Framebuffer(), tgs.Index(d.show), w, h)

	ww, wh := d.win.Size()
	d.ovl.Frame(overlay.Size{WindowWidth: ww, WindowHeight: wh, FBWidth: w, FBHeight: h}, d.drawOverlay)

	d.win.Swap()
}

// drawOverlay is called by overlay.Frame() and so can only call imgui widget
// functions.
func (d *demo) drawOverlay() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	if imgui.BeginV("gbuffer", nil, imgui.WindowFlagsAlwaysAutoResize) {
		for _, t := range d.mgr.Config().Targets {
			if imgui.RadioButton(t.String(), d.show == t.Attachment) {
				d.show = t.Attachment
			}
		}

		imgui.Separator()

		scale := float32(d.prefs.RenderScale.Get().(float64))
		if imgui.SliderFloat("render scale", &scale, 0.25, 2.0) {
			if err := d.prefs.RenderScale.Set(float64(scale)); err == nil {
				d.rescale = true
			}
		}

		imgui.Separator()
		imgui.Text(d.mgr.Stats().String())
		imgui.Text("Tab to hide")
	}
	imgui.End()
}

// Destroy implements the GuiCreator interface.
func (d *demo) Destroy(output io.Writer) {
	if d.win != nil {
		d.win.SetEventHandler(nil)
	}
	if d.ovl != nil {
		d.ovl.Destroy()
		d.ovl = nil
	}
	if d.mgr != nil {
		if err := d.mgr.Destroy(); err != nil {
			fmt.Fprintf(output, "* error destroying render targets: %v\n", err)
		}
		d.mgr = nil
	}
	if d.ctx != nil {
		d.ctx.Destroy()
		d.ctx = nil
	}
	if d.win != nil {
		if err := d.win.Destroy(); err != nil {
			fmt.Fprintf(output, "* error destroying window: %v\n", err)
		}
		d.win = nil
	}

	// make sure run() is not left waiting if the demo is destroyed before it
	// has ended. for example, on ctrl-c
	d.end(nil)
}
