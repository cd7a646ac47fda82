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
	"strings"
	"time"

	"github.com/jetsetilly/gbuffer/gbuffer"
	"github.com/jetsetilly/gbuffer/gpu/headless"
	"github.com/jetsetilly/gbuffer/memdump"
	"github.com/jetsetilly/gbuffer/modalflag"
	"github.com/jetsetilly/gbuffer/performance"
	"github.com/jetsetilly/gbuffer/performance/limiter"
	"github.com/jetsetilly/gbuffer/shaders"
	"github.com/jetsetilly/gbuffer/statsview"
)

// parseDimensions parses a string of the form "WIDTHxHEIGHT".
func parseDimensions(s string) (int32, int32, error) {
	var w, h int32
	n, err := fmt.Sscanf(strings.ToLower(strings.TrimSpace(s)), "%dx%d", &w, &h)
	if err != nil || n != 2 {
		return 0, 0, fmt.Errorf("dimensions must be in the form WIDTHxHEIGHT (%s)", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("dimensions must be positive (%s)", s)
	}
	return w, h, nil
}

// the shader provider for a mode. shaders in dir take precedence over the
// embedded shaders.
func shaderProvider(dir string) shaders.Provider {
	if dir == "" {
		return shaders.Embedded()
	}
	return shaders.Chain(shaders.Dir(dir), shaders.Embedded())
}

func headless(md *modalflag.Modes) error {
	md.NewMode()
	pf := addPrefsFlags(md)
	size := md.AddString("size", "1280x720", "display size. render targets are scaled by the gbuffer.renderScale preference")
	resize := md.AddString("resize", "", "comma separated list of display sizes to resize to in turn")
	frames := md.AddInt("frames", 60, "number of geometry passes for each display size")
	fps := md.AddInt("fps", 0, "limit geometry passes per second. zero for no limit")
	duration := md.AddDuration("duration", 0, "measure geometry pass rate for a duration instead of running for a number of frames")
	var prf performance.Profile
	md.AddVar(&prf, "profile", "run through profiler: CPU, MEM, TRACE, ALL (comma separated)")
	shaderDir := md.AddString("shaders", "", "directory containing additional shaders")
	memviz := md.AddString("memviz", "", "write object graph of the manager to a dot file")
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

	if *stats {
		stop, err := launchStats(md.Output)
		if err != nil {
			return err
		}
		defer stop()
	}

	sizes := []string{*size}
	if *resize != "" {
		sizes = append(sizes, strings.Split(*resize, ",")...)
	}

	var dims [][2]int32
	for _, s := range sizes {
		w, h, err := parseDimensions(s)
		if err != nil {
			return err
		}
		dims = append(dims, [2]int32{w, h})
	}

	ctx := headless.NewContext(dims[0][0], dims[0][1])
	mgr := gbuffer.NewManager(ctx, shaderProvider(*shaderDir), cfg)

	err = mgr.Initialize(pr.Scale(dims[0][0], dims[0][1]))
	if err != nil {
		return err
	}

	frame := func() error {
		err := mgr.GeometryPass(func(p *gbuffer.Pass) error {
			return p.Clear()
		})
		if err != nil {
			return err
		}
		_, err = mgr.ReadTargets()
		return err
	}

	if *duration > 0 {
		err = performance.Check(md.Output, prf, *duration, frame)
	} else {
		err = performance.RunProfiler(prf, "headless", func() error {
			return runFrames(md.Output, mgr, pr, dims, *frames, *fps, frame)
		})
	}
	if err != nil {
		_ = mgr.Destroy()
		return err
	}

	fmt.Fprint(md.Output, mgr.Stats().String())

	if *memviz != "" {
		err = memdump.WriteFile(*memviz, mgr)
		if err != nil {
			_ = mgr.Destroy()
			return err
		}
	}

	err = mgr.Destroy()
	if err != nil {
		return err
	}

	if n := ctx.LiveTotal(); n > 0 {
		return fmt.Errorf("%d objects not released: %s", n, ctx)
	}
	fmt.Fprintf(md.Output, "objects created: %d textures, %d framebuffers, %d programs\n",
		ctx.Created(headless.Texture), ctx.Created(headless.Framebuffer), ctx.Created(headless.Program))

	return nil
}

// run the frame function for each display size in turn. the manager is
// resized before each group of frames.
func runFrames(output io.Writer, mgr *gbuffer.Manager, pr *gbuffer.Preferences, dims [][2]int32, frames int, fps int, frame func() error) error {
	var lim *limiter.FpsLimiter
	if fps > 0 {
		var err error
		lim, err = limiter.NewFPSLimiter(fps)
		if err != nil {
			return err
		}
		defer lim.Stop()
	}

	start := time.Now()
	num := 0

	for _, d := range dims {
		_, err := mgr.Resize(pr.Scale(d[0], d[1]))
		if err != nil {
			return err
		}

		for i := 0; i < frames; i++ {
			if lim != nil {
				lim.Wait()
			}
			if err := frame(); err != nil {
				return err
			}
			num++
		}
	}

	elapsed := time.Since(start)
	fmt.Fprintf(output, "%d passes in %.2f seconds (%.2f passes/s)\n", num, elapsed.Seconds(), performance.CalcRate(num, elapsed))

	return nil
}
