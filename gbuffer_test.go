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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gbuffer/modalflag"
	"github.com/jetsetilly/gbuffer/statsview"
	"github.com/jetsetilly/gbuffer/test"
)

func TestParseDimensions(t *testing.T) {
	w, h, err := parseDimensions("1280x720")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, int32(1280))
	test.ExpectEquality(t, h, int32(720))

	w, h, err = parseDimensions(" 640X480 ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, int32(640))
	test.ExpectEquality(t, h, int32(480))

	_, _, err = parseDimensions("640")
	test.ExpectFailure(t, err)
	_, _, err = parseDimensions("axb")
	test.ExpectFailure(t, err)
}

// modes prepares a Modes instance as launch() would, with the mode already
// selected.
func modes(t *testing.T, output *test.CompareWriter, args ...string) *modalflag.Modes {
	t.Helper()
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "PREFS", "VERSION")
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	return md
}

func TestHeadless(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "preferences")
	tw := &test.CompareWriter{}

	md := modes(t, tw, "HEADLESS", "-prefsfile", prefsFile, "-frames", "3", "-resize", "640x480,640x480,1920x1080")
	test.DemandEquality(t, md.Mode(), "HEADLESS")
	test.DemandSuccess(t, headless(md))

	out := tw.String()
	test.ExpectSuccess(t, tw.Contains("12 passes"), out)
	test.ExpectSuccess(t, tw.Contains("dimensions: 1920x1080"), out)

	// the initial size and two of the three resizes cause an allocation
	test.ExpectSuccess(t, tw.Contains("generation: 3"), out)
	test.ExpectSuccess(t, tw.Contains("objects created: 9 textures, 3 framebuffers, 1 programs"), out)
}

func TestHeadlessPrefs(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "preferences")
	tw := &test.CompareWriter{}

	md := modes(t, tw, "HEADLESS", "-prefsfile", prefsFile, "-frames", "1", "-size", "100x100",
		"-prefs", "gbuffer.albedo::true; gbuffer.renderScale::0.5; unknown::1")
	test.DemandSuccess(t, headless(md))

	out := tw.String()
	test.ExpectSuccess(t, tw.Contains("! unused preferences: unknown::1"), out)
	test.ExpectSuccess(t, tw.Contains("dimensions: 50x50"), out)
	test.ExpectSuccess(t, tw.Contains("targets: 3 + depth"), out)
}

func TestHeadlessMemviz(t *testing.T) {
	dir := t.TempDir()
	dotFile := filepath.Join(dir, "gbuffer.dot")
	tw := &test.CompareWriter{}

	md := modes(t, tw, "HEADLESS", "-prefsfile", filepath.Join(dir, "preferences"), "-frames", "1", "-memviz", dotFile)
	test.DemandSuccess(t, headless(md))

	_, err := os.Stat(dotFile)
	test.ExpectSuccess(t, err)
}

func TestHeadlessErrors(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "preferences")
	tw := &test.CompareWriter{}

	md := modes(t, tw, "HEADLESS", "-prefsfile", prefsFile, "-size", "0x100")
	test.DemandFailure(t, headless(md))

	md = modes(t, tw, "HEADLESS", "-prefsfile", prefsFile, "-resize", "big")
	test.ExpectFailure(t, headless(md))

	md = modes(t, tw, "HEADLESS", "-prefsfile", prefsFile, "-profile", "disk")
	test.ExpectFailure(t, headless(md))

	md = modes(t, tw, "HEADLESS", "-prefsfile", prefsFile, "extra")
	test.ExpectFailure(t, headless(md))

	md = modes(t, tw, "HEADLESS", "-prefsfile", prefsFile, "-prefs", "gbuffer.shader::missing")
	test.ExpectFailure(t, headless(md))

	if !statsview.Available() {
		md = modes(t, tw, "HEADLESS", "-prefsfile", prefsFile, "-statsview")
		test.ExpectFailure(t, headless(md))
	}
}

func TestShowPrefs(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "preferences")
	tw := &test.CompareWriter{}

	md := modes(t, tw, "PREFS", "-prefsfile", prefsFile, "-prefs", "gbuffer.depth::false", "-save")
	test.DemandEquality(t, md.Mode(), "PREFS")
	test.DemandSuccess(t, showPrefs(md))

	out := tw.String()
	test.ExpectSuccess(t, tw.Contains("gbuffer.depth :: false"), out)
	test.ExpectSuccess(t, tw.Contains("config: position (RGB16F), normal (RGB16F) with gbuffer shader"), out)

	// saved value is used without the prefs flag
	tw.Clear()
	md = modes(t, tw, "PREFS", "-prefsfile", prefsFile)
	test.DemandSuccess(t, showPrefs(md))
	test.ExpectSuccess(t, tw.Contains("gbuffer.depth :: false"), tw.String())
}

func TestShowVersion(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modes(t, tw, "VERSION")
	test.DemandEquality(t, md.Mode(), "VERSION")
	test.DemandSuccess(t, showVersion(md))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "Gbuffer "), tw.String())
}
