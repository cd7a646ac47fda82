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

// Package modalflag wraps the flag package of the standard library so that a
// command line can select a mode of operation, each mode with its own flags.
//
// Arguments are given with NewArgs() and parsed with Parse(). Flags must be
// added before the call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "echo log entries")
//	md.AddSubModes("RUN", "HEADLESS")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
// The first argument after the flags is compared with the sub-modes. If it
// matches, the mode is added to the path and the argument is consumed. If it
// does not match, the first sub-mode is the default and is added to the path
// instead. Sub-mode comparisons are case insensitive.
//
// Each mode can then have its own flags by calling NewMode() and parsing
// again:
//
//	switch md.Mode() {
//	case "HEADLESS":
//		md.NewMode()
//		frames := md.AddInt("frames", 100, "number of frames")
//		md.Parse()
//	}
//
// Help is printed to the Output writer when the -help flag is given, and
// Parse() returns ParseHelp. The help message includes the list of sub-modes
// and any text added with AdditionalHelp().
package modalflag
