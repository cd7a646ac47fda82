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
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/gbuffer/gbuffer"
	"github.com/jetsetilly/gbuffer/logger"
	"github.com/jetsetilly/gbuffer/modalflag"
	"github.com/jetsetilly/gbuffer/prefs"
	"github.com/jetsetilly/gbuffer/resources"
	"github.com/jetsetilly/gbuffer/statsview"
	"github.com/jetsetilly/gbuffer/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// by called as part of a larger loop from the main thread. It should
	// service all gui events and do all drawing, neither of which are safe to
	// do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL and OpenGL require window event handling and all
// drawing to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

func init() {
	// main() must run on the main thread
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// the creator returns a nil pointer of a concrete type on
				// error, which is not the same as a nil interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "PREFS", "VERSION")
	md.AdditionalHelp("RUN is the default mode. Use -help after a mode for the flags of that mode.")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "HEADLESS":
		err = headless(md)

	case "PREFS":
		err = showPrefs(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.Path(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// common flags for all modes that use the gbuffer preferences.
type prefsFlags struct {
	log       *bool
	cmdline   *string
	prefsFile *string
}

func addPrefsFlags(md *modalflag.Modes) prefsFlags {
	return prefsFlags{
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		cmdline:   md.AddString("prefs", "", "preferences for this run only: \"key::value; key::value\""),
		prefsFile: md.AddString("prefsfile", "", "preferences file to use instead of the default"),
	}
}

// apply the log flag and load the preferences. values given with the prefs
// flag take precedence over those in the preferences file.
func (pf prefsFlags) load(output io.Writer) (*gbuffer.Preferences, error) {
	if *pf.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *pf.cmdline != "" {
		prefs.PushCommandLineStack(*pf.cmdline)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "! unused preferences: %s\n", unused)
			}
		}()
	}

	if *pf.prefsFile != "" {
		return gbuffer.NewPreferencesFromFile(*pf.prefsFile)
	}
	return gbuffer.NewPreferences()
}

// launchStats starts the stats server if it has been compiled in.
func launchStats(output io.Writer) (func(), error) {
	if !statsview.Available() {
		return nil, fmt.Errorf("stats server not available in this build")
	}
	return statsview.Launch(output), nil
}

func showPrefs(md *modalflag.Modes) error {
	md.NewMode()
	pf := addPrefsFlags(md)
	save := md.AddBool("save", false, "save the preferences, including values given with -prefs")

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

	if *pf.prefsFile == "" {
		pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "file: %s\n", pth)
	} else {
		fmt.Fprintf(md.Output, "file: %s\n", *pf.prefsFile)
	}
	fmt.Fprint(md.Output, pr.String())
	fmt.Fprintf(md.Output, "config: %s\n", cfg)

	if *save {
		return pr.Save()
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	rev := md.AddBool("revision", false, "display revision information even for numbered versions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, release := version.Version()
	if release && !*rev {
		fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
		return nil
	}
	fmt.Fprintln(md.Output, version.String())
	if release {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
