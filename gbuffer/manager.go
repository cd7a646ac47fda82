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

	"github.com/jetsetilly/gbuffer/assert"
	"github.com/jetsetilly/gbuffer/curated"
	"github.com/jetsetilly/gbuffer/gpu"
	"github.com/jetsetilly/gbuffer/logger"
	"github.com/jetsetilly/gbuffer/shaders"
)

const logTag = "gbuffer"

// Manager of the geometry pass render targets.
type Manager struct {
	ctx     gpu.Context
	shaders shaders.Provider
	cfg     Config
	thread  assert.Thread

	state  State
	width  int32
	height int32

	// color targets in the order of cfg.Targets
	targets     []gpu.Texture
	depth       gpu.Texture
	framebuffer gpu.Framebuffer

	// the program survives reallocation and is only released by Destroy()
	program gpu.Program

	// the active pass. nil if state is not InPass
	pass *Pass

	// number of times the targets have been allocated
	generation int

	// number of completed passes in total and since the most recent
	// allocation
	passes      int
	passesAlloc int
}

// NewManager is the preferred method of initialisation for the Manager type.
// No resources are created until Initialize() is called.
func NewManager(ctx gpu.Context, provider shaders.Provider, cfg Config) *Manager {
	return &Manager{
		ctx:     ctx,
		shaders: provider,
		cfg:     cfg,
		thread:  assert.NewThread(),
	}
}

func (mgr *Manager) String() string {
	if mgr.state == Uninitialized {
		return mgr.state.String()
	}
	return fmt.Sprintf("%s %dx%d: %s", mgr.state, mgr.width, mgr.height, mgr.cfg)
}

// State returns the current state of the Manager.
func (mgr *Manager) State() State {
	return mgr.state
}

// Config returns the configuration used by the Manager.
func (mgr *Manager) Config() Config {
	return mgr.cfg
}

// Dimensions returns the width and height of the render targets. Both values
// are zero if the Manager is Uninitialized.
func (mgr *Manager) Dimensions() (int32, int32) {
	return mgr.width, mgr.height
}

// Framebuffer returns the framebuffer that attaches the render targets. Nil if
// the Manager is Uninitialized.
func (mgr *Manager) Framebuffer() gpu.Framebuffer {
	return mgr.framebuffer
}

// Program returns the geometry pass program. Nil if the Manager has never
// been initialised.
func (mgr *Manager) Program() gpu.Program {
	return mgr.program
}

// Generation returns the number of times the render targets have been
// allocated.
func (mgr *Manager) Generation() int {
	return mgr.generation
}

// Passes returns the number of geometry passes that have completed.
func (mgr *Manager) Passes() int {
	return mgr.passes
}

// Initialize creates the render targets and framebuffer for the width and
// height. Existing targets and framebuffer are released first, even if the
// dimensions have not changed. Use Resize() to avoid unnecessary
// reallocation.
//
// Invalid dimensions or configuration are rejected before anything is
// released. Any other failure leaves the Manager Uninitialized with no
// targets or framebuffer.
func (mgr *Manager) Initialize(width int32, height int32) error {
	mgr.thread.Check("gbuffer.Initialize")

	if mgr.state == InPass {
		return curated.Errorf(InvalidStateError, "initialize during geometry pass")
	}

	if width <= 0 || height <= 0 {
		return curated.Errorf(InitializationError, curated.Errorf(gpu.InvalidDimensions, width, height))
	}
	if err := mgr.cfg.validate(); err != nil {
		return curated.Errorf(InitializationError, err)
	}

	mgr.release()

	if mgr.program == nil {
		if err := mgr.loadProgram(); err != nil {
			return curated.Errorf(InitializationError, err)
		}
	}

	if err := mgr.allocate(width, height); err != nil {
		mgr.release()
		logger.Logf(logger.Allow, logTag, "allocation failed at %dx%d: %v", width, height, err)
		return curated.Errorf(InitializationError, err)
	}

	return nil
}

// Resize reallocates the render targets if the width and height differ from
// the current dimensions. Returns true if the render targets have been
// reallocated and any previous contents lost.
//
// Resizing an Uninitialized Manager is the same as calling Initialize().
func (mgr *Manager) Resize(width int32, height int32) (bool, error) {
	mgr.thread.Check("gbuffer.Resize")

	if mgr.state == InPass {
		return false, curated.Errorf(InvalidStateError, "resize during geometry pass")
	}

	wasReady := mgr.state == Ready
	if wasReady && width == mgr.width && height == mgr.height {
		return false, nil
	}

	err := mgr.Initialize(width, height)
	if err != nil {
		return wasReady && mgr.state == Uninitialized, err
	}

	return true, nil
}

// BeginGeometryPass binds the framebuffer and program and enables depth
// testing and face culling. The context state before the call is restored by
// Pass.End(). The Manager must be Ready.
func (mgr *Manager) BeginGeometryPass() (*Pass, error) {
	mgr.thread.Check("gbuffer.BeginGeometryPass")

	switch mgr.state {
	case Uninitialized:
		return nil, notInitialized("begin geometry pass")
	case InPass:
		return nil, curated.Errorf(InvalidStateError, "geometry pass already active")
	}

	pass := &Pass{
		mgr:   mgr,
		state: mgr.ctx.StoreState(),
	}

	mgr.ctx.BindFramebuffer(mgr.framebuffer)
	mgr.ctx.Viewport(0, 0, mgr.width, mgr.height)
	mgr.ctx.UseProgram(mgr.program)
	mgr.ctx.Enable(gpu.DepthTest)
	mgr.ctx.Enable(gpu.CullFace)

	mgr.pass = pass
	mgr.state = InPass

	return pass, nil
}

// GeometryPass runs the draw function between BeginGeometryPass() and
// Pass.End(). The pass is ended even if draw returns an error or panics.
func (mgr *Manager) GeometryPass(draw func(*Pass) error) error {
	pass, err := mgr.BeginGeometryPass()
	if err != nil {
		return err
	}
	defer pass.End()
	return draw(pass)
}

// endPass is called by Pass.End().
func (mgr *Manager) endPass(pass *Pass) {
	mgr.thread.Check("gbuffer.Pass.End")

	if mgr.pass != pass {
		return
	}

	pass.state.Restore()
	mgr.pass = nil
	mgr.state = Ready
	mgr.passes++
	mgr.passesAlloc++
}

// ReadTargets returns the color render targets for reading, in attachment
// order. The depth attachment is not included.
//
// At least one geometry pass must have completed since the render targets
// were allocated, otherwise the targets contain nothing meaningful.
func (mgr *Manager) ReadTargets() (Targets, error) {
	mgr.thread.Check("gbuffer.ReadTargets")

	switch mgr.state {
	case Uninitialized:
		return nil, notInitialized("read targets")
	case InPass:
		return nil, curated.Errorf(InvalidStateError, "read targets during geometry pass")
	}

	if mgr.passesAlloc == 0 {
		return nil, curated.Errorf(InvalidStateError, "read targets before a geometry pass has completed")
	}

	return mgr.readTargets(), nil
}

func (mgr *Manager) readTargets() Targets {
	tgs := make(Targets, len(mgr.targets))
	for i, t := range mgr.targets {
		tgs[i] = Target{
			Attachment: mgr.cfg.Targets[i].Attachment,
			tex:        t,
		}
	}
	return tgs
}

// Destroy releases all resources, including the shader program. The Manager
// returns to the Uninitialized state and can be initialised again. Destroying
// an Uninitialized Manager does nothing.
func (mgr *Manager) Destroy() error {
	mgr.thread.Check("gbuffer.Destroy")

	if mgr.state == InPass {
		return curated.Errorf(InvalidStateError, "destroy during geometry pass")
	}

	mgr.release()

	if mgr.program != nil {
		mgr.program.Destroy()
		mgr.program = nil
		logger.Log(logger.Allow, logTag, "released program")
	}

	return nil
}

func (mgr *Manager) loadProgram() error {
	src, err := mgr.shaders.Source(mgr.cfg.Shader)
	if err != nil {
		return err
	}

	mgr.program, err = mgr.ctx.CreateProgram(src.Name, src.Vertex, src.Fragment)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, logTag, "loaded %s program", src.Name)

	return nil
}

// allocate the render targets and framebuffer. on error, the resources that
// were created are left for release() to clear up.
func (mgr *Manager) allocate(width int32, height int32) error {
	for _, t := range mgr.cfg.Targets {
		tex, err := mgr.ctx.CreateTexture(width, height, t.Format)
		if err != nil {
			return fmt.Errorf("%s target: %w", t.Attachment, err)
		}
		mgr.targets = append(mgr.targets, tex)
	}

	if mgr.cfg.Depth {
		var err error
		mgr.depth, err = mgr.ctx.CreateTexture(width, height, mgr.cfg.DepthFormat)
		if err != nil {
			return fmt.Errorf("depth attachment: %w", err)
		}
	}

	var err error
	mgr.framebuffer, err = mgr.ctx.CreateFramebuffer(mgr.targets, mgr.depth)
	if err != nil {
		return err
	}

	mgr.width = width
	mgr.height = height
	mgr.state = Ready
	mgr.generation++
	mgr.passesAlloc = 0

	logger.Logf(logger.Allow, logTag, "allocated %dx%d: %s", width, height, mgr.cfg)

	return nil
}

// release the render targets and framebuffer. the framebuffer is released
// before the textures it attaches.
func (mgr *Manager) release() {
	if mgr.framebuffer != nil {
		mgr.framebuffer.Destroy()
		mgr.framebuffer = nil
	}
	for _, t := range mgr.targets {
		t.Destroy()
	}
	mgr.targets = mgr.targets[:0]
	if mgr.depth != nil {
		mgr.depth.Destroy()
		mgr.depth = nil
	}

	if mgr.width > 0 {
		logger.Logf(logger.Allow, logTag, "released %dx%d", mgr.width, mgr.height)
	}

	mgr.width = 0
	mgr.height = 0
	mgr.passesAlloc = 0
	mgr.state = Uninitialized
}
