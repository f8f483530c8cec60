// Package lifecycle sequences the acquisition of the window, graphics, UI
// and audio subsystems and the assets loaded on top of them, and guarantees
// they are released in the reverse order on every exit path.
package lifecycle

import (
	"fmt"
	"path/filepath"

	"github.com/devblok/fun/asset"
	"github.com/devblok/fun/audio"
	"github.com/devblok/fun/core"
	log "github.com/sirupsen/logrus"
)

// Scene is the application content driven by the Manager.
type Scene interface {
	// Setup loads the scene's assets through the Manager.
	// An error aborts startup.
	Setup(m *Manager) error

	// Resize is called when the drawable size changes
	Resize(g core.GraphicsContext, width, height int)

	// Draw renders the scene underneath the UI
	Draw(g core.GraphicsContext)

	// DrawUI issues the scene's widgets for the current frame
	DrawUI(ui core.UIContext)
}

// Backends are the collaborators subsystems are acquired from
type Backends struct {
	Windowing     core.Windowing
	Graphics      core.GraphicsProvider
	UI            core.UIProvider
	Audio         core.AudioProvider
	Images        core.ImageDecoder
	AudioDecoders map[audio.Container]core.AudioDecoder
}

// guard remembers how to release one acquired stage
type guard struct {
	stage   Stage
	release func()
}

// Manager owns every subsystem handle and loaded asset.
// It must be used from the thread that owns the window.
type Manager struct {
	configuration core.Configuration
	backends      Backends
	locator       *asset.Locator

	state  State
	guards []guard
	assets registry
	scene  Scene
	done   bool

	window   core.Window
	graphics core.GraphicsContext
	ui       core.UIContext
	device   core.AudioDevice
	audio    core.AudioContext
	source   asset.Source

	width, height int
}

// NewManager creates a Manager that has not acquired anything yet
func NewManager(cfg core.Configuration, backends Backends, locator *asset.Locator) *Manager {
	if locator == nil {
		locator = asset.NewLocator(cfg.Assets.FolderName)
	}
	return &Manager{
		configuration: cfg,
		backends:      backends,
		locator:       locator,
		state:         Uninitialized,
	}
}

// State returns the current lifecycle state
func (m *Manager) State() State {
	return m.state
}

// Done reports whether a close request has been observed
func (m *Manager) Done() bool {
	return m.done
}

// Size returns the last known drawable size
func (m *Manager) Size() (width, height int) {
	return m.width, m.height
}

// Graphics returns the live graphics context, or nil
func (m *Manager) Graphics() core.GraphicsContext {
	return m.graphics
}

// AssetRoot resolves the asset root through the Manager's Locator
func (m *Manager) AssetRoot() (string, error) {
	return m.locator.ResolveAssetRoot()
}

// Startup resolves the asset root, acquires every subsystem in order and
// sets the scene up. When a stage fails, the stages acquired before it are
// released in reverse order and an *InitializationError is returned.
func (m *Manager) Startup(scene Scene) error {
	if m.state != Uninitialized {
		return ErrStarted
	}
	if scene == nil {
		return ErrMissingScene
	}
	if m.configuration.Window.Title == "" {
		m.state = Terminated
		return &InitializationError{Stage: StageWindow, Reason: ErrEmptyTitle}
	}
	if _, err := m.locator.ResolveAssetRoot(); err != nil {
		m.state = Terminated
		return fmt.Errorf("asset.ResolveAssetRoot(): %w", err)
	}
	m.scene = scene

	steps := []struct {
		stage   Stage
		acquire func() (func(), error)
	}{
		{StageWindow, m.createWindow},
		{StageGraphics, m.createGraphics},
		{StageUI, m.createUI},
		{StageAudioDevice, m.openAudioDevice},
		{StageAudioContext, m.createAudioContext},
		{StageAssets, m.loadAssets},
	}

	for _, step := range steps {
		release, err := step.acquire()
		if err != nil {
			log.WithError(err).WithField("stage", step.stage).Error("Initialization failed")
			m.unwind()
			m.state = Terminated
			return &InitializationError{Stage: step.stage, Reason: err}
		}
		m.guards = append(m.guards, guard{stage: step.stage, release: release})
		if reached := step.stage.reached(); reached >= 0 {
			m.state = reached
		}
		log.WithField("stage", step.stage).Debug("Subsystem acquired")
	}

	m.state = Running
	return nil
}

func (m *Manager) createWindow() (func(), error) {
	window, err := m.backends.Windowing.CreateWindow(m.configuration.Window)
	if err != nil {
		return nil, err
	}
	m.window = window
	m.width, m.height = window.Size()
	return func() {
		m.window.Destroy()
		m.window = nil
	}, nil
}

func (m *Manager) createGraphics() (func(), error) {
	graphics, err := m.backends.Graphics.CreateContext(m.window)
	if err != nil {
		return nil, err
	}
	m.graphics = graphics
	return func() {
		m.graphics.Destroy()
		m.graphics = nil
	}, nil
}

func (m *Manager) createUI() (func(), error) {
	ui, err := m.backends.UI.CreateContext(m.window, m.graphics)
	if err != nil {
		return nil, err
	}
	ui.SetDisplaySize(m.width, m.height)
	m.ui = ui
	return func() {
		m.ui.Destroy()
		m.ui = nil
	}, nil
}

func (m *Manager) openAudioDevice() (func(), error) {
	device, err := m.backends.Audio.OpenDevice(m.configuration.Audio.Device)
	if err != nil {
		return nil, err
	}
	m.device = device
	return func() {
		m.device.Close()
		m.device = nil
	}, nil
}

func (m *Manager) createAudioContext() (func(), error) {
	ctx, err := m.device.CreateContext()
	if err != nil {
		return nil, err
	}
	m.audio = ctx
	return func() {
		m.audio.Destroy()
		m.audio = nil
	}, nil
}

func (m *Manager) loadAssets() (func(), error) {
	source, err := m.openSource()
	if err != nil {
		return nil, err
	}
	m.source = source

	release := func() {
		m.assets.release()
		if err := m.source.Close(); err != nil {
			log.WithError(err).Warn("Closing asset source failed")
		}
		m.source = nil
	}
	if err := m.scene.Setup(m); err != nil {
		release()
		return nil, err
	}
	return release, nil
}

func (m *Manager) openSource() (asset.Source, error) {
	root, err := m.locator.ResolveAssetRoot()
	if err != nil {
		return nil, err
	}
	if m.configuration.Assets.Archive == "" {
		return asset.Dir(root), nil
	}
	archive := filepath.Join(root, filepath.FromSlash(m.configuration.Assets.Archive))
	source, err := asset.OpenArchive(archive)
	if err != nil {
		return nil, fmt.Errorf("asset.OpenArchive(): %w", err)
	}
	return source, nil
}

// AdvanceFrame polls window events, renders the scene and its UI and
// presents the result. Close requests are reported through Done.
func (m *Manager) AdvanceFrame() error {
	if m.state != Running {
		return ErrNotRunning
	}

	for _, event := range m.window.PollEvents() {
		m.ui.ProcessEvent(event)
		switch event.Type {
		case core.CloseEvent, core.QuitEvent:
			m.done = true
		case core.ResizeEvent:
			m.width, m.height = event.Width, event.Height
			m.ui.SetDisplaySize(event.Width, event.Height)
			m.scene.Resize(m.graphics, event.Width, event.Height)
		}
	}

	m.scene.Draw(m.graphics)
	m.ui.NewFrame()
	m.scene.DrawUI(m.ui)
	m.ui.Render()
	m.window.SwapBuffers()
	return nil
}

// Run advances frames paced by the time service until a close
// request is observed
func (m *Manager) Run(t *core.Time) error {
	for !m.done {
		<-t.FpsTicker().C
		t.Tick()
		if err := m.AdvanceFrame(); err != nil {
			return err
		}
	}
	log.WithField("frames", t.Frames()).Info("Event loop exited")
	return nil
}

// Shutdown releases assets and then every acquired subsystem in the
// reverse order of acquisition. It is safe to call in any state and
// more than once.
func (m *Manager) Shutdown() {
	if m.state == ShuttingDown || m.state == Terminated {
		return
	}
	m.state = ShuttingDown
	m.unwind()
	m.state = Terminated
}

func (m *Manager) unwind() {
	for idx := len(m.guards) - 1; idx >= 0; idx-- {
		g := m.guards[idx]
		g.release()
		log.WithField("stage", g.stage).Debug("Subsystem released")
	}
	m.guards = nil
}
