// Package sdl implements windowing, event polling and WAV decoding
// on top of SDL2.
package sdl

import (
	"errors"

	"github.com/devblok/fun/core"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// package errors
var (
	ErrNotInitialized = errors.New("sdl is not initialized")
)

// Windowing implements core.Windowing
type Windowing struct {
	initialized bool
}

// NewWindowing initializes the SDL video, audio and event subsystems.
// Destroy must be called once every window is destroyed.
func NewWindowing() (*Windowing, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.New("sdl.Init(): " + err.Error())
	}
	return &Windowing{initialized: true}, nil
}

// Destroy shuts SDL down
func (w *Windowing) Destroy() {
	if w.initialized {
		sdl.Quit()
		w.initialized = false
	}
}

// CreateWindow implements core.Windowing. It requests an OpenGL 3.2 core
// profile; attribute failures are only warned about since the driver
// may still give a usable context.
func (w *Windowing) CreateWindow(cfg core.WindowConfiguration) (core.Window, error) {
	if !w.initialized {
		return nil, ErrNotInitialized
	}

	attributes := []glAttribute{
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG, "context flags"},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE, "core profile"},
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3, "major version"},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2, "minor version"},
		{sdl.GL_DOUBLEBUFFER, 1, "double buffer"},
		{sdl.GL_DEPTH_SIZE, 24, "depth size"},
		{sdl.GL_STENCIL_SIZE, 8, "stencil size"},
	}
	if cfg.MultisampleSamples > 0 {
		attributes = append(attributes,
			glAttribute{sdl.GL_MULTISAMPLEBUFFERS, 1, "multisample buffers"},
			glAttribute{sdl.GL_MULTISAMPLESAMPLES, cfg.MultisampleSamples, "multisample samples"},
		)
	}
	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			log.WithError(err).WithField("attribute", a.name).Warn("GL attribute not set")
		}
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		return nil, errors.New("sdl.CreateWindow(): " + err.Error())
	}
	return &Window{window: window}, nil
}

type glAttribute struct {
	attr  sdl.GLattr
	value int
	name  string
}

// Window implements core.Window
type Window struct {
	window *sdl.Window
}

// Size implements interface
func (w *Window) Size() (int, int) {
	width, height := w.window.GLGetDrawableSize()
	return int(width), int(height)
}

// PollEvents implements interface
func (w *Window) PollEvents() []core.Event {
	var events []core.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		events = append(events, translate(event))
	}
	return events
}

func translate(event sdl.Event) core.Event {
	switch et := event.(type) {
	case *sdl.QuitEvent:
		return core.Event{Type: core.QuitEvent, Raw: event}
	case *sdl.WindowEvent:
		switch et.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return core.Event{Type: core.CloseEvent, Raw: event}
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return core.Event{
				Type:   core.ResizeEvent,
				Width:  int(et.Data1),
				Height: int(et.Data2),
				Raw:    event,
			}
		}
	}
	return core.Event{Type: core.OtherEvent, Raw: event}
}

// SwapBuffers implements interface
func (w *Window) SwapBuffers() {
	w.window.GLSwap()
}

// Native implements interface, returns *sdl.Window
func (w *Window) Native() interface{} {
	return w.window
}

// Destroy implements interface
func (w *Window) Destroy() {
	if err := w.window.Destroy(); err != nil {
		log.WithError(err).Warn("Destroying window failed")
	}
}

// BasePath is an asset.Origin yielding the directory SDL reports
// the application was run from
func BasePath() (string, error) {
	path := sdl.GetBasePath()
	if path == "" {
		return "", errors.New("sdl.GetBasePath(): no base path available")
	}
	return path, nil
}
