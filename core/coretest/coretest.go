// Package coretest provides recording fakes of the core collaborators.
// Every fake appends what it acquires and releases to a shared Recorder,
// so tests can assert on ordering across subsystems.
package coretest

import (
	"errors"
	"fmt"
	"image"

	"github.com/devblok/fun/audio"
	"github.com/devblok/fun/core"
	glm "github.com/go-gl/mathgl/mgl32"
)

// Recorder collects events in the order they happened
type Recorder struct {
	Events []string
}

// Record appends a formatted event
func (r *Recorder) Record(format string, args ...interface{}) {
	r.Events = append(r.Events, fmt.Sprintf(format, args...))
}

// Filter returns the recorded events that start with prefix
func (r *Recorder) Filter(prefix string) []string {
	var out []string
	for _, e := range r.Events {
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			out = append(out, e)
		}
	}
	return out
}

// Platform bundles one fake of every collaborator around a single Recorder
type Platform struct {
	Recorder  *Recorder
	Windowing *Windowing
	Graphics  *Graphics
	UI        *UI
	Audio     *Audio
}

// NewPlatform creates fakes that succeed on every call
func NewPlatform() *Platform {
	rec := &Recorder{}
	return &Platform{
		Recorder:  rec,
		Windowing: &Windowing{Recorder: rec},
		Graphics:  &Graphics{Recorder: rec},
		UI:        &UI{Recorder: rec, Pressed: map[string]bool{}},
		Audio:     &Audio{Recorder: rec, Extensions: map[string]bool{}},
	}
}

// ErrInjected is the default failure used by tests
var ErrInjected = errors.New("injected failure")

// Windowing is a fake core.Windowing
type Windowing struct {
	Recorder *Recorder
	Fail     error

	// Frames are handed out one per PollEvents call
	Frames [][]core.Event

	Window *Window
}

// CreateWindow implements interface
func (w *Windowing) CreateWindow(cfg core.WindowConfiguration) (core.Window, error) {
	if w.Fail != nil {
		return nil, w.Fail
	}
	w.Recorder.Record("acquire window")
	w.Window = &Window{
		windowing: w,
		Title:     cfg.Title,
		Width:     cfg.Width,
		Height:    cfg.Height,
	}
	return w.Window, nil
}

// Window is a fake core.Window
type Window struct {
	windowing *Windowing

	Title         string
	Width, Height int
	Swaps         int
	Destroyed     int
}

// Size implements interface
func (w *Window) Size() (int, int) {
	return w.Width, w.Height
}

// PollEvents implements interface
func (w *Window) PollEvents() []core.Event {
	if len(w.windowing.Frames) == 0 {
		return nil
	}
	events := w.windowing.Frames[0]
	w.windowing.Frames = w.windowing.Frames[1:]
	return events
}

// SwapBuffers implements interface
func (w *Window) SwapBuffers() {
	w.Swaps++
}

// Native implements interface
func (w *Window) Native() interface{} {
	return w
}

// Destroy implements interface
func (w *Window) Destroy() {
	w.Destroyed++
	w.windowing.Recorder.Record("release window")
}

// Graphics is a fake core.GraphicsProvider
type Graphics struct {
	Recorder   *Recorder
	Fail       error
	FailUpload error

	Context *GraphicsContext
}

// CreateContext implements interface
func (g *Graphics) CreateContext(w core.Window) (core.GraphicsContext, error) {
	if g.Fail != nil {
		return nil, g.Fail
	}
	g.Recorder.Record("acquire graphics")
	g.Context = &GraphicsContext{graphics: g, Textures: map[uint32]image.Rectangle{}}
	return g.Context, nil
}

// GraphicsContext is a fake core.GraphicsContext
type GraphicsContext struct {
	graphics *Graphics

	Textures       map[uint32]image.Rectangle
	nextTexture    uint32
	ViewportWidth  int
	ViewportHeight int
	ClearColor     glm.Vec3
	Clears         int
	Destroyed      int
}

// Viewport implements interface
func (g *GraphicsContext) Viewport(width, height int) {
	g.ViewportWidth, g.ViewportHeight = width, height
}

// Clear implements interface
func (g *GraphicsContext) Clear(color glm.Vec3) {
	g.ClearColor = color
	g.Clears++
}

// UploadTexture implements interface
func (g *GraphicsContext) UploadTexture(img *image.RGBA) (uint32, error) {
	if g.graphics.FailUpload != nil {
		return 0, g.graphics.FailUpload
	}
	g.nextTexture++
	g.Textures[g.nextTexture] = img.Bounds()
	g.graphics.Recorder.Record("create texture %d", g.nextTexture)
	return g.nextTexture, nil
}

// DeleteTexture implements interface
func (g *GraphicsContext) DeleteTexture(handle uint32) {
	delete(g.Textures, handle)
	g.graphics.Recorder.Record("delete texture %d", handle)
}

// Destroy implements interface
func (g *GraphicsContext) Destroy() {
	g.Destroyed++
	g.graphics.Recorder.Record("release graphics")
}

// UI is a fake core.UIProvider
type UI struct {
	Recorder *Recorder
	Fail     error

	// Pressed lists button labels that report a press
	Pressed map[string]bool

	Context *UIContext
}

// CreateContext implements interface
func (u *UI) CreateContext(w core.Window, g core.GraphicsContext) (core.UIContext, error) {
	if u.Fail != nil {
		return nil, u.Fail
	}
	u.Recorder.Record("acquire ui")
	u.Context = &UIContext{ui: u}
	return u.Context, nil
}

// UIContext is a fake core.UIContext that records widget calls
type UIContext struct {
	ui *UI

	Events        []core.Event
	Width, Height int
	Frames        int
	Rendered      int
	Widgets       []string
	Destroyed     int
}

// ProcessEvent implements interface
func (u *UIContext) ProcessEvent(e core.Event) {
	u.Events = append(u.Events, e)
}

// SetDisplaySize implements interface
func (u *UIContext) SetDisplaySize(width, height int) {
	u.Width, u.Height = width, height
}

// NewFrame implements interface
func (u *UIContext) NewFrame() {
	u.Frames++
	u.Widgets = u.Widgets[:0]
}

// Render implements interface
func (u *UIContext) Render() {
	u.Rendered++
}

// Begin implements interface
func (u *UIContext) Begin(title string) bool {
	u.Widgets = append(u.Widgets, "begin "+title)
	return true
}

// End implements interface
func (u *UIContext) End() {
	u.Widgets = append(u.Widgets, "end")
}

// Text implements interface
func (u *UIContext) Text(format string, args ...interface{}) {
	u.Widgets = append(u.Widgets, "text "+fmt.Sprintf(format, args...))
}

// Button implements interface
func (u *UIContext) Button(label string) bool {
	u.Widgets = append(u.Widgets, "button "+label)
	return u.ui.Pressed[label]
}

// SameLine implements interface
func (u *UIContext) SameLine() {
	u.Widgets = append(u.Widgets, "same line")
}

// Image implements interface
func (u *UIContext) Image(texture uint32, width, height float32) {
	u.Widgets = append(u.Widgets, fmt.Sprintf("image %d %gx%g", texture, width, height))
}

// Destroy implements interface
func (u *UIContext) Destroy() {
	u.Destroyed++
	u.ui.Recorder.Record("release ui")
}

// Audio is a fake core.AudioProvider
type Audio struct {
	Recorder       *Recorder
	FailDevice     error
	FailContext    error
	FailBufferData error
	Extensions     map[string]bool

	Device  *AudioDevice
	Context *AudioContext
}

// OpenDevice implements interface
func (a *Audio) OpenDevice(name string) (core.AudioDevice, error) {
	if a.FailDevice != nil {
		return nil, a.FailDevice
	}
	a.Recorder.Record("acquire audio device")
	a.Device = &AudioDevice{audio: a, Name: name}
	return a.Device, nil
}

// AudioDevice is a fake core.AudioDevice
type AudioDevice struct {
	audio *Audio

	Name   string
	Closed int
}

// CreateContext implements interface
func (d *AudioDevice) CreateContext() (core.AudioContext, error) {
	if d.audio.FailContext != nil {
		return nil, d.audio.FailContext
	}
	d.audio.Recorder.Record("acquire audio context")
	d.audio.Context = &AudioContext{
		audio:   d.audio,
		Buffers: map[uint32]BufferData{},
		Sources: map[uint32]uint32{},
	}
	return d.audio.Context, nil
}

// Close implements interface
func (d *AudioDevice) Close() {
	d.Closed++
	d.audio.Recorder.Record("release audio device")
}

// BufferData is what was uploaded into a fake buffer
type BufferData struct {
	Format    audio.Format
	Size      int
	Frequency int
}

// AudioContext is a fake core.AudioContext
type AudioContext struct {
	audio *Audio

	Buffers   map[uint32]BufferData
	Sources   map[uint32]uint32
	next      uint32
	Played    []uint32
	Destroyed int
}

// HasExtension implements interface
func (a *AudioContext) HasExtension(name string) bool {
	return a.audio.Extensions[name]
}

// GenBuffer implements interface
func (a *AudioContext) GenBuffer() uint32 {
	a.next++
	a.Buffers[a.next] = BufferData{}
	a.audio.Recorder.Record("create buffer %d", a.next)
	return a.next
}

// GenSource implements interface
func (a *AudioContext) GenSource() uint32 {
	a.next++
	a.Sources[a.next] = 0
	a.audio.Recorder.Record("create source %d", a.next)
	return a.next
}

// BufferData implements interface
func (a *AudioContext) BufferData(buffer uint32, format audio.Format, data []byte, frequency int) error {
	if a.audio.FailBufferData != nil {
		return a.audio.FailBufferData
	}
	a.Buffers[buffer] = BufferData{Format: format, Size: len(data), Frequency: frequency}
	return nil
}

// AttachBuffer implements interface
func (a *AudioContext) AttachBuffer(source, buffer uint32) {
	a.Sources[source] = buffer
}

// Play implements interface
func (a *AudioContext) Play(source uint32) {
	a.Played = append(a.Played, source)
}

// DeleteSource implements interface
func (a *AudioContext) DeleteSource(source uint32) {
	delete(a.Sources, source)
	a.audio.Recorder.Record("delete source %d", source)
}

// DeleteBuffer implements interface
func (a *AudioContext) DeleteBuffer(buffer uint32) {
	delete(a.Buffers, buffer)
	a.audio.Recorder.Record("delete buffer %d", buffer)
}

// Destroy implements interface
func (a *AudioContext) Destroy() {
	a.Destroyed++
	a.audio.Recorder.Record("release audio context")
}
