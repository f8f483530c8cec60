package core

import (
	"image"

	"github.com/devblok/fun/audio"
	glm "github.com/go-gl/mathgl/mgl32"
)

// Windowing creates the application window.
type Windowing interface {
	// CreateWindow opens a resizable window that can host
	// a graphics context
	CreateWindow(cfg WindowConfiguration) (Window, error)
}

// Window describes an open window and its event queue.
type Window interface {
	// Size returns the current drawable size in pixels
	Size() (width, height int)

	// PollEvents drains all pending events
	PollEvents() []Event

	// SwapBuffers presents the back buffer
	SwapBuffers()

	// Native returns the inner handle of the underlying API
	Native() interface{}

	// Destroy destroys internal members
	Destroy()
}

// EventType classifies window events the application reacts to
type EventType int

// Window event types
const (
	OtherEvent EventType = iota
	CloseEvent
	QuitEvent
	ResizeEvent
)

// Event is a polled window event. Width and Height are set for
// ResizeEvent, Raw carries the backend's original event.
type Event struct {
	Type   EventType
	Width  int
	Height int
	Raw    interface{}
}

// GraphicsProvider creates graphics contexts for windows.
type GraphicsProvider interface {
	// CreateContext creates a graphics context bound to the window
	// and makes it current
	CreateContext(w Window) (GraphicsContext, error)
}

// GraphicsContext is a live rendering context.
type GraphicsContext interface {
	// Viewport sets the drawable area
	Viewport(width, height int)

	// Clear clears the color buffer with the given color
	Clear(color glm.Vec3)

	// UploadTexture creates a 2D texture from the pixels
	// and returns its handle
	UploadTexture(img *image.RGBA) (uint32, error)

	// DeleteTexture frees a texture created by UploadTexture
	DeleteTexture(handle uint32)

	// Destroy destroys internal members
	Destroy()
}

// UIProvider creates immediate mode UI contexts.
type UIProvider interface {
	CreateContext(w Window, g GraphicsContext) (UIContext, error)
}

// UIContext is an immediate mode UI. Widget calls are only valid
// between NewFrame and Render. Button reports a press synchronously.
type UIContext interface {
	ProcessEvent(e Event)
	SetDisplaySize(width, height int)
	NewFrame()
	Render()

	Begin(title string) bool
	End()
	Text(format string, args ...interface{})
	Button(label string) bool
	SameLine()
	Image(texture uint32, width, height float32)

	// Destroy destroys internal members
	Destroy()
}

// AudioProvider opens audio devices.
type AudioProvider interface {
	// OpenDevice opens the named device, empty name is the default one
	OpenDevice(name string) (AudioDevice, error)
}

// AudioDevice is an open audio output device.
type AudioDevice interface {
	// CreateContext creates a context on the device and makes it current
	CreateContext() (AudioContext, error)

	// Close closes the device
	Close()
}

// AudioContext owns buffers and sources of the current audio context.
type AudioContext interface {
	audio.Extensions

	GenBuffer() uint32
	GenSource() uint32

	// BufferData uploads PCM data into the buffer
	BufferData(buffer uint32, format audio.Format, data []byte, frequency int) error

	// AttachBuffer binds the buffer to the source
	AttachBuffer(source, buffer uint32)

	Play(source uint32)
	DeleteSource(source uint32)
	DeleteBuffer(buffer uint32)

	// Destroy releases the context
	Destroy()
}

// ImageDecoder decodes encoded image files.
type ImageDecoder interface {
	DecodeImage(data []byte) (*image.RGBA, error)
}

// AudioDecoder decodes one audio container into PCM.
type AudioDecoder interface {
	DecodeAudio(data []byte) (*audio.PCM, error)
}

// AudioDecoderFunc adapts a function to AudioDecoder
type AudioDecoderFunc func(data []byte) (*audio.PCM, error)

// DecodeAudio implements interface
func (f AudioDecoderFunc) DecodeAudio(data []byte) (*audio.PCM, error) {
	return f(data)
}
