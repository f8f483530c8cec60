// Package imgui implements the immediate mode UI with Dear ImGui,
// fed by SDL input and drawn with OpenGL.
package imgui

import (
	"errors"
	"fmt"
	"time"

	"github.com/devblok/fun/core"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// package errors
var (
	ErrNotSDLWindow = errors.New("window is not backed by sdl")
)

// Provider implements core.UIProvider
type Provider struct{}

// CreateContext implements core.UIProvider. The graphics context must
// be current on the calling thread.
func (Provider) CreateContext(w core.Window, g core.GraphicsContext) (core.UIContext, error) {
	window, ok := w.Native().(*sdl.Window)
	if !ok {
		return nil, ErrNotSDLWindow
	}

	ctx := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	mapKeys(io)

	r, err := newRenderer(io)
	if err != nil {
		ctx.Destroy()
		return nil, err
	}
	return &Context{
		context:  ctx,
		io:       io,
		window:   window,
		renderer: r,
		last:     time.Now(),
	}, nil
}

// Context implements core.UIContext
type Context struct {
	context  *imgui.Context
	io       imgui.IO
	window   *sdl.Window
	renderer *renderer

	last        time.Time
	buttonsDown [3]bool
}

// ProcessEvent implements interface
func (c *Context) ProcessEvent(e core.Event) {
	switch et := e.Raw.(type) {
	case *sdl.MouseWheelEvent:
		c.io.AddMouseWheelDelta(float32(et.X), float32(et.Y))
	case *sdl.MouseButtonEvent:
		if et.State != sdl.PRESSED {
			break
		}
		switch et.Button {
		case sdl.BUTTON_LEFT:
			c.buttonsDown[0] = true
		case sdl.BUTTON_RIGHT:
			c.buttonsDown[1] = true
		case sdl.BUTTON_MIDDLE:
			c.buttonsDown[2] = true
		}
	case *sdl.TextInputEvent:
		c.io.AddInputCharacters(et.GetText())
	case *sdl.KeyboardEvent:
		if et.Type == sdl.KEYDOWN {
			c.io.KeyPress(int(et.Keysym.Scancode))
		} else if et.Type == sdl.KEYUP {
			c.io.KeyRelease(int(et.Keysym.Scancode))
		}
		c.io.KeyShift(sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT)
		c.io.KeyCtrl(sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL)
		c.io.KeyAlt(sdl.SCANCODE_LALT, sdl.SCANCODE_RALT)
		c.io.KeySuper(sdl.SCANCODE_LGUI, sdl.SCANCODE_RGUI)
	}
}

// SetDisplaySize implements interface. The pixel size given is not used,
// the window size is read back instead so HiDPI scaling is kept.
func (c *Context) SetDisplaySize(_, _ int) {
	c.io.SetDisplaySize(c.displaySize())
}

func (c *Context) displaySize() imgui.Vec2 {
	width, height := c.window.GetSize()
	return imgui.Vec2{X: float32(width), Y: float32(height)}
}

func (c *Context) framebufferSize() imgui.Vec2 {
	width, height := c.window.GLGetDrawableSize()
	return imgui.Vec2{X: float32(width), Y: float32(height)}
}

// NewFrame implements interface
func (c *Context) NewFrame() {
	c.io.SetDisplaySize(c.displaySize())

	now := time.Now()
	c.io.SetDeltaTime(float32(now.Sub(c.last).Seconds()))
	c.last = now

	x, y, state := sdl.GetMouseState()
	c.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		c.io.SetMouseButtonDown(i, c.buttonsDown[i] || state&sdl.Button(button) != 0)
		c.buttonsDown[i] = false
	}

	imgui.NewFrame()
}

// Render implements interface
func (c *Context) Render() {
	imgui.Render()
	c.renderer.render(c.displaySize(), c.framebufferSize(), imgui.RenderedDrawData())
}

// Begin implements interface
func (c *Context) Begin(title string) bool {
	return imgui.Begin(title)
}

// End implements interface
func (c *Context) End() {
	imgui.End()
}

// Text implements interface
func (c *Context) Text(format string, args ...interface{}) {
	imgui.Text(fmt.Sprintf(format, args...))
}

// Button implements interface
func (c *Context) Button(label string) bool {
	return imgui.Button(label)
}

// SameLine implements interface
func (c *Context) SameLine() {
	imgui.SameLine()
}

// Image implements interface
func (c *Context) Image(texture uint32, width, height float32) {
	imgui.Image(imgui.TextureID(texture), imgui.Vec2{X: width, Y: height})
}

// Destroy implements interface
func (c *Context) Destroy() {
	c.renderer.destroy()
	c.context.Destroy()
}

func mapKeys(io imgui.IO) {
	keys := map[int]int{
		imgui.KeyTab:        sdl.SCANCODE_TAB,
		imgui.KeyLeftArrow:  sdl.SCANCODE_LEFT,
		imgui.KeyRightArrow: sdl.SCANCODE_RIGHT,
		imgui.KeyUpArrow:    sdl.SCANCODE_UP,
		imgui.KeyDownArrow:  sdl.SCANCODE_DOWN,
		imgui.KeyPageUp:     sdl.SCANCODE_PAGEUP,
		imgui.KeyPageDown:   sdl.SCANCODE_PAGEDOWN,
		imgui.KeyHome:       sdl.SCANCODE_HOME,
		imgui.KeyEnd:        sdl.SCANCODE_END,
		imgui.KeyInsert:     sdl.SCANCODE_INSERT,
		imgui.KeyDelete:     sdl.SCANCODE_DELETE,
		imgui.KeyBackspace:  sdl.SCANCODE_BACKSPACE,
		imgui.KeySpace:      sdl.SCANCODE_SPACE,
		imgui.KeyEnter:      sdl.SCANCODE_RETURN,
		imgui.KeyEscape:     sdl.SCANCODE_ESCAPE,
		imgui.KeyA:          sdl.SCANCODE_A,
		imgui.KeyC:          sdl.SCANCODE_C,
		imgui.KeyV:          sdl.SCANCODE_V,
		imgui.KeyX:          sdl.SCANCODE_X,
		imgui.KeyY:          sdl.SCANCODE_Y,
		imgui.KeyZ:          sdl.SCANCODE_Z,
	}
	for imguiKey, nativeKey := range keys {
		io.KeyMap(imguiKey, nativeKey)
	}
}
