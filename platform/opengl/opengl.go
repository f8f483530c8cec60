// Package opengl implements the graphics context on OpenGL 3.2 core,
// created through SDL.
package opengl

import (
	"errors"
	"image"

	"github.com/devblok/fun/core"
	"github.com/go-gl/gl/v3.2-core/gl"
	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// package errors
var (
	ErrNotSDLWindow = errors.New("window is not backed by sdl")
	ErrEmptyImage   = errors.New("image has no pixels")
)

// Provider implements core.GraphicsProvider
type Provider struct {
	VSync bool
}

// NewProvider creates a provider, vsync prefers adaptive sync
func NewProvider(cfg core.WindowConfiguration) *Provider {
	return &Provider{VSync: cfg.VSync}
}

// CreateContext implements core.GraphicsProvider
func (p *Provider) CreateContext(w core.Window) (core.GraphicsContext, error) {
	window, ok := w.Native().(*sdl.Window)
	if !ok {
		return nil, ErrNotSDLWindow
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		return nil, errors.New("sdl.GLCreateContext(): " + err.Error())
	}
	if err := window.GLMakeCurrent(glContext); err != nil {
		sdl.GLDeleteContext(glContext)
		return nil, errors.New("sdl.GLMakeCurrent(): " + err.Error())
	}
	p.setSwapInterval()

	if err := gl.Init(); err != nil {
		sdl.GLDeleteContext(glContext)
		return nil, errors.New("gl.Init(): " + err.Error())
	}
	log.WithFields(log.Fields{
		"version":  gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer": gl.GoStr(gl.GetString(gl.RENDERER)),
	}).Info("OpenGL context created")

	return &Context{glContext: glContext}, nil
}

func (p *Provider) setSwapInterval() {
	if !p.VSync {
		if err := sdl.GLSetSwapInterval(0); err != nil {
			log.WithError(err).Warn("Disabling vsync failed")
		}
		return
	}
	if err := sdl.GLSetSwapInterval(-1); err == nil {
		return
	}
	if err := sdl.GLSetSwapInterval(1); err != nil {
		log.WithError(err).Warn("Enabling vsync failed")
	}
}

// Context implements core.GraphicsContext
type Context struct {
	glContext sdl.GLContext
}

// Viewport implements interface
func (c *Context) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear implements interface
func (c *Context) Clear(color glm.Vec3) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// UploadTexture implements interface
func (c *Context) UploadTexture(img *image.RGBA) (uint32, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0, ErrEmptyImage
	}

	if stale := drainErrors(gl.GetError); stale > 0 {
		log.WithField("errors", stale).Debug("Discarded pending GL errors before upload")
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(bounds.Dx()),
		int32(bounds.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &handle)
		return 0, &Error{Call: "gl.TexImage2D()", Code: code}
	}
	return handle, nil
}

// DeleteTexture implements interface
func (c *Context) DeleteTexture(handle uint32) {
	gl.DeleteTextures(1, &handle)
}

// Destroy implements interface
func (c *Context) Destroy() {
	sdl.GLDeleteContext(c.glContext)
}
