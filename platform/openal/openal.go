// Package openal implements audio devices, contexts, buffers and
// sources with OpenAL.
package openal

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/devblok/fun/audio"
	"github.com/devblok/fun/core"
	"github.com/g3n/engine/audio/al"
	log "github.com/sirupsen/logrus"
)

// package errors
var (
	ErrNoFormat = errors.New("buffer format not available on this device")
)

// Provider implements core.AudioProvider
type Provider struct{}

// OpenDevice implements core.AudioProvider
func (Provider) OpenDevice(name string) (core.AudioDevice, error) {
	dev, err := al.OpenDevice(name)
	if err != nil {
		return nil, errors.New("al.OpenDevice(): " + err.Error())
	}
	return &Device{device: dev}, nil
}

// Device implements core.AudioDevice
type Device struct {
	device *al.Device
}

// CreateContext implements interface
func (d *Device) CreateContext() (core.AudioContext, error) {
	ctx, err := al.CreateContext(d.device, nil)
	if err != nil {
		return nil, errors.New("al.CreateContext(): " + err.Error())
	}
	if err := al.MakeContextCurrent(ctx); err != nil {
		al.DestroyContext(ctx)
		return nil, errors.New("al.MakeContextCurrent(): " + err.Error())
	}
	log.WithFields(log.Fields{
		"vendor":  al.GetString(al.Vendor),
		"version": al.GetString(al.Version),
	}).Info("OpenAL context created")
	return &Context{context: ctx}, nil
}

// Close implements interface
func (d *Device) Close() {
	if err := al.CloseDevice(d.device); err != nil {
		log.WithError(err).Warn("Closing audio device failed")
	}
}

// Context implements core.AudioContext on the current OpenAL context
type Context struct {
	context *al.Context
}

// HasExtension implements audio.Extensions
func (c *Context) HasExtension(name string) bool {
	return al.IsExtensionPresent(name)
}

// GenBuffer implements interface
func (c *Context) GenBuffer() uint32 {
	return al.GenBuffers(1)[0]
}

// GenSource implements interface
func (c *Context) GenSource() uint32 {
	return al.GenSource()
}

// BufferData implements interface
func (c *Context) BufferData(buffer uint32, format audio.Format, data []byte, frequency int) error {
	enum, ok := formatEnum(format, al.GetEnumValue)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoFormat, format)
	}
	if len(data) == 0 {
		return audio.ErrEmptyStream
	}
	al.BufferData(buffer, enum, unsafe.Pointer(&data[0]), uint32(len(data)), uint32(frequency))
	if err := al.GetError(); err != nil {
		return errors.New("al.BufferData(): " + err.Error())
	}
	return nil
}

// AttachBuffer implements interface
func (c *Context) AttachBuffer(source, buffer uint32) {
	al.Sourcei(source, al.Buffer, int32(buffer))
}

// Play implements interface
func (c *Context) Play(source uint32) {
	al.SourcePlay(source)
}

// DeleteSource implements interface
func (c *Context) DeleteSource(source uint32) {
	al.DeleteSources([]uint32{source})
}

// DeleteBuffer implements interface
func (c *Context) DeleteBuffer(buffer uint32) {
	al.DeleteBuffers([]uint32{buffer})
}

// Destroy implements interface
func (c *Context) Destroy() {
	al.DestroyContext(c.context)
}

// formatEnum maps a buffer format to its OpenAL enum. Float formats come
// from the extension and are looked up by name.
func formatEnum(f audio.Format, lookup func(name string) uint32) (uint32, bool) {
	switch f {
	case audio.FormatMono8:
		return al.FormatMono8, true
	case audio.FormatMono16:
		return al.FormatMono16, true
	case audio.FormatStereo8:
		return al.FormatStereo8, true
	case audio.FormatStereo16:
		return al.FormatStereo16, true
	case audio.FormatMonoFloat32:
		enum := lookup("AL_FORMAT_MONO_FLOAT32")
		return enum, enum != 0
	case audio.FormatStereoFloat32:
		enum := lookup("AL_FORMAT_STEREO_FLOAT32")
		return enum, enum != 0
	}
	return 0, false
}
