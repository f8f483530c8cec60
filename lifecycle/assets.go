package lifecycle

import (
	"fmt"

	"github.com/devblok/fun/audio"
	log "github.com/sirupsen/logrus"
)

// ImageAsset is an image uploaded as a texture.
// When Loaded is false none of the other fields but Path are meaningful.
type ImageAsset struct {
	Handle uint32
	Width  int
	Height int
	Loaded bool
	Path   string
}

// AudioAsset is a sound uploaded into a buffer with a source bound to it
type AudioAsset struct {
	Buffer    uint32
	Source    uint32
	Format    audio.Format
	Frequency int
	Loaded    bool
	Path      string
}

type registration struct {
	name    string
	release func()
}

// registry keeps release functions of loaded assets in load order
type registry struct {
	entries []registration
}

func (r *registry) add(name string, release func()) {
	r.entries = append(r.entries, registration{name: name, release: release})
}

// release frees every asset once, the last loaded first
func (r *registry) release() {
	for idx := len(r.entries) - 1; idx >= 0; idx-- {
		e := r.entries[idx]
		e.release()
		log.WithField("asset", e.name).Debug("Asset released")
	}
	r.entries = nil
}

func (m *Manager) canLoad() bool {
	if m.source == nil || m.graphics == nil || m.audio == nil {
		return false
	}
	switch m.state {
	case AudioReady, AssetsLoaded, Running:
		return true
	}
	return false
}

func (m *Manager) assetPath(name string) string {
	full, err := m.locator.Path(name)
	if err != nil {
		return name
	}
	return full
}

// LoadImageAsset decodes the named image and uploads it as a texture.
// On failure the returned asset has Loaded unset and nothing is kept
// for release; the error is a *DecodeError when the file is missing
// or can't be decoded.
func (m *Manager) LoadImageAsset(name string) (*ImageAsset, error) {
	img := &ImageAsset{Path: name}
	if !m.canLoad() {
		return img, ErrNotReady
	}

	data, err := m.source.ReadFile(name)
	if err != nil {
		return img, &DecodeError{Path: m.assetPath(name), Err: err}
	}
	pixels, err := m.backends.Images.DecodeImage(data)
	if err != nil {
		return img, &DecodeError{Path: m.assetPath(name), Err: err}
	}
	handle, err := m.graphics.UploadTexture(pixels)
	if err != nil {
		return img, fmt.Errorf("graphics.UploadTexture(%s): %w", name, err)
	}

	bounds := pixels.Bounds()
	img.Handle = handle
	img.Width = bounds.Dx()
	img.Height = bounds.Dy()
	img.Loaded = true

	m.assets.add(name, func() {
		if m.graphics != nil {
			m.graphics.DeleteTexture(handle)
		}
		img.Loaded = false
	})

	log.WithFields(log.Fields{
		"path":   name,
		"handle": handle,
		"width":  img.Width,
		"height": img.Height,
	}).Info("Image loaded")
	return img, nil
}

// LoadAudioAsset decodes the named sound with the decoder registered for
// container, uploads it into a new buffer and binds the buffer to a new
// source. On failure no handle is left behind.
func (m *Manager) LoadAudioAsset(name string, container audio.Container) (*AudioAsset, error) {
	sound := &AudioAsset{Path: name}
	if !m.canLoad() {
		return sound, ErrNotReady
	}

	decoder, ok := m.backends.AudioDecoders[container]
	if !ok {
		return sound, fmt.Errorf("%w: %s", ErrNoDecoder, container)
	}

	data, err := m.source.ReadFile(name)
	if err != nil {
		return sound, &DecodeError{Path: m.assetPath(name), Err: err}
	}
	pcm, err := decoder.DecodeAudio(data)
	if err != nil {
		return sound, &DecodeError{Path: m.assetPath(name), Err: err}
	}
	format, err := audio.FormatFor(pcm.Channels, pcm.SampleFormat, m.audio)
	if err != nil {
		return sound, fmt.Errorf("%s: %w", name, err)
	}

	buffer := m.audio.GenBuffer()
	if err := m.audio.BufferData(buffer, format, pcm.Data, pcm.Frequency); err != nil {
		m.audio.DeleteBuffer(buffer)
		return sound, fmt.Errorf("audio.BufferData(%s): %w", name, err)
	}
	source := m.audio.GenSource()
	m.audio.AttachBuffer(source, buffer)

	sound.Buffer = buffer
	sound.Source = source
	sound.Format = format
	sound.Frequency = pcm.Frequency
	sound.Loaded = true

	m.assets.add(name, func() {
		if m.audio != nil {
			m.audio.DeleteSource(source)
			m.audio.DeleteBuffer(buffer)
		}
		sound.Loaded = false
	})

	log.WithFields(log.Fields{
		"path":      name,
		"format":    format,
		"frequency": pcm.Frequency,
		"frames":    pcm.Frames(),
	}).Info("Sound loaded")
	return sound, nil
}

// PlayAudio starts playback of a loaded sound, anything else is ignored
func (m *Manager) PlayAudio(sound *AudioAsset) {
	if sound == nil || !sound.Loaded || m.audio == nil {
		return
	}
	m.audio.Play(sound.Source)
}
