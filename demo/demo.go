// Package demo is the scene shown by the fun binary: a texture panel
// and two buttons playing a mono and a stereo sound.
package demo

import (
	"fmt"

	"github.com/devblok/fun/audio"
	"github.com/devblok/fun/core"
	"github.com/devblok/fun/lifecycle"
	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

// Asset paths relative to the asset root
const (
	ImagePath  = "images/duck.png"
	MonoPath   = "audio/duck-quacking-loudly-three-times.wav"
	StereoPath = "audio/duck_vocalizations.ogg"
)

// Window titles and labels
const (
	TextureWindow   = "OpenGL Texture Test"
	AudioWindow     = "Audio Test"
	PlayMonoLabel   = "Play Mono SFX"
	PlayStereoLabel = "Play Stereo SFX"
	NotLoadedText   = "Failed to load texture image..."
)

// Background is cornflower blue
var Background = glm.Vec3{0.392, 0.584, 0.929}

// Demo implements lifecycle.Scene
type Demo struct {
	manager *lifecycle.Manager

	image  *lifecycle.ImageAsset
	mono   *lifecycle.AudioAsset
	stereo *lifecycle.AudioAsset
}

// New creates the demo scene
func New() *Demo {
	return &Demo{}
}

// Setup implements lifecycle.Scene. A missing image is tolerated,
// missing sounds are not.
func (d *Demo) Setup(m *lifecycle.Manager) error {
	d.manager = m

	if g := m.Graphics(); g != nil {
		g.Viewport(m.Size())
		g.Clear(Background)
	}

	image, err := m.LoadImageAsset(ImagePath)
	if err != nil {
		log.WithError(err).WithField("path", ImagePath).Warn("Texture not loaded")
	}
	d.image = image

	if d.mono, err = m.LoadAudioAsset(MonoPath, audio.ContainerWAV); err != nil {
		return fmt.Errorf("failed to load WAV file: %w", err)
	}
	if d.stereo, err = m.LoadAudioAsset(StereoPath, audio.ContainerVorbis); err != nil {
		return fmt.Errorf("failed to load OGG file: %w", err)
	}
	return nil
}

// Resize implements lifecycle.Scene
func (d *Demo) Resize(g core.GraphicsContext, width, height int) {
	g.Viewport(width, height)
}

// Draw implements lifecycle.Scene
func (d *Demo) Draw(g core.GraphicsContext) {
	g.Clear(Background)
}

// DrawUI implements lifecycle.Scene
func (d *Demo) DrawUI(ui core.UIContext) {
	ui.Begin(TextureWindow)
	if d.image != nil && d.image.Loaded {
		ui.Text("handle = %d", d.image.Handle)
		ui.Text("size = %d x %d", d.image.Width, d.image.Height)
		ui.Image(d.image.Handle, float32(d.image.Width), float32(d.image.Height))
	} else {
		ui.Text("%s", NotLoadedText)
	}
	ui.End()

	ui.Begin(AudioWindow)
	if ui.Button(PlayMonoLabel) {
		d.manager.PlayAudio(d.mono)
	}
	ui.SameLine()
	if ui.Button(PlayStereoLabel) {
		d.manager.PlayAudio(d.stereo)
	}
	ui.End()
}
