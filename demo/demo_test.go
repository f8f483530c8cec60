package demo_test

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/fun/asset"
	"github.com/devblok/fun/audio"
	"github.com/devblok/fun/core"
	"github.com/devblok/fun/core/coretest"
	"github.com/devblok/fun/decode"
	"github.com/devblok/fun/demo"
	"github.com/devblok/fun/lifecycle"
)

func pcm(channels int) core.AudioDecoder {
	return core.AudioDecoderFunc(func(data []byte) (*audio.PCM, error) {
		return &audio.PCM{
			Channels:     channels,
			SampleFormat: audio.SampleS16,
			Frequency:    44100,
			Data:         make([]byte, 16),
		}, nil
	})
}

// start runs the demo on fakes over an asset folder holding the two
// sounds and, when withImage is set, the duck texture
func start(t *testing.T, withImage bool) (*coretest.Platform, *lifecycle.Manager, error) {
	dir := t.TempDir()
	root := filepath.Join(dir, "assets")
	files := map[string][]byte{
		demo.MonoPath:   []byte("RIFF"),
		demo.StereoPath: []byte("OggS"),
	}
	if withImage {
		var buf bytes.Buffer
		if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 16, 8))); err != nil {
			t.Fatal(err)
		}
		files[demo.ImagePath] = buf.Bytes()
	}
	for name, data := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	p := coretest.NewPlatform()
	m := lifecycle.NewManager(core.DefaultConfiguration, lifecycle.Backends{
		Windowing: p.Windowing,
		Graphics:  p.Graphics,
		UI:        p.UI,
		Audio:     p.Audio,
		Images:    decode.Images{},
		AudioDecoders: map[audio.Container]core.AudioDecoder{
			audio.ContainerWAV:    pcm(1),
			audio.ContainerVorbis: pcm(2),
		},
	}, asset.NewLocator("assets", func() (string, error) { return dir, nil }))
	t.Cleanup(m.Shutdown)
	return p, m, m.Startup(demo.New())
}

func TestDemoTexturePanel(t *testing.T) {
	c := qt.New(t)
	p, m, err := start(t, true)
	c.Assert(err, qt.IsNil)

	g := p.Graphics.Context
	c.Assert(g.ViewportWidth, qt.Equals, 640)
	c.Assert(g.ViewportHeight, qt.Equals, 480)
	c.Assert(g.ClearColor, qt.Equals, demo.Background)

	c.Assert(m.AdvanceFrame(), qt.IsNil)
	c.Assert(p.UI.Context.Widgets, qt.DeepEquals, []string{
		"begin OpenGL Texture Test",
		"text handle = 1",
		"text size = 16 x 8",
		"image 1 16x8",
		"end",
		"begin Audio Test",
		"button Play Mono SFX",
		"same line",
		"button Play Stereo SFX",
		"end",
	})
	c.Assert(p.Audio.Context.Played, qt.HasLen, 0)
}

func TestDemoMissingTexture(t *testing.T) {
	c := qt.New(t)
	p, m, err := start(t, false)
	c.Assert(err, qt.IsNil)

	c.Assert(m.AdvanceFrame(), qt.IsNil)
	c.Assert(p.UI.Context.Widgets[:3], qt.DeepEquals, []string{
		"begin OpenGL Texture Test",
		"text " + demo.NotLoadedText,
		"end",
	})
	c.Assert(p.Graphics.Context.Textures, qt.HasLen, 0)
}

func TestDemoButtonsPlaySounds(t *testing.T) {
	c := qt.New(t)
	p, m, err := start(t, true)
	c.Assert(err, qt.IsNil)

	ctx := p.Audio.Context
	var mono, stereo uint32
	for source, buffer := range ctx.Sources {
		switch ctx.Buffers[buffer].Format {
		case audio.FormatMono16:
			mono = source
		case audio.FormatStereo16:
			stereo = source
		}
	}
	c.Assert(mono, qt.Not(qt.Equals), uint32(0))
	c.Assert(stereo, qt.Not(qt.Equals), uint32(0))

	p.UI.Pressed[demo.PlayMonoLabel] = true
	c.Assert(m.AdvanceFrame(), qt.IsNil)
	c.Assert(ctx.Played, qt.DeepEquals, []uint32{mono})

	p.UI.Pressed = map[string]bool{demo.PlayStereoLabel: true}
	c.Assert(m.AdvanceFrame(), qt.IsNil)
	c.Assert(ctx.Played, qt.DeepEquals, []uint32{mono, stereo})
}

func TestDemoResizeAndDraw(t *testing.T) {
	c := qt.New(t)
	p, m, err := start(t, true)
	c.Assert(err, qt.IsNil)

	p.Windowing.Frames = [][]core.Event{{{Type: core.ResizeEvent, Width: 1024, Height: 768}}}
	clears := p.Graphics.Context.Clears
	c.Assert(m.AdvanceFrame(), qt.IsNil)
	c.Assert(p.Graphics.Context.ViewportWidth, qt.Equals, 1024)
	c.Assert(p.Graphics.Context.ViewportHeight, qt.Equals, 768)
	c.Assert(p.Graphics.Context.Clears, qt.Equals, clears+1)
}

func TestDemoMissingSoundIsFatal(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "assets"), 0o755); err != nil {
		t.Fatal(err)
	}

	p := coretest.NewPlatform()
	m := lifecycle.NewManager(core.DefaultConfiguration, lifecycle.Backends{
		Windowing:     p.Windowing,
		Graphics:      p.Graphics,
		UI:            p.UI,
		Audio:         p.Audio,
		Images:        decode.Images{},
		AudioDecoders: map[audio.Container]core.AudioDecoder{audio.ContainerWAV: pcm(1)},
	}, asset.NewLocator("assets", func() (string, error) { return dir, nil }))

	err := m.Startup(demo.New())
	c.Assert(err, qt.ErrorMatches, `initialization failed at stage assets: failed to load WAV file: .*`)
	c.Assert(m.State(), qt.Equals, lifecycle.Terminated)
	c.Assert(p.Recorder.Filter("release"), qt.HasLen, 5)
}
