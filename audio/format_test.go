package audio_test

import (
	"encoding/binary"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/fun/audio"
)

type extensions map[string]bool

func (e extensions) HasExtension(name string) bool {
	return e[name]
}

func TestFormatFor(t *testing.T) {
	withFloat := extensions{audio.Float32Extension: true}
	tests := []struct {
		name     string
		channels int
		sample   audio.SampleFormat
		ext      audio.Extensions
		want     audio.Format
	}{
		{"mono u8", 1, audio.SampleU8, nil, audio.FormatMono8},
		{"mono s16", 1, audio.SampleS16, nil, audio.FormatMono16},
		{"stereo u8", 2, audio.SampleU8, nil, audio.FormatStereo8},
		{"stereo s16", 2, audio.SampleS16, nil, audio.FormatStereo16},
		{"mono f32", 1, audio.SampleF32, withFloat, audio.FormatMonoFloat32},
		{"stereo f32", 2, audio.SampleF32, withFloat, audio.FormatStereoFloat32},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := qt.New(t)
			got, err := audio.FormatFor(test.channels, test.sample, test.ext)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, test.want)
		})
	}
}

func TestFormatForUnsupported(t *testing.T) {
	tests := []struct {
		name     string
		channels int
		sample   audio.SampleFormat
		ext      audio.Extensions
	}{
		{"float without extension", 2, audio.SampleF32, extensions{}},
		{"float with nil extensions", 1, audio.SampleF32, nil},
		{"surround", 6, audio.SampleS16, nil},
		{"no channels", 0, audio.SampleU8, nil},
		{"unknown sample format", 1, audio.SampleUnknown, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := qt.New(t)
			got, err := audio.FormatFor(test.channels, test.sample, test.ext)
			c.Assert(got, qt.Equals, audio.FormatNone)

			var unsupported *audio.UnsupportedFormatError
			c.Assert(errors.As(err, &unsupported), qt.IsTrue)
			c.Assert(unsupported.Channels, qt.Equals, test.channels)
			c.Assert(unsupported.SampleFormat, qt.Equals, test.sample)
		})
	}
}

func TestFloatToS16(t *testing.T) {
	c := qt.New(t)
	out := audio.FloatToS16([]float32{0, 1, -1, 2, -2, 0.5})
	c.Assert(out, qt.HasLen, 12)

	want := []int16{0, 32767, -32767, 32767, -32768, 16384}
	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(out[i*2:]))
		c.Assert(got, qt.Equals, w, qt.Commentf("sample %d", i))
	}
}

func TestPCMFrames(t *testing.T) {
	c := qt.New(t)
	pcm := audio.PCM{Channels: 2, SampleFormat: audio.SampleS16, Data: make([]byte, 40)}
	c.Assert(pcm.Frames(), qt.Equals, 10)

	pcm.SampleFormat = audio.SampleUnknown
	c.Assert(pcm.Frames(), qt.Equals, 0)
}

func TestDecodeVorbisRejectsGarbage(t *testing.T) {
	c := qt.New(t)
	_, err := audio.DecodeVorbis([]byte("definitely not an ogg stream"))
	c.Assert(err, qt.Not(qt.IsNil))
}
