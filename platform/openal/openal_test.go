package openal

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/fun/audio"
	"github.com/devblok/fun/core"
	"github.com/g3n/engine/audio/al"
)

var (
	_ core.AudioProvider = Provider{}
	_ core.AudioContext  = (*Context)(nil)
)

func TestFormatEnum(t *testing.T) {
	lookup := func(name string) uint32 {
		if name == "AL_FORMAT_STEREO_FLOAT32" {
			return 0x10011
		}
		return 0
	}
	tests := []struct {
		format audio.Format
		want   uint32
		ok     bool
	}{
		{audio.FormatMono8, al.FormatMono8, true},
		{audio.FormatMono16, al.FormatMono16, true},
		{audio.FormatStereo8, al.FormatStereo8, true},
		{audio.FormatStereo16, al.FormatStereo16, true},
		{audio.FormatStereoFloat32, 0x10011, true},
		{audio.FormatMonoFloat32, 0, false},
		{audio.FormatNone, 0, false},
	}
	for _, test := range tests {
		t.Run(test.format.String(), func(t *testing.T) {
			c := qt.New(t)
			got, ok := formatEnum(test.format, lookup)
			c.Assert(ok, qt.Equals, test.ok)
			c.Assert(got, qt.Equals, test.want)
		})
	}
}
