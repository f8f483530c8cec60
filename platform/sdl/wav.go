package sdl

import (
	"errors"

	"github.com/devblok/fun/audio"
	"github.com/veandco/go-sdl2/sdl"
)

// DecodeWAV decodes an in-memory WAV file with SDL. The samples are
// copied out of SDL owned memory before it is freed.
func DecodeWAV(data []byte) (*audio.PCM, error) {
	if len(data) == 0 {
		return nil, audio.ErrEmptyStream
	}
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, errors.New("sdl.RWFromMem(): " + err.Error())
	}

	buf, spec := sdl.LoadWAVRW(rw, true)
	if spec == nil {
		return nil, errors.New("sdl.LoadWAVRW(): " + lastError())
	}
	samples := make([]byte, len(buf))
	copy(samples, buf)
	sdl.FreeWAV(buf)

	return &audio.PCM{
		Channels:     int(spec.Channels),
		SampleFormat: sampleFormat(spec.Format),
		Frequency:    int(spec.Freq),
		Data:         samples,
	}, nil
}

func sampleFormat(f sdl.AudioFormat) audio.SampleFormat {
	switch f {
	case sdl.AUDIO_U8:
		return audio.SampleU8
	case sdl.AUDIO_S16SYS:
		return audio.SampleS16
	case sdl.AUDIO_F32SYS:
		return audio.SampleF32
	default:
		return audio.SampleUnknown
	}
}

func lastError() string {
	if err := sdl.GetError(); err != nil {
		return err.Error()
	}
	return "unknown error"
}
