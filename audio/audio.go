// Package audio describes decoded PCM data and maps its layout onto the
// buffer formats an audio backend understands.
package audio

import (
	"errors"
	"fmt"
)

// SampleFormat is the encoding of a single PCM sample
type SampleFormat int

// Sample formats produced by the decoders
const (
	SampleUnknown SampleFormat = iota
	SampleU8
	SampleS16
	SampleF32
)

func (s SampleFormat) String() string {
	switch s {
	case SampleU8:
		return "u8"
	case SampleS16:
		return "s16"
	case SampleF32:
		return "f32"
	default:
		return "unknown"
	}
}

// Container identifies how an audio file is packaged on disk
type Container int

// Supported audio containers
const (
	// ContainerWAV is uncompressed RIFF/WAVE
	ContainerWAV Container = iota
	// ContainerVorbis is Ogg Vorbis
	ContainerVorbis
)

func (c Container) String() string {
	switch c {
	case ContainerWAV:
		return "wav"
	case ContainerVorbis:
		return "ogg"
	default:
		return fmt.Sprintf("container(%d)", int(c))
	}
}

// PCM is raw interleaved sample data together with its layout.
// Multi-byte samples are little-endian.
type PCM struct {
	Channels     int
	SampleFormat SampleFormat
	Frequency    int
	Data         []byte
}

// Frames returns the number of sample frames held in Data
func (p *PCM) Frames() int {
	size := p.Channels * p.SampleFormat.Size()
	if size == 0 {
		return 0
	}
	return len(p.Data) / size
}

// Size returns the number of bytes one sample takes
func (s SampleFormat) Size() int {
	switch s {
	case SampleU8:
		return 1
	case SampleS16:
		return 2
	case SampleF32:
		return 4
	default:
		return 0
	}
}

// ErrEmptyStream is returned by decoders for streams without samples
var ErrEmptyStream = errors.New("audio stream contains no samples")
