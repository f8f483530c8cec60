package audio

import "fmt"

// Format is a buffer format understood by the audio backend
type Format int

// Buffer formats. The float formats are only available
// when the backend exposes Float32Extension.
const (
	FormatNone Format = iota
	FormatMono8
	FormatMono16
	FormatStereo8
	FormatStereo16
	FormatMonoFloat32
	FormatStereoFloat32
)

// Float32Extension is the backend extension that enables float buffers
const Float32Extension = "AL_EXT_FLOAT32"

func (f Format) String() string {
	switch f {
	case FormatMono8:
		return "mono8"
	case FormatMono16:
		return "mono16"
	case FormatStereo8:
		return "stereo8"
	case FormatStereo16:
		return "stereo16"
	case FormatMonoFloat32:
		return "mono_float32"
	case FormatStereoFloat32:
		return "stereo_float32"
	default:
		return "none"
	}
}

// Extensions reports which optional backend extensions are present
type Extensions interface {
	HasExtension(name string) bool
}

// UnsupportedFormatError is returned when a channel and sample
// format combination has no matching buffer format.
type UnsupportedFormatError struct {
	Channels     int
	SampleFormat SampleFormat
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported audio format: %d channel(s) of %s samples", e.Channels, e.SampleFormat)
}

// FormatFor picks the buffer format for the given layout.
// ext may be nil, in which case no extensions are assumed.
func FormatFor(channels int, sample SampleFormat, ext Extensions) (Format, error) {
	switch {
	case channels == 1 && sample == SampleU8:
		return FormatMono8, nil
	case channels == 1 && sample == SampleS16:
		return FormatMono16, nil
	case channels == 2 && sample == SampleU8:
		return FormatStereo8, nil
	case channels == 2 && sample == SampleS16:
		return FormatStereo16, nil
	case channels == 1 && sample == SampleF32 && hasFloat(ext):
		return FormatMonoFloat32, nil
	case channels == 2 && sample == SampleF32 && hasFloat(ext):
		return FormatStereoFloat32, nil
	}
	return FormatNone, &UnsupportedFormatError{
		Channels:     channels,
		SampleFormat: sample,
	}
}

func hasFloat(ext Extensions) bool {
	return ext != nil && ext.HasExtension(Float32Extension)
}
