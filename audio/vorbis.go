package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jfreymuth/oggvorbis"
)

// DecodeVorbis decodes an entire Ogg Vorbis stream into
// signed 16-bit PCM.
func DecodeVorbis(data []byte) (*PCM, error) {
	samples, format, err := oggvorbis.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("oggvorbis.ReadAll(): %w", err)
	}
	if len(samples) == 0 {
		return nil, ErrEmptyStream
	}

	return &PCM{
		Channels:     format.Channels,
		SampleFormat: SampleS16,
		Frequency:    format.SampleRate,
		Data:         FloatToS16(samples),
	}, nil
}

// FloatToS16 quantizes float samples in [-1, 1] to little-endian int16.
// Out of range values are clamped.
func FloatToS16(samples []float32) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		v := math.Round(float64(s) * math.MaxInt16)
		if v > math.MaxInt16 {
			v = math.MaxInt16
		} else if v < math.MinInt16 {
			v = math.MinInt16
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v)))
	}
	return out
}
