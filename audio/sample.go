package audio

import (
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/lixenwraith/vi-towers/asset"
)

// Sample is a WAV recording resolved by the asset library
type Sample = asset.Handle[*beep.Buffer]

// NewSample creates an unresolved handle decoding to rate
func NewSample(path string, rate beep.SampleRate) *Sample {
	return asset.NewHandle(path, func(r io.Reader) (*beep.Buffer, error) {
		return decodeWAV(r, rate)
	})
}

// decodeWAV reads the whole file into memory, resampling when the rates differ
func decodeWAV(r io.Reader, rate beep.SampleRate) (*beep.Buffer, error) {
	s, format, err := wav.Decode(r)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, s)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	return buf, nil
}
