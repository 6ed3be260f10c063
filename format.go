package sawscope

import "github.com/pkg/errors"

// Format is the byte layout samples are played or written in.
type Format struct {
	SampleRate SampleRate

	// NumChannels is 1 for everything the oscillator produces.
	NumChannels int

	// Precision is the number of bytes of a single sample of one channel.
	Precision int
}

// DeviceFormat returns mono signed 16-bit samples at the given rate, the only layout
// PutSamples writes.
func DeviceFormat(sr SampleRate) Format {
	return Format{SampleRate: sr, NumChannels: 1, Precision: 2}
}

// Width returns the number of bytes per one sample (all channels).
func (f Format) Width() int {
	return f.NumChannels * f.Precision
}

// Check returns an error unless f is DeviceFormat at a positive rate.
func (f Format) Check() error {
	if f.SampleRate <= 0 {
		return errors.Errorf("invalid sample rate %d", f.SampleRate)
	}
	if f.NumChannels != 1 || f.Precision != 2 {
		return errors.Errorf("unsupported format: %d channels, %d bytes per sample", f.NumChannels, f.Precision)
	}
	return nil
}

// PutSamples encodes samples into p as little-endian int16 and returns the number of bytes
// written. p must hold at least 2*len(samples) bytes.
func PutSamples(p []byte, samples []int16) int {
	for i, v := range samples {
		p[2*i+0] = byte(v)
		p[2*i+1] = byte(v >> 8)
	}
	return 2 * len(samples)
}
