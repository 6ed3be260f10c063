// Package generators implements the phase-continuous signal generators behind the oscillator.
package generators

import "math"

const (
	// MaxSample is the largest magnitude a signed 16-bit sample can hold.
	MaxSample = math.MaxInt16

	// Headroom scales the peak of every generated wave below MaxSample.
	Headroom = 0.8

	// MinFrequency is what non-positive frequencies are clamped to.
	MinFrequency = 40.0
)

// Sawtooth fills dst with a sawtooth wave ramping from -peak to +peak, where
// peak = MaxSample * amp * Headroom, and returns the running amplitude after the last sample.
//
// prev is the value returned by the previous call. Passing it back keeps the wave
// continuous across calls, so a stream can be generated chunk by chunk. A zero-length dst
// returns prev unchanged.
//
// freq is clamped to [MinFrequency, sr/2] and amp to [0, 1].
func Sawtooth(dst []int16, sr int, freq, amp, prev float64) float64 {
	if len(dst) == 0 {
		return prev
	}

	peak := MaxSample * clampAmplitude(amp) * Headroom
	if peak == 0 || sr <= 0 {
		for i := range dst {
			dst[i] = 0
		}
		return 0
	}

	wavelength := float64(sr) / clampFrequency(sr, freq)
	step := 2 * peak / wavelength

	// The amplitude may have dropped since prev was produced.
	v := prev
	switch {
	case math.IsNaN(v) || v < -peak:
		v = -peak
	case v >= peak:
		v = math.Mod(v+peak, 2*peak) - peak
	}

	for i := range dst {
		v += step
		if v >= peak {
			v -= 2 * peak
		}
		dst[i] = int16(v)
	}
	return v
}

func clampFrequency(sr int, freq float64) float64 {
	nyquist := float64(sr) / 2
	switch {
	case math.IsNaN(freq) || freq <= 0:
		freq = MinFrequency
	}
	if freq > nyquist {
		freq = nyquist
	}
	return freq
}

func clampAmplitude(amp float64) float64 {
	switch {
	case math.IsNaN(amp) || amp < 0:
		return 0
	case amp > 1:
		return 1
	}
	return amp
}
