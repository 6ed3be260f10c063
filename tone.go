package sawscope

import (
	"math"
	"sync/atomic"

	"github.com/faiface/sawscope/generators"
)

const (
	// DefaultSampleRate is the rate audio devices are opened with unless told otherwise.
	DefaultSampleRate SampleRate = 48000

	// ChunkSize is the number of samples generated and kept for the scope at once.
	ChunkSize = 1024

	// MaxSample is the largest magnitude of a signed 16-bit sample.
	MaxSample = generators.MaxSample

	// Headroom scales every generated sample below MaxSample.
	Headroom = generators.Headroom

	// MinFrequency is the frequency at the left edge of the surface.
	MinFrequency = generators.MinFrequency

	// FrequencySpan is the frequency range covered from the left to the right edge.
	FrequencySpan = 1000.0
)

// Tone is what the oscillator plays: a frequency in Hz and an amplitude in [0, 1].
type Tone struct {
	Frequency float64
	Amplitude float64
}

// DefaultTone is what the oscillator plays before the pointer first moves: quiet, low and
// audible.
var DefaultTone = Tone{Frequency: 220, Amplitude: 0.1}

// Clamp returns t with a positive frequency and an amplitude in [0, 1].
func (t Tone) Clamp() Tone {
	if math.IsNaN(t.Frequency) || t.Frequency <= 0 {
		t.Frequency = MinFrequency
	}
	switch {
	case math.IsNaN(t.Amplitude) || t.Amplitude < 0:
		t.Amplitude = 0
	case t.Amplitude > 1:
		t.Amplitude = 1
	}
	return t
}

// ToneAt maps a pointer position on a w×h surface to a Tone. The horizontal position picks
// the frequency from MinFrequency to MinFrequency+FrequencySpan, the vertical position picks
// the amplitude, loudest at the top. Positions outside the surface are clamped to its edges.
func ToneAt(x, y, w, h int) Tone {
	if w <= 0 || h <= 0 {
		return Tone{Frequency: MinFrequency}
	}
	nx := unit(float64(x) / float64(w))
	ny := unit(float64(y) / float64(h))
	return Tone{
		Frequency: MinFrequency + FrequencySpan*nx,
		Amplitude: 1 - ny,
	}
}

func unit(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// ToneParams holds the current Tone. It is written by the input loop and read by the audio
// device. A whole Tone is swapped at once, so a reader never sees the frequency of one Tone
// paired with the amplitude of another.
type ToneParams struct {
	p atomic.Pointer[Tone]
}

// Load returns the current Tone, or the zero Tone if none was stored.
func (tp *ToneParams) Load() Tone {
	if t := tp.p.Load(); t != nil {
		return *t
	}
	return Tone{}
}

// Store clamps t and makes it current.
func (tp *ToneParams) Store(t Tone) {
	t = t.Clamp()
	tp.p.Store(&t)
}
