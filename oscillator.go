package sawscope

import "github.com/faiface/sawscope/generators"

// Oscillator plays the current Tone as a sawtooth wave and keeps the latest generated chunk in
// its SampleBuffer.
//
// Fill is meant to be called from a single goroutine, the audio device's or an encoder's.
// Params may be written from any other goroutine meanwhile.
type Oscillator struct {
	sr     SampleRate
	params ToneParams
	scope  SampleBuffer

	// running amplitude carried between calls
	state float64

}

// NewOscillator creates an Oscillator at the given sample rate, starting with tone t.
func NewOscillator(sr SampleRate, t Tone) *Oscillator {
	o := &Oscillator{sr: sr}
	o.params.Store(t)
	return o
}

// SampleRate returns the rate the Oscillator generates at.
func (o *Oscillator) SampleRate() SampleRate {
	return o.sr
}

// Params returns the Tone the Oscillator follows.
func (o *Oscillator) Params() *ToneParams {
	return &o.params
}

// Scope returns the buffer holding the latest generated chunk.
func (o *Oscillator) Scope() *SampleBuffer {
	return &o.scope
}

// Fill generates len(dst) samples into dst. Each chunk is generated into the scope buffer,
// published, and then copied out, so the scope always shows what was played last.
func (o *Oscillator) Fill(dst []int16) {
	for len(dst) > 0 {
		n := len(dst)
		if n > ChunkSize {
			n = ChunkSize
		}
		t := o.params.Load()
		back := o.scope.Back()[:n]
		o.state = generators.Sawtooth(back, int(o.sr), t.Frequency, t.Amplitude, o.state)
		o.scope.Publish(n)
		copy(dst, back)
		dst = dst[n:]
	}
}
