package speaker

import "github.com/faiface/sawscope"

// Reader adapts a sawscope.Source to the byte-oriented pull interface audio devices use. Both
// the oto player and the malgo data callback read from it.
type Reader struct {
	src sawscope.Source
	buf [sawscope.ChunkSize]int16
}

// NewReader returns a Reader pulling samples from src.
func NewReader(src sawscope.Source) *Reader {
	return &Reader{src: src}
}

// Read fills p with little-endian samples pulled from the Source. p is zeroed first, so a
// trailing byte that doesn't make up a whole sample is left silent. Read never fails and
// always returns len(p).
func (r *Reader) Read(p []byte) (n int, err error) {
	clear(p)

	out := p
	for ns := len(p) / 2; ns > 0; {
		k := min(ns, len(r.buf))
		samples := r.buf[:k]
		r.src.Fill(samples)
		out = out[sawscope.PutSamples(out, samples):]
		ns -= k
	}

	return len(p), nil
}
