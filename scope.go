package sawscope

import "sync/atomic"

// SampleBuffer keeps the most recently generated chunk for the visualizer.
//
// There is one writer (the audio device) and any number of readers (the render loop). The
// writer fills a buffer that is not the published one and then publishes it with a single
// atomic store, so readers see whole chunks. Consistency is relaxed: three buffers rotate, and
// a reader that takes longer than two publishes to copy a chunk may see it being overwritten.
// The samples are only drawn, never played back, so that is accepted.
type SampleBuffer struct {
	bufs [3][ChunkSize]int16

	// published packs the index of the current buffer in the high 32 bits and its length in
	// the low 32 bits.
	published atomic.Uint64
}

// Back returns the buffer the writer fills next. Only the writer may call Back.
func (b *SampleBuffer) Back() []int16 {
	idx := (b.published.Load()>>32 + 1) % uint64(len(b.bufs))
	return b.bufs[idx][:]
}

// Publish makes the first n samples of the buffer last returned by Back the current chunk.
func (b *SampleBuffer) Publish(n int) {
	if n < 0 {
		n = 0
	}
	if n > ChunkSize {
		n = ChunkSize
	}
	idx := (b.published.Load()>>32 + 1) % uint64(len(b.bufs))
	b.published.Store(idx<<32 | uint64(n))
}

// Snapshot appends the current chunk to dst[:0] and returns it. A buffer nothing was published
// to yields an empty chunk.
func (b *SampleBuffer) Snapshot(dst []int16) []int16 {
	p := b.published.Load()
	idx, n := p>>32, int(p&0xffffffff)
	return append(dst[:0], b.bufs[idx][:n]...)
}
