// Package pcm writes oscillator output as headerless little-endian 16-bit PCM.
package pcm

import (
	"bufio"
	"io"

	"github.com/faiface/sawscope"
	"github.com/pkg/errors"
)

// Encode pulls n samples from src, one chunk at a time, and writes them to w.
func Encode(w io.Writer, src sawscope.Source, n int) error {
	if n < 0 {
		return errors.Errorf("pcm: invalid sample count %d", n)
	}

	var (
		bw      = bufio.NewWriter(w)
		samples [sawscope.ChunkSize]int16
		buf     [2 * sawscope.ChunkSize]byte
	)
	for n > 0 {
		chunk := samples[:min(n, len(samples))]
		src.Fill(chunk)
		m := sawscope.PutSamples(buf[:], chunk)
		if _, err := bw.Write(buf[:m]); err != nil {
			return errors.Wrap(err, "pcm")
		}
		n -= len(chunk)
	}
	return errors.Wrap(bw.Flush(), "pcm")
}
