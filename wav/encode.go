// Package wav writes oscillator output to WAVE files.
package wav

import (
	"encoding/binary"
	"io"

	"github.com/faiface/sawscope"
	"github.com/faiface/sawscope/pcm"
	"github.com/pkg/errors"
)

// headerSize is the size of header as written by binary.Write.
const headerSize = 44

// header is the canonical 44-byte RIFF/WAVE header of an uncompressed PCM file.
type header struct {
	RiffMark      [4]byte
	FileSize      int32
	WaveMark      [4]byte
	FmtMark       [4]byte
	FormatSize    int32
	FormatType    int16
	NumChans      int16
	SampleRate    int32
	ByteRate      int32
	BytesPerFrame int16
	BitsPerSample int16
	DataMark      [4]byte
	DataSize      int32
}

// Encode writes a WAVE file of n samples pulled from src to w. format must be
// sawscope.DeviceFormat. The sample count is known up front, so the header is written once
// with its final sizes and w need not seek.
func Encode(w io.Writer, src sawscope.Source, n int, format sawscope.Format) error {
	if err := format.Check(); err != nil {
		return errors.Wrap(err, "wav")
	}
	if n < 0 {
		return errors.Errorf("wav: invalid sample count %d", n)
	}

	dataSize := n * format.Width()
	h := header{
		RiffMark:      [4]byte{'R', 'I', 'F', 'F'},
		FileSize:      int32(headerSize - 8 + dataSize),
		WaveMark:      [4]byte{'W', 'A', 'V', 'E'},
		FmtMark:       [4]byte{'f', 'm', 't', ' '},
		FormatSize:    16,
		FormatType:    1,
		NumChans:      int16(format.NumChannels),
		SampleRate:    int32(format.SampleRate),
		ByteRate:      int32(int(format.SampleRate) * format.Width()),
		BytesPerFrame: int16(format.Width()),
		BitsPerSample: int16(format.Precision) * 8,
		DataMark:      [4]byte{'d', 'a', 't', 'a'},
		DataSize:      int32(dataSize),
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return errors.Wrap(err, "wav: write header")
	}

	return errors.Wrap(pcm.Encode(w, src, n), "wav")
}
