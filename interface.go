package sawscope

import "time"

// Source produces signed 16-bit mono samples on demand. Fill must fill the whole slice and
// must not block: audio devices call it from their own goroutine with a deadline.
type Source interface {
	Fill(samples []int16)
}

// SampleRate is the number of samples per second.
type SampleRate int

// D returns the duration of n samples.
func (sr SampleRate) D(n int) time.Duration {
	return time.Second * time.Duration(n) / time.Duration(sr)
}

// N returns the number of samples that last for d duration.
func (sr SampleRate) N(d time.Duration) int {
	return int(d * time.Duration(sr) / time.Second)
}
