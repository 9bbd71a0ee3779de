// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer holds a fully decoded clip: interleaved float32 samples in
// [-1,1] plus the stream parameters needed to interpret them. The loop
// composer works on whole buffers rather than streams because every
// segment is revisited many times while tiling.
type Buffer struct {
	Data     []float32
	Rate     int
	Channels int
}

// Frames returns the number of sample frames (samples per channel).
func (b *Buffer) Frames() int {
	if b.Channels < 1 {
		return 0
	}

	return len(b.Data) / b.Channels
}

// Duration returns the clip length in seconds.
func (b *Buffer) Duration() float64 {
	if b.Rate < 1 {
		return 0
	}

	return float64(b.Frames()) / float64(b.Rate)
}

// ReadAll drains src into a single Buffer. The source is read to EOF
// but not closed; that stays with the caller.
func ReadAll(src Source) (*Buffer, error) {
	if src.Channels() < 1 {
		return nil, ErrInvalidChannelCount
	}

	bufSize := src.BufSize()
	if bufSize < 1 {
		bufSize = 4096
	}
	// Keep reads frame-aligned so multi-channel sources never split a
	// frame across calls.
	bufSize -= bufSize % src.Channels()
	if bufSize < src.Channels() {
		bufSize = src.Channels()
	}

	data := make([]float32, 0, bufSize)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
	}

	if len(data)%src.Channels() != 0 {
		return nil, ErrTruncatedFrame
	}

	return &Buffer{
		Data:     data,
		Rate:     src.SampleRate(),
		Channels: src.Channels(),
	}, nil
}
