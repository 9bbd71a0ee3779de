// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio data for tests. It implements the
// audio.Source interface (without importing it, to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalFrames  int // frames to generate
	generated    int // frames generated so far
	waveform     func(frame int, channel int) float32
}

// NewMockSource creates a mock source generating totalFrames frames,
// with sample values produced by waveform per frame and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource generates silence.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return 0.0
	})
}

// NewSineSource generates a sine wave at the given frequency.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource generates a constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return value
	})
}

// NewSecondTagSource generates len(tags) seconds of audio where every
// sample of second i holds tags[i] on all channels. Lets composer tests
// verify which input second landed where in the output.
func NewSecondTagSource(sampleRate, channels int, tags []float32) *MockSource {
	return NewMockSource(sampleRate, channels, sampleRate*len(tags), func(frame, channel int) float32 {
		return tags[frame/sampleRate]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	framesRequested := len(dst) / m.channels
	framesAvailable := m.totalFrames - m.generated
	framesToWrite := min(framesRequested, framesAvailable)

	for frame := 0; frame < framesToWrite; frame++ {
		idx := m.generated + frame
		for ch := 0; ch < m.channels; ch++ {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += framesToWrite
	written := framesToWrite * m.channels

	if m.generated >= m.totalFrames {
		return written, io.EOF
	}

	return written, nil
}
