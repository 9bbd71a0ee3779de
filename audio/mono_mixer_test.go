// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}

	for i := 0; i < n; i++ {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 2, 100, func(frame, channel int) float32 {
		if channel == 0 {
			return 0.4
		}
		return 0.6
	})
	mixer := NewMonoMixer(src)

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	// Average of the channels: (0.4 + 0.6) / 2.
	expected := float32(0.5)
	for i := 0; i < n; i++ {
		if math.Abs(float64(buf[i]-expected)) > 0.001 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], expected)
		}
	}
}

func TestMonoMixer_MultiChannel(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 4, 100, func(frame, channel int) float32 {
		return float32(channel) / 10.0
	})
	mixer := NewMonoMixer(src)

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	// (0.0 + 0.1 + 0.2 + 0.3) / 4.
	expected := float32(0.15)
	for i := 0; i < n; i++ {
		if math.Abs(float64(buf[i]-expected)) > 0.001 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], expected)
		}
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 5)
	mixer := NewMonoMixer(src)

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}

	n, err = mixer.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newSilentSource(8000, 2, 100))

	n, err := mixer.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_PreservesMetadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 100)
	mixer := NewMonoMixer(src)

	if mixer.SampleRate() != 44100 {
		t.Errorf("MonoMixer.SampleRate() = %d, want 44100", mixer.SampleRate())
	}
	if mixer.BufSize() != src.BufSize() {
		t.Errorf("MonoMixer.BufSize() = %d, want %d", mixer.BufSize(), src.BufSize())
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newSilentSource(8000, 2, 1000))

	if err := mixer.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	src := newSineSource(8000, 2, 100000, 440.0)
	mixer := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src.Reset()
		for {
			_, err := mixer.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}
