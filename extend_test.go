// SPDX-License-Identifier: EPL-2.0

package landauloop

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/landauloop/compose"
	"github.com/ik5/landauloop/internal/audiotest"
)

func TestExtend_Basic(t *testing.T) {
	t.Parallel()

	// 5 seconds at 100 Hz: g(5) = 6, so the output spans 6 seconds.
	const rate = 100
	src := audiotest.NewSilentSource(rate, 1, rate*5)

	out, res, err := Extend(src, Options{})
	if err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	if res.LCM != 6 {
		t.Errorf("Extend() g(5) = %d, want 6", res.LCM)
	}

	if got := res.Partition.Sum(); got != 5 {
		t.Errorf("Extend() partition sums to %d, want 5: %v", got, res.Partition)
	}

	if got := len(out.Data); got != 6*rate {
		t.Errorf("Extend() output length = %d, want %d", got, 6*rate)
	}
}

func TestExtend_TaggedPipeline(t *testing.T) {
	t.Parallel()

	// End-to-end check against direct computation for n=5 ([3 2]).
	const rate = 10
	tags := []float32{0.01, 0.02, 0.03, 0.04, 0.05}
	src := audiotest.NewSecondTagSource(rate, 1, tags)

	out, res, err := Extend(src, Options{
		Compose: compose.Options{Normalize: compose.NormalizeNone},
	})
	if err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	if res.LCM != 6 {
		t.Fatalf("g(5) = %d, want 6", res.LCM)
	}

	segA := tags[0:3]
	segB := tags[3:5]
	for sec := 0; sec < 6; sec++ {
		want := segA[sec%3] + segB[sec%2]
		got := out.Data[sec*rate]
		if math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("second %d = %v, want %v", sec, got, want)
		}
	}
}

func TestExtend_Stereo(t *testing.T) {
	t.Parallel()

	const rate = 50
	src := audiotest.NewConstantSource(rate, 2, rate*5, 0.25)

	out, _, err := Extend(src, Options{})
	if err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	if out.Channels != 2 {
		t.Errorf("output channels = %d, want 2", out.Channels)
	}

	if got := len(out.Data); got != 6*rate*2 {
		t.Errorf("output length = %d, want %d", got, 6*rate*2)
	}
}

func TestExtend_FractionalDurationRejected(t *testing.T) {
	t.Parallel()

	const rate = 100
	src := audiotest.NewSilentSource(rate, 1, rate*3+rate/2)

	_, _, err := Extend(src, Options{})
	if !errors.Is(err, ErrFractionalDuration) {
		t.Errorf("Extend() error = %v, want ErrFractionalDuration", err)
	}
}

func TestExtend_FractionalDurationTrimmed(t *testing.T) {
	t.Parallel()

	const rate = 100
	src := audiotest.NewSilentSource(rate, 1, rate*3+rate/2)

	out, res, err := Extend(src, Options{TrimRemainder: true})
	if err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	if res.LCM != 3 {
		t.Errorf("g(3) = %d, want 3", res.LCM)
	}

	if got := len(out.Data); got != 3*rate {
		t.Errorf("output length = %d, want %d", got, 3*rate)
	}
}

func TestExtend_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(100, 1, 0)

	_, _, err := Extend(src, Options{})
	if err == nil {
		t.Error("Extend() error = nil, want error for empty input")
	}
}

func TestExtend_PeakStaysInRange(t *testing.T) {
	t.Parallel()

	// Full-scale input; additive stacking would exceed 1.0 without the
	// normalization pass.
	const rate = 40
	src := audiotest.NewConstantSource(rate, 1, rate*5, 1.0)

	out, _, err := Extend(src, Options{})
	if err != nil {
		t.Fatalf("Extend() error = %v", err)
	}

	for i, s := range out.Data {
		if s > 1.0 || s < -1.0 {
			t.Fatalf("out.Data[%d] = %v, outside [-1, 1]", i, s)
		}
	}
}
