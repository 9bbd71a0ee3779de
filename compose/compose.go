// SPDX-License-Identifier: EPL-2.0

package compose

import (
	"math"
	"math/bits"
	"math/rand"
	"sort"

	"github.com/ik5/landauloop/audio"
	"github.com/ik5/landauloop/landau"
)

// Order controls how partition parts are laid out against the input
// before slicing. The layout decides which stretch of the input becomes
// which segment, so it changes the result, not just cosmetics.
type Order int

const (
	// OrderDescending slices the longest segment from the start of the
	// input. This is the documented default.
	OrderDescending Order = iota
	OrderAscending
	// OrderShuffled arranges parts pseudo-randomly; Options.Seed makes
	// the shuffle reproducible.
	OrderShuffled
)

// Normalization selects how the accumulated output is kept inside the
// representable sample range.
type Normalization int

const (
	// NormalizePeak scales the output down only when its peak exceeds
	// Options.TargetPeak. Quiet mixes are left untouched.
	NormalizePeak Normalization = iota
	// NormalizeFixed attenuates by 1/len(partition) regardless of
	// content, trading loudness for a content-independent gain.
	NormalizeFixed
	// NormalizeNone leaves the sum as-is. The caller owns clipping.
	NormalizeNone
)

// Options configure Compose. The zero value gives the documented
// defaults: descending order, peak normalization to 1.0, one unit per
// second, no explicit output cap.
type Options struct {
	Order Order
	// Seed drives OrderShuffled; ignored for the other orders.
	Seed int64

	Normalize Normalization
	// TargetPeak is the ceiling used by NormalizePeak; 0 means 1.0.
	TargetPeak float32

	// SamplesPerUnit sets the resolution of one partition unit in
	// frames. 0 means the buffer's sample rate, i.e. whole seconds.
	SamplesPerUnit int

	// MaxOutputFrames rejects outputs longer than this before any
	// allocation happens. 0 disables the cap (overflow of the machine
	// int is still rejected).
	MaxOutputFrames int
}

// Compose slices in according to partition, tiles every segment to
// targetUnits units, and accumulates the tiles into one output buffer.
//
// Every part must divide targetUnits so that tiling is integral; when
// targetUnits is the partition's LCM this holds by construction. The
// partition must cover the input exactly: sum(partition) units equals
// the buffer's frame count at the configured resolution.
func Compose(in *audio.Buffer, partition landau.Partition, targetUnits int, opts Options) (*audio.Buffer, error) {
	if in == nil || in.Channels < 1 {
		return nil, audio.ErrInvalidChannelCount
	}
	if targetUnits < 1 {
		return nil, ErrInvalidTarget
	}

	spu := opts.SamplesPerUnit
	if spu == 0 {
		spu = in.Rate
	}
	if spu < 1 {
		return nil, ErrInvalidResolution
	}

	if partition.Sum()*spu != in.Frames() {
		return nil, ErrPartitionMismatch
	}

	for _, d := range partition {
		if d < 1 || targetUnits%d != 0 {
			return nil, ErrIndivisibleTarget
		}
	}

	outFrames, ok := outputFrames(targetUnits, spu, in.Channels)
	if !ok || (opts.MaxOutputFrames > 0 && outFrames > opts.MaxOutputFrames) {
		return nil, ErrOutputTooLarge
	}

	parts := arrange(partition, opts)

	out := make([]float32, outFrames*in.Channels)
	offset := 0
	for _, d := range parts {
		segLen := d * spu * in.Channels
		seg := in.Data[offset : offset+segLen]
		offset += segLen

		for rep := 0; rep < targetUnits/d; rep++ {
			base := rep * segLen
			for i, s := range seg {
				out[base+i] += s
			}
		}
	}

	normalize(out, len(parts), opts)

	return &audio.Buffer{
		Data:     out,
		Rate:     in.Rate,
		Channels: in.Channels,
	}, nil
}

// outputFrames computes targetUnits*spu, reporting whether both the
// frame count and the backing sample count fit in int.
func outputFrames(targetUnits, spu, channels int) (int, bool) {
	hi, frames := bits.Mul64(uint64(targetUnits), uint64(spu))
	if hi != 0 || frames > math.MaxInt {
		return 0, false
	}

	hi, samples := bits.Mul64(frames, uint64(channels))
	if hi != 0 || samples > math.MaxInt {
		return 0, false
	}

	return int(frames), true
}

// arrange returns a copy of partition laid out per the ordering policy.
func arrange(partition landau.Partition, opts Options) []int {
	parts := make([]int, len(partition))
	copy(parts, partition)

	switch opts.Order {
	case OrderAscending:
		sort.Ints(parts)
	case OrderShuffled:
		rng := rand.New(rand.NewSource(opts.Seed))
		rng.Shuffle(len(parts), func(i, j int) {
			parts[i], parts[j] = parts[j], parts[i]
		})
	default:
		sort.Sort(sort.Reverse(sort.IntSlice(parts)))
	}

	return parts
}

func normalize(out []float32, segments int, opts Options) {
	switch opts.Normalize {
	case NormalizeFixed:
		if segments > 0 {
			scale(out, 1/float32(segments))
		}
	case NormalizeNone:
	default:
		target := opts.TargetPeak
		if target <= 0 {
			target = 1.0
		}
		if peak := peakAbs(out); peak > target {
			scale(out, target/peak)
		}
	}
}

func peakAbs(samples []float32) float32 {
	peak := float32(0)
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}

	return peak
}

func scale(samples []float32, gain float32) {
	for i := range samples {
		samples[i] *= gain
	}
}
