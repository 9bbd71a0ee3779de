package landauloop

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/landauloop/audio"
	"github.com/ik5/landauloop/compose"
	"github.com/ik5/landauloop/landau"
)

// ErrFractionalDuration is returned when the decoded clip does not span
// a whole number of units and trimming was not requested.
var ErrFractionalDuration = errors.New("clip length is not a whole number of units")

// Options configure Extend.
type Options struct {
	// TrimRemainder drops a trailing partial unit instead of failing
	// on it.
	TrimRemainder bool

	// Compose is passed through to the loop composer. Its
	// SamplesPerUnit also defines the unit used to derive n.
	Compose compose.Options
}

// Extend runs the whole pipeline on a decoded source: drain it into a
// buffer, derive its duration n in whole units, find the partition of n
// maximizing the LCM, and compose the looped output spanning g(n)
// units. The returned Result reports the partition and g(n) that were
// used.
//
// The source is read to EOF but not closed.
func Extend(src audio.Source, opts Options) (*audio.Buffer, landau.Result, error) {
	in, err := audio.ReadAll(src)
	if err != nil {
		return nil, landau.Result{}, fmt.Errorf("decoding input: %w", err)
	}

	spu := opts.Compose.SamplesPerUnit
	if spu == 0 {
		spu = in.Rate
	}
	if spu < 1 {
		return nil, landau.Result{}, compose.ErrInvalidResolution
	}

	n := in.Frames() / spu
	if rem := in.Frames() % spu; rem != 0 {
		if !opts.TrimRemainder {
			return nil, landau.Result{}, fmt.Errorf("%w: %d frames at %d frames per unit",
				ErrFractionalDuration, in.Frames(), spu)
		}
		in.Data = in.Data[:n*spu*in.Channels]
	}

	res, err := landau.Optimize(n)
	if err != nil {
		return nil, landau.Result{}, fmt.Errorf("optimizing partition: %w", err)
	}

	if res.LCM > math.MaxInt {
		return nil, landau.Result{}, compose.ErrOutputTooLarge
	}

	out, err := compose.Compose(in, res.Partition, int(res.LCM), opts.Compose)
	if err != nil {
		return nil, landau.Result{}, fmt.Errorf("composing loop: %w", err)
	}

	return out, res, nil
}
