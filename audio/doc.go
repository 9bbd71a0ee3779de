// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives the looper is built on.
//
// # Source interface
//
// Source is the streaming abstraction every decoder and processing
// stage implements:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1.0, 1.0]; ReadSamples returns
// io.EOF once the stream is exhausted. Stages compose by wrapping:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//
// # Buffers
//
// The loop composer revisits every segment of the input many times, so
// it works on a fully materialized Buffer rather than a stream:
//
//	buf, err := audio.ReadAll(src)
//	// buf.Data holds the whole clip, buf.Frames() its length
//
// # Pre-processing stages
//
// Resampler converts the sample rate using Catmull-Rom interpolation;
// MonoMixer averages channels down to one. Both shrink the eventual
// output buffer, whose size scales with rate x channels x g(n).
//
// # Registry
//
// Registry maps format keys to decoders so a caller can pick one from
// a file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
package audio
