// SPDX-License-Identifier: EPL-2.0

// Package landauloop stretches an audio clip into a much longer loop
// whose repetition period is Landau's function g(n), where n is the
// clip length in whole seconds.
//
// The pipeline: find the partition of n whose parts have the maximum
// possible least common multiple, slice the clip into one segment per
// part, loop every segment independently for g(n) seconds, and sum the
// loops. Each segment repeats at its own period, so the mixture only
// realigns — and the output only repeats — after g(n) seconds. A
// 60-second clip this way yields a loop that does not repeat for
// 1021020 seconds, close to twelve days.
//
// # Quick start
//
//	file, _ := os.Open("clip.wav")
//	defer file.Close()
//
//	src, _ := wav.Decoder{}.Decode(file)
//	out, res, err := landauloop.Extend(src, landauloop.Options{})
//	if err != nil {
//	    // handle
//	}
//	// out spans res.LCM seconds; res.Partition holds the segmentation
//
// # Formats
//
// The formats subpackages decode WAV, MP3, Ogg Vorbis and AIFF behind
// the audio.Source interface; output is written as 16-bit PCM WAV. The
// audio package also provides a Resampler and MonoMixer, useful for
// keeping the output buffer (g(n) x rate x channels samples) within
// reach of real machines.
//
// # Building blocks
//
// The landau package computes the optimal partition on its own, and
// compose loops an already-decoded buffer with full control over
// segment ordering, normalization and unit resolution. Extend is the
// thin convenience layer over the two.
package landauloop
