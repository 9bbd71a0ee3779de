// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and encoding for the looper.
//
// Decoding wraps github.com/go-audio/wav, so arbitrary chunk layouts
// are handled; 16-bit PCM is the supported sample format, mono or
// multi-channel, any sample rate.
//
//	file, _ := os.Open("clip.wav")
//	src, err := wav.Decoder{}.Decode(file)
//
// The decoder returns an audio.Source yielding interleaved float32
// samples in [-1.0, 1.0]. Non-seekable readers are buffered in memory
// first, since go-audio requires an io.ReadSeeker.
//
// Encoding is a direct 16-bit PCM writer:
//
//	err := wav.WritePCM16(out, 44100, 2, samples)
//
// samples are interleaved and must align to the channel count. The
// writer streams in chunks, so multi-gigabyte loops do not need a
// second in-memory copy.
package wav
