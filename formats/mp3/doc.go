// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio behind the audio.Source interface,
// wrapping github.com/hajimehoshi/go-mp3.
//
//	file, _ := os.Open("clip.mp3")
//	src, err := mp3.Decoder{}.Decode(file)
//
// go-mp3 always yields stereo 16-bit PCM; the wrapper converts to the
// module's interleaved float32 convention. Wrap the source in
// audio.NewMonoMixer to fold it down before looping.
package mp3
