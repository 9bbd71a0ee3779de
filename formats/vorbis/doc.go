// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio behind the audio.Source
// interface, wrapping github.com/jfreymuth/oggvorbis.
//
//	file, _ := os.Open("clip.ogg")
//	src, err := vorbis.Decoder{}.Decode(file)
//
// oggvorbis already produces float32 samples; the wrapper only adapts
// its frame-counted reads to the module's sample-counted convention.
package vorbis
