// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio behind the audio.Source interface,
// wrapping github.com/go-audio/aiff. 16-bit PCM only.
package aiff
