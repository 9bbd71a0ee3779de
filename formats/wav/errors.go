package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported      = errors.New("only PCM encoding supported")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrInvalidChannelCount   = errors.New("channel count must be at least 1")
	ErrUnalignedSamples      = errors.New("sample count must be a multiple of channels")
)
