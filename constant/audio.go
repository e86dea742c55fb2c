package constant

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker output rate; samples at other rates are resampled
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 50 * time.Millisecond

	// AudioResampleQuality is the beep resampler quality (1-64)
	AudioResampleQuality = 4

	// AudioVolumeBase is the exponent base of the volume stage
	AudioVolumeBase = 2.0
)

// DefaultSoundsDir is where sample files are looked up relative to the working directory
const DefaultSoundsDir = "sounds"
