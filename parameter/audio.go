package parameter

import "time"

// Feedback tones
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	ToneErrorHz     = 220.0
	ToneCommitHz    = 880.0
	ToneErrorLength = 120 * time.Millisecond
	ToneCommitLen   = 50 * time.Millisecond
)
