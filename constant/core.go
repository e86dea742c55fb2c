package constant

import "time"

// Event Loop & Frame Timing
const (
	// FrameRate is the default render rate, terminal output bound
	FrameRate = 30

	// FrameInterval is the render tick interval
	FrameInterval = time.Second / FrameRate

	// EventChannelSize is the buffered capacity between the tcell poller and the router loop
	EventChannelSize = 256

	// TaskChannelSize is the buffered capacity of fired deferred tasks awaiting the loop
	TaskChannelSize = 64

	// ResizeRetryDelay defers the zero-size container retry to the next loop tick
	ResizeRetryDelay = 0
)

// Strike Animation
const (
	// StrikeDuration is the delay before a strike reverts to the rest pose
	StrikeDuration = 150 * time.Millisecond

	// DrumDip is the downward displacement of an upright drum while struck
	DrumDip = 0.05

	// CymbalTiltX is subtracted from a struck cymbal's X rotation (tilt forward)
	CymbalTiltX = 0.15

	// CymbalTiltZ is added to a struck cymbal's Z rotation (tilt sideways)
	CymbalTiltZ = 0.1
)

// CymbalThickness is the striking-axis extent below which a pad is classified as a cymbal
const CymbalThickness = 0.1

// Logging
const (
	LogDir      = "logs"
	LogFileName = "drumkit.log"
	MaxLogSize  = 10 * 1024 * 1024
)
