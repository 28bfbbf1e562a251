package config

import "time"

// Timer durations.
const (
	// OpenDuration is how long the lid takes to lift and turn.
	OpenDuration = 2 * time.Second
	// TickInterval is the countdown period.
	TickInterval = time.Second
	// DefaultFPS drives the frame interval of running tweens.
	DefaultFPS = 30
	MaxFPS     = 120
)

// MaxDurationMinutes bounds a selectable duration to one day.
const MaxDurationMinutes = 24 * 60

// DefaultDurations are the selectable minute options on first start.
var DefaultDurations = []int{5, 15, 30}

// Title and labels.
const (
	AppName          = "persimmon"
	DefaultTitle     = "Persimmon Pomodoro"
	DefaultTaskLabel = "What are you working on?"
	SettingsFileName = "settings.json"
)

// Animation targets for the top part.
const (
	// LiftHeight is added to the top part's rest position while open.
	LiftHeight = 0.6
	// OpenYawDegrees is the yaw the top part turns to while open.
	OpenYawDegrees = 90.0
)

// Camera and lighting defaults.
const (
	CameraEyeX      = 0.0
	CameraEyeY      = 2.0
	CameraEyeZ      = 5.0
	CameraFOV       = 50.0
	AmbientLight    = 0.5
	DirectionalX    = 2.0
	DirectionalY    = 5.0
	DirectionalZ    = 2.0
	DirectionalGain = 1.0
)

// FrameInterval converts a frame rate into a tick period, clamped to [1, MaxFPS].
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	return time.Second / time.Duration(fps)
}
