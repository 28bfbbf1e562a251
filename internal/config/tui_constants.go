package config

// Layout constants.
const (
	// MinCanvasWidth is the smallest scene viewport in cells.
	MinCanvasWidth = 20

	// MinCanvasHeight is the smallest scene viewport in rows.
	MinCanvasHeight = 8

	// ChromeHeight is the number of rows taken by header, buttons, label and footer.
	ChromeHeight = 12

	// CompactModeThreshold hides the progress bar below this width.
	CompactModeThreshold = 60

	// ProgressWidth is the preferred countdown bar width.
	ProgressWidth = 30
)

// Input constraints.
const (
	// MaxTaskLength is the maximum task label length.
	MaxTaskLength = 80

	// MaxDurationsTextLength bounds the settings input.
	MaxDurationsTextLength = 120

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Camera control steps.
const (
	OrbitStepDegrees = 10.0
	ZoomStep         = 1.1
	MinCameraDist    = 2.0
	MaxCameraDist    = 15.0
)
