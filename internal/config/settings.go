package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/akyairhashvil/persimmon/internal/util"
)

// Settings represents the structure of $XDG_CONFIG_HOME/persimmon/settings.json.
type Settings struct {
	Durations  DurationText `json:"durations,omitempty"`
	Debug      *bool        `json:"debug,omitempty"`
	FPS        *int         `json:"fps,omitempty"`
	LogFile    string       `json:"log_file,omitempty"`
	ModelPath  string       `json:"model_path,omitempty"`
	Task       string       `json:"task,omitempty"`
	Theme      string       `json:"theme,omitempty"`
	TitleLabel string       `json:"title_label,omitempty"`
}

// DurationText accepts either a JSON array of minutes or a comma-separated
// string and keeps the comma-separated form. Validation happens when the
// text is applied to the duration store.
type DurationText string

// UnmarshalJSON implements custom unmarshaling for DurationText
func (d *DurationText) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err == nil {
		parts := make([]string, 0, len(arr))
		for _, v := range arr {
			parts = append(parts, strconv.Itoa(v))
		}
		*d = DurationText(strings.Join(parts, ", "))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("durations must be an array or a string: %w", err)
	}
	*d = DurationText(str)
	return nil
}

// LoadSettings reads settings from path.
// A missing file yields empty Settings, not an error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", SettingsFileName, err)
	}
	return &settings, nil
}

// FPSOr returns the configured frame rate or fallback.
func (s *Settings) FPSOr(fallback int) int {
	if s == nil || s.FPS == nil || *s.FPS <= 0 {
		return fallback
	}
	return *s.FPS
}

// DebugEnabled reports whether debug logging was requested in the file.
func (s *Settings) DebugEnabled() bool {
	return s != nil && util.Deref(s.Debug)
}
