package tui

import (
	"time"

	"github.com/akyairhashvil/persimmon/internal/config"
	"github.com/akyairhashvil/persimmon/internal/durations"
	"github.com/akyairhashvil/persimmon/internal/scene"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the root model.
type Options struct {
	Durations  *durations.Store
	Task       string
	ModelPath  string
	Theme      string
	TitleLabel string
	FPS        int
	Now        func() time.Time
}

// MainModel is the root bubbletea model. It owns the session state, the
// scene and the timers; View only reads them.
type MainModel struct {
	state         SessionState
	store         *durations.Store
	timer         TimerManager
	scene         *scene.Scene
	modelPath     string
	loadErr       error
	theme         Theme
	keys          keyMap
	settingsInput textinput.Model
	taskInput     textinput.Model
	progress      progress.Model
	focusedButton int
	statusMessage string
	statusIsError bool
	now           func() time.Time
	width, height int
}

func NewMainModel(opts Options) MainModel {
	store := opts.Durations
	if store == nil {
		store = durations.NewStore()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	task := opts.Task
	if task == "" {
		task = config.DefaultTaskLabel
	}

	si := textinput.New()
	si.Placeholder = "5, 15, 30"
	si.CharLimit = config.MaxDurationsTextLength
	si.Width = 30

	ti := textinput.New()
	ti.Placeholder = config.DefaultTaskLabel
	ti.CharLimit = config.MaxTaskLength
	ti.Width = 40
	ti.SetValue(task)

	m := MainModel{
		state:         newSessionState(),
		store:         store,
		timer:         NewTimerManager(opts.TitleLabel, opts.FPS),
		modelPath:     opts.ModelPath,
		theme:         ResolveTheme(opts.Theme),
		keys:          defaultKeyMap(),
		settingsInput: si,
		taskInput:     ti,
		progress:      progress.New(progress.WithDefaultGradient()),
		now:           now,
		width:         80,
		height:        24,
	}
	m.progress.Width = config.ProgressWidth
	return m
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(m.timer.Title.flush(), loadSceneCmd(m.modelPath))
}

// Task is the current task label.
func (m MainModel) Task() string { return m.taskInput.Value() }

// State exposes the session state for callers outside the event loop.
func (m MainModel) State() SessionState { return m.state }
