package tui

import (
	"time"

	"github.com/akyairhashvil/persimmon/internal/config"
	"github.com/akyairhashvil/persimmon/internal/scene"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// --- Messages ---

// TickMsg is one countdown second for the run with Generation.
type TickMsg struct {
	Generation uint64
	At         time.Time
}

// FrameMsg asks the animator to sample the tween with Epoch.
type FrameMsg struct {
	Epoch uint64
	At    time.Time
}

// OpenElapsedMsg fires once the open phase of a session is over.
type OpenElapsedMsg struct {
	SessionID uuid.UUID
}

// SceneLoadedMsg delivers the loaded model, or the reason it failed.
type SceneLoadedMsg struct {
	Scene *scene.Scene
	Err   error
}

func tickCmd(generation uint64) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Generation: generation, At: t}
	})
}

func frameCmd(interval time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Epoch: epoch, At: t}
	})
}

func openElapsedCmd(id uuid.UUID) tea.Cmd {
	return tea.Tick(config.OpenDuration, func(time.Time) tea.Msg {
		return OpenElapsedMsg{SessionID: id}
	})
}

func loadSceneCmd(path string) tea.Cmd {
	return func() tea.Msg {
		s, err := scene.Load(path)
		return SceneLoadedMsg{Scene: s, Err: err}
	}
}
