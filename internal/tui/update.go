package tui

import (
	"fmt"
	"math"

	"github.com/akyairhashvil/persimmon/internal/animator"
	"github.com/akyairhashvil/persimmon/internal/config"
	"github.com/akyairhashvil/persimmon/internal/countdown"
	"github.com/akyairhashvil/persimmon/internal/durations"
	"github.com/akyairhashvil/persimmon/internal/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const orbitStep = config.OrbitStepDegrees * math.Pi / 180

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case SceneLoadedMsg:
		return m.handleSceneLoaded(msg)
	case TickMsg:
		return m.handleTick(msg)
	case FrameMsg:
		return m.handleFrame(msg)
	case OpenElapsedMsg:
		return m.handleOpenElapsed(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		switch {
		case m.state.SettingsOpen:
			return m.handleSettingsKey(msg)
		case m.state.EditingTask:
			return m.handleTaskKey(msg)
		default:
			return m.handleNormalKey(msg)
		}
	}

	var cmd tea.Cmd
	switch {
	case m.state.SettingsOpen:
		m.settingsInput, cmd = m.settingsInput.Update(msg)
	case m.state.EditingTask:
		m.taskInput, cmd = m.taskInput.Update(msg)
	}
	return m, cmd
}

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	target := config.ProgressWidth
	if m.width < config.CompactModeThreshold {
		target = m.width / 3
	}
	m.progress.Width = util.Clamp(target, 1, config.ProgressWidth)
	return m, nil
}

func (m MainModel) handleSceneLoaded(msg SceneLoadedMsg) (MainModel, tea.Cmd) {
	if msg.Err != nil {
		m.loadErr = msg.Err
		m.setStatusError(fmt.Sprintf("Model unavailable: %v", msg.Err))
		util.LogError("load model", msg.Err)
		return m, nil
	}
	if m.scene != nil || msg.Scene == nil {
		return m, nil
	}
	if err := m.timer.Part.Bind(msg.Scene.Top); err != nil {
		util.LogError("bind top part", err)
		return m, nil
	}
	m.scene = msg.Scene
	m.loadErr = nil
	util.Logger.Info("model loaded", "path", m.modelPath, "top_points", len(msg.Scene.Top.Points), "bottom_points", len(msg.Scene.Bottom.Points))
	return m, nil
}

// startSession runs the click sequence for the button at idx: countdown,
// open tween, and the delayed switch to the close tween.
func (m MainModel) startSession(idx int) (MainModel, tea.Cmd) {
	minutes, ok := m.store.At(idx)
	if !ok {
		return m, nil
	}
	now := m.now()
	gen, err := m.timer.Countdown.Start(minutes * 60)
	if err != nil {
		m.setStatusError(err.Error())
		util.LogError("start countdown", err)
		return m, nil
	}
	if m.state.Session.Active() {
		util.Logger.Info("session superseded", "session_id", m.state.Session.ID.String())
	}
	m.state = selectDuration(m.state, idx, minutes, now)
	m.focusedButton = idx

	cmds := []tea.Cmd{tickCmd(gen), openElapsedCmd(m.state.Session.ID)}
	if epoch, ok := m.timer.Animator.Open(now); ok {
		cmds = append(cmds, frameCmd(m.timer.FrameInterval, epoch))
	}
	cmds = append(cmds, m.timer.Title.flush())
	util.Logger.Info("session started",
		"session_id", m.state.Session.ID.String(),
		"minutes", minutes,
		"total_seconds", m.state.Session.TotalSeconds(),
		"started_at", m.state.Session.StartedAt)
	return m, tea.Batch(cmds...)
}

func (m MainModel) handleTick(msg TickMsg) (MainModel, tea.Cmd) {
	switch m.timer.Countdown.Tick(msg.Generation) {
	case countdown.TickContinue:
		remaining, _ := m.timer.Countdown.Remaining()
		m.state = countdownTicked(m.state, remaining)
		return m, tea.Batch(tickCmd(msg.Generation), m.timer.Title.flush())
	case countdown.TickFinished:
		util.Logger.Info("session finished",
			"session_id", m.state.Session.ID.String(),
			"minutes", m.state.Session.Minutes,
			"elapsed", m.now().Sub(m.state.Session.StartedAt).String())
		m.state = countdownFinished(m.state)
		return m, m.timer.Title.flush()
	}
	return m, nil
}

func (m MainModel) handleFrame(msg FrameMsg) (MainModel, tea.Cmd) {
	if m.timer.Animator.Step(msg.Epoch, msg.At) == animator.StepRunning {
		return m, frameCmd(m.timer.FrameInterval, msg.Epoch)
	}
	return m, nil
}

func (m MainModel) handleOpenElapsed(msg OpenElapsedMsg) (MainModel, tea.Cmd) {
	next, ok := openElapsed(m.state, msg.SessionID)
	if !ok {
		return m, nil
	}
	m.state = next
	if epoch, ok := m.timer.Animator.Close(m.now(), m.state.Session.Minutes); ok {
		return m, frameCmd(m.timer.FrameInterval, epoch)
	}
	return m, nil
}

func (m MainModel) handleMouse(msg tea.MouseMsg) (MainModel, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.zoom(1 / config.ZoomStep)
	case tea.MouseButtonWheelDown:
		m.zoom(config.ZoomStep)
	case tea.MouseButtonLeft:
		l := m.layout()
		if msg.Y != l.buttonsRow {
			return m, nil
		}
		for i, span := range l.buttons {
			if msg.X >= span.start && msg.X < span.end {
				return m.startSession(i)
			}
		}
	}
	return m, nil
}

func (m MainModel) handleNormalKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	m.clearStatus()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Select):
		if idx, ok := selectIndex(msg.String()); ok {
			return m.startSession(idx)
		}
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Start):
		return m.startSession(m.focusedButton)
	case key.Matches(msg, m.keys.OrbitLeft):
		m.orbit(-orbitStep, 0)
	case key.Matches(msg, m.keys.OrbitRight):
		m.orbit(orbitStep, 0)
	case key.Matches(msg, m.keys.OrbitUp):
		m.orbit(0, orbitStep)
	case key.Matches(msg, m.keys.OrbitDown):
		m.orbit(0, -orbitStep)
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoom(1 / config.ZoomStep)
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoom(config.ZoomStep)
	case key.Matches(msg, m.keys.ResetView):
		if m.scene != nil {
			m.scene.Camera.Reset()
		}
	case key.Matches(msg, m.keys.Settings):
		m.state = toggleSettings(m.state)
		m.settingsInput.SetValue(m.store.Text())
		m.settingsInput.CursorEnd()
		return m, m.settingsInput.Focus()
	case key.Matches(msg, m.keys.EditTask):
		m.state = setEditingTask(m.state, true)
		m.taskInput.CursorEnd()
		return m, m.taskInput.Focus()
	}
	return m, nil
}

func (m MainModel) handleSettingsKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit()
	case key.Matches(msg, m.keys.Cancel):
		m.closeSettings()
		m.store.SetText(durations.Format(m.store.Options()))
		m.clearStatus()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		text := m.settingsInput.Value()
		if !m.store.Apply(text) {
			m.setStatusError(fmt.Sprintf("No valid durations in %q; keeping %s", text, durations.Format(m.store.Options())))
			util.Logger.Warn("durations rejected", "input", text)
			return m, nil
		}
		m.closeSettings()
		m.state = durationsChanged(m.state, m.store.Options())
		m.focusedButton = util.Clamp(m.focusedButton, 0, m.store.Len()-1)
		m.setStatus("Durations: " + m.durationsLabel())
		util.Logger.Info("durations updated", "durations", m.store.Options())
		return m, nil
	}
	var cmd tea.Cmd
	m.settingsInput, cmd = m.settingsInput.Update(msg)
	m.store.SetText(m.settingsInput.Value())
	return m, cmd
}

// handleTaskKey mirrors keystrokes into the label. Enter ends editing and is
// never inserted.
func (m MainModel) handleTaskKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeyEnter, tea.KeyEsc:
		m.state = setEditingTask(m.state, false)
		m.taskInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.taskInput, cmd = m.taskInput.Update(msg)
	return m, cmd
}

func (m MainModel) quit() (MainModel, tea.Cmd) {
	m.timer.Teardown()
	util.Logger.Info("quit", "session_id", m.state.Session.ID.String())
	return m, tea.Sequence(m.timer.Title.flush(), tea.Quit)
}

func (m *MainModel) closeSettings() {
	if m.state.SettingsOpen {
		m.state = toggleSettings(m.state)
	}
	m.settingsInput.Blur()
}

func (m *MainModel) moveFocus(delta int) {
	n := m.store.Len()
	if n == 0 {
		return
	}
	m.focusedButton = ((m.focusedButton+delta)%n + n) % n
}

func (m *MainModel) orbit(dYaw, dPitch float64) {
	if m.scene != nil {
		m.scene.Camera.Orbit(dYaw, dPitch)
	}
}

func (m *MainModel) zoom(factor float64) {
	if m.scene != nil {
		m.scene.Camera.Zoom(factor)
	}
}

func (m *MainModel) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *MainModel) setStatusError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}

func (m *MainModel) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}
