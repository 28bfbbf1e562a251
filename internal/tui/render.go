package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/persimmon/internal/config"
	"github.com/akyairhashvil/persimmon/internal/countdown"
	"github.com/akyairhashvil/persimmon/internal/models"
	"github.com/akyairhashvil/persimmon/internal/scene"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	headerHeight  = 3
	popoverHeight = 5
	buttonGap     = " "
)

// buttonSpan is the half-open column range [start, end) of one button.
type buttonSpan struct {
	start, end int
}

type viewLayout struct {
	canvasWidth  int
	canvasHeight int
	buttonsRow   int
	buttonsLeft  int
	buttons      []buttonSpan
}

// layout is shared by View and mouse hit-testing so a click lands on the
// button that was drawn.
func (m MainModel) layout() viewLayout {
	canvasH := m.height - config.ChromeHeight
	if m.state.SettingsOpen {
		canvasH -= popoverHeight
	}
	l := viewLayout{
		canvasWidth:  max(m.width, config.MinCanvasWidth),
		canvasHeight: max(canvasH, config.MinCanvasHeight),
	}
	l.buttonsRow = headerHeight + l.canvasHeight

	total := 0
	widths := make([]int, 0, m.store.Len())
	for i, minutes := range m.store.Options() {
		w := lipgloss.Width(m.theme.Button.Render(buttonLabel(i, minutes)))
		widths = append(widths, w)
		total += w
	}
	if len(widths) > 1 {
		total += (len(widths) - 1) * len(buttonGap)
	}
	if m.width > total {
		l.buttonsLeft = (m.width - total) / 2
	}
	x := l.buttonsLeft
	for _, w := range widths {
		l.buttons = append(l.buttons, buttonSpan{start: x, end: x + w})
		x += w + len(buttonGap)
	}
	return l
}

func buttonLabel(idx, minutes int) string {
	if idx < 9 {
		return fmt.Sprintf("%d:%s", idx+1, FormatMinutes(minutes))
	}
	return FormatMinutes(minutes)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m MainModel) View() string {
	l := m.layout()
	sections := []string{
		m.renderHeader(),
		m.renderCanvas(l),
		m.renderButtons(l),
	}
	if m.state.SettingsOpen {
		sections = append(sections, m.renderSettings())
	}
	sections = append(sections, "", m.renderTaskLabel(), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m MainModel) renderHeader() string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	inner := m.width - lipgloss.Width(frame.Render(""))
	if inner < 1 {
		inner = 1
	}

	status := m.theme.Dim.Render("Pick a duration to start")
	if remaining, ok := m.timer.Countdown.Remaining(); ok {
		clock := fmt.Sprintf("%s %s", m.phaseLabel(), countdown.FormatClock(remaining))
		if m.width >= config.CompactModeThreshold {
			clock += "  " + m.progress.ViewAs(m.timer.Countdown.Elapsed())
		}
		status = m.theme.Focused.Render(clock)
	}
	content := fmt.Sprintf("%s  %s  |  %s", m.theme.Header.Render(config.AppName), status, m.theme.Dim.Render("v"+versionLabel()))
	return frame.Width(inner + frame.GetHorizontalPadding()).Render(truncateLabel(content, inner))
}

func (m MainModel) phaseLabel() string {
	switch m.state.Session.Phase {
	case models.PhaseOpening:
		return "Opening"
	case models.PhaseClosing:
		return "Closing"
	}
	return "Running"
}

func (m MainModel) renderCanvas(l viewLayout) string {
	if m.scene == nil {
		msg := m.theme.Dim.Render("Loading model...")
		if m.loadErr != nil {
			msg = m.theme.Error.Render(truncateLabel("Model unavailable: "+m.loadErr.Error(), l.canvasWidth))
		}
		return lipgloss.Place(l.canvasWidth, l.canvasHeight, lipgloss.Center, lipgloss.Center, msg)
	}

	frame := scene.Render(m.scene, l.canvasWidth, l.canvasHeight)
	lines := make([]string, len(frame.Cells))
	for y, row := range frame.Cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].Part == row[start].Part {
				continue
			}
			b.WriteString(m.partStyle(row[start].Part).Render(cellRun(row[start:x])))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (m MainModel) partStyle(part int) lipgloss.Style {
	switch part {
	case 0:
		return m.theme.Calyx
	case 1:
		return m.theme.Fruit
	}
	return lipgloss.NewStyle()
}

func cellRun(cells []scene.Cell) string {
	runes := make([]rune, len(cells))
	for i, c := range cells {
		runes[i] = c.Glyph
	}
	return string(runes)
}

func (m MainModel) renderButtons(l viewLayout) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", l.buttonsLeft))
	for i, minutes := range m.store.Options() {
		if i > 0 {
			b.WriteString(buttonGap)
		}
		style := m.theme.Button
		switch {
		case i == m.state.ActiveButton:
			style = m.theme.ButtonActive
		case i == m.focusedButton:
			style = m.theme.ButtonFocused
		}
		b.WriteString(style.Render(buttonLabel(i, minutes)))
	}
	return b.String()
}

func (m MainModel) renderSettings() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Focused.Render("Durations (minutes, comma separated)"),
		m.settingsInput.View(),
		m.theme.Dim.Render(helpLine([]key.Binding{m.keys.Save, m.keys.Cancel})),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.theme.Popover.Render(body))
}

func (m MainModel) renderTaskLabel() string {
	var box string
	if m.state.EditingTask {
		box = m.theme.Input.Render(m.taskInput.View())
	} else {
		frame := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.theme.Border).
			Padding(0, 1)
		maxWidth := m.width - lipgloss.Width(frame.Render(""))
		box = frame.Render(m.theme.Label.Render(truncateLabel(m.Task(), maxWidth)))
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
}

func (m MainModel) renderFooter() string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	inner := m.width - lipgloss.Width(frame.Render(""))
	if inner < 1 {
		inner = 1
	}

	var content string
	switch {
	case m.statusMessage != "":
		style := m.theme.Status
		if m.statusIsError {
			style = m.theme.Error
		}
		content = style.Render(truncateLabel(m.statusMessage, inner))
	case m.state.SettingsOpen:
		content = m.theme.Dim.Render(helpLine([]key.Binding{m.keys.Save, m.keys.Cancel}))
	case m.state.EditingTask:
		content = m.theme.Dim.Render("[enter]done|[esc]done")
	default:
		content = m.theme.Dim.Render(truncateLabel(helpLine(m.keys.ShortHelp()), inner))
	}
	return frame.Width(inner + frame.GetHorizontalPadding()).Render(content)
}

// durationsLabel lists the options the way the buttons show them.
func (m MainModel) durationsLabel() string {
	opts := m.store.Options()
	labels := make([]string, len(opts))
	for i, minutes := range opts {
		labels[i] = FormatMinutes(minutes)
	}
	return strings.Join(labels, ", ")
}
