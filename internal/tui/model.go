// Package tui provides the Bubble Tea analyzer interface.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/pwscore/internal/analyzer"
	"github.com/verte-zerg/pwscore/internal/history"
	"github.com/verte-zerg/pwscore/internal/model"
	"github.com/verte-zerg/pwscore/internal/prompt"
	"github.com/verte-zerg/pwscore/internal/render"
)

var (
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model implements the Bubble Tea analyzer UI.
type Model struct {
	analyzer *analyzer.Analyzer
	recorder *history.Recorder

	input  textinput.Model
	width  int
	result *analyzer.Result
	errMsg string
}

// NewModel constructs an analyzer TUI model.
func NewModel(cfg model.Config, a *analyzer.Analyzer, rec *history.Recorder) *Model {
	input := textinput.New()
	input.Prompt = prompt.Prompt
	input.Placeholder = "password"
	if cfg.Mask {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '•'
	}
	input.Focus()
	return &Model{
		analyzer: a,
		recorder: rec,
		input:    input,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(0, msg.Width-len(prompt.Prompt)-1)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if prompt.IsExit(value) {
		return m, tea.Quit
	}
	if value == "" {
		return m, nil
	}
	res := m.analyzer.Analyze(value)
	m.result = &res
	m.errMsg = ""
	if err := m.recorder.Record(context.Background(), value, res); err != nil {
		m.errMsg = fmt.Sprintf("failed to record check: %v", err)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(render.Banner(analyzer.MinScore))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.result != nil {
		b.WriteString(render.Result(*m.result))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("enter: analyze · esc/ctrl+c: quit"))
	content := b.String()
	if m.width > 0 {
		content = lipgloss.NewStyle().MaxWidth(m.width).Render(content)
	}
	return content
}
