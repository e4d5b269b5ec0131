package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Line is a loading line the watch view can both read and drive.
type Line interface {
	LineView
	SetPercent(p float64) error
	AddPercent(d float64) error
	Show()
	Hide()
}

// ModelOptions configures the watch view.
type ModelOptions struct {
	Step     float64
	Gradient bool
	// BarWidth of 0 sizes the bar from the terminal width.
	BarWidth int
	Head     string
}

// Model is the Bubble Tea model behind `loadingline watch`.
type Model struct {
	line      Line
	keys      KeyMap
	help      help.Model
	cfg       LineConfig
	autoWidth bool
	gradient  bool
	step      float64
	err       error
	quitting  bool
}

// NewModel creates a watch view for line.
func NewModel(line Line, opts ModelOptions) Model {
	cfg := DefaultLineConfig(opts.BarWidth)
	if opts.Head != "" {
		cfg.Head = opts.Head
	}
	autoWidth := opts.BarWidth <= 0
	if autoWidth {
		cfg.Width = BarWidthFor(80)
	}
	step := opts.Step
	if step <= 0 {
		step = 10
	}

	return Model{
		line:      line,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		cfg:       cfg,
		autoWidth: autoWidth,
		gradient:  opts.Gradient,
		step:      step,
	}
}

// Init returns no initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if m.autoWidth {
			m.cfg.Width = BarWidthFor(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Increase):
		m.err = m.line.AddPercent(m.step)

	case key.Matches(msg, m.keys.Decrease):
		m.err = m.line.AddPercent(-m.step)

	case key.Matches(msg, m.keys.Digit):
		n := int(msg.String()[0] - '0')
		m.err = m.line.SetPercent(float64(n * 10))

	case key.Matches(msg, m.keys.Reset):
		m.err = m.line.SetPercent(0)

	case key.Matches(msg, m.keys.Full):
		m.err = m.line.SetPercent(100)

	case key.Matches(msg, m.keys.Toggle):
		if m.line.Visible() {
			m.line.Hide()
		} else {
			m.line.Show()
		}
	}
	return m, nil
}

// Err returns the error from the last operation, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the bar, a status line, and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("loading line"))
	b.WriteString("\n\n")

	if m.gradient {
		b.WriteString(RenderGradient(m.line, m.cfg))
	} else {
		b.WriteString(RenderLine(m.line, m.cfg))
	}
	b.WriteString("\n\n")

	b.WriteString(MutedStyle().Render(m.status()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorStyle().Render(SymbolFail + " " + firstLine(m.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) status() string {
	vis := SymbolShown + " visible"
	if !m.line.Visible() {
		vis = SymbolHidden + " hidden"
	}
	return fmt.Sprintf("percent %d  width %d%%  step %v  %s", m.line.Percent(), m.line.Width(), m.step, vis)
}

// firstLine drops the leading failure symbol and any detail lines of a
// structured error.
func firstLine(s string) string {
	s = strings.TrimPrefix(s, SymbolFail+" ")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
