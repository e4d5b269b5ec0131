package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/loadingline/internal/dom"
	"github.com/rileyhilliard/loadingline/internal/errors"
	"github.com/rileyhilliard/loadingline/internal/logger"
	"github.com/rileyhilliard/loadingline/pkg/loadingline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, opts ModelOptions) (Model, *loadingline.LoadingLine) {
	t.Helper()
	l, err := loadingline.New(dom.NewDiv(""), loadingline.Options{Percent: 50, Logger: logger.Noop()})
	require.NoError(t, err)
	return NewModel(l, opts), l
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	var next tea.Model = m
	for _, msg := range msgs {
		next, cmd = next.(Model).Update(msg)
	}
	return next.(Model), cmd
}

func TestNewModel_Defaults(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})

	assert.Equal(t, 10.0, m.step)
	assert.True(t, m.autoWidth)
	assert.Equal(t, BarWidthFor(80), m.cfg.Width)
	assert.Nil(t, m.Init())
}

func TestModel_StepKeys(t *testing.T) {
	m, l := newTestModel(t, ModelOptions{Step: 25, BarWidth: 20})

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 75, l.Percent())

	m, _ = press(m, runeKey("l"), runeKey("l"))
	assert.Equal(t, 100, l.Percent(), "add is clamped to 100")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft}, runeKey("h"), runeKey("-"), runeKey("h"), runeKey("h"))
	assert.Equal(t, 0, l.Percent(), "add is clamped to 0")
	assert.NoError(t, m.Err())
}

func TestModel_DigitResetFull(t *testing.T) {
	m, l := newTestModel(t, ModelOptions{BarWidth: 20})

	m, _ = press(m, runeKey("7"))
	assert.Equal(t, 70, l.Percent())

	m, _ = press(m, runeKey("f"))
	assert.Equal(t, 100, l.Percent())

	_, _ = press(m, runeKey("r"))
	assert.Equal(t, 0, l.Percent())
}

func TestModel_Toggle(t *testing.T) {
	m, l := newTestModel(t, ModelOptions{BarWidth: 20})

	m, _ = press(m, runeKey(" "))
	assert.False(t, l.Visible())
	assert.Contains(t, m.View(), "hidden")

	m, _ = press(m, runeKey("v"))
	assert.True(t, l.Visible())
	assert.Contains(t, m.View(), "visible")
	assert.Equal(t, 50, l.Percent(), "toggling should not change percent")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{BarWidth: 20})

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{})
	m, _ = press(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, BarWidthFor(100), m.cfg.Width)

	fixed, _ := newTestModel(t, ModelOptions{BarWidth: 20})
	fixed, _ = press(fixed, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 20, fixed.cfg.Width, "explicit width ignores resizes")
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{BarWidth: 10, Head: ">"})

	view := stripANSI(m.View())
	assert.Contains(t, view, "loading line")
	assert.Contains(t, view, "████>░░░░░   50%")
	assert.Contains(t, view, "percent 50")
	assert.Contains(t, view, "width 50%")
	assert.Contains(t, view, "quit")
}

func TestModel_ViewGradient(t *testing.T) {
	m, _ := newTestModel(t, ModelOptions{BarWidth: 10, Gradient: true})
	assert.Contains(t, stripANSI(m.View()), "   50%")
}

// failingLine rejects every percent change.
type failingLine struct {
	fakeLine
}

func (f *failingLine) SetPercent(float64) error {
	return errors.NewInvalidPercent("SetPercent", "x")
}
func (f *failingLine) AddPercent(float64) error {
	return errors.NewInvalidPercent("AddPercent", "x")
}
func (f *failingLine) Show() { f.visible = true }
func (f *failingLine) Hide() { f.visible = false }

func TestModel_ShowsErrors(t *testing.T) {
	m := NewModel(&failingLine{fakeLine{visible: true}}, ModelOptions{BarWidth: 10})

	m, _ = press(m, runeKey("l"))
	require.Error(t, m.Err())

	view := stripANSI(m.View())
	assert.Contains(t, view, SymbolFail+" AddPercent expects a number")
	assert.NotContains(t, view, "Pass a finite number", "detail lines are dropped")
}
