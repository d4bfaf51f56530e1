package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/cookbook/internal/tui/styles"
)

// Spinner shows a loading animation, a label and how long the wait has been.
type Spinner struct {
	anim    spinner.Model
	label   string
	since   time.Time
	width   int
	noClock bool
	now     func() time.Time
}

// NewSpinner returns a Spinner using the dot animation.
func NewSpinner() *Spinner {
	return &Spinner{
		anim: spinner.New(spinner.WithSpinner(spinner.Dot)),
		now:  time.Now,
	}
}

// SetStatusText sets the label shown after the animation.
func (s *Spinner) SetStatusText(text string) { s.label = text }

// SetShowTime turns the elapsed clock on or off.
func (s *Spinner) SetShowTime(show bool) { s.noClock = !show }

// SetWidth pads the spinner into a block of the given width. Zero renders
// a bare line.
func (s *Spinner) SetWidth(width int) { s.width = width }

// Start resets the elapsed clock.
func (s *Spinner) Start() { s.since = s.now() }

// Elapsed is the time since Start, or zero if Start was never called.
func (s *Spinner) Elapsed() time.Duration {
	if s.since.IsZero() {
		return 0
	}
	return s.now().Sub(s.since)
}

// Tick produces the first animation frame message.
func (s *Spinner) Tick() tea.Msg {
	return s.anim.Tick()
}

// Update advances the animation on tick messages.
func (s *Spinner) Update(msg tea.Msg) (*Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.anim, cmd = s.anim.Update(msg)
	return s, cmd
}

// View renders the current frame.
func (s *Spinner) View() string {
	s.anim.Style = lipgloss.NewStyle().Foreground(styles.Secondary)

	parts := []string{
		s.anim.View(),
		lipgloss.NewStyle().Foreground(styles.Foreground).Render(s.label),
	}
	if !s.noClock && !s.since.IsZero() {
		clock := "(" + formatSpinnerDuration(s.Elapsed()) + ")"
		parts = append(parts, lipgloss.NewStyle().Foreground(styles.MutedLight).Render(clock))
	}
	line := strings.Join(parts, " ")

	if s.width <= 0 {
		return line
	}
	return lipgloss.NewStyle().Width(s.width).Padding(1, 2).Render(line)
}

// formatSpinnerDuration renders d to whole seconds, e.g. "42s" or "3m5s".
func formatSpinnerDuration(d time.Duration) string {
	return d.Truncate(time.Second).String()
}
