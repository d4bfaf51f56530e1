package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/cookbook/internal/tui/styles"
)

const (
	minInputWidth = 10
	maskChar      = '•'
)

// TextInput is a labelled single-line input with an inline error.
// Inputs made with NewPasswordInput are masked until revealed.
type TextInput struct {
	control
	model  textinput.Model
	width  int
	err    string
	secret bool
	masked bool
}

// NewTextInput returns an empty input limited to 256 characters.
func NewTextInput(id, label string) *TextInput {
	m := textinput.New()
	m.Prompt = ""
	m.CharLimit = 256
	m.Width = 30
	return &TextInput{control: control{id: id, label: label}, model: m}
}

// NewPasswordInput returns a masked input.
func NewPasswordInput(id, label string) *TextInput {
	t := NewTextInput(id, label)
	t.secret = true
	t.SetPassword(true)
	return t
}

// Focus starts the cursor.
func (t *TextInput) Focus() tea.Cmd {
	t.focused = true
	return t.model.Focus()
}

// Blur stops the cursor.
func (t *TextInput) Blur() {
	t.focused = false
	t.model.Blur()
}

func (t *TextInput) SetValue(v string)       { t.model.SetValue(v) }
func (t *TextInput) Value() string           { return t.model.Value() }
func (t *TextInput) SetPlaceholder(p string) { t.model.Placeholder = p }
func (t *TextInput) SetCharLimit(n int)      { t.model.CharLimit = n }
func (t *TextInput) SetError(msg string)     { t.err = msg }
func (t *TextInput) Error() string           { return t.err }
func (t *TextInput) IsPassword() bool        { return t.masked }
func (t *TextInput) Secret() bool            { return t.secret }

// SetPassword masks or unmasks the value.
func (t *TextInput) SetPassword(masked bool) {
	t.masked = masked
	t.model.EchoMode = textinput.EchoNormal
	if masked {
		t.model.EchoMode = textinput.EchoPassword
		t.model.EchoCharacter = maskChar
	}
}

// Reveal shows a secret input's value while show is true. Plain inputs
// ignore it.
func (t *TextInput) Reveal(show bool) {
	if t.secret {
		t.SetPassword(!show)
	}
}

// SetWidth fits the input and its label into width columns.
func (t *TextInput) SetWidth(width int) {
	t.width = width
	t.model.Width = max(width-len(t.label)-5, minInputWidth)
}

// Update forwards key input while focused.
func (t *TextInput) Update(msg tea.Msg) (*TextInput, tea.Cmd) {
	if !t.focused {
		return t, nil
	}
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return t, cmd
}

// View renders "label: value".
func (t *TextInput) View() string {
	label, input := styles.FormLabelStyle, styles.FormInputStyle
	if t.focused {
		label, input = styles.FormLabelFocusedStyle, styles.FormInputFocusedStyle
	}
	return label.Render(t.label+": ") + input.Render(t.model.View())
}

// Reset empties the input, clears its error and masks it again if secret.
func (t *TextInput) Reset() {
	t.model.Reset()
	t.err = ""
	t.Reveal(false)
}
