package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/cookbook/internal/tui/styles"
)

// control holds the identity and focus state shared by form fields.
type control struct {
	id      string
	label   string
	focused bool
}

func (c *control) ID() string        { return c.id }
func (c *control) Label() string     { return c.label }
func (c *control) Focused() bool     { return c.focused }
func (c *control) Blur()             { c.focused = false }
func (c *control) SetLabel(l string) { c.label = l }

func (c *control) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// pressed reports whether msg is enter or space.
func pressed(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	s := key.String()
	return s == "enter" || s == " "
}

// Checkbox is an on/off form field, used for "Show password".
type Checkbox struct {
	control
	checked bool
}

// NewCheckbox creates an unchecked Checkbox.
func NewCheckbox(id, label string) *Checkbox {
	return &Checkbox{control: control{id: id, label: label}}
}

func (c *Checkbox) Toggle()            { c.checked = !c.checked }
func (c *Checkbox) SetChecked(on bool) { c.checked = on }
func (c *Checkbox) Checked() bool      { return c.checked }

// Update toggles a focused checkbox on enter or space.
func (c *Checkbox) Update(msg tea.Msg) (*Checkbox, tea.Cmd) {
	if c.focused && pressed(msg) {
		c.Toggle()
	}
	return c, nil
}

// View renders the label and the box.
func (c *Checkbox) View() string {
	label := styles.FormLabelStyle
	if c.focused {
		label = styles.FormLabelFocusedStyle
	}

	box := styles.CheckboxUncheckedStyle.Render("[ ]")
	if c.checked {
		box = styles.CheckboxCheckedStyle.Render("[✓]")
	}
	if c.focused {
		box = styles.FormLabelFocusedStyle.Render(box)
	}
	return label.Render(c.label+": ") + box
}

// Button submits a form. A disabled button ignores input.
type Button struct {
	control
	disabled bool
	danger   bool
}

// NewButton creates an enabled primary Button.
func NewButton(id, label string) *Button {
	return &Button{control: control{id: id, label: label}}
}

func (b *Button) SetDisabled(d bool) { b.disabled = d }
func (b *Button) Disabled() bool     { return b.disabled }

// SetDanger draws the button in the destructive colour.
func (b *Button) SetDanger(d bool) { b.danger = d }

// Update reports whether a focused, enabled button was pressed.
func (b *Button) Update(msg tea.Msg) (*Button, tea.Cmd, bool) {
	if !b.focused || b.disabled {
		return b, nil, false
	}
	return b, nil, pressed(msg)
}

// View renders the button.
func (b *Button) View() string {
	switch {
	case b.disabled:
		return styles.ButtonDisabledStyle.Render(b.label)
	case b.danger && b.focused:
		return styles.ButtonDangerStyle.Render(b.label)
	case b.danger:
		return styles.ButtonDangerUnfocusedStyle.Render(b.label)
	case b.focused:
		return styles.ButtonPrimaryStyle.Render(b.label)
	default:
		return styles.ButtonPrimaryUnfocusedStyle.Render(b.label)
	}
}
