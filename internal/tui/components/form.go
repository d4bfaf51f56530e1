package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/cookbook/internal/tui/styles"
)

// FormField is anything a Form can hold and move focus between.
type FormField interface {
	ID() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	View() string
}

// FormSubmittedMsg is sent when the form's button is pressed.
type FormSubmittedMsg struct {
	FormID string
}

// FormCanceledMsg is sent when the form is dismissed with esc.
type FormCanceledMsg struct {
	FormID string
}

// Validator maps field ids to values and returns a message per invalid field.
// An empty result means the form can be submitted.
type Validator func(values map[string]string) map[string]string

// Form is a vertical list of fields with tab navigation and live validation.
//
// After every key the validator runs over the text values. Messages are shown
// only under fields the user has typed into, buttons stay disabled while any
// message remains, and a checkbox registered with SetRevealToggle unmasks the
// password inputs while checked.
type Form struct {
	id       string
	title    string
	fields   []FormField
	focus    int
	width    int
	showHelp bool

	submitted bool
	canceled  bool

	validator Validator
	errs      map[string]string
	quiet     map[string]bool
	revealID  string
}

// NewForm creates an empty Form.
func NewForm(id, title string) *Form {
	return &Form{
		id:       id,
		title:    title,
		showHelp: true,
		quiet:    map[string]bool{},
	}
}

// ID returns the form's identifier.
func (f *Form) ID() string {
	return f.id
}

// AddFields appends fields in display order.
func (f *Form) AddFields(fields ...FormField) {
	f.fields = append(f.fields, fields...)
}

// SetValidator sets the validator run by Validate.
func (f *Form) SetValidator(v Validator) {
	f.validator = v
}

// SetQuiet keeps the messages for ids out of the view. They still block
// submission.
func (f *Form) SetQuiet(ids ...string) {
	for _, id := range ids {
		f.quiet[id] = true
	}
}

// SetRevealToggle names the checkbox that unmasks password inputs.
func (f *Form) SetRevealToggle(checkboxID string) {
	f.revealID = checkboxID
}

// SetWidth sets the form width.
func (f *Form) SetWidth(width int) {
	f.width = width
}

// SetShowHelp shows or hides the key hints under the fields.
func (f *Form) SetShowHelp(show bool) {
	f.showHelp = show
}

// FocusIndex returns the position of the focused field.
func (f *Form) FocusIndex() int {
	return f.focus
}

// FocusedField returns the focused field, or nil for an empty form.
func (f *Form) FocusedField() FormField {
	if f.focus >= 0 && f.focus < len(f.fields) {
		return f.fields[f.focus]
	}
	return nil
}

// GetField returns the field with the given id, or nil.
func (f *Form) GetField(id string) FormField {
	for _, field := range f.fields {
		if field.ID() == id {
			return field
		}
	}
	return nil
}

// Value returns the text of the TextInput with the given id, or "".
func (f *Form) Value(id string) string {
	if ti, ok := f.GetField(id).(*TextInput); ok {
		return ti.Value()
	}
	return ""
}

// Values returns the text of every TextInput keyed by id.
func (f *Form) Values() map[string]string {
	values := make(map[string]string)
	for _, field := range f.fields {
		if ti, ok := field.(*TextInput); ok {
			values[ti.ID()] = ti.Value()
		}
	}
	return values
}

// Errors returns the messages from the last Validate, shown or not.
func (f *Form) Errors() map[string]string {
	return f.errs
}

// Valid reports whether the last Validate found no problems.
func (f *Form) Valid() bool {
	return len(f.errs) == 0
}

// SetError sets the inline error on the TextInput with the given id.
func (f *Form) SetError(id, msg string) {
	if ti, ok := f.GetField(id).(*TextInput); ok {
		ti.SetError(msg)
	}
}

// ClearErrors removes every inline error.
func (f *Form) ClearErrors() {
	for _, field := range f.fields {
		if ti, ok := field.(*TextInput); ok {
			ti.SetError("")
		}
	}
}

// Validate runs the validator and refreshes the inline errors, the buttons
// and the password masking.
func (f *Form) Validate() {
	f.errs = nil
	if f.validator != nil {
		f.errs = f.validator(f.Values())
	}

	reveal := false
	if cb, ok := f.GetField(f.revealID).(*Checkbox); ok {
		reveal = cb.Checked()
	}

	for _, field := range f.fields {
		switch typed := field.(type) {
		case *TextInput:
			msg := f.errs[typed.ID()]
			if typed.Value() == "" || f.quiet[typed.ID()] {
				msg = ""
			}
			typed.SetError(msg)
			typed.Reveal(reveal)
		case *Button:
			typed.SetDisabled(!f.Valid())
		}
	}
}

// Focus focuses the first field.
func (f *Form) Focus() tea.Cmd {
	return f.FocusField(0)
}

// Blur blurs every field.
func (f *Form) Blur() {
	for _, field := range f.fields {
		field.Blur()
	}
}

// FocusField moves focus to the field at index.
func (f *Form) FocusField(index int) tea.Cmd {
	if index < 0 || index >= len(f.fields) {
		return nil
	}
	if cur := f.FocusedField(); cur != nil {
		cur.Blur()
	}
	f.focus = index
	return f.fields[index].Focus()
}

// NextField moves focus down, wrapping at the end.
func (f *Form) NextField() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.FocusField((f.focus + 1) % len(f.fields))
}

// PrevField moves focus up, wrapping at the top.
func (f *Form) PrevField() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.FocusField((f.focus - 1 + len(f.fields)) % len(f.fields))
}

// Submitted reports whether the button was pressed since the last Reset.
func (f *Form) Submitted() bool {
	return f.submitted
}

// Canceled reports whether esc was pressed since the last Reset.
func (f *Form) Canceled() bool {
	return f.canceled
}

// Reset clears every value, unchecks every box and re-validates.
func (f *Form) Reset() {
	f.submitted = false
	f.canceled = false
	f.focus = 0
	for _, field := range f.fields {
		field.Blur()
		switch typed := field.(type) {
		case *TextInput:
			typed.Reset()
		case *Checkbox:
			typed.SetChecked(false)
		}
	}
	f.Validate()
}

// Update handles navigation keys, passes anything else to the focused field
// and re-validates.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f, f.NextField()
		case "shift+tab", "up":
			return f, f.PrevField()
		case "esc":
			f.canceled = true
			return f, func() tea.Msg { return FormCanceledMsg{FormID: f.id} }
		case "enter":
			// Enter in a text field advances like tab.
			if _, ok := f.FocusedField().(*TextInput); ok {
				return f, f.NextField()
			}
		}
	}

	var cmd tea.Cmd
	switch field := f.FocusedField().(type) {
	case *TextInput:
		_, cmd = field.Update(msg)
	case *Checkbox:
		_, cmd = field.Update(msg)
	case *Button:
		var activated bool
		_, cmd, activated = field.Update(msg)
		if activated {
			f.submitted = true
			cmd = tea.Batch(cmd, func() tea.Msg { return FormSubmittedMsg{FormID: f.id} })
		}
	}

	f.Validate()
	return f, cmd
}

// View renders the title, the fields with their errors and the key hints.
func (f *Form) View() string {
	var b strings.Builder

	if f.title != "" {
		b.WriteString(styles.FormTitleStyle.Render(f.title))
		b.WriteString("\n\n")
	}

	rows := make([]string, 0, len(f.fields))
	for _, field := range f.fields {
		row := "  " + field.View()
		if ti, ok := field.(*TextInput); ok && ti.Error() != "" {
			row += "\n    " + styles.FormErrorStyle.Render(ti.Error())
		}
		rows = append(rows, row)
	}
	b.WriteString(strings.Join(rows, "\n"))

	if f.showHelp {
		key := lipgloss.NewStyle().Foreground(styles.Secondary)
		text := lipgloss.NewStyle().Foreground(styles.Muted)
		sep := text.Render(" │ ")
		hints := []string{
			key.Render("Tab") + text.Render(": next field"),
			key.Render("Shift+Tab") + text.Render(": prev field"),
			key.Render("Enter") + text.Render(": activate"),
			key.Render("Esc") + text.Render(": cancel"),
		}
		b.WriteString("\n\n  " + strings.Join(hints, sep))
	}

	return b.String()
}
