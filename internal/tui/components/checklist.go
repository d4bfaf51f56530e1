package components

import (
	"strings"

	"github.com/dbmrq/cookbook/internal/tui/styles"
	"github.com/dbmrq/cookbook/internal/validate"
)

// PasswordChecklist lists each registration password requirement with a
// pass/fail mark, re-evaluated on every keystroke.
type PasswordChecklist struct {
	checks validate.PasswordChecks
}

// NewPasswordChecklist creates a checklist with every requirement unmet.
func NewPasswordChecklist() *PasswordChecklist {
	return &PasswordChecklist{}
}

// SetPassword re-evaluates the requirements for password.
func (p *PasswordChecklist) SetPassword(password string) {
	p.checks = validate.CheckPassword(password)
}

// Checks returns the latest results.
func (p *PasswordChecklist) Checks() validate.PasswordChecks {
	return p.checks
}

// View renders one line per requirement.
func (p *PasswordChecklist) View() string {
	items := p.checks.Items()
	lines := make([]string, len(items))
	for i, item := range items {
		if item.Met {
			lines[i] = styles.SuccessTextStyle.Render("✓ " + item.Label)
		} else {
			lines[i] = styles.MutedTextStyle.Render("✗ " + item.Label)
		}
	}
	return strings.Join(lines, "\n")
}
