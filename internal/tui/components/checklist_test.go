package components

import (
	"strings"
	"testing"
)

func TestPasswordChecklist(t *testing.T) {
	p := NewPasswordChecklist()
	if strings.Contains(p.View(), "✓") {
		t.Error("empty password should meet no requirement")
	}

	p.SetPassword("abcdefg")
	view := p.View()
	if strings.Count(view, "✓") != 1 {
		t.Errorf("only the lowercase check should pass:\n%s", view)
	}

	p.SetPassword("Abcdefg1!")
	if !p.Checks().Valid() {
		t.Error("Abcdefg1! should pass every check")
	}
	if strings.Contains(p.View(), "✗") {
		t.Errorf("no check should fail:\n%s", p.View())
	}
}
