package components

import (
	"strings"
	"testing"
)

func TestShortcutBarView(t *testing.T) {
	bar := NewShortcutBar(Shortcut{"/", "search"}, Shortcut{"q", "quit"})

	view := bar.View()
	if !strings.Contains(view, "/:search") && !strings.Contains(view, "search") {
		t.Errorf("View() = %q", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("View() = %q", view)
	}
}

func TestShortcutBarEmpty(t *testing.T) {
	if NewShortcutBar().View() != "" {
		t.Error("empty bar should render nothing")
	}
}

func TestShortcutBarCentered(t *testing.T) {
	bar := NewShortcutBar(Shortcut{"Esc", "back"})
	bar.SetWidth(40)
	bar.SetCentered(true)

	view := bar.View()
	if !strings.HasPrefix(view, " ") {
		t.Errorf("centered view should be padded, got %q", view)
	}
}

func TestShortcutSets(t *testing.T) {
	sets := map[string][]Shortcut{
		"browse": BrowseShortcuts,
		"search": SearchShortcuts,
		"saved":  SavedShortcuts,
		"detail": DetailShortcuts,
		"form":   FormShortcuts,
	}
	for name, set := range sets {
		if len(set) == 0 {
			t.Errorf("%s shortcuts are empty", name)
		}
	}
}
