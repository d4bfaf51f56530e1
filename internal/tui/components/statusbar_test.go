package components

import (
	"strings"
	"testing"
)

func TestNewStatusBar(t *testing.T) {
	s := NewStatusBar()

	d := s.Data()
	if d.SortLabel != "default" {
		t.Errorf("SortLabel = %q, want default", d.SortLabel)
	}
	if !d.ShowShortcuts {
		t.Error("shortcuts should be shown by default")
	}

	view := s.View()
	if !strings.Contains(view, "Sort:") || !strings.Contains(view, "Shown:") {
		t.Errorf("View() missing labels:\n%s", view)
	}
}

func TestStatusBarCountsAndSearch(t *testing.T) {
	s := NewStatusBar()
	s.SetSortLabel("A-Z")
	s.SetCounts(3, 30)
	s.SetSearch("choco")

	view := s.View()
	for _, want := range []string{"A-Z", "3/30", "Search:", "choco"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q", want)
		}
	}
}

func TestStatusBarLoadingHidesCounts(t *testing.T) {
	s := NewStatusBar()
	s.SetCounts(3, 30)
	s.SetLoading(true)

	view := s.View()
	if !strings.Contains(view, "loading") {
		t.Error("loading indicator missing")
	}
	if strings.Contains(view, "3/30") {
		t.Error("counts should be hidden while loading")
	}
}

func TestStatusBarMessage(t *testing.T) {
	s := NewStatusBar()
	s.SetShowShortcuts(false)

	kinds := []MessageKind{MessageInfo, MessageSuccess, MessageWarning, MessageError}
	for _, kind := range kinds {
		s.SetMessage("could not save recipes", kind)
		if !strings.Contains(s.View(), "could not save recipes") {
			t.Errorf("message of kind %d not rendered", kind)
		}
	}

	if s.Message() != "could not save recipes" {
		t.Errorf("Message() = %q", s.Message())
	}
	s.ClearMessage()
	if s.Message() != "" || s.Data().MessageKind != MessageInfo {
		t.Error("ClearMessage should reset text and kind")
	}
}

func TestStatusBarShortcuts(t *testing.T) {
	s := NewStatusBar()
	s.SetShortcuts(SavedShortcuts)

	if !strings.Contains(s.View(), "remove") {
		t.Error("saved shortcuts should be rendered")
	}

	s.SetShowShortcuts(false)
	if strings.Contains(s.View(), "remove") {
		t.Error("shortcuts should be hidden")
	}
}

func TestStatusBarWidth(t *testing.T) {
	s := NewStatusBar()
	s.SetWidth(150)
	s.SetCounts(1, 2)

	if !strings.Contains(s.View(), "1/2") {
		t.Error("counts missing at fixed width")
	}
}
