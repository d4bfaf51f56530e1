package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/cookbook/internal/recipe"
	"github.com/dbmrq/cookbook/internal/tui/styles"
)

// DetailView shows one recipe rendered from markdown in a scrollable viewport.
type DetailView struct {
	viewport viewport.Model
	recipe   recipe.Recipe
	hasData  bool
	saved    bool
	width    int
	height   int

	renderer      *glamour.TermRenderer
	rendererStyle string
	rendererWidth int
}

// NewDetailView creates an empty DetailView.
func NewDetailView() *DetailView {
	return &DetailView{
		viewport: viewport.New(80, 20),
		width:    80,
		height:   20,
	}
}

// SetSize sets the viewport size and re-renders the content.
func (d *DetailView) SetSize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	d.width = width
	d.height = height
	d.viewport.Width = width
	d.viewport.Height = height - 1
	d.refresh()
}

// SetRecipe shows r, scrolled to the top.
func (d *DetailView) SetRecipe(r recipe.Recipe, saved bool) {
	d.recipe = r
	d.saved = saved
	d.hasData = true
	d.refresh()
	d.viewport.GotoTop()
}

// Recipe returns the recipe being shown.
func (d *DetailView) Recipe() (recipe.Recipe, bool) {
	return d.recipe, d.hasData
}

// SetSaved updates the saved marker without resetting the scroll position.
func (d *DetailView) SetSaved(saved bool) {
	d.saved = saved
}

// Refresh re-renders the content, for example after a theme change.
func (d *DetailView) Refresh() {
	d.refresh()
}

// Content returns the rendered content currently in the viewport.
func (d *DetailView) Content() string {
	return d.render()
}

func (d *DetailView) refresh() {
	if !d.hasData {
		d.viewport.SetContent("")
		return
	}
	d.viewport.SetContent(d.render())
}

func (d *DetailView) render() string {
	md := recipe.Markdown(d.recipe)

	r, err := d.glamourRenderer()
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// glamourRenderer returns a renderer matching the current width and theme.
func (d *DetailView) glamourRenderer() (*glamour.TermRenderer, error) {
	style := styles.GlamourStyle()
	wrap := d.width - 4
	if d.renderer != nil && d.rendererStyle == style && d.rendererWidth == wrap {
		return d.renderer, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, err
	}
	d.renderer = r
	d.rendererStyle = style
	d.rendererWidth = wrap
	return r, nil
}

// Update handles scrolling keys and mouse wheel.
func (d *DetailView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return cmd
}

// View renders the viewport with a footer showing scroll position.
func (d *DetailView) View() string {
	marker := styles.UnsavedMarker + " not saved"
	if d.saved {
		marker = styles.SavedMarker + " saved"
	}
	footer := lipgloss.NewStyle().Foreground(styles.MutedLight).
		Render(fmt.Sprintf("%s  %3.f%%", marker, d.viewport.ScrollPercent()*100))

	return d.viewport.View() + "\n" + footer
}
