// Package tui provides the terminal user interface for cookbook.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/cookbook/internal/api"
	cberrors "github.com/dbmrq/cookbook/internal/errors"
	"github.com/dbmrq/cookbook/internal/logging"
	"github.com/dbmrq/cookbook/internal/recipe"
	"github.com/dbmrq/cookbook/internal/saved"
	"github.com/dbmrq/cookbook/internal/session"
	"github.com/dbmrq/cookbook/internal/storage"
	"github.com/dbmrq/cookbook/internal/tui/components"
	"github.com/dbmrq/cookbook/internal/tui/styles"
	"github.com/dbmrq/cookbook/internal/validate"
)

// User-facing messages.
const (
	MsgLoadFailed  = "Failed to load recipes."
	MsgRetryHint   = "Press r to try again."
	MsgNoSaved     = "Looks like you haven't saved any recipes yet."
	MsgNoRecipes   = "No recipes"
	MsgLoading     = "Loading recipes..."
	noResultsStart = "No Search Results for \""
	noResultsEnd   = "\" :("
)

// NoResultsMessage is shown when a search matches nothing.
func NoResultsMessage(search string) string {
	return noResultsStart + search + noResultsEnd
}

// Screen identifies the active screen.
type Screen int

const (
	ScreenBrowse Screen = iota
	ScreenSaved
	ScreenDetail
	ScreenLogin
	ScreenRegister
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenBrowse:
		return "browse"
	case ScreenSaved:
		return "saved"
	case ScreenDetail:
		return "detail"
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	default:
		return "unknown"
	}
}

const (
	formLogin    = "login"
	formRegister = "register"

	fieldShowPassword = "show-password"
	fieldSubmit       = "submit"
)

// Fetcher loads the recipe list. *api.Client implements it.
type Fetcher interface {
	List(ctx context.Context, order recipe.SortOrder) ([]recipe.Recipe, error)
	Invalidate()
}

// Options configures a Model. Nil fields get in-memory defaults.
type Options struct {
	Fetcher Fetcher
	Store   *saved.Store
	State   *session.State
	Logger  *logging.Logger
	Order   recipe.SortOrder
}

// Model is the Bubble Tea model for the cookbook TUI.
// Session and store state are only mutated from Update.
type Model struct {
	// Components
	header       *components.Header
	search       *components.TextInput
	browseList   *components.RecipeList
	savedList    *components.RecipeList
	detail       *components.DetailView
	statusBar    *components.StatusBar
	spinner      *components.Spinner
	helpOverlay  *components.HelpOverlay
	confirmDlg   *components.ConfirmDialog
	loginForm    *components.Form
	registerForm *components.Form
	checklist    *components.PasswordChecklist

	// Dependencies
	ctx     context.Context
	fetcher Fetcher
	store   *saved.Store
	state   *session.State
	logger  *logging.Logger

	// State
	screen     Screen
	prevScreen Screen
	searching  bool
	order      recipe.SortOrder
	recipes    []recipe.Recipe
	loading    bool
	loadErr    error
	gen        uint64
	pending    recipe.Recipe

	// Window dimensions
	width  int
	height int

	quitting bool
}

// New creates a new TUI model.
func New(ctx context.Context, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Fetcher == nil {
		opts.Fetcher = api.NewClient()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNoop()
	}
	if opts.Store == nil {
		opts.Store = saved.New(storage.NewMemoryBackend(), saved.WithLogger(opts.Logger))
	}
	if opts.State == nil {
		opts.State = session.NewState(session.DefaultTheme)
	}

	m := &Model{
		header:       components.NewHeader(),
		search:       components.NewTextInput("search", "Search"),
		browseList:   components.NewRecipeList(),
		savedList:    components.NewRecipeList(),
		detail:       components.NewDetailView(),
		statusBar:    components.NewStatusBar(),
		spinner:      components.NewSpinner(),
		helpOverlay:  components.NewHelpOverlay(),
		confirmDlg:   components.NewConfirmDialog(),
		loginForm:    newLoginForm(),
		registerForm: newRegisterForm(),
		checklist:    components.NewPasswordChecklist(),
		ctx:          ctx,
		fetcher:      opts.Fetcher,
		store:        opts.Store,
		state:        opts.State,
		logger:       opts.Logger,
		order:        opts.Order,
	}

	m.search.SetPlaceholder("type to filter by name")
	m.savedList.SetEmptyMessage(MsgNoSaved)
	m.spinner.SetStatusText(MsgLoading)

	styles.ApplyTheme(m.state.Theme())
	m.header.SetTheme(m.state.Theme().String())
	m.header.SetUsername(m.state.Auth().Username())
	m.state.Subscribe(m.onSessionChange)

	m.statusBar.SetSortLabel(m.order.Label())
	m.refreshSaved()
	m.refreshBrowse()
	return m
}

func newLoginForm() *components.Form {
	f := components.NewForm(formLogin, "Login")
	f.AddFields(
		components.NewTextInput(validate.FieldEmail, "Email"),
		components.NewPasswordInput(validate.FieldPassword, "Password"),
		components.NewCheckbox(fieldShowPassword, "Show password"),
		components.NewButton(fieldSubmit, "Log in"),
	)
	f.SetRevealToggle(fieldShowPassword)
	f.SetValidator(func(v map[string]string) map[string]string {
		return validate.LoginForm{
			Email:    v[validate.FieldEmail],
			Password: v[validate.FieldPassword],
		}.Validate()
	})
	return f
}

func newRegisterForm() *components.Form {
	f := components.NewForm(formRegister, "Register")
	f.AddFields(
		components.NewTextInput(validate.FieldEmail, "Email"),
		components.NewTextInput(validate.FieldUsername, "Username"),
		components.NewPasswordInput(validate.FieldPassword, "Password"),
		components.NewPasswordInput(validate.FieldConfirm, "Confirm password"),
		components.NewCheckbox(fieldShowPassword, "Show password"),
		components.NewButton(fieldSubmit, "Register"),
	)
	f.SetRevealToggle(fieldShowPassword)
	// The checklist explains unmet password requirements.
	f.SetQuiet(validate.FieldPassword)
	f.SetValidator(func(v map[string]string) map[string]string {
		return validate.RegistrationForm{
			Email:    v[validate.FieldEmail],
			Username: v[validate.FieldUsername],
			Password: v[validate.FieldPassword],
			Confirm:  v[validate.FieldConfirm],
		}.Validate()
	})
	return f
}

// Init starts the first fetch.
func (m *Model) Init() tea.Cmd {
	return m.fetch()
}

// fetch issues a new generation and returns the command that loads it.
func (m *Model) fetch() tea.Cmd {
	m.gen++
	gen, order := m.gen, m.order
	fetcher, ctx := m.fetcher, m.ctx

	m.loading = true
	m.loadErr = nil
	m.spinner.Start()
	m.statusBar.SetLoading(true)
	m.logger.Debug("fetching recipes", "generation", gen, "order", order.String())

	load := func() tea.Msg {
		recipes, err := fetcher.List(ctx, order)
		return RecipesLoadedMsg{Gen: gen, Order: order, Recipes: recipes, Err: err}
	}
	return tea.Batch(load, m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Overlays capture input while visible
	if _, ok := msg.(tea.KeyMsg); ok {
		if m.confirmDlg.IsVisible() {
			return m, m.confirmDlg.Update(msg)
		}
		if m.helpOverlay.IsVisible() {
			return m, m.helpOverlay.Update(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case RecipesLoadedMsg:
		m.handleRecipesLoaded(msg)
		return m, nil

	case SavedChangedMsg:
		m.refreshSaved()
		m.refreshBrowse()
		m.statusBar.SetMessage("Saved recipes reloaded", components.MessageInfo)
		return m, nil

	case StatusMsg:
		kind := components.MessageInfo
		if msg.Warning {
			kind = components.MessageWarning
		}
		m.statusBar.SetMessage(msg.Text, kind)
		return m, nil

	case components.ConfirmYesMsg:
		m.handleConfirmYes(msg.Action)
		return m, nil

	case components.ConfirmNoMsg, components.HelpClosedMsg:
		return m, nil

	case components.FormSubmittedMsg:
		m.handleFormSubmitted(msg.FormID)
		return m, nil

	case components.FormCanceledMsg:
		m.closeForm()
		return m, nil

	case QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Spinner ticks stop once loading ends
	if m.loading {
		if _, cmd := m.spinner.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	// Cursor blink and other input plumbing
	switch {
	case m.screen == ScreenLogin:
		_, cmd := m.loginForm.Update(msg)
		return m, cmd
	case m.screen == ScreenRegister:
		_, cmd := m.registerForm.Update(msg)
		return m, cmd
	case m.searching:
		_, cmd := m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleRecipesLoaded(msg RecipesLoadedMsg) {
	if msg.Gen != m.gen {
		m.logger.Debug("dropping stale recipes response", "generation", msg.Gen, "latest", m.gen)
		return
	}

	m.loading = false
	m.statusBar.SetLoading(false)
	if msg.Err != nil {
		m.loadErr = msg.Err
		m.logger.Warn("failed to load recipes", "order", msg.Order.String(), "error", msg.Err)
		m.refreshBrowse()
		return
	}

	m.recipes = msg.Recipes
	m.logger.Info("loaded recipes", "count", len(msg.Recipes), "order", msg.Order.String())
	m.refreshBrowse()
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenLogin:
		return m, m.updateForm(m.loginForm, msg)
	case ScreenRegister:
		return m, m.updateForm(m.registerForm, msg)
	}

	if m.searching {
		return m, m.handleSearchKey(msg)
	}

	switch key {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.helpOverlay.Toggle()
		return m, nil

	case "1":
		m.setScreen(ScreenBrowse)
		return m, nil

	case "2":
		m.setScreen(ScreenSaved)
		return m, nil

	case "/":
		m.setScreen(ScreenBrowse)
		m.searching = true
		m.statusBar.SetShortcuts(components.SearchShortcuts)
		return m, m.search.Focus()

	case "o":
		m.order = m.order.Next()
		m.statusBar.SetSortLabel(m.order.Label())
		return m, m.fetch()

	case "r":
		m.fetcher.Invalidate()
		m.statusBar.SetMessage("Refreshing recipes", components.MessageInfo)
		return m, m.fetch()

	case "t":
		m.state.ToggleTheme()
		return m, nil

	case "L":
		if m.state.IsAuthenticated() {
			m.confirmDlg.ShowLogout(m.state.Auth().Username())
			return m, nil
		}
		return m, m.openForm(ScreenLogin)

	case "R":
		if m.state.IsAuthenticated() {
			m.statusBar.SetMessage("Already logged in as "+m.state.Auth().Username(), components.MessageInfo)
			return m, nil
		}
		return m, m.openForm(ScreenRegister)

	case "s":
		m.handleSaveKey()
		return m, nil

	case "enter":
		if r, ok := m.activeList().SelectedRecipe(); ok && m.screen != ScreenDetail {
			m.openDetail(r)
		}
		return m, nil

	case "esc":
		switch {
		case m.screen == ScreenDetail:
			m.setScreen(m.prevScreen)
		case m.screen == ScreenBrowse && m.search.Value() != "":
			m.search.Reset()
			m.refreshBrowse()
		}
		return m, nil
	}

	if m.screen == ScreenDetail {
		return m, m.detail.Update(msg)
	}
	return m, m.activeList().Update(msg)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.search.Reset()
		m.stopSearching()
		m.refreshBrowse()
		return nil
	case "enter":
		m.stopSearching()
		return nil
	case "up", "down":
		return m.browseList.Update(msg)
	}

	_, cmd := m.search.Update(msg)
	m.refreshBrowse()
	return cmd
}

func (m *Model) stopSearching() {
	m.searching = false
	m.search.Blur()
	m.statusBar.SetShortcuts(components.BrowseShortcuts)
}

// handleSaveKey toggles the recipe under the cursor. On the saved screen it
// asks for confirmation first.
func (m *Model) handleSaveKey() {
	switch m.screen {
	case ScreenSaved:
		if r, ok := m.savedList.SelectedRecipe(); ok {
			m.pending = r
			m.confirmDlg.ShowRemove(r.Name)
		}
	case ScreenDetail:
		if r, ok := m.detail.Recipe(); ok {
			m.toggleSaved(r)
		}
	default:
		if r, ok := m.browseList.SelectedRecipe(); ok {
			m.toggleSaved(r)
		}
	}
}

func (m *Model) toggleSaved(r recipe.Recipe) {
	nowSaved, err := m.store.Toggle(m.ctx, r)
	m.afterStoreChange(r)

	if err != nil {
		m.logger.Warn("saved recipes not persisted", "recipe", r.ID, "error", err)
		m.statusBar.SetMessage("Could not write saved recipes; changes kept for this session", components.MessageWarning)
		return
	}
	if nowSaved {
		m.statusBar.SetMessage("Saved "+r.Name, components.MessageSuccess)
	} else {
		m.statusBar.SetMessage("Removed "+r.Name, components.MessageSuccess)
	}
}

func (m *Model) removeSaved(r recipe.Recipe) {
	_, err := m.store.Remove(m.ctx, r)
	m.afterStoreChange(r)

	if err != nil {
		m.logger.Warn("saved recipes not persisted", "recipe", r.ID, "error", err)
		m.statusBar.SetMessage("Could not write saved recipes; changes kept for this session", components.MessageWarning)
		return
	}
	m.statusBar.SetMessage("Removed "+r.Name, components.MessageSuccess)
}

func (m *Model) afterStoreChange(r recipe.Recipe) {
	m.refreshSaved()
	m.refreshBrowse()
	if cur, ok := m.detail.Recipe(); ok && cur.SameAs(r) {
		m.detail.SetSaved(m.store.Contains(r))
	}
}

func (m *Model) handleConfirmYes(action components.ConfirmAction) {
	switch action {
	case components.ConfirmActionLogout:
		name := m.state.Auth().Username()
		m.state.Logout()
		m.logger.Info("logged out", "user", name)
		m.statusBar.SetMessage("Logged out", components.MessageInfo)
	case components.ConfirmActionRemove:
		m.removeSaved(m.pending)
		m.pending = recipe.Recipe{}
	}
}

func (m *Model) onSessionChange(c session.Change) {
	switch c.Kind {
	case session.ThemeChanged:
		styles.ApplyTheme(c.Theme)
		m.header.SetTheme(c.Theme.String())
		m.detail.Refresh()
		m.logger.Debug("theme changed", "theme", c.Theme.String())
	case session.AuthChanged:
		m.header.SetUsername(c.Auth.Username())
	}
}

// openDetail shows r in the detail view.
func (m *Model) openDetail(r recipe.Recipe) {
	m.prevScreen = m.screen
	m.detail.SetRecipe(r, m.store.Contains(r))
	m.setScreen(ScreenDetail)
}

func (m *Model) openForm(screen Screen) tea.Cmd {
	if m.screen != ScreenLogin && m.screen != ScreenRegister {
		m.prevScreen = m.screen
	}
	form := m.formFor(screen)
	form.Reset()
	m.syncForm(form)
	m.setScreen(screen)
	return form.Focus()
}

func (m *Model) closeForm() {
	m.loginForm.Reset()
	m.registerForm.Reset()
	prev := m.prevScreen
	if prev == ScreenLogin || prev == ScreenRegister {
		prev = ScreenBrowse
	}
	m.setScreen(prev)
}

func (m *Model) formFor(screen Screen) *components.Form {
	if screen == ScreenRegister {
		return m.registerForm
	}
	return m.loginForm
}

// updateForm passes a key to form and re-validates it.
func (m *Model) updateForm(form *components.Form, msg tea.KeyMsg) tea.Cmd {
	_, cmd := form.Update(msg)
	m.syncForm(form)
	return cmd
}

// syncForm re-validates form and feeds the registration password to the
// checklist.
func (m *Model) syncForm(form *components.Form) {
	form.Validate()
	if form.ID() == formRegister {
		m.checklist.SetPassword(form.Value(validate.FieldPassword))
	}
}

func (m *Model) handleFormSubmitted(formID string) {
	var name string
	switch formID {
	case formLogin:
		if !m.loginForm.Valid() {
			return
		}
		name = m.loginForm.Value(validate.FieldEmail)
	case formRegister:
		if !m.registerForm.Valid() {
			return
		}
		name = m.registerForm.Value(validate.FieldUsername)
	default:
		return
	}

	m.state.Login(name)
	m.logger.Info("logged in", "user", name, "form", formID)
	m.closeForm()
	m.statusBar.SetMessage("Logged in as "+m.state.Auth().Username(), components.MessageSuccess)
}

// setScreen switches screens and updates dependent chrome.
func (m *Model) setScreen(s Screen) {
	m.screen = s
	switch s {
	case ScreenBrowse:
		m.header.SetActiveTab(components.TabBrowse)
		m.statusBar.SetShortcuts(components.BrowseShortcuts)
	case ScreenSaved:
		m.header.SetActiveTab(components.TabSaved)
		m.statusBar.SetShortcuts(components.SavedShortcuts)
	case ScreenDetail:
		m.statusBar.SetShortcuts(components.DetailShortcuts)
	case ScreenLogin, ScreenRegister:
		m.statusBar.SetShortcuts(components.FormShortcuts)
	}
	m.updateCounts()
}

func (m *Model) activeList() *components.RecipeList {
	if m.screen == ScreenSaved || (m.screen == ScreenDetail && m.prevScreen == ScreenSaved) {
		return m.savedList
	}
	return m.browseList
}

// refreshBrowse re-applies the search to the fetched recipes.
func (m *Model) refreshBrowse() {
	text := m.search.Value()
	filtered := recipe.Filter(m.recipes, text)
	m.browseList.SetRecipes(filtered, m.store.ContainsID)

	if text != "" {
		m.browseList.SetEmptyMessage(NoResultsMessage(text))
	} else {
		m.browseList.SetEmptyMessage(MsgNoRecipes)
	}
	m.statusBar.SetSearch(text)
	m.updateCounts()
}

func (m *Model) refreshSaved() {
	m.savedList.SetRecipes(m.store.Recipes(), func(int) bool { return true })
	m.header.SetSavedCount(m.store.Len())
	m.updateCounts()
}

func (m *Model) updateCounts() {
	if m.screen == ScreenSaved {
		m.statusBar.SetCounts(m.savedList.Len(), m.store.Len())
		return
	}
	m.statusBar.SetCounts(m.browseList.Len(), len(m.recipes))
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.spinner.SetWidth(width)

	body := height - 4
	if body < 3 {
		body = 3
	}
	m.browseList.SetSize(width, body-2)
	m.savedList.SetSize(width, body-2)
	m.detail.SetSize(width, body)
	m.search.SetWidth(width / 2)
	m.loginForm.SetWidth(width)
	m.registerForm.SetWidth(width)
	m.helpOverlay.SetSize(60, 25)
	m.confirmDlg.SetSize(50)
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n")
	if m.width > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(styles.BorderColor).
			Render(strings.Repeat("─", m.width)))
		b.WriteString("\n")
	}

	b.WriteString(m.bodyView())
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())
	view := b.String()

	if m.helpOverlay.IsVisible() {
		view = m.renderOverlay(view, m.helpOverlay.View())
	}
	if m.confirmDlg.IsVisible() {
		view = m.renderOverlay(view, m.confirmDlg.View())
	}
	return view
}

func (m *Model) bodyView() string {
	switch m.screen {
	case ScreenSaved:
		return styles.TitleStyle.Render("Saved recipes") + "\n\n" + m.savedList.View()

	case ScreenDetail:
		return m.detail.View()

	case ScreenLogin:
		return m.loginForm.View()

	case ScreenRegister:
		return m.registerForm.View() + "\n\n" + m.checklist.View()
	}

	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
	case m.loadErr != nil:
		b.WriteString(styles.ErrorTextStyle.Render(MsgLoadFailed))
		if cberrors.IsRetryable(m.loadErr) {
			b.WriteString(" ")
			b.WriteString(styles.HelpStyle.Render(MsgRetryHint))
		}
	default:
		b.WriteString(m.browseList.View())
	}
	return b.String()
}

// renderOverlay centers overlay over the screen, replacing the base view.
func (m *Model) renderOverlay(base, overlay string) string {
	if overlay == "" {
		return base
	}
	if m.width == 0 || m.height == 0 {
		return base + "\n" + overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

// Screen returns the active screen.
func (m *Model) Screen() Screen {
	return m.screen
}

// Order returns the current sort order.
func (m *Model) Order() recipe.SortOrder {
	return m.order
}

// Generation returns the generation of the latest fetch.
func (m *Model) Generation() uint64 {
	return m.gen
}

// Loading reports whether the latest fetch is still pending.
func (m *Model) Loading() bool {
	return m.loading
}
