package display

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oneclickfood/oneclick/internal/form"
)

// screen identifies one of the UI surfaces.
type screen int

const (
	screenCatalog screen = iota
	screenLogin
	screenSignUp
	screenRecipeForm
)

// ── Messages ─────────────────────────────────────────────────────

// navigateMsg switches the visible screen. For the recipe form it
// carries the seeded form and, when editing, the recipe id.
type navigateMsg struct {
	target   screen
	form     *form.Form
	recipeID int
}

// tickMsg drives periodic re-reads of the shared stores.
type tickMsg time.Time

// submitDoneMsg carries a finished recipe submission.
type submitDoneMsg struct {
	res form.Result
	err error
}

// accountDoneMsg carries a finished login or signup attempt.
type accountDoneMsg struct {
	res form.Result
	err error
}

// storesReloadedMsg signals that a background reload finished.
type storesReloadedMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ── Root model ───────────────────────────────────────────────────

type appModel struct {
	ctx     context.Context
	deps    *Deps
	current screen
	catalog catalogModel
	login   loginModel
	signup  signupModel
	recipe  recipeFormModel
	width   int
	height  int
}

func newAppModel(ctx context.Context, deps *Deps) appModel {
	return appModel{
		ctx:     ctx,
		deps:    deps,
		current: screenCatalog,
		catalog: newCatalogModel(ctx, deps),
	}
}

func (m appModel) Init() tea.Cmd {
	return tickCmd()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case navigateMsg:
		m.current = msg.target
		switch msg.target {
		case screenCatalog:
			m.catalog = newCatalogModel(m.ctx, m.deps)
		case screenLogin:
			m.login = newLoginModel(m.ctx, m.deps)
		case screenSignUp:
			m.signup = newSignupModel(m.ctx, m.deps)
		case screenRecipeForm:
			m.recipe = newRecipeFormModel(m.ctx, m.deps, msg.form, msg.recipeID)
		}
		return m, nil

	case tickMsg:
		// Keep ticking regardless of screen so store updates surface.
		var cmd tea.Cmd
		m, cmd = m.route(msg)
		return m, tea.Batch(cmd, tickCmd())
	}

	return m.route(msg)
}

// route delegates a message to the active screen.
func (m appModel) route(msg tea.Msg) (appModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.current {
	case screenCatalog:
		m.catalog, cmd = m.catalog.Update(msg)
	case screenLogin:
		m.login, cmd = m.login.Update(msg)
	case screenSignUp:
		m.signup, cmd = m.signup.Update(msg)
	case screenRecipeForm:
		m.recipe, cmd = m.recipe.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	switch m.current {
	case screenLogin:
		return m.login.View()
	case screenSignUp:
		return m.signup.View()
	case screenRecipeForm:
		return m.recipe.View()
	default:
		return m.catalog.View()
	}
}
