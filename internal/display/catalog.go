package display

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oneclickfood/oneclick/internal/domain"
	"github.com/oneclickfood/oneclick/internal/form"
	"github.com/oneclickfood/oneclick/internal/store"
)

// catalogModel is the home view: the recipe collection plus entry
// points into login, signup, and the authoring form.
type catalogModel struct {
	ctx     context.Context
	deps    *Deps
	recipes []domain.Recipe
	state   store.CatalogState
	user    domain.User
	cursor  int
}

func newCatalogModel(ctx context.Context, deps *Deps) catalogModel {
	m := catalogModel{ctx: ctx, deps: deps}
	m.refresh()
	return m
}

// refresh re-reads the shared stores. An unready or failed store just
// renders as such; it never takes the screen down.
func (m *catalogModel) refresh() {
	if items, state, err := m.deps.Recipes.Read(); err == nil || state == store.CatalogFailed {
		m.recipes = items
		m.state = state
	}
	if user, err := m.deps.Users.Read(); err == nil {
		m.user = user
	}
	if m.cursor >= len(m.recipes) {
		m.cursor = len(m.recipes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m catalogModel) Update(msg tea.Msg) (catalogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg, storesReloadedMsg:
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.recipes)-1 {
				m.cursor++
			}
		case "l":
			return m, navigateCmd(screenLogin, nil, 0)
		case "s":
			return m, navigateCmd(screenSignUp, nil, 0)
		case "a":
			if m.user.Authenticated() {
				return m, navigateCmd(screenRecipeForm, form.New(), 0)
			}
		case "e", "enter":
			if m.user.Authenticated() && m.cursor < len(m.recipes) {
				rec := m.recipes[m.cursor]
				return m, navigateCmd(screenRecipeForm, form.FromRecipe(rec), rec.ID)
			}
		case "r":
			return m, m.reloadCmd()
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// reloadCmd refreshes both catalogs from the remote service.
func (m catalogModel) reloadCmd() tea.Cmd {
	deps, ctx := m.deps, m.ctx
	return func() tea.Msg {
		_ = deps.Categories.Load(ctx)
		_ = deps.Recipes.Load(ctx)
		return storesReloadedMsg{}
	}
}

func navigateCmd(target screen, f *form.Form, recipeID int) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{target: target, form: f, recipeID: recipeID}
	}
}

func (m catalogModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("One Click — recipe catalog"))
	b.WriteString("\n")
	b.WriteString(headerBarStyle.Render(" " + m.userLine() + " "))
	b.WriteString("\n\n")

	switch m.state {
	case store.CatalogLoading:
		b.WriteString(hintStyle.Render("Loading recipes..."))
		b.WriteString("\n")
	case store.CatalogFailed:
		b.WriteString(errorStyle.Render("Could not load the recipe catalog. Press 'r' to retry."))
		b.WriteString("\n")
	default:
		if len(m.recipes) == 0 {
			b.WriteString(hintStyle.Render("No recipes yet."))
			b.WriteString("\n")
		}
		for i, rec := range m.recipes {
			line := fmt.Sprintf("%s  (%d min, %s)", rec.Name, rec.Duration, rec.Difficulty)
			if i == m.cursor {
				b.WriteString(cursorRowStyle.Render("> " + line))
			} else {
				b.WriteString(valueStyle.Render("  " + line))
			}
			b.WriteString("\n")
			b.WriteString(hintStyle.Render("    " + truncate(rec.Description, 70)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m catalogModel) userLine() string {
	if m.user.Authenticated() {
		return "logged in as " + m.user.Name
	}
	return "not logged in"
}

func (m catalogModel) helpLine() string {
	if m.user.Authenticated() {
		return "a add recipe · e edit · r reload · q quit"
	}
	return "l login · s sign up · r reload · q quit"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
