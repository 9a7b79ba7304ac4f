// Package display implements the terminal UI with Bubble Tea: the
// catalog view, the login and signup screens, and the recipe authoring
// form. Presentation only; all form semantics live in internal/form.
package display

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oneclickfood/oneclick/internal/form"
	"github.com/oneclickfood/oneclick/internal/logger"
	"github.com/oneclickfood/oneclick/internal/store"
)

// Deps collects everything the screens consume.
type Deps struct {
	Users      *store.UserStore
	Categories *store.CategoryStore
	Recipes    *store.RecipeStore
	Submitter  *form.Submitter
	Accounts   *form.AccountFlow
	Log        *logger.Logger
}

// Compile-time interface check.
var _ form.Navigator = (*UI)(nil)

// UI owns the Bubble Tea program. It doubles as the navigation
// collaborator: flows signal success and the UI translates that into a
// screen change message.
type UI struct {
	ctx     context.Context
	program *tea.Program
}

// NewUI creates the display. Call Run (blocking) to start it.
func NewUI(ctx context.Context) *UI {
	return &UI{ctx: ctx}
}

// Run starts the event loop and blocks until quit.
func (u *UI) Run(deps *Deps) error {
	m := newAppModel(u.ctx, deps)
	u.program = tea.NewProgram(m, tea.WithAltScreen())
	_, err := u.program.Run()
	return err
}

// NavigateToCatalog moves the UI back to the catalog view. Safe to call
// from any goroutine.
func (u *UI) NavigateToCatalog() {
	if u.program != nil {
		u.program.Send(navigateMsg{target: screenCatalog})
	}
}

// Quit tells the event loop to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}
