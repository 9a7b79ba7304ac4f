package display

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oneclickfood/oneclick/internal/form"
)

// loginModel is the two-field sign-in screen.
type loginModel struct {
	ctx  context.Context
	deps *Deps

	username textinput.Model
	password textinput.Model

	focus      int
	errs       form.Errors
	status     string
	submitting bool
}

func newLoginModel(ctx context.Context, deps *Deps) loginModel {
	m := loginModel{ctx: ctx, deps: deps}
	m.username = newInput("username", "")
	m.password = newInput("password", "")
	m.password.EchoMode = textinput.EchoPassword
	m.password.EchoCharacter = '*'
	m.username.Focus()
	return m
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case accountDoneMsg:
		m.submitting = false
		switch {
		case msg.err != nil:
			m.status = msg.err.Error()
		case len(msg.res.FieldErrors) > 0:
			m.errs = msg.res.FieldErrors
		case msg.res.Message != "":
			m.status = msg.res.Message
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigateCmd(screenCatalog, nil, 0)
		case "tab", "down":
			m.focus = (m.focus + 1) % 2
			m.applyFocus()
			return m, nil
		case "shift+tab", "up":
			m.focus = (m.focus - 1 + 2) % 2
			m.applyFocus()
			return m, nil
		case "enter":
			return m.startSubmit()
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *loginModel) applyFocus() {
	m.username.Blur()
	m.password.Blur()
	if m.focus == 0 {
		m.username.Focus()
	} else {
		m.password.Focus()
	}
}

func (m loginModel) startSubmit() (loginModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.submitting = true
	m.status = ""
	m.errs = nil

	deps, ctx := m.deps, m.ctx
	f := &form.LoginForm{
		UserName: m.username.Value(),
		Password: m.password.Value(),
	}
	return m, func() tea.Msg {
		res, err := deps.Accounts.Login(ctx, f)
		return accountDoneMsg{res: res, err: err}
	}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign in"))
	b.WriteString("\n\n")

	writeCredField(&b, "Username", m.username.View(), m.errs.Field("username"), m.focus == 0)
	writeCredField(&b, "Password", m.password.View(), m.errs.Field("password"), m.focus == 1)

	if m.submitting {
		b.WriteString(statusStyle.Render("signing in..."))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("enter sign in · tab next field · esc back"))
	b.WriteString("\n")
	return b.String()
}

func writeCredField(b *strings.Builder, label, widget, errMsg string, focused bool) {
	style := labelStyle
	if focused {
		style = focusedLabelStyle
	}
	b.WriteString(style.Render(label))
	b.WriteString("\n")
	b.WriteString(widget)
	b.WriteString("\n")
	if errMsg != "" {
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
