package display

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oneclickfood/oneclick/internal/form"
)

// signupField pairs a registration input with its label and the key
// its validation errors are reported under.
type signupField struct {
	label  string
	errKey string
	input  textinput.Model
}

// signupModel is the registration screen.
type signupModel struct {
	ctx  context.Context
	deps *Deps

	fields []signupField

	focus      int
	errs       form.Errors
	status     string
	submitting bool
}

func newSignupModel(ctx context.Context, deps *Deps) signupModel {
	m := signupModel{ctx: ctx, deps: deps}

	password := newInput("at least 8 characters", "")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m.fields = []signupField{
		{label: "Username", errKey: "username", input: newInput("at least 5 characters", "")},
		{label: "Password", errKey: "password", input: password},
		{label: "Full name", errKey: "name", input: newInput("your name", "")},
		{label: "Phone", errKey: "phone", input: newInput("10 digits", "")},
		{label: "Email", errKey: "email", input: newInput("you@example.com", "")},
		{label: "ID number", errKey: "taxid", input: newInput("9 digits", "")},
	}
	m.fields[0].input.Focus()
	return m
}

func (m signupModel) Update(msg tea.Msg) (signupModel, tea.Cmd) {
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
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		case "enter":
			if m.focus == len(m.fields)-1 {
				return m.startSubmit()
			}
			m.moveFocus(1)
			return m, nil
		case "ctrl+s":
			return m.startSubmit()
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m *signupModel) moveFocus(delta int) {
	n := len(m.fields)
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + delta + n) % n
	m.fields[m.focus].input.Focus()
}

func (m signupModel) startSubmit() (signupModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.submitting = true
	m.status = ""
	m.errs = nil

	deps, ctx := m.deps, m.ctx
	f := &form.SignUpForm{
		UserName: m.fields[0].input.Value(),
		Password: m.fields[1].input.Value(),
		Name:     m.fields[2].input.Value(),
		Phone:    m.fields[3].input.Value(),
		Email:    m.fields[4].input.Value(),
		TaxID:    m.fields[5].input.Value(),
	}
	return m, func() tea.Msg {
		res, err := deps.Accounts.SignUp(ctx, f)
		return accountDoneMsg{res: res, err: err}
	}
}

func (m signupModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create an account"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		writeCredField(&b, f.label, f.input.View(), m.errs.Field(f.errKey), m.focus == i)
	}

	if m.submitting {
		b.WriteString(statusStyle.Render("creating your account..."))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("enter next · ctrl+s create account · esc back"))
	b.WriteString("\n")
	return b.String()
}
