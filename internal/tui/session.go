package tui

import (
	"context"
	"strings"

	"userdir-cli/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// session is populated exactly once per successful login and never mutated
// afterwards. The shape admits a future logout/reset (zero it).
type session struct {
	principal     model.UserRecord
	authenticated bool
}

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

type loginForm struct {
	inputs  [loginFieldCount]textinput.Model
	focus   int
	errText string
}

func newLoginForm() loginForm {
	f := loginForm{}

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Width = 36
	email.Focus()
	f.inputs[loginFieldEmail] = email

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.Width = 36
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	f.inputs[loginFieldPassword] = password

	return f
}

func (f *loginForm) focusField(i int) {
	if i < 0 {
		i = loginFieldCount - 1
	}
	if i >= loginFieldCount {
		i = 0
	}
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *loginForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f loginForm) email() string    { return strings.TrimSpace(f.inputs[loginFieldEmail].Value()) }
func (f loginForm) password() string { return f.inputs[loginFieldPassword].Value() }

type loginResultMsg struct {
	principal model.UserRecord
	err       error
}

// startLogin issues the login call. The in-flight guard lives in the key
// handler: a second submit while loggingIn is set is ignored.
func (m *appModel) startLogin(email, password string) tea.Cmd {
	m.loggingIn = true
	client := m.client

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		principal, err := client.Login(ctx, email, password)
		return loginResultMsg{principal: principal, err: err}
	})
}
