package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eventx-studio/eventx-cli/api"
)

// loginModel renders the login and registration forms. Registration
// is the same screen in a second mode with the extra name field,
// mirroring the web client's paired pages.
type loginModel struct {
	theme  Theme
	inputs []textinput.Model // name (register only), email, password
	focus  int
	mode   loginMode
	busy   bool
	errMsg string
	notice string
}

type loginMode int

const (
	modeLogin loginMode = iota
	modeRegister
)

const (
	fieldName = iota
	fieldEmail
	fieldPassword
)

func newLoginModel(theme Theme) loginModel {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 64

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	return loginModel{
		theme:  theme,
		inputs: []textinput.Model{name, email, password},
		focus:  fieldEmail,
	}
}

func (m *loginModel) fail(err error) {
	m.busy = false
	if apiErr, ok := api.IsAPIError(err); ok {
		m.errMsg = apiErr.Message
		return
	}
	m.errMsg = "Could not reach the server. Please try again."
}

func (m *loginModel) firstField() int {
	if m.mode == modeRegister {
		return fieldName
	}
	return fieldEmail
}

func (m *loginModel) setFocus(field int) {
	m.focus = field
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *loginModel) update(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case registerResultMsg:
		m.busy = false
		if msg.err != nil {
			m.fail(msg.err)
			return nil
		}
		m.mode = modeLogin
		m.errMsg = ""
		m.notice = "Account created. Sign in to continue."
		m.setFocus(fieldEmail)
		return nil

	case tea.KeyMsg:
		if m.busy {
			return nil
		}
		switch {
		case msg.String() == "tab" || msg.String() == "down":
			next := m.focus + 1
			if next > fieldPassword {
				next = m.firstField()
			}
			m.setFocus(next)
			return nil
		case msg.String() == "shift+tab" || msg.String() == "up":
			prev := m.focus - 1
			if prev < m.firstField() {
				prev = fieldPassword
			}
			m.setFocus(prev)
			return nil
		case msg.String() == "ctrl+r":
			if m.mode == modeLogin {
				m.mode = modeRegister
				m.setFocus(fieldName)
			} else {
				m.mode = modeLogin
				m.setFocus(fieldEmail)
			}
			m.errMsg = ""
			m.notice = ""
			return nil
		case key.Matches(msg, a.keys.Select):
			return m.submit(a)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *loginModel) submit(a *App) tea.Cmd {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()

	if email == "" || password == "" || (m.mode == modeRegister && name == "") {
		m.errMsg = "Please fill in all fields"
		return nil
	}
	m.busy = true
	m.errMsg = ""
	m.notice = ""
	if m.mode == modeRegister {
		return a.registerCmd(name, email, password)
	}
	return a.loginCmd(email, password)
}

func (m *loginModel) view(a *App) string {
	var b strings.Builder

	if m.mode == modeRegister {
		b.WriteString(m.theme.Title.Render("Create your account") + "\n\n")
		b.WriteString(m.theme.Label.Render("Name") + "\n" + m.inputs[fieldName].View() + "\n\n")
	} else {
		b.WriteString(m.theme.Title.Render("Sign in") + "\n\n")
	}
	b.WriteString(m.theme.Label.Render("Email") + "\n" + m.inputs[fieldEmail].View() + "\n\n")
	b.WriteString(m.theme.Label.Render("Password") + "\n" + m.inputs[fieldPassword].View() + "\n\n")

	switch {
	case m.busy:
		b.WriteString(m.theme.Subtle.Render("Signing in…") + "\n")
	case m.errMsg != "":
		b.WriteString(m.theme.ErrorLine.Render(m.errMsg) + "\n")
	case m.notice != "":
		b.WriteString(m.theme.Bar.Render(m.notice) + "\n")
	}

	toggle := "ctrl+r register"
	if m.mode == modeRegister {
		toggle = "ctrl+r back to sign in"
	}
	b.WriteString("\n" + m.theme.Help.Render("enter submit • tab next field • "+toggle+" • ctrl+c quit"))
	return b.String()
}
