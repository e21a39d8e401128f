package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SubmitFunc provisions the admin account; a nil return means created.
type SubmitFunc func(username, email, password string) error

type Result struct {
	Username string
	Email    string
	Password string
}

const (
	inputUsername = iota
	inputEmail
	inputPassword
)

type FormModel struct {
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
	Submit   SubmitFunc
	Done     bool
	Result   Result
	Aborted  bool
}

func NewFormModel(submit SubmitFunc) FormModel {
	inputs := make([]textinput.Model, 3)

	inputs[inputUsername] = textinput.New()
	inputs[inputUsername].Placeholder = "admin"
	inputs[inputUsername].Focus()
	inputs[inputUsername].Prompt = "Username: "

	inputs[inputEmail] = textinput.New()
	inputs[inputEmail].Placeholder = "admin@energy.com"
	inputs[inputEmail].Prompt = "Email: "

	inputs[inputPassword] = textinput.New()
	inputs[inputPassword].Placeholder = "min 6 characters"
	inputs[inputPassword].EchoMode = textinput.EchoPassword
	inputs[inputPassword].Prompt = "Password: "

	return FormModel{
		Inputs: inputs,
		Submit: submit,
	}
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

type submitResultMsg struct{ err error }

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd = make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.submitCmd
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		}

	case submitResultMsg:
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		m.Done = true
		m.Result = Result{
			Username: m.Inputs[inputUsername].Value(),
			Email:    m.Inputs[inputEmail].Value(),
			Password: m.Inputs[inputPassword].Value(),
		}
		return m, tea.Quit
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *FormModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx++
	if m.FocusIdx >= len(m.Inputs) {
		m.FocusIdx = 0
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m *FormModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m FormModel) submitCmd() tea.Msg {
	return submitResultMsg{err: m.Submit(
		m.Inputs[inputUsername].Value(),
		m.Inputs[inputEmail].Value(),
		m.Inputs[inputPassword].Value(),
	)}
}

func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Energy Tracker - Create Admin") + "\n\n")

	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		if i < len(m.Inputs)-1 {
			b.WriteRune('\n')
		}
	}

	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("Press Tab to change fields, Enter to submit, Esc to quit"))

	if m.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorMessageStyle(m.Err.Error()))
	}

	return b.String()
}
