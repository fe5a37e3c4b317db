// Package tui renders the contact form in a terminal. Each keystroke is a
// change event on a contactform.View; bubbletea runs every event to completion
// before reading the next one.
package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/givers/contact/internal/contactform"
	"github.com/givers/contact/internal/formspec"
	"github.com/givers/contact/internal/model"
)

const inputWidth = 50

// focus positions: one per field, then the submit button
const (
	focusName = iota
	focusEmail
	focusMessage
	focusSubmit
	focusCount
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4F46E5")).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#374151"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	buttonStyle = lipgloss.NewStyle().Padding(0, 3).
			Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#6B7280"))
	activeButtonStyle = buttonStyle.Background(lipgloss.Color("#7C3AED"))
)

// Model is the bubbletea model of the contact form.
type Model struct {
	spec *formspec.Spec
	form *contactform.View

	name    textinput.Model
	email   textinput.Model
	message textarea.Model

	focus     int
	hintField model.Field
}

// New builds an idle terminal form with the name input focused.
func New(spec *formspec.Spec, checker contactform.RequiredChecker) Model {
	m := Model{
		spec:    spec,
		form:    contactform.New(checker),
		name:    newTextInput(spec, model.FieldName),
		email:   newTextInput(spec, model.FieldEmail),
		message: newTextarea(spec),
	}
	m.name.Focus()
	return m
}

func newTextInput(spec *formspec.Spec, field model.Field) textinput.Model {
	ti := textinput.New()
	ti.Width = inputWidth
	if fs, ok := spec.Field(field); ok {
		ti.Placeholder = fs.Placeholder
	}
	return ti
}

func newTextarea(spec *formspec.Spec) textarea.Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.SetWidth(inputWidth)
	ta.SetHeight(6)
	if fs, ok := spec.Field(model.FieldMessage); ok {
		ta.Placeholder = fs.Placeholder
		if fs.Rows > 0 {
			ta.SetHeight(fs.Rows)
		}
	}
	return ta
}

// Form returns the current field values.
func (m Model) Form() model.ContactForm { return m.form.Form() }

// Status returns the status line.
func (m Model) Status() model.SubmissionStatus { return m.form.Status() }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m, m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab":
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			switch m.focus {
			case focusSubmit:
				return m, m.submit()
			case focusName, focusEmail:
				return m, m.setFocus(m.focus + 1)
			}
		}
	}
	return m, m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and records the resulting
// value as a change event.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	var field model.Field
	var value string
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
		field, value = model.FieldName, m.name.Value()
	case focusEmail:
		m.email, cmd = m.email.Update(msg)
		field, value = model.FieldEmail, m.email.Value()
	case focusMessage:
		m.message, cmd = m.message.Update(msg)
		field, value = model.FieldMessage, m.message.Value()
	default:
		return nil
	}

	if value != m.form.Form().Value(field) {
		// field comes from the fixed focus table, Change cannot fail here
		_ = m.form.Change(field, value)
		if field == m.hintField {
			m.hintField = ""
		}
	}
	return cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
	switch i {
	case focusName:
		return m.name.Focus()
	case focusEmail:
		return m.email.Focus()
	case focusMessage:
		return m.message.Focus()
	}
	return nil
}

func (m *Model) submit() tea.Cmd {
	var rerr *contactform.RequiredFieldsError
	if err := m.form.Submit(); errors.As(err, &rerr) {
		m.hintField = rerr.First()
		return m.setFocus(focusIndex(rerr.First()))
	}
	m.hintField = ""
	m.name.Reset()
	m.email.Reset()
	m.message.Reset()
	return m.setFocus(focusName)
}

func focusIndex(f model.Field) int {
	switch f {
	case model.FieldEmail:
		return focusEmail
	case model.FieldMessage:
		return focusMessage
	}
	return focusName
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.spec.Title))
	b.WriteString("\n")
	if status := m.form.Status(); status != "" {
		b.WriteString(statusStyle.Render(string(status)))
		b.WriteString("\n\n")
	}

	for _, fs := range m.spec.Fields {
		b.WriteString(labelStyle.Render(fs.Label))
		b.WriteString("\n")
		switch fs.Name {
		case model.FieldName:
			b.WriteString(m.name.View())
		case model.FieldEmail:
			b.WriteString(m.email.View())
		case model.FieldMessage:
			b.WriteString(m.message.View())
		}
		b.WriteString("\n")
		if fs.Name == m.hintField {
			b.WriteString(hintStyle.Render(m.spec.RequiredHint))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	button := buttonStyle
	if m.focus == focusSubmit {
		button = activeButtonStyle
	}
	b.WriteString(button.Render(m.spec.SubmitLabel))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab/shift+tab: move • ctrl+s: send • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// Run shows the form until the user quits or ctx is cancelled.
func Run(ctx context.Context, spec *formspec.Spec, checker contactform.RequiredChecker, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(spec, checker),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
