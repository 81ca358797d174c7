// Package prompt asks for missing create arguments one at a time in the
// terminal, re-asking until each answer passes its validator.
package prompt

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	oerrors "github.com/bundlesmith/cli/internal/errors"
	"github.com/bundlesmith/cli/internal/output"
	"github.com/bundlesmith/cli/internal/validator"
)

// ErrCancelled is returned when the user leaves the wizard with Ctrl+C or Esc.
var ErrCancelled = errors.New("prompt cancelled")

// Question is one field to ask for. Default is used when the answer is empty.
type Question struct {
	Field   validator.Field
	Default string
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(output.ColorGreen)
	errorStyle  = lipgloss.NewStyle().Foreground(output.ColorBoldRed)
)

// model is a bubbletea model that asks one question at a time.
type model struct {
	questions []Question
	idx       int
	inputs    []textinput.Model
	problem   string
	done      bool
}

func newModel(questions []Question) model {
	inputs := make([]textinput.Model, len(questions))
	for i, q := range questions {
		ti := textinput.New()
		ti.Placeholder = q.Default
		ti.CharLimit = 512
		inputs[i] = ti
	}
	m := model{
		questions: questions,
		inputs:    inputs,
	}
	if len(inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.idx], cmd = m.inputs[m.idx].Update(msg)
	return m, cmd
}

// submit validates the current answer and moves on, or keeps the question
// open with the validation message.
func (m model) submit() (tea.Model, tea.Cmd) {
	q := m.questions[m.idx]
	value := m.inputs[m.idx].Value()
	if value == "" && q.Default != "" {
		value = q.Default
		m.inputs[m.idx].SetValue(value)
	}

	if _, err := q.Field.Validate(value); err != nil {
		m.problem = message(err)
		return m, nil
	}

	m.problem = ""
	if m.idx < len(m.inputs)-1 {
		m.inputs[m.idx].Blur()
		m.idx++
		m.inputs[m.idx].Focus()
		return m, textinput.Blink
	}

	m.done = true
	return m, tea.Quit
}

func (m model) View() string {
	if m.done || len(m.questions) == 0 {
		return ""
	}

	q := m.questions[m.idx]
	var b strings.Builder
	b.WriteString(" " + promptStyle.Render(q.Field.Prompt))
	if q.Default != "" {
		b.WriteString(output.StyleDim.Render(" [" + q.Default + "]"))
	}
	b.WriteString(":\n > " + m.inputs[m.idx].View() + "\n")
	if m.problem != "" {
		b.WriteString(errorStyle.Render(" [ERROR] "+m.problem) + "\n")
	}
	return b.String()
}

func (m model) answers() map[string]string {
	out := make(map[string]string, len(m.questions))
	for i, q := range m.questions {
		out[q.Field.Key] = m.inputs[i].Value()
	}
	return out
}

// Ask runs the wizard and returns the answers keyed by field key.
func Ask(questions []Question, opts ...tea.ProgramOption) (map[string]string, error) {
	if len(questions) == 0 {
		return map[string]string{}, nil
	}

	p := tea.NewProgram(newModel(questions), opts...)
	result, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}

	final, ok := result.(model)
	if !ok || !final.done {
		return nil, ErrCancelled
	}
	return final.answers(), nil
}

// Mask replaces every character of value with an asterisk.
func Mask(value string) string {
	return strings.Repeat("*", utf8.RuneCountInString(value))
}

// Echo renders the line shown for a value supplied on the command line.
func Echo(field validator.Field, value string) string {
	return " > " + promptStyle.Render(field.Prompt) + ": " + Mask(value)
}

// Intro is the text shown before the first question.
func Intro(binary string) string {
	title := output.StyleSummary.Render("Create Bundle Interactive Wizard")
	return strings.Join([]string{
		title,
		strings.Repeat("=", lipgloss.Width(title)),
		"",
		" If you prefer to not use this interactive wizard, provide the",
		" arguments required by this command as follows:",
		"",
		"   $ " + binary + " create domain-name bundle-name bundle-description bundle-keywords your-name your-email",
		"",
		" Now we'll ask you for the value of all the missing command arguments.",
		"",
	}, "\n")
}

func message(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}
