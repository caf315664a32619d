package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/greenloop/ecotrace/internal/survey"
)

// QuizModel walks the user through the quiz one question at a time and
// accumulates a survey.Responses record.
type QuizModel struct {
	questions []question
	index     int
	cursor    int
	input     textinput.Model
	responses survey.Responses
	done      bool
	aborted   bool
}

// NewQuizModel returns a quiz at the first question.
func NewQuizModel() QuizModel {
	ti := textinput.New()
	ti.Placeholder = "type your answer"
	ti.CharLimit = 64
	ti.Focus()

	return QuizModel{
		questions: quizQuestions(),
		input:     ti,
	}
}

// Responses returns the collected answers. Only meaningful once Done.
func (m QuizModel) Responses() survey.Responses { return m.responses }

// Done reports whether the quiz ran to completion.
func (m QuizModel) Done() bool { return m.done }

// Aborted reports whether the user quit early.
func (m QuizModel) Aborted() bool { return m.aborted }

// Init implements tea.Model.
func (m QuizModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}

	if m.done {
		return m, tea.Quit
	}

	q := m.questions[m.index]
	if q.kind == kindText {
		if keyMsg.String() == "enter" {
			q.apply(&m.responses, strings.TrimSpace(m.input.Value()))
			return m.advance()
		}
		return m.updateInput(msg)
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.choices)-1 {
			m.cursor++
		}
	case "enter":
		q.apply(&m.responses, q.choices[m.cursor].code)
		return m.advance()
	}
	return m, nil
}

func (m QuizModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// advance moves to the next question, or finishes the quiz.
func (m QuizModel) advance() (tea.Model, tea.Cmd) {
	m.index++
	m.cursor = 0
	m.input.SetValue("")
	if m.index >= len(m.questions) {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m QuizModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	q := m.questions[m.index]

	var b strings.Builder
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("Question %d of %d", m.index+1, len(m.questions))))
	b.WriteString("\n\n")
	b.WriteString(PromptStyle.Render(q.prompt))
	b.WriteString("\n\n")

	if q.kind == kindText {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(SubtleStyle.Render("enter to continue · esc to quit"))
		return b.String()
	}

	for i, c := range q.choices {
		if i == m.cursor {
			b.WriteString(PickedStyle.Render("> " + c.label))
		} else {
			b.WriteString(ChoiceStyle.Render(c.label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("↑/↓ to choose · enter to confirm · esc to quit"))
	return b.String()
}
