package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/ecotrace/internal/survey"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func step(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestQuizEscAborts(t *testing.T) {
	m := step(t, NewQuizModel(), key("esc"))

	quiz, ok := m.(QuizModel)
	require.True(t, ok)
	assert.True(t, quiz.Aborted())
	assert.False(t, quiz.Done())
}

func TestQuizTextAnswerRecordsValue(t *testing.T) {
	m := tea.Model(NewQuizModel())

	// First question is the name, answered as free text.
	m = step(t, m, key("R"), key("i"), key("a"), key("enter"))

	quiz, ok := m.(QuizModel)
	require.True(t, ok)
	assert.Equal(t, "Ria", quiz.Responses().Name)
	assert.False(t, quiz.Done())
}

func TestQuizChoiceSelection(t *testing.T) {
	m := tea.Model(NewQuizModel())

	// Skip the three text questions (name, electricity, gas) with blank
	// answers, then pick the second efficiency option.
	m = step(t, m, key("enter"), key("enter"), key("enter"))
	m = step(t, m, key("down"), key("enter"))

	quiz, ok := m.(QuizModel)
	require.True(t, ok)
	assert.Equal(t, survey.TierB, quiz.Responses().HomeEfficiency)
	assert.Empty(t, quiz.Responses().ElectricityKwh)
}

func TestQuizSkipChoiceLeavesUnanswered(t *testing.T) {
	m := tea.Model(NewQuizModel())

	m = step(t, m, key("enter"), key("enter"), key("enter"))
	// The skip entry is last: three downs from the top of a 4-option list.
	m = step(t, m, key("down"), key("down"), key("down"), key("enter"))

	quiz, ok := m.(QuizModel)
	require.True(t, ok)
	assert.Equal(t, survey.TierUnanswered, quiz.Responses().HomeEfficiency)
}

func TestQuizRunsToCompletion(t *testing.T) {
	m := tea.Model(NewQuizModel())
	total := len(quizQuestions())

	// Answer everything with the first available option / blank text.
	for range total {
		m = step(t, m, key("enter"))
	}

	quiz, ok := m.(QuizModel)
	require.True(t, ok)
	assert.True(t, quiz.Done())

	// First choice answers were all "A"/yes variants.
	assert.Equal(t, survey.TierA, quiz.Responses().HomeEfficiency)
	assert.True(t, quiz.Responses().UsesRenewableEnergy)
}

func TestQuizViewShowsProgress(t *testing.T) {
	m := NewQuizModel()

	view := m.View()
	assert.Contains(t, view, "Question 1 of")
	assert.Contains(t, view, "name")
}
