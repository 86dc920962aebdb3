package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/config"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/logging"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/providers"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/study"
)

func testModel() Model {
	cfg := config.Config{Language: "English", FlashcardCount: 3, QuizCount: 2, ContentBudget: 5000, TutorBudget: 3000}
	return NewModel(cfg, logging.Nop(), providers.NewMockProvider())
}

func testSession() kit.StudySession {
	return kit.StudySession{
		ID:    "s1",
		Title: "Cell Biology",
		Flashcards: []kit.Flashcard{
			{ID: "fc-0", Front: "What is a cell?", Back: "The basic unit of life.", Type: kit.CardQA},
		},
		Quiz: []kit.QuizQuestion{
			{ID: "q-0", Question: "Pick A", Options: []string{"A", "B", "C", "D"}, Answer: "A"},
		},
		Mindmap:  kit.MindmapNode{Label: "Cells", Children: []kit.MindmapNode{{Label: "Organelles"}}},
		Language: "English",
	}
}

func press(m Model, key string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return next.(Model)
}

func TestModelStartsOnUpload(t *testing.T) {
	m := testModel()
	require.Equal(t, study.ViewUpload, m.nav.View())
}

func TestKitReadyLandsOnDashboard(t *testing.T) {
	m := testModel()
	next, _ := m.Update(kitReadyMsg{session: testSession()})
	m = next.(Model)
	require.Equal(t, study.ViewDashboard, m.nav.View())
	require.NotNil(t, m.session)
	require.Equal(t, 1, m.deck.Len())
	require.Len(t, m.history, 1)
	require.Equal(t, "model", m.history[0].Role)
}

func TestDashboardNavigation(t *testing.T) {
	m := testModel()
	next, _ := m.Update(kitReadyMsg{session: testSession()})
	m = next.(Model)

	m = press(m, "f")
	require.Equal(t, study.ViewFlashcards, m.nav.View())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	require.Equal(t, study.ViewDashboard, m.nav.View())

	m = press(m, "q")
	require.Equal(t, study.ViewQuiz, m.nav.View())
}

func TestKitFailedShowsError(t *testing.T) {
	m := testModel()
	m.generating = true
	next, _ := m.Update(kitFailedMsg{err: errFake("cannot read file")})
	m = next.(Model)
	require.False(t, m.generating)
	require.Equal(t, "cannot read file", m.errText)
	require.Equal(t, study.ViewUpload, m.nav.View())
}

func TestQuizKeysDriveController(t *testing.T) {
	m := testModel()
	next, _ := m.Update(kitReadyMsg{session: testSession()})
	m = next.(Model)
	m = press(m, "q")

	m = press(m, "1")
	require.Equal(t, 1, m.quiz.Score())
	require.True(t, m.quiz.Answered())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.True(t, m.quiz.Finished())

	m = press(m, "r")
	require.False(t, m.quiz.Finished())
	require.Equal(t, 0, m.quiz.Score())
}

func TestTutorBlocksOverlappingRequests(t *testing.T) {
	m := testModel()
	next, _ := m.Update(kitReadyMsg{session: testSession()})
	m = next.(Model)
	m = press(m, "t")
	require.Equal(t, study.ViewTutor, m.nav.View())

	m.input.SetValue("what is a cell?")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.tutorBusy)
	require.Len(t, m.history, 2)

	m.input.SetValue("another question")
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.Nil(t, cmd)
	require.Len(t, m.history, 2)

	next, _ = m.Update(tutorAnswerMsg{answer: "A cell is the basic unit of life."})
	m = next.(Model)
	require.False(t, m.tutorBusy)
	require.Len(t, m.history, 3)
}

type errFake string

func (e errFake) Error() string { return string(e) }
