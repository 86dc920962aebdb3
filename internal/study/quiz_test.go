package study

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
)

func testQuestions() []kit.QuizQuestion {
	return []kit.QuizQuestion{
		{ID: "q-0", Question: "First?", Options: []string{"A", "B", "C", "D"}, Answer: "A"},
		{ID: "q-1", Question: "Second?", Options: []string{"A", "B", "C", "D"}, Answer: "C"},
	}
}

func TestQuizScoresFirstSelectionOnly(t *testing.T) {
	q := NewQuiz(testQuestions())
	q.Select("A")
	require.Equal(t, 1, q.Score())
	q.Select("A")
	require.Equal(t, 1, q.Score())
	q.Select("B")
	require.Equal(t, "A", q.Selected())
	require.Equal(t, 1, q.Score())
}

func TestQuizRequiresAnswerBeforeAdvance(t *testing.T) {
	q := NewQuiz(testQuestions())
	q.Advance()
	require.Equal(t, 0, q.Index())
	q.Select("B")
	q.Advance()
	require.Equal(t, 1, q.Index())
	require.False(t, q.Answered())
	require.Equal(t, "", q.Selected())
}

func TestQuizFinishesPastLastQuestion(t *testing.T) {
	q := NewQuiz(testQuestions())
	q.Select("A")
	q.Advance()
	q.Select("C")
	q.Advance()
	require.True(t, q.Finished())
	require.Equal(t, 2, q.Score())
	require.Equal(t, 100, q.Accuracy())
}

func TestQuizAccuracyRounds(t *testing.T) {
	qs := []kit.QuizQuestion{
		{Question: "1", Options: []string{"A", "B", "C", "D"}, Answer: "A"},
		{Question: "2", Options: []string{"A", "B", "C", "D"}, Answer: "A"},
		{Question: "3", Options: []string{"A", "B", "C", "D"}, Answer: "A"},
	}
	q := NewQuiz(qs)
	q.Select("A")
	q.Advance()
	q.Select("B")
	q.Advance()
	q.Select("B")
	q.Advance()
	require.True(t, q.Finished())
	require.Equal(t, 33, q.Accuracy())
}

func TestQuizRestartFromAnyState(t *testing.T) {
	q := NewQuiz(testQuestions())
	q.Select("A")
	q.Advance()
	q.Select("C")
	q.Advance()
	require.True(t, q.Finished())

	q.Restart()
	require.False(t, q.Finished())
	require.Equal(t, 0, q.Index())
	require.Equal(t, 0, q.Score())
	require.False(t, q.Answered())
}

func TestQuizEmptyStartsFinished(t *testing.T) {
	q := NewQuiz(nil)
	require.True(t, q.Finished())
	require.Equal(t, 0, q.Accuracy())
}
