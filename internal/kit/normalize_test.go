package kit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasClozeSpan(t *testing.T) {
	require.True(t, HasClozeSpan("The {mitochondria} is the powerhouse."))
	require.True(t, HasClozeSpan("Plants use [chlorophyll] for this."))
	require.False(t, HasClozeSpan("No span at all."))
	require.False(t, HasClozeSpan("Unclosed {span"))
}

func TestNormalizeFlashcardMCQWithoutOptions(t *testing.T) {
	c := Flashcard{Front: "Pick one", Back: "A", Type: CardMCQ}
	NormalizeFlashcard(&c)
	require.Equal(t, CardQA, c.Type)
	require.Nil(t, c.Options)
}

func TestNormalizeFlashcardClozeWithoutSpan(t *testing.T) {
	c := Flashcard{Front: "no span here", Back: "answer", Type: CardCloze}
	NormalizeFlashcard(&c)
	require.Equal(t, CardQA, c.Type)
}

func TestNormalizeFlashcardUnknownType(t *testing.T) {
	c := Flashcard{Front: " f ", Back: " b ", Type: "truefalse", Options: []string{"x"}}
	NormalizeFlashcard(&c)
	require.Equal(t, CardQA, c.Type)
	require.Equal(t, "f", c.Front)
	require.Equal(t, "b", c.Back)
	require.Nil(t, c.Options)
}

func TestNormalizeFlashcardValidMCQKeepsOptions(t *testing.T) {
	c := Flashcard{Front: "Pick", Back: "A", Type: CardMCQ, Options: []string{"A", "B"}}
	NormalizeFlashcard(&c)
	require.Equal(t, CardMCQ, c.Type)
	require.Equal(t, []string{"A", "B"}, c.Options)
}

func TestNormalizeQuizQuestionPadsToFour(t *testing.T) {
	q := QuizQuestion{Question: "Q?", Options: []string{"Only"}, Answer: "Only"}
	NormalizeQuizQuestion(&q)
	require.Len(t, q.Options, 4)
	require.Equal(t, "Only", q.Options[0])
	require.Equal(t, "Only", q.Answer)
}

func TestNormalizeQuizQuestionTruncatesToFour(t *testing.T) {
	q := QuizQuestion{Question: "Q?", Options: []string{"A", "B", "C", "D", "E"}, Answer: "E"}
	NormalizeQuizQuestion(&q)
	require.Len(t, q.Options, 4)
	require.Equal(t, "A", q.Answer)
}

func TestNormalizeQuizQuestionAnswerMustMatchOption(t *testing.T) {
	q := QuizQuestion{Question: "Q?", Options: []string{"A", "B", "C", "D"}, Answer: "missing"}
	NormalizeQuizQuestion(&q)
	require.Equal(t, "A", q.Answer)
}

func TestNormalizeQuizQuestionDropsBlankOptions(t *testing.T) {
	q := QuizQuestion{Question: "Q?", Options: []string{" A ", "", "  ", "B"}, Answer: "B"}
	NormalizeQuizQuestion(&q)
	require.Equal(t, "A", q.Options[0])
	require.Equal(t, "B", q.Options[1])
	require.Len(t, q.Options, 4)
	require.Equal(t, "B", q.Answer)
}

func TestAssignIDs(t *testing.T) {
	cards := []Flashcard{{Front: "a"}, {Front: "b"}}
	quiz := []QuizQuestion{{Question: "x"}}
	AssignIDs(cards, quiz)
	require.Equal(t, "fc-0", cards[0].ID)
	require.Equal(t, "fc-1", cards[1].ID)
	require.Equal(t, "q-0", quiz[0].ID)
}

func TestParseNoteStyle(t *testing.T) {
	require.Equal(t, StyleSummary, ParseNoteStyle("summary"))
	require.Equal(t, StyleCompact, ParseNoteStyle(" Compact "))
	require.Equal(t, StyleTable, ParseNoteStyle("TABLE"))
	require.Equal(t, StyleCornell, ParseNoteStyle(""))
	require.Equal(t, StyleCornell, ParseNoteStyle("freeform"))
}
