package kitgen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
)

func makeCards(n int) []kit.Flashcard {
	cards := make([]kit.Flashcard, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, kit.Flashcard{
			Front: fmt.Sprintf("front %d", i),
			Back:  fmt.Sprintf("back %d", i),
			Type:  kit.CardQA,
		})
	}
	return cards
}

func TestReconcileFlashcardsTruncates(t *testing.T) {
	out := ReconcileFlashcards(makeCards(7), 4)
	require.Len(t, out, 4)
	require.Equal(t, "front 0", out[0].Front)
	require.Equal(t, "front 3", out[3].Front)
}

func TestReconcileFlashcardsPadsWithVariants(t *testing.T) {
	out := ReconcileFlashcards(makeCards(3), 5)
	require.Len(t, out, 5)

	// Padded entries cycle over the originals and are never byte-identical
	// to their source.
	require.Equal(t, "front 0 (variant 1)", out[3].Front)
	require.Equal(t, "front 1 (variant 2)", out[4].Front)
	require.Equal(t, out[0].Back, out[3].Back)
	require.NotEqual(t, out[0].Front, out[3].Front)
	require.NotEqual(t, out[1].Front, out[4].Front)
}

func TestReconcileFlashcardsExactCountUnchanged(t *testing.T) {
	in := makeCards(5)
	out := ReconcileFlashcards(in, 5)
	require.Equal(t, in, out)
}

func TestReconcileFlashcardsEmptyInputUnchanged(t *testing.T) {
	// Mod-by-zero padding is impossible; the orchestrator must route empty
	// input to the fallback generator instead.
	out := ReconcileFlashcards(nil, 5)
	require.Empty(t, out)
}

func TestReconcileQuizPadsWithVariants(t *testing.T) {
	in := []kit.QuizQuestion{
		{Question: "q0", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
		{Question: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
	}
	out := ReconcileQuiz(in, 5)
	require.Len(t, out, 5)
	require.Equal(t, "q0 (variant 1)", out[2].Question)
	require.Equal(t, "q1 (variant 2)", out[3].Question)
	require.Equal(t, "q0 (variant 3)", out[4].Question)
	require.Equal(t, in[0].Answer, out[2].Answer)
}

func TestReconcileQuizSharesNoOptionSlice(t *testing.T) {
	in := []kit.QuizQuestion{{Question: "q0", Options: []string{"a", "b", "c", "d"}, Answer: "a"}}
	out := ReconcileQuiz(in, 2)
	out[1].Options[0] = "mutated"
	require.Equal(t, "a", out[0].Options[0])
}
