package kitgen

import (
	"fmt"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
)

// ReconcileFlashcards forces the generated card list to exactly n entries:
// surplus is truncated in order, shortfall is padded by cyclically
// duplicating existing cards with a variant suffix on the front text.
// An empty input list is the caller's problem (it must use the fallback
// generator instead); it is returned unchanged to avoid a mod-by-zero.
func ReconcileFlashcards(cards []kit.Flashcard, n int) []kit.Flashcard {
	if len(cards) == 0 || n < 0 {
		return cards
	}
	if len(cards) >= n {
		return cards[:n]
	}
	original := len(cards)
	for i := 0; len(cards) < n; i++ {
		dup := cards[i%original]
		dup.Front = fmt.Sprintf("%s (variant %d)", dup.Front, i+1)
		dup.Options = append([]string(nil), dup.Options...)
		cards = append(cards, dup)
	}
	return cards
}

// ReconcileQuiz is the quiz-question counterpart; the variant suffix lands
// on the question text.
func ReconcileQuiz(questions []kit.QuizQuestion, n int) []kit.QuizQuestion {
	if len(questions) == 0 || n < 0 {
		return questions
	}
	if len(questions) >= n {
		return questions[:n]
	}
	original := len(questions)
	for i := 0; len(questions) < n; i++ {
		dup := questions[i%original]
		dup.Question = fmt.Sprintf("%s (variant %d)", dup.Question, i+1)
		dup.Options = append([]string(nil), dup.Options...)
		questions = append(questions, dup)
	}
	return questions
}
