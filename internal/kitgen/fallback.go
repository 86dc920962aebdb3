package kitgen

import (
	"fmt"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
)

// FallbackFlashcards produces deterministic placeholder cards cycling
// through the three card types. Used only when the engagement call fails
// outright; a short-count response goes through reconciliation instead.
func FallbackFlashcards(count int) []kit.Flashcard {
	cards := make([]kit.Flashcard, 0, count)
	for i := 0; i < count; i++ {
		var c kit.Flashcard
		switch i % 3 {
		case 0:
			c = kit.Flashcard{
				Front: fmt.Sprintf("Sample Question %d?", i+1),
				Back:  fmt.Sprintf("Sample answer %d", i+1),
				Type:  kit.CardQA,
			}
		case 1:
			c = kit.Flashcard{
				Front: fmt.Sprintf("This is a sample [cloze] deletion %d.", i+1),
				Back:  fmt.Sprintf("Sample answer %d", i+1),
				Type:  kit.CardCloze,
			}
		default:
			c = kit.Flashcard{
				Front:   fmt.Sprintf("Sample MCQ %d?", i+1),
				Back:    fmt.Sprintf("Sample answer %d", i+1),
				Type:    kit.CardMCQ,
				Options: []string{"Option A", "Option B", "Option C", "Option D"},
			}
		}
		cards = append(cards, c)
	}
	return cards
}

// FallbackQuiz produces deterministic placeholder questions with a fixed
// option template and a constant correct answer.
func FallbackQuiz(count int) []kit.QuizQuestion {
	questions := make([]kit.QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, kit.QuizQuestion{
			Question:    fmt.Sprintf("Sample quiz question %d?", i+1),
			Options:     []string{"Option A", "Option B", "Option C", "Option D"},
			Answer:      "Option A",
			Explanation: fmt.Sprintf("This is a sample explanation for question %d.", i+1),
		})
	}
	return questions
}
