package kit

import (
	"fmt"
	"regexp"
	"strings"
)

// clozeSpan matches the delimited answer span of a cloze front,
// either {curly} or [square] per the prompt contract.
var clozeSpan = regexp.MustCompile(`\{[^}]+\}|\[[^\]]+\]`)

// HasClozeSpan reports whether a front text carries a delimited answer span.
func HasClozeSpan(front string) bool {
	return clozeSpan.MatchString(front)
}

// quizDistractors pads under-filled option lists up to the required four.
var quizDistractors = []string{"None of the above", "All of the above", "Not stated in the material", "Cannot be determined"}

// NormalizeFlashcard repairs a decoded flashcard in place so that the card
// invariants hold: unknown types become qa, mcq cards must carry options,
// cloze fronts must contain a delimited span.
func NormalizeFlashcard(c *Flashcard) {
	c.Front = strings.TrimSpace(c.Front)
	c.Back = strings.TrimSpace(c.Back)
	switch c.Type {
	case CardMCQ:
		if len(c.Options) == 0 {
			c.Type = CardQA
		}
	case CardCloze:
		if !HasClozeSpan(c.Front) {
			c.Type = CardQA
		}
	case CardQA:
	default:
		c.Type = CardQA
	}
	if c.Type != CardMCQ {
		c.Options = nil
	}
}

// NormalizeQuizQuestion forces the four-option invariant and makes the
// answer match one option by value. Model output regularly violates both.
func NormalizeQuizQuestion(q *QuizQuestion) {
	q.Question = strings.TrimSpace(q.Question)
	q.Answer = strings.TrimSpace(q.Answer)

	opts := make([]string, 0, 4)
	for _, o := range q.Options {
		o = strings.TrimSpace(o)
		if o != "" {
			opts = append(opts, o)
		}
	}
	for i := 0; len(opts) < 4; i++ {
		opts = append(opts, quizDistractors[i%len(quizDistractors)])
	}
	if len(opts) > 4 {
		opts = opts[:4]
	}
	q.Options = opts

	for _, o := range q.Options {
		if o == q.Answer {
			return
		}
	}
	q.Answer = q.Options[0]
}

// AssignIDs stamps sequential per-session identifiers onto cards and
// questions. Identifiers are stable for the lifetime of the session.
func AssignIDs(cards []Flashcard, quiz []QuizQuestion) {
	for i := range cards {
		cards[i].ID = fmt.Sprintf("fc-%d", i)
	}
	for i := range quiz {
		quiz[i].ID = fmt.Sprintf("q-%d", i)
	}
}
