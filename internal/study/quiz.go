package study

import (
	"math"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
)

// Quiz scores a question list one answer at a time. The first selection
// at each index is the one that counts; later clicks at the same index
// are no-ops until Advance moves on. Advancing past the last question
// finishes the quiz.
type Quiz struct {
	questions []kit.QuizQuestion
	index     int
	selected  string
	answered  bool
	score     int
	finished  bool
}

func NewQuiz(questions []kit.QuizQuestion) *Quiz {
	return &Quiz{questions: questions, finished: len(questions) == 0}
}

func (q *Quiz) Len() int         { return len(q.questions) }
func (q *Quiz) Index() int       { return q.index }
func (q *Quiz) Score() int       { return q.score }
func (q *Quiz) Finished() bool   { return q.finished }
func (q *Quiz) Answered() bool   { return q.answered }
func (q *Quiz) Selected() string { return q.selected }

func (q *Quiz) Current() kit.QuizQuestion {
	if q.finished || len(q.questions) == 0 {
		return kit.QuizQuestion{}
	}
	return q.questions[q.index]
}

// Select records the first choice at the current index and scores it by
// case-sensitive comparison against the answer text.
func (q *Quiz) Select(option string) {
	if q.finished || q.answered {
		return
	}
	q.selected = option
	q.answered = true
	if option == q.questions[q.index].Answer {
		q.score++
	}
}

// Advance moves to the next question after an answer has been chosen.
// Advancing past the last question transitions to the finished state.
func (q *Quiz) Advance() {
	if q.finished || !q.answered {
		return
	}
	q.index++
	q.selected = ""
	q.answered = false
	if q.index >= len(q.questions) {
		q.finished = true
	}
}

// Restart returns to the first question with a zero score.
func (q *Quiz) Restart() {
	q.index = 0
	q.selected = ""
	q.answered = false
	q.score = 0
	q.finished = len(q.questions) == 0
}

// Accuracy reports the rounded percent score.
func (q *Quiz) Accuracy() int {
	if len(q.questions) == 0 {
		return 0
	}
	return int(math.Round(float64(q.score) / float64(len(q.questions)) * 100))
}
