// Package study holds the pure interaction state machines behind the
// flashcard, quiz, and navigation views. They carry no rendering and
// no I/O, so both the terminal UI and the HTTP layer drive them.
package study

import (
	"regexp"
	"strings"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
)

const clozeBlank = "_______"

var clozeSpanRe = regexp.MustCompile(`\{([^}]+)\}|\[([^\]]+)\]`)

// Deck steps through a fixed card list with wrap-around navigation and
// a per-card flip flag.
type Deck struct {
	cards   []kit.Flashcard
	index   int
	flipped bool
}

func NewDeck(cards []kit.Flashcard) *Deck {
	return &Deck{cards: cards}
}

func (d *Deck) Len() int      { return len(d.cards) }
func (d *Deck) Index() int    { return d.index }
func (d *Deck) Flipped() bool { return d.flipped }

func (d *Deck) Current() kit.Flashcard {
	if len(d.cards) == 0 {
		return kit.Flashcard{}
	}
	return d.cards[d.index]
}

// Next advances with wrap-around and resets the flip flag.
func (d *Deck) Next() {
	if len(d.cards) == 0 {
		return
	}
	d.flipped = false
	d.index = (d.index + 1) % len(d.cards)
}

// Prev steps back with wrap-around and resets the flip flag.
func (d *Deck) Prev() {
	if len(d.cards) == 0 {
		return
	}
	d.flipped = false
	d.index = (d.index - 1 + len(d.cards)) % len(d.cards)
}

func (d *Deck) Flip() {
	d.flipped = !d.flipped
}

// FrontText returns the current card's front with every cloze span
// replaced by a fixed blank marker.
func (d *Deck) FrontText() string {
	return FormatClozeFront(d.Current().Front)
}

// FormatClozeFront blanks out {span} and [span] markers for display.
func FormatClozeFront(front string) string {
	return clozeSpanRe.ReplaceAllString(front, clozeBlank)
}

// ClozeAnswer extracts the hidden term from a cloze front, falling
// back to the card's back text when no span is present.
func ClozeAnswer(card kit.Flashcard) string {
	m := clozeSpanRe.FindStringSubmatch(card.Front)
	if m == nil {
		return card.Back
	}
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}

// ExportCSV serializes all cards as quoted front/back pairs, the shape
// Quizlet's importer accepts. Embedded quotes are doubled.
func (d *Deck) ExportCSV() string {
	lines := make([]string, 0, len(d.cards))
	for _, c := range d.cards {
		lines = append(lines, csvQuote(c.Front)+","+csvQuote(c.Back))
	}
	return strings.Join(lines, "\n")
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
