// Package kit defines the study-kit data model shared by the generation
// pipeline, the HTTP API and the terminal study views. A StudySession is
// written once when generation succeeds and treated as read-only by every
// consumer afterwards.
package kit

import "strings"

// NoteStyle selects the notes layout requested from the model.
type NoteStyle string

const (
	StyleCornell NoteStyle = "Cornell"
	StyleSummary NoteStyle = "Summary"
	StyleCompact NoteStyle = "Compact"
	StyleTable   NoteStyle = "Table"
)

// ParseNoteStyle maps free-form input to a known style, defaulting to Cornell.
func ParseNoteStyle(raw string) NoteStyle {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "summary":
		return StyleSummary
	case "compact":
		return StyleCompact
	case "table":
		return StyleTable
	default:
		return StyleCornell
	}
}

// CardType is the flashcard format.
type CardType string

const (
	CardQA    CardType = "qa"
	CardCloze CardType = "cloze"
	CardMCQ   CardType = "mcq"
)

type ConceptDefinition struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

type Flashcard struct {
	ID       string   `json:"id"`
	Front    string   `json:"front"`
	Back     string   `json:"back"`
	Type     CardType `json:"type"`
	Options  []string `json:"options,omitempty"`
	Citation string   `json:"citation,omitempty"`
}

type QuizQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Citation    string   `json:"citation,omitempty"`
}

// MindmapNode is a rooted label tree. The producer is untrusted, so
// consumers bound their recursion depth instead of assuming a clean tree.
type MindmapNode struct {
	Label       string        `json:"label"`
	Description string        `json:"description,omitempty"`
	Children    []MindmapNode `json:"children,omitempty"`
}

type CornellNotes struct {
	Cues    []string `json:"cues"`
	Notes   []string `json:"notes"`
	Summary string   `json:"summary"`
}

type StudySession struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	OriginalText string              `json:"original_text"`
	Concepts     []ConceptDefinition `json:"concepts"`
	Notes        string              `json:"notes"`
	Cornell      *CornellNotes       `json:"cornell,omitempty"`
	Flashcards   []Flashcard         `json:"flashcards"`
	Quiz         []QuizQuestion      `json:"quiz"`
	Mindmap      MindmapNode         `json:"mindmap"`
	Language     string              `json:"language"`
	NoteStyle    NoteStyle           `json:"note_style"`
}
