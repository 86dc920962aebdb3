// Package kitgen turns extracted study material into a complete study kit
// by issuing three sequential model requests and repairing their output
// locally. Every step past input validation degrades instead of failing:
// the caller always receives a session with the requested cardinalities.
package kitgen

import (
	"context"
	"errors"
	"strings"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/logging"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/providers"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/util"
)

var ErrEmptyContent = errors.New("study material is empty")

const (
	defaultFlashcardCount = 10
	defaultQuizCount      = 5
	minFlashcardCount     = 5
	maxFlashcardCount     = 20
	minQuizCount          = 3
	maxQuizCount          = 15
)

func clampCount(n, def, min, max int) int {
	switch {
	case n <= 0:
		return def
	case n < min:
		return min
	case n > max:
		return max
	default:
		return n
	}
}

type GenerateInput struct {
	Content        string
	Image          *providers.ImageData
	Language       string
	NoteStyle      kit.NoteStyle
	FlashcardCount int
	QuizCount      int
}

type Generator struct {
	provider      providers.LLMProvider
	log           *logging.Logger
	contentBudget int
}

func NewGenerator(p providers.LLMProvider, log *logging.Logger, contentBudget int) *Generator {
	if log == nil {
		log = logging.Nop()
	}
	if contentBudget <= 0 {
		contentBudget = 3000
	}
	return &Generator{provider: p, log: log, contentBudget: contentBudget}
}

type coreResult struct {
	Title    string                  `json:"title"`
	Concepts []kit.ConceptDefinition `json:"concepts"`
	Notes    string                  `json:"notes"`
	Cornell  *kit.CornellNotes       `json:"cornell"`
}

type mindmapResult struct {
	Mindmap kit.MindmapNode `json:"mindmap"`
}

type engagementResult struct {
	Flashcards []kit.Flashcard    `json:"flashcards"`
	Quiz       []kit.QuizQuestion `json:"quiz"`
}

// GenerateStudyKit runs the three-step pipeline: core content, mindmap
// structure, engagement content. Each request is attempted once; the second
// and third are best-effort with local fallbacks. The only error surfaced
// to the caller is empty input.
func (g *Generator) GenerateStudyKit(ctx context.Context, in GenerateInput) (kit.StudySession, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" && in.Image == nil {
		return kit.StudySession{}, ErrEmptyContent
	}
	content = util.TruncateRunes(content, g.contentBudget)
	if in.Language == "" {
		in.Language = "English"
	}
	if in.NoteStyle == "" {
		in.NoteStyle = kit.StyleCornell
	}
	in.FlashcardCount = clampCount(in.FlashcardCount, defaultFlashcardCount, minFlashcardCount, maxFlashcardCount)
	in.QuizCount = clampCount(in.QuizCount, defaultQuizCount, minQuizCount, maxQuizCount)

	core := g.generateCore(ctx, content, in)
	mindmap := g.generateMindmap(ctx, content, core.Title)
	cards, quiz := g.generateEngagement(ctx, content, in)

	kit.AssignIDs(cards, quiz)

	session := kit.StudySession{
		Title:      core.Title,
		Concepts:   core.Concepts,
		Notes:      core.Notes,
		Cornell:    core.Cornell,
		Flashcards: cards,
		Quiz:       quiz,
		Mindmap:    mindmap,
		Language:   in.Language,
		NoteStyle:  in.NoteStyle,
	}
	return session, nil
}

func (g *Generator) generateCore(ctx context.Context, content string, in GenerateInput) coreResult {
	fallback := coreResult{Title: "Study Session"}
	userText := buildCorePrompt(content, in.NoteStyle, in.Language)
	if in.Image != nil {
		userText = "Analyze this material. Language: " + in.Language + "."
	}
	raw, err := g.provider.Complete(ctx, providers.CompletionRequest{
		Operation: opCore,
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Text: systemJSONOnly},
			{Role: providers.RoleUser, Text: userText, Image: in.Image},
		},
		ForceJSON: true,
	})
	if err != nil {
		g.log.Warn("core content request failed", "error", err, "class", providers.ClassifyError(err))
		return fallback
	}
	core := CoerceJSON(g.log, opCore, raw, fallback)
	if strings.TrimSpace(core.Title) == "" {
		core.Title = fallback.Title
	}
	return core
}

func (g *Generator) generateMindmap(ctx context.Context, content, title string) kit.MindmapNode {
	fallback := mindmapResult{Mindmap: kit.MindmapNode{Label: title}}
	raw, err := g.provider.Complete(ctx, providers.CompletionRequest{
		Operation: opMindmap,
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Text: systemMindmap},
			{Role: providers.RoleUser, Text: buildMindmapPrompt(content)},
		},
		ForceJSON: true,
	})
	if err != nil {
		g.log.Warn("mindmap request failed", "error", err, "class", providers.ClassifyError(err))
		return fallback.Mindmap
	}
	parsed := CoerceJSON(g.log, opMindmap, raw, fallback)
	if strings.TrimSpace(parsed.Mindmap.Label) == "" {
		return fallback.Mindmap
	}
	return parsed.Mindmap
}

func (g *Generator) generateEngagement(ctx context.Context, content string, in GenerateInput) ([]kit.Flashcard, []kit.QuizQuestion) {
	raw, err := g.provider.Complete(ctx, providers.CompletionRequest{
		Operation: opEngagement,
		Messages: []providers.Message{
			{Role: providers.RoleSystem, Text: systemJSONCounts},
			{Role: providers.RoleUser, Text: buildEngagementPrompt(content, in.Language, in.FlashcardCount, in.QuizCount)},
		},
		ForceJSON: true,
	})
	if err != nil {
		g.log.Warn("engagement request failed, using fallback content", "error", err, "class", providers.ClassifyError(err))
		return FallbackFlashcards(in.FlashcardCount), FallbackQuiz(in.QuizCount)
	}
	parsed := CoerceJSON(g.log, opEngagement, raw, engagementResult{})

	for i := range parsed.Flashcards {
		kit.NormalizeFlashcard(&parsed.Flashcards[i])
	}
	for i := range parsed.Quiz {
		kit.NormalizeQuizQuestion(&parsed.Quiz[i])
	}

	cards := parsed.Flashcards
	if len(cards) == 0 {
		// Reconciliation cannot pad from nothing.
		cards = FallbackFlashcards(in.FlashcardCount)
	} else if len(cards) != in.FlashcardCount {
		g.log.Warn("flashcard count mismatch", "want", in.FlashcardCount, "got", len(cards))
		cards = ReconcileFlashcards(cards, in.FlashcardCount)
	}

	quiz := parsed.Quiz
	if len(quiz) == 0 {
		quiz = FallbackQuiz(in.QuizCount)
	} else if len(quiz) != in.QuizCount {
		g.log.Warn("quiz count mismatch", "want", in.QuizCount, "got", len(quiz))
		quiz = ReconcileQuiz(quiz, in.QuizCount)
	}

	return cards, quiz
}
