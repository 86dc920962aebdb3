package kitgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/logging"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/providers"
)

// scriptedProvider answers each operation from a fixed script; missing
// entries fail the request like a transport error would.
type scriptedProvider struct {
	responses map[string]string
	errs      map[string]error
	requests  []providers.CompletionRequest
}

func (s *scriptedProvider) Complete(_ context.Context, req providers.CompletionRequest) (string, error) {
	s.requests = append(s.requests, req)
	if err, ok := s.errs[req.Operation]; ok {
		return "", err
	}
	if resp, ok := s.responses[req.Operation]; ok {
		return resp, nil
	}
	return "", errors.New("no scripted response")
}

const coreFixture = `{
  "title": "Cell Biology",
  "concepts": [{"term": "Cell", "definition": "Basic unit of life.", "example": "Neuron"}],
  "notes": "# Cells",
  "cornell": {"cues": ["What is a cell?"], "notes": ["Smallest living unit."], "summary": "Cells are the unit of life."}
}`

const mindmapFixture = `{"mindmap": {"label": "Cells", "children": [{"label": "Organelles"}]}}`

const engagementFixture = `{
  "flashcards": [
    {"front": "f0", "back": "b0", "type": "qa"},
    {"front": "f1", "back": "b1", "type": "qa"},
    {"front": "f2", "back": "b2", "type": "qa"}
  ],
  "quiz": [
    {"question": "qz0", "options": ["a", "b", "c", "d"], "answer": "a", "explanation": "e0"},
    {"question": "qz1", "options": ["a", "b", "c", "d"], "answer": "b", "explanation": "e1"}
  ]
}`

func fullScript() *scriptedProvider {
	return &scriptedProvider{responses: map[string]string{
		opCore:       coreFixture,
		opMindmap:    mindmapFixture,
		opEngagement: engagementFixture,
	}}
}

func TestGenerateStudyKitRejectsEmptyContent(t *testing.T) {
	g := NewGenerator(fullScript(), logging.Nop(), 3000)
	_, err := g.GenerateStudyKit(context.Background(), GenerateInput{Content: "   "})
	require.ErrorIs(t, err, ErrEmptyContent)
}

func TestGenerateStudyKitShortCountPadsWithVariants(t *testing.T) {
	g := NewGenerator(fullScript(), logging.Nop(), 3000)
	session, err := g.GenerateStudyKit(context.Background(), GenerateInput{
		Content:        "cells are the basic unit of life",
		FlashcardCount: 5,
		QuizCount:      5,
	})
	require.NoError(t, err)

	require.Len(t, session.Flashcards, 5)
	require.Equal(t, "f0 (variant 1)", session.Flashcards[3].Front)
	require.Equal(t, "f1 (variant 2)", session.Flashcards[4].Front)
	require.Len(t, session.Quiz, 5)

	require.Equal(t, "Cell Biology", session.Title)
	require.Equal(t, "Cells", session.Mindmap.Label)
	require.NotNil(t, session.Cornell)
}

func TestGenerateStudyKitAssignsSequentialIDs(t *testing.T) {
	g := NewGenerator(fullScript(), logging.Nop(), 3000)
	session, err := g.GenerateStudyKit(context.Background(), GenerateInput{
		Content:        "material",
		FlashcardCount: 5,
		QuizCount:      3,
	})
	require.NoError(t, err)
	for i, c := range session.Flashcards {
		require.Equal(t, "fc-"+string(rune('0'+i)), c.ID)
	}
	for i, q := range session.Quiz {
		require.Equal(t, "q-"+string(rune('0'+i)), q.ID)
	}
}

func TestGenerateStudyKitEngagementFailureUsesFallback(t *testing.T) {
	p := fullScript()
	p.errs = map[string]error{opEngagement: errors.New("dial tcp: connection refused")}
	g := NewGenerator(p, logging.Nop(), 3000)

	session, err := g.GenerateStudyKit(context.Background(), GenerateInput{
		Content:        "material",
		FlashcardCount: 7,
		QuizCount:      4,
	})
	require.NoError(t, err)
	require.Len(t, session.Flashcards, 7)
	require.Len(t, session.Quiz, 4)
	require.Equal(t, "Sample Question 1?", session.Flashcards[0].Front)
	require.Equal(t, "Option A", session.Quiz[0].Answer)
}

func TestGenerateStudyKitEmptyEngagementArraysUseFallback(t *testing.T) {
	p := fullScript()
	p.responses[opEngagement] = `{"flashcards": [], "quiz": []}`
	g := NewGenerator(p, logging.Nop(), 3000)

	session, err := g.GenerateStudyKit(context.Background(), GenerateInput{
		Content:        "material",
		FlashcardCount: 5,
		QuizCount:      3,
	})
	require.NoError(t, err)
	require.Len(t, session.Flashcards, 5)
	require.Len(t, session.Quiz, 3)
	require.Equal(t, "Sample quiz question 1?", session.Quiz[0].Question)
}

func TestGenerateStudyKitCoreFailureStillProceeds(t *testing.T) {
	p := fullScript()
	p.errs = map[string]error{opCore: errors.New("api call failed: 500")}
	g := NewGenerator(p, logging.Nop(), 3000)

	session, err := g.GenerateStudyKit(context.Background(), GenerateInput{Content: "material"})
	require.NoError(t, err)
	require.Equal(t, "Study Session", session.Title)
	require.Empty(t, session.Concepts)
	require.Len(t, session.Flashcards, 10)
	require.Len(t, session.Quiz, 5)
}

func TestGenerateStudyKitMindmapFailureFallsBackToTitleRoot(t *testing.T) {
	p := fullScript()
	p.errs = map[string]error{opMindmap: errors.New("unavailable")}
	g := NewGenerator(p, logging.Nop(), 3000)

	session, err := g.GenerateStudyKit(context.Background(), GenerateInput{Content: "material"})
	require.NoError(t, err)
	require.Equal(t, "Cell Biology", session.Mindmap.Label)
	require.Empty(t, session.Mindmap.Children)
}

func TestGenerateStudyKitTruncatesContentBeforePrompting(t *testing.T) {
	p := fullScript()
	g := NewGenerator(p, logging.Nop(), 100)

	long := strings.Repeat("x", 10000)
	_, err := g.GenerateStudyKit(context.Background(), GenerateInput{Content: long})
	require.NoError(t, err)
	require.NotEmpty(t, p.requests)
	for _, req := range p.requests {
		for _, m := range req.Messages {
			require.Less(t, len(m.Text), 2500, "prompt for %s should carry truncated content", req.Operation)
		}
	}
}

func TestGenerateStudyKitNormalizesBrokenShapes(t *testing.T) {
	p := fullScript()
	p.responses[opEngagement] = `{
	  "flashcards": [
	    {"front": "no options mcq", "back": "b", "type": "mcq"},
	    {"front": "no span cloze", "back": "b", "type": "cloze"}
	  ],
	  "quiz": [{"question": "short options", "options": ["only one"], "answer": "missing", "explanation": "e"}]
	}`
	g := NewGenerator(p, logging.Nop(), 3000)

	session, err := g.GenerateStudyKit(context.Background(), GenerateInput{
		Content:        "material",
		FlashcardCount: 5,
		QuizCount:      3,
	})
	require.NoError(t, err)
	require.Equal(t, kit.CardQA, session.Flashcards[0].Type)
	require.Equal(t, kit.CardQA, session.Flashcards[1].Type)
	require.Len(t, session.Quiz[0].Options, 4)
	require.Contains(t, session.Quiz[0].Options, session.Quiz[0].Answer)
}

func TestGenerateStudyKitClampsCounts(t *testing.T) {
	p := fullScript()
	g := NewGenerator(p, logging.Nop(), 3000)

	session, err := g.GenerateStudyKit(context.Background(), GenerateInput{
		Content:        "material",
		FlashcardCount: 100,
		QuizCount:      1,
	})
	require.NoError(t, err)
	require.Len(t, session.Flashcards, 20)
	require.Len(t, session.Quiz, 3)
}
