package providers

import (
	"context"
	"strings"
)

// MockProvider returns deterministic JSON-shaped fixtures per operation so
// the pipeline and views can be exercised without a live endpoint.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	_ = ctx
	op := strings.ToLower(req.Operation)
	switch {
	case strings.Contains(op, "core"):
		return mockCoreResponse, nil
	case strings.Contains(op, "mindmap"):
		return mockMindmapResponse, nil
	case strings.Contains(op, "engagement"):
		return mockEngagementResponse, nil
	case strings.Contains(op, "tutor"):
		return "That concept is covered in the provided material; start from the definition and work through the example.", nil
	default:
		return "{}", nil
	}
}

const mockCoreResponse = "```json\n" + `{
  "title": "Mock Study Session",
  "concepts": [
    {"term": "Photosynthesis", "definition": "Conversion of light to chemical energy.", "example": "Leaf cells producing glucose."},
    {"term": "Chlorophyll", "definition": "Green pigment capturing light.", "example": "Chloroplast membranes."},
    {"term": "Stomata", "definition": "Leaf pores exchanging gases.", "example": "CO2 intake on the underside of leaves."},
    {"term": "Glucose", "definition": "Sugar produced by photosynthesis.", "example": "Plant energy storage."},
    {"term": "Light Reactions", "definition": "Stage converting photons to ATP.", "example": "Thylakoid electron transport."}
  ],
  "notes": "# Mock Notes\n\n- Deterministic study notes for offline runs.",
  "cornell": {
    "cues": ["What is photosynthesis?", "Where does it occur?"],
    "notes": ["Plants convert light into chemical energy.", "It occurs in chloroplasts."],
    "summary": "Photosynthesis converts light energy into glucose inside chloroplasts."
  }
}` + "\n```"

const mockMindmapResponse = `{
  "mindmap": {
    "label": "Photosynthesis",
    "children": [
      {"label": "Light Reactions", "children": [{"label": "ATP Production"}]},
      {"label": "Calvin Cycle", "children": [{"label": "Carbon Fixation"}]}
    ]
  }
}`

const mockEngagementResponse = `{
  "flashcards": [
    {"front": "What pigment captures light?", "back": "Chlorophyll", "type": "qa"},
    {"front": "The {stomata} exchange gases in leaves.", "back": "stomata", "type": "cloze"},
    {"front": "Where does the Calvin cycle run?", "back": "Stroma", "type": "mcq", "options": ["Stroma", "Thylakoid", "Nucleus", "Cytosol"]}
  ],
  "quiz": [
    {"question": "What does photosynthesis produce?", "options": ["Glucose", "Protein", "Lipids", "DNA"], "answer": "Glucose", "explanation": "Light energy is stored as glucose."},
    {"question": "Which organelle hosts photosynthesis?", "options": ["Chloroplast", "Mitochondrion", "Ribosome", "Vacuole"], "answer": "Chloroplast", "explanation": "Chloroplasts contain chlorophyll."}
  ]
}`
