package kitgen

import (
	"fmt"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/kit"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/util"
)

const (
	opCore       = "core_content"
	opMindmap    = "mindmap_structure"
	opEngagement = "engagement_content"
	opTutor      = "tutor_chat"
)

const systemJSONOnly = "You are a JSON-only assistant. Always respond with valid JSON."

const systemJSONCounts = "You are a JSON-only assistant. You must follow quantity requirements exactly."

const systemMindmap = "You are a JSON-only assistant. Create educational mindmaps."

const systemTutor = "You are an expert personal tutor. Use the provided study material to answer questions accurately and clearly. If you are unsure or the information isn't in the material, say so. Use Markdown formatting."

func buildCorePrompt(content string, style kit.NoteStyle, language string) string {
	return fmt.Sprintf(`You are a professional study assistant. Generate a high-quality study kit based on the provided material.

Study material: %s

Requirements:
1. Create a descriptive title.
2. Extract at least 5 key concepts with definitions and real-world examples.
3. Generate comprehensive %s style notes in Markdown.
Language: %s.

Return the response in the following JSON format:
{
  "title": "string",
  "concepts": [
    {
      "term": "string",
      "definition": "string",
      "example": "string"
    }
  ],
  "notes": "string",
  "cornell": {
    "cues": ["string"],
    "notes": ["string"],
    "summary": "string"
  }
}`, content, style, language)
}

func buildMindmapPrompt(content string) string {
	return fmt.Sprintf(`Analyze this educational content and create a hierarchical mindmap.
Filter out document metadata, page numbers, headers, URLs, or platform text.
Focus ONLY on the actual subject matter.

Content: %s

Rules:
- Root: The absolute central theme
- Level 1: Major sub-topics
- Level 2: Supporting points
- Level 3: Specific details
- Labels must be 1-5 words
- No special characters

Return in this JSON format:
{
  "mindmap": {
    "label": "string",
    "children": [
      {
        "label": "string",
        "children": [
          {
            "label": "string",
            "children": [
              {
                "label": "string"
              }
            ]
          }
        ]
      }
    ]
  }
}`, util.TruncateRunes(content, 2000))
}

func buildEngagementPrompt(content, language string, flashcardCount, quizCount int) string {
	return fmt.Sprintf(`You MUST generate EXACTLY %d flashcards and EXACTLY %d quiz questions from this material.
This is a strict requirement - no more, no less.

Language: %s.
Material: %s

Flashcard Types (mix them appropriately):
- 'qa': Standard Q&A format
- 'cloze': Sentence with key word in [brackets]
- 'mcq': Multiple choice question with options array

Quiz Rules:
- Each question MUST have exactly 4 distinct options
- Include helpful explanations for learning
- Make sure answers are correct based on the material

IMPORTANT: Your response MUST contain arrays with exactly %d flashcards and exactly %d quiz questions.

Return in this EXACT JSON format:
{
  "flashcards": [
    {
      "front": "string",
      "back": "string",
      "type": "qa" | "cloze" | "mcq"
    }
  ],
  "quiz": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "answer": "string",
      "explanation": "string"
    }
  ]
}`, flashcardCount, quizCount, language, util.TruncateRunes(content, 2000), flashcardCount, quizCount)
}
