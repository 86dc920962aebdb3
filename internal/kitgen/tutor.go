package kitgen

import (
	"context"
	"strings"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/logging"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/providers"
	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/util"
)

const tutorApology = "I'm sorry, I encountered an issue processing your question."

// TutorTurn is one prior exchange in a tutoring conversation. Role is
// "user" or "model" on the wire; it is re-tagged to the provider's role
// names when the request is built.
type TutorTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type Tutor struct {
	provider      providers.LLMProvider
	log           *logging.Logger
	contextBudget int
}

func NewTutor(p providers.LLMProvider, log *logging.Logger, contextBudget int) *Tutor {
	if log == nil {
		log = logging.Nop()
	}
	if contextBudget <= 0 {
		contextBudget = 3000
	}
	return &Tutor{provider: p, log: log, contextBudget: contextBudget}
}

// Ask sends one conversational request threading prior turns and returns
// the model's answer verbatim, or a canned apology if the call fails.
// One request per question; the caller gates concurrent submissions.
func (t *Tutor) Ask(ctx context.Context, question, contextText string, history []TutorTurn) string {
	messages := make([]providers.Message, 0, len(history)+2)
	messages = append(messages, providers.Message{Role: providers.RoleSystem, Text: systemTutor})
	for _, turn := range history {
		role := providers.RoleAssistant
		if turn.Role == "user" {
			role = providers.RoleUser
		}
		messages = append(messages, providers.Message{Role: role, Text: turn.Text})
	}
	prompt := "Context material: " + util.TruncateRunes(contextText, t.contextBudget) +
		"\n\nStudent Question: " + question
	messages = append(messages, providers.Message{Role: providers.RoleUser, Text: prompt})

	answer, err := t.provider.Complete(ctx, providers.CompletionRequest{
		Operation: opTutor,
		Messages:  messages,
	})
	if err != nil {
		t.log.Warn("tutor request failed", "error", err, "class", providers.ClassifyError(err))
		return tutorApology
	}
	if strings.TrimSpace(answer) == "" {
		return tutorApology
	}
	return answer
}
