package providers

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ImageData carries raw upload bytes for providers that accept inline
// visual input. Providers without multimodal support ignore it.
type ImageData struct {
	Data     []byte `json:"data"`
	MIMEType string `json:"mime_type"`
}

type Message struct {
	Role  string     `json:"role"`
	Text  string     `json:"text"`
	Image *ImageData `json:"image,omitempty"`
}

// CompletionRequest is one prompt exchange. ForceJSON is a best-effort
// structured-output hint, not a guarantee; callers must still repair the
// response shape.
type CompletionRequest struct {
	Operation string    `json:"operation"`
	Messages  []Message `json:"messages"`
	ForceJSON bool      `json:"force_json"`
}

type LLMProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
