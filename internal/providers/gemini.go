package providers

import (
	"context"
	"fmt"
	"os"
	"strings"

	genai "google.golang.org/genai"
)

// GeminiProvider is the schema-constrained generation shape: ForceJSON maps
// to a JSON response MIME type, and inline image parts are supported.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, model string) (*GeminiProvider, error) {
	apiKey := resolveGeminiKey()
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key missing: set GEMINI_API_KEY")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: c, model: model}, nil
}

func (g *GeminiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	var cfg genai.GenerateContentConfig
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		if m.Role == RoleSystem {
			cfg.SystemInstruction = genai.NewContentFromText(m.Text, genai.RoleUser)
			continue
		}
		role := genai.RoleUser
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		parts := []*genai.Part{{Text: m.Text}}
		if m.Image != nil && len(m.Image.Data) > 0 {
			parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: m.Image.MIMEType, Data: m.Image.Data}})
		}
		contents = append(contents, &genai.Content{Role: role, Parts: parts})
	}
	if req.ForceJSON {
		cfg.ResponseMIMEType = "application/json"
	}
	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, &cfg)
	if err != nil {
		return "", fmt.Errorf("%s gemini request failed: %w", req.Operation, err)
	}
	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", fmt.Errorf("%s returned empty response", req.Operation)
	}
	return text, nil
}

func resolveGeminiKey() string {
	if v := os.Getenv("STUDYKIT_GEMINI_KEY"); v != "" {
		return v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		return v
	}
	return os.Getenv("GOOGLE_API_KEY")
}
