package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// OpenAIProvider talks to any OpenAI-compatible chat-completions endpoint.
// The default base URL points at the hosted proxy the product runs against;
// api.openai.com works the same way.
type OpenAIProvider struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

func NewOpenAIProvider(baseURL, model string) *OpenAIProvider {
	return &OpenAIProvider{
		baseURL: baseURL,
		model:   model,
		apiKey:  resolveOpenAIKey(),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (o *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("openai api key missing: set OPENAI_API_KEY")
	}
	msgs := make([]map[string]string, 0, len(req.Messages))
	for _, m := range req.Messages {
		// Chat-completions carries text only; inline images are a
		// Gemini-shape feature.
		msgs = append(msgs, map[string]string{"role": m.Role, "content": m.Text})
	}
	body := map[string]any{
		"model":       o.model,
		"messages":    msgs,
		"temperature": 0.3,
		"max_tokens":  4000,
	}
	if req.ForceJSON {
		body["response_format"] = map[string]string{"type": "json_object"}
	}
	payload, _ := json.Marshal(body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%s chat request failed: %w", req.Operation, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%s chat error %d: %s", req.Operation, resp.StatusCode, string(raw))
	}
	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%s returned empty choices", req.Operation)
	}
	return parsed.Choices[0].Message.Content, nil
}

func resolveOpenAIKey() string {
	if v := os.Getenv("STUDYKIT_OPENAI_KEY"); v != "" {
		return v
	}
	return os.Getenv("OPENAI_API_KEY")
}
