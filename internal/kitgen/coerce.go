package kitgen

import (
	"encoding/json"
	"strings"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/logging"
)

// CoerceJSON strips an optional markdown code fence from raw model output
// and decodes it into T. Parse failures are logged and absorbed: the caller
// always gets a usable value, degraded to fallback at worst.
func CoerceJSON[T any](log *logging.Logger, op, raw string, fallback T) T {
	raw = stripCodeFence(raw)
	if raw == "" {
		log.Warn("empty model response", "operation", op)
		return fallback
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warn("model response is not valid json", "operation", op, "error", err)
		return fallback
	}
	return out
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
