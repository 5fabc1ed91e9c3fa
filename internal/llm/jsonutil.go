package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"procurement/internal/apperr"
)

// jsonObjectPattern greedily matches from the first { to the last }.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON pulls a single JSON object out of a model reply. The
// policy is deliberately simple: locate the first {, greedy-match to the
// last }, parse. Multiple top-level braces or prose after the object can
// corrupt extraction; callers surface the failure rather than guess.
func ExtractJSON(content string) (map[string]any, error) {
	idx := strings.Index(content, "{")
	if idx < 0 {
		return nil, apperr.NewGenerationError("no JSON object in model reply")
	}

	raw := jsonObjectPattern.FindString(content[idx:])
	if raw == "" {
		return nil, apperr.NewGenerationError("no JSON object in model reply")
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, apperr.NewGenerationError("failed to parse model reply as JSON: %v", err)
	}
	return doc, nil
}
