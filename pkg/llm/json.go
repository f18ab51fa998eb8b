package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON pulls the first JSON object out of a model response. Models
// decorate output with triple-backtick fences and prose despite instructions
// not to; both are stripped.
func ExtractJSON(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)

	// Strip code fences (```json ... ``` or bare ```).
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	// Cut to the first balanced {...} object, tolerant of surrounding prose.
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, fmt.Errorf("no JSON object in model response")
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				var out map[string]any
				if err := json.Unmarshal([]byte(text[start:i+1]), &out); err != nil {
					return nil, fmt.Errorf("model response is not valid JSON: %w", err)
				}
				return out, nil
			}
		}
	}
	return nil, fmt.Errorf("unbalanced JSON object in model response")
}
