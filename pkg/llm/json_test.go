package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]any
	}{
		{
			name: "bare object",
			in:   `{"anomaly_detected": true, "severity_score": 0.8}`,
			want: map[string]any{"anomaly_detected": true, "severity_score": 0.8},
		},
		{
			name: "json fence",
			in:   "```json\n{\"component\": \"battery\"}\n```",
			want: map[string]any{"component": "battery"},
		},
		{
			name: "bare fence",
			in:   "```\n{\"component\": \"engine\"}\n```",
			want: map[string]any{"component": "engine"},
		},
		{
			name: "surrounding prose",
			in:   "Here is the result:\n{\"capa_type\": \"Corrective\"}\nHope that helps!",
			want: map[string]any{"capa_type": "Corrective"},
		},
		{
			name: "braces inside strings",
			in:   `{"root_cause": "pump housing {cracked}", "confidence": 0.7}`,
			want: map[string]any{"root_cause": "pump housing {cracked}", "confidence": 0.7},
		},
		{
			name: "nested objects",
			in:   `{"a": {"b": 1.0}}`,
			want: map[string]any{"a": map[string]any{"b": 1.0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSON_Errors(t *testing.T) {
	for _, in := range []string{
		"",
		"no json here",
		"{\"unbalanced\": true",
		"```json\n```",
	} {
		_, err := ExtractJSON(in)
		assert.Error(t, err, "input %q", in)
	}
}
