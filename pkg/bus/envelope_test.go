package bus

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_AllWireShapes(t *testing.T) {
	want := Envelope{
		"case_id":    "case_abc123",
		"vehicle_id": "MH-07-AB-1234",
		"confidence": 0.92,
	}
	rawJSON, err := json.Marshal(want)
	require.NoError(t, err)

	stringWrapped, err := json.Marshal(string(rawJSON))
	require.NoError(t, err)

	legacy, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data": base64.StdEncoding.EncodeToString(rawJSON),
		},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  []byte
	}{
		{"raw JSON bytes", rawJSON},
		{"JSON-encoded string", stringWrapped},
		{"legacy base64 wrapper", legacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Decode(tt.raw)
			require.NoError(t, err)
			// All three shapes produce identical internal structures.
			assert.Equal(t, "case_abc123", env.String("case_id"))
			assert.Equal(t, "MH-07-AB-1234", env.String("vehicle_id"))
			conf, ok := env.Float("confidence")
			require.True(t, ok)
			assert.InDelta(t, 0.92, conf, 1e-9)
		})
	}
}

func TestDecode_MalformedIsNotRetryable(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"not JSON", []byte("not json at all")},
		{"empty object", []byte("{}")},
		{"JSON array", []byte(`[1,2,3]`)},
		{"string of garbage", []byte(`"still not json"`)},
		{"wrapper with bad base64", []byte(`{"message":{"data":"%%%"}}`)},
		{"wrapper with non-JSON data", []byte(`{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotRetryable)
		})
	}
}

func TestEnvelope_Accessors(t *testing.T) {
	env := Envelope{
		"case_id":    "case_x",
		"rul":        float64(15),
		"rul_str":    "15.5",
		"ids":        []any{"evt_1", "evt_2"},
		"nil_field":  nil,
		"not_number": "abc",
	}

	assert.Equal(t, "case_x", env.String("case_id"))
	assert.Equal(t, "", env.String("missing"))

	v, ok := env.Float("rul")
	require.True(t, ok)
	assert.Equal(t, 15.0, v)

	v, ok = env.Float("rul_str")
	require.True(t, ok)
	assert.Equal(t, 15.5, v)

	_, ok = env.Float("not_number")
	assert.False(t, ok)

	i, ok := env.Int("rul")
	require.True(t, ok)
	assert.Equal(t, 15, i)

	assert.Equal(t, []string{"evt_1", "evt_2"}, env.Strings("ids"))
	assert.Nil(t, env.Strings("case_id"))

	assert.True(t, env.Has("case_id"))
	assert.False(t, env.Has("nil_field"))
	assert.False(t, env.Has("missing"))
}

func TestEnvelope_CloneIsIndependent(t *testing.T) {
	env := Envelope{"agent_stage": "rca"}
	cp := env.Clone()
	cp["agent_stage"] = "scheduling"
	assert.Equal(t, "rca", env.String("agent_stage"))
	assert.Equal(t, "scheduling", cp.String("agent_stage"))
}

func TestAttemptBackoff(t *testing.T) {
	assert.Equal(t, "2s", attemptBackoff(1).String())
	assert.Equal(t, "4s", attemptBackoff(2).String())
	assert.Equal(t, "8s", attemptBackoff(3).String())
	// Capped.
	assert.Equal(t, "4m16s", attemptBackoff(8).String())
	assert.Equal(t, "4m16s", attemptBackoff(50).String())
	// Degenerate input clamps to the first step.
	assert.Equal(t, "2s", attemptBackoff(0).String())
}
