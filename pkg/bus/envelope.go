package bus

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
)

// Envelope is the decoded JSON object carried on a topic. It is a superset
// of the producing record's key fields plus routing tags (agent_stage,
// confidence).
type Envelope map[string]any

// Decode turns raw message bytes into an Envelope. Three wire shapes are
// accepted:
//
//   - raw JSON object bytes,
//   - a JSON-encoded string containing a JSON object,
//   - the legacy wrapper {"message":{"data":"<base64-of-json>"}}.
//
// Anything that does not produce a non-empty object wraps ErrNotRetryable:
// malformed messages are not recoverable and must not be redelivered.
func Decode(raw []byte) (Envelope, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrNotRetryable, err)
	}

	// A JSON string is decoded one more level.
	if s, ok := v.(string); ok {
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil, fmt.Errorf("%w: string payload is not JSON: %v", ErrNotRetryable, err)
		}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: payload is not an object", ErrNotRetryable)
	}

	// Legacy wrapper: {"message":{"data":"<base64-json>"}}.
	if msg, ok := obj["message"].(map[string]any); ok {
		if data, ok := msg["data"].(string); ok {
			decoded, err := base64.StdEncoding.DecodeString(data)
			if err != nil {
				return nil, fmt.Errorf("%w: wrapper data is not base64: %v", ErrNotRetryable, err)
			}
			var inner map[string]any
			if err := json.Unmarshal(decoded, &inner); err != nil {
				return nil, fmt.Errorf("%w: wrapper data is not JSON: %v", ErrNotRetryable, err)
			}
			obj = inner
		}
	}

	if len(obj) == 0 {
		return nil, fmt.Errorf("%w: empty envelope", ErrNotRetryable)
	}
	return Envelope(obj), nil
}

// String returns the value at key as a string, or "" when absent or not a
// string.
func (e Envelope) String(key string) string {
	s, _ := e[key].(string)
	return s
}

// Float returns the numeric value at key. JSON numbers arrive as float64;
// numeric strings are tolerated.
func (e Envelope) Float(key string) (float64, bool) {
	switch v := e[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Int returns the value at key as an int when it is numeric.
func (e Envelope) Int(key string) (int, bool) {
	f, ok := e.Float(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Strings returns the value at key as a string slice.
func (e Envelope) Strings(key string) []string {
	arr, ok := e[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Has reports whether key is present with a non-nil value.
func (e Envelope) Has(key string) bool {
	v, ok := e[key]
	return ok && v != nil
}

// Clone returns a shallow copy. The orchestrator copies the envelope before
// stamping the successor's agent_stage.
func (e Envelope) Clone() Envelope {
	out := make(Envelope, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
