package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskText(t *testing.T) {
	s := NewService()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "phone in sentence",
			in:   "call me back on +91 98765 43210 please",
			want: "call me back on ***PHONE*** please",
		},
		{
			name: "bare national number",
			in:   "my number is 9876543210",
			want: "my number is ***PHONE***",
		},
		{
			name: "email",
			in:   "send it to priya.sharma@example.com instead",
			want: "send it to ***EMAIL*** instead",
		},
		{
			name: "vin",
			in:   "the VIN is MA1TA2BC3DE456789 on the door frame",
			want: "the VIN is ***VIN*** on the door frame",
		},
		{
			name: "multiple identifiers",
			in:   "9876543210 or priya@example.com",
			want: "***PHONE*** or ***EMAIL***",
		},
		{
			name: "clean text untouched",
			in:   "yes that slot works for me",
			want: "yes that slot works for me",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.MaskText(tc.in))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "e164", in: "+919876543210", want: "+********3210"},
		{name: "with separators", in: "+91 98765-43210", want: "+** *****-*3210"},
		{name: "short string fully masked", in: "1234", want: "****"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Phone(tc.in))
		})
	}
}

func TestCompileBuiltinPatterns(t *testing.T) {
	patterns := compileBuiltinPatterns()
	assert.Len(t, patterns, len(builtinPatterns))
	for _, p := range patterns {
		assert.NotNil(t, p.Regex, p.Name)
		assert.NotEmpty(t, p.Replacement, p.Name)
	}
}
