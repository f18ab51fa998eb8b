package stages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already E.164", "+919876543210", "+919876543210"},
		{"leading zero swapped for country code", "09876543210", "+919876543210"},
		{"bare ten digits", "9876543210", "+919876543210"},
		{"country code without plus", "919876543210", "+919876543210"},
		{"formatting stripped", "+91 98765-43210", "+919876543210"},
		{"spaces and dashes on national number", "098-765 43210", "+919876543210"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.in, "+91")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("no digits errors", func(t *testing.T) {
		for _, bad := range []string{"", "+", "call me"} {
			_, err := NormalizePhone(bad, "+91")
			assert.Error(t, err, bad)
		}
	})

	t.Run("other default country code", func(t *testing.T) {
		got, err := NormalizePhone("5551234567", "+1")
		require.NoError(t, err)
		assert.Equal(t, "+15551234567", got)
	})
}
