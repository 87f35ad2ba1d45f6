package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActivationCode_AcceptsFourDigits(t *testing.T) {
	for _, raw := range []string{"0000", "0042", "9999", "1234"} {
		code, err := NewActivationCode(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, raw, code.String())
	}
}

func TestNewActivationCode_RejectsBadFormat(t *testing.T) {
	cases := []string{
		"",
		"123",
		"12345",
		"12a4",
		"12.4",
		"-123",
		" 123",
		"12०4", // non-ASCII digit
	}
	for _, raw := range cases {
		_, err := NewActivationCode(raw)
		assert.ErrorIs(t, err, ErrInvalidActivationCodeFormat, "input %q", raw)
	}
}

func TestGenerateActivationCode_AlwaysFourDigits(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateActivationCode()
		require.NoError(t, err)
		require.Len(t, code.String(), CodeLength)
		for _, r := range code.String() {
			require.True(t, r >= '0' && r <= '9', "code %q", code.String())
		}
	}
}

func TestActivationCode_Matches(t *testing.T) {
	code, err := NewActivationCode("0042")
	require.NoError(t, err)

	assert.True(t, code.Matches("0042"))
	assert.False(t, code.Matches("42"))
	assert.False(t, code.Matches("0043"))
	assert.False(t, code.Matches(""))
}
