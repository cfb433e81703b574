package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{"strong", "StrongPassword123!", nil},
		{"exactly eight", "Abcdef1!", nil},
		{"exactly max length", "Aa1!" + strings.Repeat("x", MaxPasswordLength-4), nil},
		{"every special character counts", "Abcdefg1\\", nil},
		{"too short", "Ab1!", []string{MsgPasswordTooShort}},
		{"too long", "Aa1!" + strings.Repeat("x", MaxPasswordLength-3), []string{MsgPasswordTooLong}},
		{"no lowercase", "ABCDEFG1!", []string{MsgPasswordLowercase}},
		{"no uppercase", "abcdefg1!", []string{MsgPasswordUppercase}},
		{"no digit", "Abcdefgh!", []string{MsgPasswordDigit}},
		{"no special", "Abcdefgh1", []string{MsgPasswordSpecial}},
		{"space is not special", "Abcdefg1 ", []string{MsgPasswordSpecial}},
		{
			"empty reports everything but max length",
			"",
			[]string{
				MsgPasswordTooShort,
				MsgPasswordLowercase,
				MsgPasswordUppercase,
				MsgPasswordDigit,
				MsgPasswordSpecial,
			},
		},
		{
			"short lowercase only",
			"abc",
			[]string{MsgPasswordTooShort, MsgPasswordUppercase, MsgPasswordDigit, MsgPasswordSpecial},
		},
		{
			"non ascii letters do not satisfy case rules",
			"ÄÖÜäöüß12!",
			[]string{MsgPasswordLowercase, MsgPasswordUppercase},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := ValidatePassword(tt.password)
			require.Equal(t, tt.want == nil, res.Valid)
			require.Equal(t, tt.want, res.Errors)
		})
	}
}

func TestValidatePasswordCountsCharactersNotBytes(t *testing.T) {
	// 8 runes, 12 bytes.
	res := ValidatePassword("Aa1!éééé")
	require.True(t, res.Valid, res.Errors)

	// 7 runes is short however many bytes they take.
	res = ValidatePassword("Aa1!ééé")
	require.Equal(t, []string{MsgPasswordTooShort}, res.Errors)

	// 128 multi-byte runes is still within the limit, 129 is not.
	res = ValidatePassword("Aa1!" + strings.Repeat("é", MaxPasswordLength-4))
	require.True(t, res.Valid, res.Errors)

	res = ValidatePassword("Aa1!" + strings.Repeat("é", MaxPasswordLength-3))
	require.Equal(t, []string{MsgPasswordTooLong}, res.Errors)
}

func TestPolicyErrorMessage(t *testing.T) {
	err := &PolicyError{Reasons: []string{MsgPasswordTooShort, MsgPasswordDigit}}
	require.Equal(t,
		"invalid password: "+MsgPasswordTooShort+", "+MsgPasswordDigit,
		err.Error(),
	)
}
