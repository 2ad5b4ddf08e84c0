// file: verifiers/caesar_test.go
package verifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CTFLab/dto"
)

func TestCaesarVerifier(t *testing.T) {
	v := &CaesarVerifier{
		Plaintext: "The quick brown fox jumps over the lazy dog",
		Flag:      "flag{caesar_shift3}",
	}

	t.Run("ExactPlaintext", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{Answer: "The quick brown fox jumps over the lazy dog"})
		require.NoError(t, err)
		assert.True(t, verdict.Correct)
		assert.Equal(t, "flag{caesar_shift3}", verdict.Flag)
	})

	t.Run("NormalizationRoundTrip", func(t *testing.T) {
		// 大小写与内部连续空白的差异都应被归一化吸收
		cases := []string{
			"  the   QUICK brown fox jumps over the lazy dog ",
			"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG",
			"the\tquick  brown\nfox jumps over the lazy dog",
		}
		for _, answer := range cases {
			verdict, err := v.Verify(dto.VerifyReq{Answer: answer})
			require.NoError(t, err)
			assert.True(t, verdict.Correct, "answer %q should be accepted", answer)
			assert.Equal(t, "flag{caesar_shift3}", verdict.Flag)
		}
	})

	t.Run("WrongPlaintext", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{Answer: "the quick brown fox jumps over the lazy cat"})
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		assert.Empty(t, verdict.Flag)
	})

	t.Run("EmptyAnswerIsValidationError", func(t *testing.T) {
		_, err := v.Verify(dto.VerifyReq{Answer: ""})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "a b c", normalizeText("  A   b\t\tC "))
	assert.Equal(t, "", normalizeText("   "))
}
