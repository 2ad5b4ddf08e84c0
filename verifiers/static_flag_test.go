// file: verifiers/static_flag_test.go
package verifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CTFLab/dto"
)

func TestStaticFlagVerifier(t *testing.T) {
	v := &StaticFlagVerifier{Flag: "flag{sql_inj3ct1on}"}

	t.Run("ExactMatch", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{Answer: "flag{sql_inj3ct1on}"})
		require.NoError(t, err)
		assert.True(t, verdict.Correct)
		assert.Equal(t, "flag{sql_inj3ct1on}", verdict.Flag)
	})

	t.Run("TrimsSurroundingWhitespace", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{Answer: "  flag{sql_inj3ct1on}\n"})
		require.NoError(t, err)
		assert.True(t, verdict.Correct)
	})

	t.Run("RejectsCaseNearMiss", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{Answer: "Flag{sql_inj3ct1on}"})
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		assert.Empty(t, verdict.Flag)
	})

	t.Run("WrongAnswerNeverDisclosesFlag", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{Answer: "flag{guess}"})
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		assert.Empty(t, verdict.Flag)
		assert.NotEmpty(t, verdict.Message)
	})

	t.Run("EmptyAnswerIsValidationError", func(t *testing.T) {
		_, err := v.Verify(dto.VerifyReq{Answer: "   "})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})
}
