// file: verifiers/csrf_test.go
package verifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CTFLab/dto"
)

func TestCSRFVerifier(t *testing.T) {
	v := &CSRFVerifier{
		OriginMarker:   "csrf-attack",
		AttackerMarker: "attacker=1",
		Flag:           "flag{csrf_protected}",
	}

	t.Run("SameOriginFormIsNotRewarded", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{
			Email:   "victim@example.com",
			Referer: "https://ctflab.local/labs/csrf-attack",
		})
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		assert.Empty(t, verdict.Flag)
		assert.Contains(t, verdict.Message, "legitimate form")
	})

	t.Run("ForeignRefererCountsAsCrossSite", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{
			Email:   "victim@example.com",
			Referer: "https://evil.example.com/payload.html",
		})
		require.NoError(t, err)
		assert.True(t, verdict.Correct)
		assert.Equal(t, "flag{csrf_protected}", verdict.Flag)
	})

	t.Run("AttackerPageUnderOriginCountsAsCrossSite", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{
			Email:   "victim@example.com",
			Referer: "https://ctflab.local/labs/csrf-attack/attacker",
		})
		require.NoError(t, err)
		assert.True(t, verdict.Correct)
	})

	t.Run("AttackerMarkerCountsAsCrossSite", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{
			Email:   "victim@example.com",
			Referer: "https://ctflab.local/labs/csrf-attack?attacker=1",
		})
		require.NoError(t, err)
		assert.True(t, verdict.Correct)
		assert.Equal(t, "flag{csrf_protected}", verdict.Flag)
	})

	t.Run("MissingRefererCountsAsCrossSite", func(t *testing.T) {
		// 直接 curl 之类没有 Referer 的请求也不是合法表单来的
		verdict, err := v.Verify(dto.VerifyReq{Email: "victim@example.com"})
		require.NoError(t, err)
		assert.True(t, verdict.Correct)
	})

	t.Run("MissingEmailIsValidationError", func(t *testing.T) {
		_, err := v.Verify(dto.VerifyReq{Referer: "https://evil.example.com"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}
