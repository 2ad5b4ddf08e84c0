// file: verifiers/xor_test.go
package verifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CTFLab/dto"
)

func TestXORVerifier(t *testing.T) {
	v := &XORVerifier{
		Flag:          "flag{xor_repeating_key_cracked}",
		Key:           "crypto",
		CiphertextHex: "051e18170f170c002602111f06130d191a083c191c092b0c11131a1b110b1e",
	}

	t.Run("PlaintextAloneSucceeds", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{Plaintext: "flag{xor_repeating_key_cracked}"})
		require.NoError(t, err)
		assert.True(t, verdict.Correct)
		assert.Equal(t, "flag{xor_repeating_key_cracked}", verdict.Flag)
		assert.Contains(t, verdict.Message, "recovered")
	})

	t.Run("PlaintextWithCorrectKey", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{
			Plaintext: "flag{xor_repeating_key_cracked}",
			Key:       "CRYPTO",
		})
		require.NoError(t, err)
		assert.True(t, verdict.Correct)
		assert.Contains(t, verdict.Message, "plaintext and key")
	})

	t.Run("PlaintextWithWrongKeyStillSucceeds", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{
			Plaintext: "flag{xor_repeating_key_cracked}",
			Key:       "krypton",
		})
		require.NoError(t, err)
		assert.True(t, verdict.Correct)
		assert.Contains(t, verdict.Message, "not exact")
	})

	t.Run("ConsistentButWrongPlaintextGetsHint", func(t *testing.T) {
		// 明文与给定密钥能反推出固定密文，但不是要找的 Flag——
		// 正确密钥配错误明文不可能复现密文，所以用正确明文配正确密钥
		// 以外的组合构造不出该分支；直接用正确对但篡改 Flag 期望值验证
		hinting := &XORVerifier{
			Flag:          "flag{other}",
			Key:           "crypto",
			CiphertextHex: v.CiphertextHex,
		}
		verdict, err := hinting.Verify(dto.VerifyReq{
			Plaintext: "flag{xor_repeating_key_cracked}",
			Key:       "crypto",
		})
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		assert.Empty(t, verdict.Flag)
		assert.Contains(t, verdict.Message, "proper flag format")
	})

	t.Run("WrongPlaintextFails", func(t *testing.T) {
		verdict, err := v.Verify(dto.VerifyReq{Plaintext: "flag{nope}", Key: "crypto"})
		require.NoError(t, err)
		assert.False(t, verdict.Correct)
		assert.Empty(t, verdict.Flag)
	})

	t.Run("MissingPlaintextIsValidationError", func(t *testing.T) {
		_, err := v.Verify(dto.VerifyReq{Key: "crypto"})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestXorWithKey(t *testing.T) {
	// 固定密文必须等于 Flag 与密钥逐字节异或的十六进制
	got := xorWithKey("flag{xor_repeating_key_cracked}", "crypto")
	assert.Equal(t, "051e18170f170c002602111f06130d191a083c191c092b0c11131a1b110b1e", got)
}
