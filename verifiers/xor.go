// file: verifiers/xor.go
package verifiers

import (
	"encoding/hex"
	"fmt"
	"strings"

	"CTFLab/dto"
)

// XORVerifier 处理重复密钥 XOR 破解题。只有明文完全匹配才算成功；
// 若同时给了密钥猜测，会用它反推密文并与固定密文比对，
// 以便区分「明文对、密钥错」和「明文与密钥自洽但不是 Flag」两种反馈
type XORVerifier struct {
	Flag          string
	Key           string
	CiphertextHex string
}

func xorWithKey(value, key string) string {
	out := make([]byte, len(value))
	for i := 0; i < len(value); i++ {
		out[i] = value[i] ^ key[i%len(key)]
	}
	return hex.EncodeToString(out)
}

func (v *XORVerifier) Verify(req dto.VerifyReq) (Verdict, error) {
	plaintext := strings.TrimSpace(req.Plaintext)
	key := strings.TrimSpace(req.Key)

	if plaintext == "" {
		return Verdict{}, fmt.Errorf("%w: plaintext is required", ErrValidation)
	}

	isCorrect := plaintext == v.Flag
	keyMatches := strings.ToLower(key) == v.Key
	cipherMatches := key != "" &&
		xorWithKey(plaintext, key) == strings.ToLower(v.CiphertextHex)

	if isCorrect {
		message := "✓ Correct plaintext recovered! Nice work."
		if key != "" {
			if keyMatches {
				message = "✓ Correct plaintext and key!"
			} else {
				message = "✓ Correct plaintext! Key guess is close but not exact."
			}
		}
		return Verdict{Correct: true, Message: message, Flag: v.Flag}, nil
	}

	if cipherMatches {
		return Verdict{
			Correct: false,
			Message: "Plaintext matches the provided key, but double-check for the proper flag format.",
		}, nil
	}

	return Verdict{
		Correct: false,
		Message: "✗ Incorrect plaintext. Keep analyzing the ciphertext and key.",
	}, nil
}
