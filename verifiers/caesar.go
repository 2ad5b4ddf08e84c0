// file: verifiers/caesar.go
package verifiers

import (
	"fmt"
	"strings"

	"CTFLab/dto"
)

// CaesarVerifier 处理凯撒密码类解密题。
// 规范化策略：去首尾空白、内部连续空白折叠为单个空格、不区分大小写
type CaesarVerifier struct {
	Plaintext string
	Flag      string
}

func normalizeText(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}

func (v *CaesarVerifier) Verify(req dto.VerifyReq) (Verdict, error) {
	if strings.TrimSpace(req.Answer) == "" {
		return Verdict{}, fmt.Errorf("%w: answer is required", ErrValidation)
	}

	if normalizeText(req.Answer) != normalizeText(v.Plaintext) {
		return Verdict{
			Correct: false,
			Message: "✗ Incorrect. Try a different shift value.",
		}, nil
	}

	return Verdict{
		Correct: true,
		Message: "✓ Correct! You decrypted the Caesar cipher!",
		Flag:    v.Flag,
	}, nil
}
