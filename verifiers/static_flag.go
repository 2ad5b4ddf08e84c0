// file: verifiers/static_flag.go
package verifiers

import (
	"fmt"
	"strings"

	"CTFLab/dto"
)

// StaticFlagVerifier 处理普通「提交 Flag」类题目。
// 规范化策略：仅去除首尾空白，区分大小写精确比对
type StaticFlagVerifier struct {
	Flag string
}

func (v *StaticFlagVerifier) Verify(req dto.VerifyReq) (Verdict, error) {
	answer := strings.TrimSpace(req.Answer)
	if answer == "" {
		return Verdict{}, fmt.Errorf("%w: answer is required", ErrValidation)
	}

	if answer != v.Flag {
		return Verdict{
			Correct: false,
			Message: "✗ Incorrect flag. Keep digging.",
		}, nil
	}

	return Verdict{
		Correct: true,
		Message: "✓ Correct! Challenge solved.",
		Flag:    v.Flag,
	}, nil
}
