// file: verifiers/csrf.go
package verifiers

import (
	"fmt"
	"strings"

	"CTFLab/dto"
)

// CSRFVerifier 根据请求来源而非提交内容判定。
// Referer 不包含合法表单页面、或明确带有攻击页标记的请求视为跨站，判成功；
// 来自合法表单本身的提交不算——这正是 CSRF 要演示的区别
type CSRFVerifier struct {
	OriginMarker   string
	AttackerMarker string
	Flag           string
}

func (v *CSRFVerifier) Verify(req dto.VerifyReq) (Verdict, error) {
	if req.Email == "" {
		return Verdict{}, fmt.Errorf("%w: email is required", ErrValidation)
	}

	referer := req.Referer
	isCrossSite := !strings.Contains(referer, v.OriginMarker) ||
		strings.Contains(referer, v.OriginMarker+"/attacker") ||
		strings.Contains(referer, v.AttackerMarker)

	if !isCrossSite {
		return Verdict{
			Correct: false,
			Message: fmt.Sprintf(
				"Email changed to %s. This request came from the legitimate form; the flag is only revealed when the change is triggered from another page (e.g. an attacker's page).",
				req.Email,
			),
		}, nil
	}

	return Verdict{
		Correct: true,
		Message: fmt.Sprintf(
			"Email changed (simulated) to %s. CSRF demonstrated — no token was required.",
			req.Email,
		),
		Flag: v.Flag,
	}, nil
}
