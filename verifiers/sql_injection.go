// file: verifiers/sql_injection.go
package verifiers

import (
	"fmt"
	"strings"

	"CTFLab/dto"
)

// 注入判定用的固定模式表，对小写化后的用户名做子串匹配。
// 这里从不执行任何真实查询
var injectionPatterns = []string{
	"admin' or '1'='1",
	"' or '1'='1",
	`" or "1"="1`,
	"'--",
	"' --",
}

// SQLInjectionVerifier 模拟登录绕过。命中注入模式即算成功，
// 正确的字面量账号密码是第二条通过路径。
// 拼接出的查询语句总是回显给玩家——这是实验刻意为之的教学性信息泄露
type SQLInjectionVerifier struct {
	Username string
	Password string
	Flag     string
}

func (v *SQLInjectionVerifier) Verify(req dto.VerifyReq) (Verdict, error) {
	if req.Username == "" {
		return Verdict{}, fmt.Errorf("%w: username is required", ErrValidation)
	}

	unsafeQuery := fmt.Sprintf(
		"SELECT * FROM users WHERE username='%s' AND password='%s'",
		req.Username, req.Password,
	)

	normalized := strings.ToLower(req.Username)
	injectionDetected := false
	for _, p := range injectionPatterns {
		if strings.Contains(normalized, p) {
			injectionDetected = true
			break
		}
	}

	isLegitLogin := req.Username == v.Username && req.Password == v.Password

	if !injectionDetected && !isLegitLogin {
		return Verdict{
			Correct:    false,
			Message:    "Login failed. Invalid credentials.",
			DebugQuery: unsafeQuery,
		}, nil
	}

	message := "Login successful with correct credentials."
	if injectionDetected {
		message = "Login bypassed via SQL injection!"
	}

	return Verdict{
		Correct:    true,
		Message:    message,
		Flag:       v.Flag,
		DebugQuery: unsafeQuery,
	}, nil
}
