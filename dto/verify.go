// file: dto/verify.go
package dto

// VerifyReq 是实验判题统一入参。各 lab_type 只读取自己关心的字段：
//
//	static_flag        -> Answer
//	caesar             -> Answer
//	sql_injection      -> Username / Password
//	csrf               -> Email（来源信息取自 Referer 请求头）
//	xor_repeating_key  -> Plaintext / Key
type VerifyReq struct {
	Answer    string `json:"answer"`
	Plaintext string `json:"plaintext"`
	Key       string `json:"key"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	SessionID string `json:"session_id"`

	// Referer 由 controller 从请求头填入，不从 body 读取
	Referer string `json:"-"`
}
