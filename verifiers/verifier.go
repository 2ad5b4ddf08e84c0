// file: verifiers/verifier.go
package verifiers

import (
	"errors"
	"fmt"

	"CTFLab/dto"
	"CTFLab/models"
)

// ErrValidation 表示入参缺失或不合法，区别于“答案错误”。
// 命中该错误时不会产生提交记录
var ErrValidation = errors.New("invalid verify payload")

// Verdict 是判题结果。Flag 只在 Correct 为 true 时填充，
// 这是正确 Flag 到达客户端的唯一通道。
// DebugQuery 只有 SQL 注入实验使用，有意向玩家回显拼接出的查询语句
type Verdict struct {
	Correct    bool   `json:"correct"`
	Message    string `json:"message"`
	Flag       string `json:"flag,omitempty"`
	DebugQuery string `json:"debug_query,omitempty"`
}

// Verifier 对单次提交做纯函数判定，无任何副作用，可安全重复调用
type Verifier interface {
	Verify(req dto.VerifyReq) (Verdict, error)
}

// Secret 是注入给 Verifier 的服务端机密配置，按 lab_type 取用所需字段
type Secret struct {
	Flag          string
	Plaintext     string
	Key           string
	CiphertextHex string
	Username      string
	Password      string
	// OriginMarker 标识合法表单所在页面路径，AttackerMarker 标识攻击页
	OriginMarker   string
	AttackerMarker string
}

// New 按 lab_type 构造对应的 Verifier。集合封闭：未知类型直接报错
func New(labType models.LabType, sec Secret) (Verifier, error) {
	switch labType {
	case models.LabTypeStaticFlag:
		return &StaticFlagVerifier{Flag: sec.Flag}, nil
	case models.LabTypeCaesar:
		return &CaesarVerifier{Plaintext: sec.Plaintext, Flag: sec.Flag}, nil
	case models.LabTypeSQLInjection:
		return &SQLInjectionVerifier{Username: sec.Username, Password: sec.Password, Flag: sec.Flag}, nil
	case models.LabTypeCSRF:
		return &CSRFVerifier{OriginMarker: sec.OriginMarker, AttackerMarker: sec.AttackerMarker, Flag: sec.Flag}, nil
	case models.LabTypeXORRepeatingKey:
		return &XORVerifier{Flag: sec.Flag, Key: sec.Key, CiphertextHex: sec.CiphertextHex}, nil
	default:
		return nil, fmt.Errorf("unknown lab type: %s", labType)
	}
}
