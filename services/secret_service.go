// file: services/secret_service.go
package services

import (
	"fmt"

	"CTFLab/models"
	"CTFLab/verifiers"
)

// labSecrets 是服务端唯一的实验机密登记表，按 slug 索引。
// 机密只在判题时使用，任何响应序列化都不经过这里
var labSecrets = map[string]verifiers.Secret{
	"caesar-cipher": {
		Plaintext: "The quick brown fox jumps over the lazy dog",
		Flag:      "flag{caesar_shift3}",
	},
	"sql-injection-101": {
		Username: "admin",
		Password: "password123",
		Flag:     "flag{sql_inj3ct1on}",
	},
	"csrf-attack": {
		OriginMarker:   "csrf-attack",
		AttackerMarker: "attacker=1",
		Flag:           "flag{csrf_protected}",
	},
	"xor-repeating-key": {
		Key:           "crypto",
		CiphertextHex: "051e18170f170c002602111f06130d191a083c191c092b0c11131a1b110b1e",
		Flag:          "flag{xor_repeating_key_cracked}",
	},
}

// RegisterLabSecret 登记或覆盖某个实验的机密配置（部署初始化、测试用）
func RegisterLabSecret(slug string, sec verifiers.Secret) {
	labSecrets[slug] = sec
}

// LabFlag 返回某实验成功后披露的 Flag（用于已解出用户重进实验时再次展示）
func LabFlag(lab models.Lab, challenge models.Challenge) (string, error) {
	if lab.LabType == models.LabTypeStaticFlag {
		return challenge.Flag, nil
	}
	sec, ok := labSecrets[lab.Slug]
	if !ok {
		return "", fmt.Errorf("no secret registered for lab %q", lab.Slug)
	}
	return sec.Flag, nil
}

// VerifierForLab 在加载实验时一次性解析出对应的 Verifier，
// 后续判题不再按 slug 做二次分发。
// static_flag 类型的机密取题目行上的 Flag，其余类型取登记表
func VerifierForLab(lab models.Lab, challenge models.Challenge) (verifiers.Verifier, error) {
	if lab.LabType == models.LabTypeStaticFlag {
		return verifiers.New(lab.LabType, verifiers.Secret{Flag: challenge.Flag})
	}

	sec, ok := labSecrets[lab.Slug]
	if !ok {
		return nil, fmt.Errorf("no secret registered for lab %q", lab.Slug)
	}
	return verifiers.New(lab.LabType, sec)
}
