// file: models/solve.go
package models

import (
	"time"
)

// Solve 是解题得分记录。(user_id, challenge_id) 上的联合唯一索引
// 是整个系统最核心的约束：同一用户同一题至多记一次分
type Solve struct {
	ID          uint64    `gorm:"primarykey"`
	UserID      uint32    `gorm:"not null;uniqueIndex:uniq_user_challenge"`
	ChallengeID uint32    `gorm:"not null;uniqueIndex:uniq_user_challenge"`
	SolveTime   time.Time `gorm:"autoCreateTime"`

	// 外键约束：记分行必须引用真实存在的用户和题目
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Challenge Challenge `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Solve) TableName() string {
	return "ctflab_solve"
}
