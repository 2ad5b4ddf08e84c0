// file: models/submission.go
package models

import (
	"time"
)

// Submission 是只追加的提交审计日志，永不修改或删除。
// 外键约束保证日志不会指向不存在的用户或题目
type Submission struct {
	ID            uint64    `gorm:"primarykey"`
	UserID        uint32    `gorm:"not null;index"`
	ChallengeID   uint32    `gorm:"not null;index"`
	FlagSubmitted string    `gorm:"size:255;not null"`
	IsCorrect     bool      `gorm:"not null"`
	IPAddress     string    `gorm:"size:45"`
	SubmittedAt   time.Time `gorm:"autoCreateTime"`

	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Challenge Challenge `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Submission) TableName() string {
	return "ctflab_submission"
}
