// file: models/lab_session.go
package models

import (
	"time"
)

// LabSession 记录一次实验访问，仅用于统计分析，不参与任何授权判断
type LabSession struct {
	ID          string `gorm:"size:36;primarykey"`
	UserID      uint32 `gorm:"not null;index"`
	LabID       uint32 `gorm:"not null;index"`
	StartedAt   time.Time
	CompletedAt *time.Time
	Success     bool `gorm:"default:false"`
}

func (LabSession) TableName() string {
	return "ctflab_lab_session"
}
