// file: models/lab.go
package models

import (
	"time"
)

// LabType 决定使用哪种校验逻辑，属于封闭集合
type LabType string

const (
	LabTypeStaticFlag      LabType = "static_flag"
	LabTypeCaesar          LabType = "caesar"
	LabTypeSQLInjection    LabType = "sql_injection"
	LabTypeCSRF            LabType = "csrf"
	LabTypeXORRepeatingKey LabType = "xor_repeating_key"
)

// Lab 是题目的交互式实例。每道题最多一个 active 实验，
// 由 services.AttachLab 的事务保证；查询侧仍按 updated_at
// 最新优先兜底（见 DESIGN.md）。
type Lab struct {
	ID          uint32  `gorm:"primarykey" json:"id"`
	ChallengeID uint32  `gorm:"not null;index" json:"challenge_id"`
	Slug        string  `gorm:"size:100;unique;not null" json:"slug"`
	LabType     LabType `gorm:"size:30;not null" json:"lab_type"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Lab) TableName() string {
	return "ctflab_lab"
}
