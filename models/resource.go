// file: models/resource.go
package models

import (
	"time"
)

type ResourceStorage string

const (
	ResourceStorageURL    ResourceStorage = "url"
	ResourceStorageObject ResourceStorage = "object"
)

// Resource 是题目附带的下载资料（取证镜像、流量包、密文文件等）
type Resource struct {
	ID          uint64          `gorm:"primarykey"`
	ChallengeID uint32          `gorm:"not null;index"`
	Storage     ResourceStorage `gorm:"size:10;not null"`
	URL         string          `gorm:"size:2048"`
	ObjectKey   string          `gorm:"size:512"`
	FileName    string          `gorm:"size:255;not null"`
	ContentType string          `gorm:"size:255"`
	FileSize    uint64          `gorm:"default:0"`
	SHA256      string          `gorm:"size:64"`
	CreatedBy   uint32          `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Resource) TableName() string {
	return "ctflab_resource"
}
