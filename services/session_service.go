// file: services/session_service.go
package services

import (
	"fmt"
	"time"

	"CTFLab/database"
	"CTFLab/models"

	"github.com/google/uuid"
)

// StartSession 打开一次实验访问记录（idle -> running）
func StartSession(userID, labID uint32) (*models.LabSession, error) {
	session := models.LabSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		LabID:     labID,
		StartedAt: time.Now(),
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("creating lab session: %w", err)
	}
	return &session, nil
}

// CompleteSession 标记会话完成（running -> completed）。
// WHERE completed_at IS NULL 保证该迁移只发生一次，重复调用是空操作
func CompleteSession(sessionID string, userID uint32) error {
	if sessionID == "" {
		return nil
	}
	now := time.Now()
	err := database.DB.Model(&models.LabSession{}).
		Where("id = ? AND user_id = ? AND completed_at IS NULL", sessionID, userID).
		Updates(map[string]any{
			"completed_at": &now,
			"success":      true,
		}).Error
	if err != nil {
		return fmt.Errorf("completing lab session: %w", err)
	}
	return nil
}
