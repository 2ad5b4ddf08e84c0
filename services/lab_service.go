// file: services/lab_service.go
package services

import (
	"fmt"

	"CTFLab/database"
	"CTFLab/models"

	"gorm.io/gorm"
)

// AttachLab 给题目挂一个实验，并保证同一题目最多一条 active 记录：
// 在同一事务内先下线旧的 active 实验，再插入新实验。
// 实验创建只走这个入口，不允许绕过
func AttachLab(challengeID uint32, slug string, labType models.LabType) (*models.Lab, error) {
	lab := &models.Lab{
		ChallengeID: challengeID,
		Slug:        slug,
		LabType:     labType,
		IsActive:    true,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Lab{}).
			Where("challenge_id = ? AND is_active = ?", challengeID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(lab).Error
	})
	if err != nil {
		return nil, fmt.Errorf("attaching lab: %w", err)
	}
	return lab, nil
}
