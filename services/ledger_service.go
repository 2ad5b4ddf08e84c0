// file: services/ledger_service.go
package services

import (
	"errors"
	"fmt"

	"CTFLab/database"
	"CTFLab/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordSubmission 无条件追加一条提交记录。已解出后的重复提交同样入账，
// 审计日志必须能还原完整的尝试历史
func RecordSubmission(userID, challengeID uint32, rawFlag string, isCorrect bool, ip string) error {
	sub := models.Submission{
		UserID:        userID,
		ChallengeID:   challengeID,
		FlagSubmitted: rawFlag,
		IsCorrect:     isCorrect,
		IPAddress:     ip,
	}
	if err := database.DB.Create(&sub).Error; err != nil {
		return fmt.Errorf("recording submission: %w", err)
	}
	return nil
}

// CreditSolveIfFirst 原子化的「不存在才插入」解题记分。
// 依赖 ctflab_solve 上 (user_id, challenge_id) 的唯一索引兜底：
// 两个并发的正确提交只有一个能插入成功，输掉的一方按「已解出」处理。
// 首次记分时在同一事务内更新 total_score 缓存与题目解出数。
// 返回值表示本次是否为首次解出
func CreditSolveIfFirst(userID, challengeID uint32, points uint) (bool, error) {
	first := false

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		solve := models.Solve{
			UserID:      userID,
			ChallengeID: challengeID,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "challenge_id"},
			},
			DoNothing: true,
		}).Create(&solve)

		if result.Error != nil {
			// 个别方言不把冲突转成静默忽略时，同样按已解出处理
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return nil
			}
			return fmt.Errorf("creating solve: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		first = true

		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("total_score", gorm.Expr("total_score + ?", points)).
			Error; err != nil {
			return fmt.Errorf("updating score cache: %w", err)
		}

		if err := tx.Model(&models.Challenge{}).
			Where("id = ?", challengeID).
			Update("solved_count", gorm.Expr("solved_count + 1")).
			Error; err != nil {
			return fmt.Errorf("updating solved count: %w", err)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	if first {
		logrus.Infof("user %d solved challenge %d (+%d)", userID, challengeID, points)
		ClearLeaderboardCache()
	}
	return first, nil
}

// HasSolved 查询某用户是否已解出某题
func HasSolved(userID, challengeID uint32) (bool, error) {
	var count int64
	if err := database.DB.Model(&models.Solve{}).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking solve: %w", err)
	}
	return count > 0, nil
}
