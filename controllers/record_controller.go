// file: controllers/record_controller.go
package controllers

import (
	"CTFLab/database"
	"CTFLab/services"
	"CTFLab/utils"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetUserSolves 查询用户解题记录，一次联表查询取全历史
func GetUserSolves(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("id"))

	type solveRow struct {
		ChallengeID uint32    `gorm:"column:challenge_id"`
		Title       string    `gorm:"column:title"`
		Points      uint      `gorm:"column:points"`
		SolveTime   time.Time `gorm:"column:solve_time"`
	}
	var rows []solveRow
	database.DB.Table("ctflab_solve s").
		Select("s.challenge_id, c.title, c.points, s.solve_time").
		Joins("JOIN ctflab_challenge c ON s.challenge_id = c.id").
		Where("s.user_id = ?", userID).
		Order("s.solve_time asc").
		Scan(&rows)

	type SolveInfo struct {
		ChallengeID uint32 `json:"challenge_id"`
		Title       string `json:"title"`
		Points      uint   `json:"points"`
		SolveTime   string `json:"solve_time"`
	}
	result := make([]SolveInfo, 0, len(rows))
	for _, row := range rows {
		result = append(result, SolveInfo{
			ChallengeID: row.ChallengeID,
			Title:       row.Title,
			Points:      row.Points,
			SolveTime:   row.SolveTime.Format("2006-01-02 15:04:05"),
		})
	}

	utils.Success(c, "success", result)
}

// GetSubmissionLogs 管理员查询提交审计日志
func GetSubmissionLogs(c *gin.Context) {
	type LogDetail struct {
		ID            uint64    `json:"id"`
		ChallengeID   uint32    `json:"challenge_id"`
		Title         string    `json:"title"`
		UserID        uint32    `json:"user_id"`
		Username      string    `json:"username"`
		FlagSubmitted string    `json:"flag_submitted"`
		IsCorrect     bool      `json:"is_correct"`
		SubmittedAt   time.Time `json:"submitted_at"`
		IPAddress     string    `json:"ip_address"`
	}

	db := database.DB.Table("ctflab_submission s").
		Select("s.id, s.challenge_id, c.title, s.user_id, u.username, s.flag_submitted, s.is_correct, s.submitted_at, s.ip_address").
		Joins("LEFT JOIN ctflab_challenge c ON s.challenge_id = c.id").
		Joins("LEFT JOIN ctflab_user u ON s.user_id = u.id")

	if userID := c.Query("user_id"); userID != "" {
		db = db.Where("s.user_id = ?", userID)
	}
	if challengeID := c.Query("challenge_id"); challengeID != "" {
		db = db.Where("s.challenge_id = ?", challengeID)
	}
	if correct := c.Query("correct"); correct != "" {
		db = db.Where("s.is_correct = ?", correct == "1")
	}

	var results []LogDetail
	db.Order("s.submitted_at desc").Limit(500).Find(&results)

	utils.Success(c, "success", results)
}

// RecomputeScores 管理员触发的分数缓存修复：以账本聚合重写所有 total_score
func RecomputeScores(c *gin.Context) {
	if err := services.RecomputeScores(); err != nil {
		utils.Error(c, 5000, "分数重算失败: "+err.Error())
		return
	}
	utils.Success(c, "Scores recomputed from the solve ledger", nil)
}
