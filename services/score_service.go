// file: services/score_service.go
package services

import (
	"fmt"
	"sort"
	"time"

	"CTFLab/database"
	"CTFLab/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LeaderboardEntry 个人榜单项
type LeaderboardEntry struct {
	UserID        uint32    `json:"user_id"`
	Username      string    `json:"username"`
	TeamName      string    `json:"team_name,omitempty"`
	Score         uint      `json:"score"`
	LastSolveTime time.Time `json:"last_solve_time"`
}

// TeamLeaderboardEntry 队伍榜单项：成员个人分的纯聚合，没有独立的队伍账本
type TeamLeaderboardEntry struct {
	TeamName      string    `json:"team_name"`
	MemberCount   int       `json:"member_count"`
	Score         uint      `json:"score"`
	LastSolveTime time.Time `json:"last_solve_time"`
}

// solveRow 账本扁平行：一条解题记录连上得分与用户信息
type solveRow struct {
	UserID    uint32    `gorm:"column:user_id"`
	Username  string    `gorm:"column:username"`
	TeamName  string    `gorm:"column:team_name"`
	Points    uint      `gorm:"column:points"`
	SolveTime time.Time `gorm:"column:solve_time"`
}

func ledgerRows() ([]solveRow, error) {
	var rows []solveRow
	err := database.DB.Table("ctflab_solve s").
		Select("s.user_id, u.username, u.team_name, c.points, s.solve_time").
		Joins("JOIN ctflab_challenge c ON s.challenge_id = c.id").
		Joins("JOIN ctflab_user u ON s.user_id = u.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying solve ledger: %w", err)
	}
	return rows, nil
}

// TotalScore 从解题记录聚合出某用户的可信总分。账本是唯一事实来源
func TotalScore(userID uint32) (uint, error) {
	var total *uint
	err := database.DB.Table("ctflab_solve s").
		Select("SUM(c.points)").
		Joins("JOIN ctflab_challenge c ON s.challenge_id = c.id").
		Where("s.user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("aggregating score: %w", err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// Leaderboard 个人排行榜，对账本做折叠聚合。排序规则（见 DESIGN.md）：
// 总分降序 -> 最后解题时间升序（先达到该分数者在前）-> 用户 ID 升序
func Leaderboard(limit int) ([]LeaderboardEntry, error) {
	rows, err := ledgerRows()
	if err != nil {
		return nil, err
	}

	byUser := make(map[uint32]*LeaderboardEntry)
	for _, row := range rows {
		entry, ok := byUser[row.UserID]
		if !ok {
			entry = &LeaderboardEntry{
				UserID:   row.UserID,
				Username: row.Username,
				TeamName: row.TeamName,
			}
			byUser[row.UserID] = entry
		}
		entry.Score += row.Points
		if row.SolveTime.After(entry.LastSolveTime) {
			entry.LastSolveTime = row.SolveTime
		}
	}

	entries := make([]LeaderboardEntry, 0, len(byUser))
	for _, e := range byUser {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if !entries[i].LastSolveTime.Equal(entries[j].LastSolveTime) {
			return entries[i].LastSolveTime.Before(entries[j].LastSolveTime)
		}
		return entries[i].UserID < entries[j].UserID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// TeamLeaderboard 队伍榜：按 team_name（区分大小写）对成员总分做纯折叠，
// 没有独立的队伍账本可言
func TeamLeaderboard(limit int) ([]TeamLeaderboardEntry, error) {
	rows, err := ledgerRows()
	if err != nil {
		return nil, err
	}

	byTeam := make(map[string]*TeamLeaderboardEntry)
	members := make(map[string]map[uint32]bool)
	for _, row := range rows {
		if row.TeamName == "" {
			continue
		}
		entry, ok := byTeam[row.TeamName]
		if !ok {
			entry = &TeamLeaderboardEntry{TeamName: row.TeamName}
			byTeam[row.TeamName] = entry
			members[row.TeamName] = make(map[uint32]bool)
		}
		entry.Score += row.Points
		members[row.TeamName][row.UserID] = true
		if row.SolveTime.After(entry.LastSolveTime) {
			entry.LastSolveTime = row.SolveTime
		}
	}

	entries := make([]TeamLeaderboardEntry, 0, len(byTeam))
	for name, e := range byTeam {
		e.MemberCount = len(members[name])
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if !entries[i].LastSolveTime.Equal(entries[j].LastSolveTime) {
			return entries[i].LastSolveTime.Before(entries[j].LastSolveTime)
		}
		return entries[i].TeamName < entries[j].TeamName
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// RecomputeScores 修复路径：用账本聚合结果重写所有 total_score 缓存。
// 缓存若因历史故障漂移，跑一次即可对齐
func RecomputeScores() error {
	rows, err := ledgerRows()
	if err != nil {
		return err
	}

	totals := make(map[uint32]uint)
	for _, row := range rows {
		totals[row.UserID] += row.Points
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("1 = 1").
			Update("total_score", 0).Error; err != nil {
			return err
		}
		for userID, score := range totals {
			if err := tx.Model(&models.User{}).
				Where("id = ?", userID).
				Update("total_score", score).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("rewriting score cache: %w", err)
	}

	ClearLeaderboardCache()
	logrus.Infof("recomputed score cache for %d users from the solve ledger", len(totals))
	return nil
}

// ClearLeaderboardCache 清空排行榜相关的 Redis 缓存，下次查询回源取最新数据
func ClearLeaderboardCache() {
	if database.RDB == nil {
		return
	}
	keys, err := database.RDB.Keys(database.Ctx, "leaderboard:*").Result()
	if err == nil && len(keys) > 0 {
		database.RDB.Del(database.Ctx, keys...)
		logrus.Debugf("cleared %d leaderboard cache keys from Redis", len(keys))
	}
}
