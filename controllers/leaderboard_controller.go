// file: controllers/leaderboard_controller.go
package controllers

import (
	"CTFLab/database"
	"CTFLab/services"
	"CTFLab/utils"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard 查询排行榜，scope=users|teams
func GetLeaderboard(c *gin.Context) {
	scope := c.DefaultQuery("scope", "users")
	limitStr := c.DefaultQuery("limit", "20")
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	// 1. 尝试从 Redis 获取缓存
	cacheKey := fmt.Sprintf("leaderboard:%s:%d", scope, limit)
	if database.RDB != nil {
		if val, err := database.RDB.Get(database.Ctx, cacheKey).Result(); err == nil {
			var cached json.RawMessage
			if json.Unmarshal([]byte(val), &cached) == nil {
				utils.Success(c, "success (from cache)", cached)
				return
			}
		}
	}

	var result interface{}
	var err error
	switch scope {
	case "teams":
		result, err = services.TeamLeaderboard(limit)
	case "users":
		result, err = services.Leaderboard(limit)
	default:
		utils.Error(c, 1001, "scope 取值无效（users/teams）")
		return
	}
	if err != nil {
		utils.Error(c, 5000, "排行榜查询失败")
		return
	}

	// 2. 缓存未命中则写回 Redis，15 秒短有效期保证榜单准实时
	if database.RDB != nil {
		if jsonData, err := json.Marshal(result); err == nil {
			database.RDB.Set(database.Ctx, cacheKey, jsonData, 15*time.Second)
		}
	}

	utils.Success(c, "success", result)
}
