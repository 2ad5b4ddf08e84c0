// file: controllers/user_controller.go
package controllers

import (
	"CTFLab/database"
	"CTFLab/models"
	"CTFLab/services"
	"CTFLab/utils"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// --- 公开接口 ---

func Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
		Email    string `json:"email" binding:"required,email"`
		TeamName string `json:"team_name"`
		Year     string `json:"year"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&user).Error; err == nil {
		utils.Error(c, 2001, "用户名或邮箱已被注册")
		return
	}

	newUser := models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		TeamName: strings.TrimSpace(req.TeamName),
		Year:     strings.TrimSpace(req.Year),
	}

	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "User registered successfully", gin.H{
		"id":        newUser.ID,
		"username":  newUser.Username,
		"team_name": newUser.TeamName,
		"role":      newUser.Role,
	})
}

func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Error(c, 2002, "用户不存在或密码错误")
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Error(c, 2002, "用户不存在或密码错误")
		return
	}

	if user.Status == models.StatusBanned {
		utils.Error(c, 2005, "用户已被封禁")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, 5002, "Token 生成失败")
		return
	}

	utils.Success(c, "Login success", gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"team_name": user.TeamName,
			"role":      user.Role,
		},
	})
}

// --- 需登录接口 ---

// GetUserDetail 查询用户资料。score 字段来自账本聚合，
// total_score 缓存只作展示参考，以聚合值为准
func GetUserDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	score, err := services.TotalScore(user.ID)
	if err != nil {
		utils.Error(c, 5000, "分数查询失败")
		return
	}

	utils.Success(c, "success", gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"team_name": user.TeamName,
		"year":      user.Year,
		"role":      user.Role,
		"score":     score,
	})
}
