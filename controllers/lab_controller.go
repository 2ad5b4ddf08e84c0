// file: controllers/lab_controller.go
package controllers

import (
	"CTFLab/database"
	"CTFLab/dto"
	"CTFLab/models"
	"CTFLab/services"
	"CTFLab/utils"
	"CTFLab/verifiers"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// findActiveLab 按 slug 取当前生效的实验。
// 若同一题意外存在多条 active 记录，取 updated_at 最新的一条
func findActiveLab(slug string) (*models.Lab, *models.Challenge, error) {
	var lab models.Lab
	if err := database.DB.
		Where("slug = ? AND is_active = ?", slug, true).
		Order("updated_at desc").
		First(&lab).Error; err != nil {
		return nil, nil, err
	}

	var challenge models.Challenge
	if err := database.DB.First(&challenge, lab.ChallengeID).Error; err != nil {
		return nil, nil, err
	}
	return &lab, &challenge, nil
}

// GetLab 加载实验并重建状态机：
// 已解出 -> 直接 completed 并再次披露 Flag；
// 已登录未解出 -> 开一条会话记录，状态 running；
// 匿名 -> 只返回实验信息，不写任何记录
func GetLab(c *gin.Context) {
	slug := c.Param("slug")

	lab, challenge, err := findActiveLab(slug)
	if err != nil {
		utils.Error(c, 4004, "实验不存在或未启用")
		return
	}

	resp := gin.H{
		"lab": gin.H{
			"id":       lab.ID,
			"slug":     lab.Slug,
			"lab_type": lab.LabType,
		},
		"challenge": gin.H{
			"id":          challenge.ID,
			"title":       challenge.Title,
			"category":    challenge.Category,
			"difficulty":  challenge.Difficulty,
			"description": challenge.Description,
			"points":      challenge.Points,
		},
	}

	userIDAny, authed := c.Get("user_id")
	if !authed {
		resp["status"] = "running"
		utils.Success(c, "success", resp)
		return
	}
	userID := userIDAny.(uint32)

	solved, err := services.HasSolved(userID, challenge.ID)
	if err != nil {
		utils.Error(c, 5000, "解题状态查询失败")
		return
	}

	if solved {
		// 已解出的实验不需要重新做一遍才能看到 Flag
		flag, err := services.LabFlag(*lab, *challenge)
		if err != nil {
			utils.Error(c, 5000, "实验配置缺失")
			return
		}
		resp["status"] = "completed"
		resp["flag"] = flag
		utils.Success(c, "success", resp)
		return
	}

	session, err := services.StartSession(userID, lab.ID)
	if err != nil {
		utils.Error(c, 5000, "会话创建失败")
		return
	}
	resp["status"] = "running"
	resp["session_id"] = session.ID
	utils.Success(c, "success", resp)
}

// VerifyLab 实验判题入口：校验 -> 判定 -> 记录提交 -> 首次则记分。
// 参数缺失返回 400 且不产生提交记录；匿名调用只返回判定结果
func VerifyLab(c *gin.Context) {
	slug := c.Param("slug")

	lab, challenge, err := findActiveLab(slug)
	if err != nil {
		utils.Error(c, 4004, "实验不存在或未启用")
		return
	}

	var req dto.VerifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorStatus(c, http.StatusBadRequest, 1001, "参数无效: "+err.Error())
		return
	}
	req.Referer = c.GetHeader("Referer")

	verifier, err := services.VerifierForLab(*lab, *challenge)
	if err != nil {
		utils.Error(c, 5000, "实验配置缺失")
		return
	}

	verdict, err := verifier.Verify(req)
	if err != nil {
		if errors.Is(err, verifiers.ErrValidation) {
			utils.ErrorStatus(c, http.StatusBadRequest, 1001, err.Error())
			return
		}
		utils.Error(c, 5000, "判题失败")
		return
	}

	userIDAny, authed := c.Get("user_id")
	if !authed {
		utils.Success(c, verdict.Message, verdict)
		return
	}
	userID := userIDAny.(uint32)

	if err := services.RecordSubmission(userID, challenge.ID, submittedValue(req), verdict.Correct, c.ClientIP()); err != nil {
		utils.Error(c, 5000, "提交记录写入失败")
		return
	}

	if !verdict.Correct {
		utils.Success(c, verdict.Message, verdict)
		return
	}

	first, err := services.CreditSolveIfFirst(userID, challenge.ID, challenge.Points)
	if err != nil {
		utils.Error(c, 5000, "解题记录写入失败")
		return
	}
	if err := services.CompleteSession(req.SessionID, userID); err != nil {
		utils.Error(c, 5000, "会话更新失败")
		return
	}

	resp := gin.H{
		"correct":     true,
		"message":     verdict.Message,
		"flag":        verdict.Flag,
		"points":      challenge.Points,
		"first_solve": first,
	}
	if verdict.DebugQuery != "" {
		resp["debug_query"] = verdict.DebugQuery
	}
	utils.Success(c, verdict.Message, resp)
}

// submittedValue 提取写入审计日志的原始提交内容
func submittedValue(req dto.VerifyReq) string {
	switch {
	case req.Answer != "":
		return req.Answer
	case req.Plaintext != "":
		return req.Plaintext
	case req.Username != "":
		return req.Username
	case req.Email != "":
		return req.Email
	default:
		return ""
	}
}
