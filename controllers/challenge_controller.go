// file: controllers/challenge_controller.go
package controllers

import (
	"CTFLab/database"
	"CTFLab/dto"
	"CTFLab/models"
	"CTFLab/services"
	"CTFLab/utils"
	"CTFLab/verifiers"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// solvedChallengeIDs 返回已登录用户解出的题目 ID 集合，匿名时为空集
func solvedChallengeIDs(c *gin.Context) map[uint32]bool {
	solved := make(map[uint32]bool)
	userIDAny, exists := c.Get("user_id")
	if !exists {
		return solved
	}
	var solves []models.Solve
	database.DB.Where("user_id = ?", userIDAny.(uint32)).Find(&solves)
	for _, s := range solves {
		solved[s.ChallengeID] = true
	}
	return solved
}

// activeLabSlugs 批量查出各题当前生效的实验 slug。
// 同一题存在多条 active 记录时取 updated_at 最新的一条
func activeLabSlugs() map[uint32]string {
	var labs []models.Lab
	database.DB.Where("is_active = ?", true).Order("updated_at asc").Find(&labs)
	slugs := make(map[uint32]string, len(labs))
	for _, lab := range labs {
		slugs[lab.ChallengeID] = lab.Slug
	}
	return slugs
}

// ListChallenges 用户可见的题目列表，支持分类/难度筛选
func ListChallenges(c *gin.Context) {
	db := database.DB.Model(&models.Challenge{}).
		Where("state = ?", models.ChallengeStateVisible)

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		db = db.Where("category = ?", models.ChallengeCategory(category))
	}
	if diff := strings.TrimSpace(c.Query("difficulty")); diff != "" {
		db = db.Where("difficulty = ?", models.ChallengeDifficulty(diff))
	}

	var challenges []models.Challenge
	if err := db.Find(&challenges).Error; err != nil {
		utils.Error(c, 5000, "查询失败")
		return
	}

	solved := solvedChallengeIDs(c)
	slugs := activeLabSlugs()

	items := make([]dto.ChallengeItemResp, 0, len(challenges))
	for _, ch := range challenges {
		items = append(items, dto.ChallengeItemResp{
			ID:          ch.ID,
			Title:       ch.Title,
			Category:    string(ch.Category),
			Difficulty:  string(ch.Difficulty),
			Points:      ch.Points,
			SolvedCount: ch.SolvedCount,
			Solved:      solved[ch.ID],
			LabSlug:     slugs[ch.ID],
		})
	}

	utils.Success(c, "success", gin.H{
		"total":      len(items),
		"challenges": items,
	})
}

// GetChallengeDetail 用户可见的题目详情，含资料下载列表
func GetChallengeDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var challenge models.Challenge
	if err := database.DB.Preload("Resources").First(&challenge, id).Error; err != nil {
		utils.Error(c, 4004, "题目不存在")
		return
	}
	if challenge.State != models.ChallengeStateVisible {
		utils.Error(c, 4003, "题目不可见")
		return
	}

	mini := make([]dto.ResourceMini, 0, len(challenge.Resources))
	for _, r := range challenge.Resources {
		mini = append(mini, dto.ResourceMini{
			ID:       r.ID,
			FileName: r.FileName,
			Size:     r.FileSize,
			SHA256:   r.SHA256,
		})
	}

	solved := solvedChallengeIDs(c)

	var lab models.Lab
	labSlug := ""
	if err := database.DB.
		Where("challenge_id = ? AND is_active = ?", id, true).
		Order("updated_at desc").
		First(&lab).Error; err == nil {
		labSlug = lab.Slug
	}

	utils.Success(c, "success", dto.ChallengeDetailResp{
		ID:          challenge.ID,
		Title:       challenge.Title,
		Category:    string(challenge.Category),
		Difficulty:  string(challenge.Difficulty),
		Description: challenge.Description,
		Points:      challenge.Points,
		SolvedCount: challenge.SolvedCount,
		Solved:      solved[challenge.ID],
		LabSlug:     labSlug,
		Resources:   mini,
	})
}

// SubmitFlag 目录题 Flag 提交：判定 -> 记录提交 -> 首次则记分。
// 解出后的重复提交照常入账，但不会产生新的解题记录或分数变化，
// Flag 会再次返回以便客户端重新展示
func SubmitFlag(c *gin.Context) {
	challengeID, _ := strconv.Atoi(c.Param("id"))

	var req dto.SubmitFlagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorStatus(c, http.StatusBadRequest, 1001, "参数无效: "+err.Error())
		return
	}

	userIDAny, exists := c.Get("user_id")
	if !exists {
		utils.Error(c, 4001, "未登录")
		return
	}
	userID := userIDAny.(uint32)

	var challenge models.Challenge
	if err := database.DB.First(&challenge, challengeID).Error; err != nil {
		utils.Error(c, 4004, "题目不存在")
		return
	}
	if challenge.State != models.ChallengeStateVisible {
		utils.Error(c, 4003, "题目不可见")
		return
	}

	verifier := &verifiers.StaticFlagVerifier{Flag: challenge.Flag}
	verdict, err := verifier.Verify(dto.VerifyReq{Answer: req.Flag})
	if err != nil {
		// 空提交属于校验失败，不计入提交记录
		utils.ErrorStatus(c, http.StatusBadRequest, 1001, "Flag 不能为空")
		return
	}

	if err := services.RecordSubmission(userID, challenge.ID, req.Flag, verdict.Correct, c.ClientIP()); err != nil {
		utils.Error(c, 5000, "提交记录写入失败")
		return
	}

	if !verdict.Correct {
		utils.Success(c, verdict.Message, gin.H{"correct": false})
		return
	}

	first, err := services.CreditSolveIfFirst(userID, challenge.ID, challenge.Points)
	if err != nil {
		utils.Error(c, 5000, "解题记录写入失败")
		return
	}

	message := verdict.Message
	if !first {
		message = "✓ Correct! Already solved, no additional points awarded."
	}
	utils.Success(c, message, gin.H{
		"correct": true,
		"flag":    verdict.Flag,
		"points":  challenge.Points,
		"first":   first,
	})
}

// CreateChallenge 管理员创建题目，可同时挂一个实验
func CreateChallenge(c *gin.Context) {
	var req dto.CreateChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	if req.Title == "" || req.Category == "" || req.Description == "" || req.Points == 0 {
		utils.Error(c, 1001, "缺少必填字段")
		return
	}
	switch models.ChallengeCategory(req.Category) {
	case models.CategoryWeb, models.CategoryCrypto, models.CategoryForensics,
		models.CategoryOSINT, models.CategoryReverse:
	default:
		utils.Error(c, 1001, "category 取值无效")
		return
	}
	if req.Difficulty != "easy" && req.Difficulty != "medium" && req.Difficulty != "hard" {
		utils.Error(c, 1001, "difficulty 取值无效（easy/medium/hard）")
		return
	}
	if req.Lab != nil {
		switch models.LabType(req.Lab.LabType) {
		case models.LabTypeStaticFlag, models.LabTypeCaesar, models.LabTypeSQLInjection,
			models.LabTypeCSRF, models.LabTypeXORRepeatingKey:
		default:
			utils.Error(c, 1001, "lab_type 取值无效")
			return
		}
		if req.Lab.Slug == "" {
			utils.Error(c, 1001, "实验必须提供 slug")
			return
		}
	}

	flag := req.Flag
	if flag == "" {
		flag = utils.GenerateFlag()
	}

	chal := models.Challenge{
		Title:       req.Title,
		Category:    models.ChallengeCategory(req.Category),
		Difficulty:  models.ChallengeDifficulty(req.Difficulty),
		Description: req.Description,
		Points:      req.Points,
		Flag:        flag,
	}

	if err := database.DB.Create(&chal).Error; err != nil {
		utils.Error(c, 5000, "创建题目失败: "+err.Error())
		return
	}

	var labID uint32
	if req.Lab != nil {
		lab, err := services.AttachLab(chal.ID, req.Lab.Slug, models.LabType(req.Lab.LabType))
		if err != nil {
			utils.Error(c, 5000, "创建实验失败: "+err.Error())
			return
		}
		labID = lab.ID
	}

	utils.Success(c, "Challenge created successfully", gin.H{
		"id":     chal.ID,
		"lab_id": labID,
	})
}
