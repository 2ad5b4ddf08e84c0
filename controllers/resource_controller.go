// file: controllers/resource_controller.go
package controllers

import (
	"CTFLab/database"
	"CTFLab/models"
	"CTFLab/utils"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// AddResource 管理员为题目挂资料：JSON 外链或 multipart 上传
func AddResource(c *gin.Context) {
	challengeID, _ := strconv.Atoi(c.Param("id"))

	userIDAny, ok := c.Get("user_id")
	if !ok {
		utils.Error(c, 4001, "未登录")
		return
	}
	userID := userIDAny.(uint32)

	var challenge models.Challenge
	if err := database.DB.First(&challenge, challengeID).Error; err != nil {
		utils.Error(c, 4004, "题目不存在")
		return
	}

	contentType := c.ContentType()
	var res models.Resource
	res.ChallengeID = uint32(challengeID)
	res.CreatedBy = userID

	if contentType == "application/json" {
		// 外链方式
		var req struct {
			URL      string `json:"url" binding:"required"`
			FileName string `json:"file_name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, 1001, "参数无效")
			return
		}
		res.Storage = models.ResourceStorageURL
		res.URL = req.URL
		res.FileName = req.FileName

	} else if strings.HasPrefix(contentType, "multipart/") {
		// 平台上传方式
		file, err := c.FormFile("file")
		if err != nil {
			utils.Error(c, 1001, "获取文件失败")
			return
		}

		uploadDir := viper.GetString("upload_dir")
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			utils.Error(c, 5000, "创建上传目录失败")
			return
		}
		dst := filepath.Join(uploadDir, filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, dst); err != nil {
			utils.Error(c, 5000, "保存文件失败")
			return
		}

		f, err := os.Open(dst)
		if err != nil {
			utils.Error(c, 5000, "打开文件失败")
			return
		}
		defer f.Close()

		hasher := sha256.New()
		if _, err := io.Copy(hasher, f); err != nil {
			utils.Error(c, 5000, "计算哈希失败")
			return
		}

		res.Storage = models.ResourceStorageObject
		res.ObjectKey = dst
		res.FileName = file.Filename
		res.ContentType = file.Header.Get("Content-Type")
		res.FileSize = uint64(file.Size)
		res.SHA256 = hex.EncodeToString(hasher.Sum(nil))

	} else {
		utils.Error(c, 1001, "不支持的 Content-Type")
		return
	}

	if err := database.DB.Create(&res).Error; err != nil {
		utils.Error(c, 5000, "创建资料记录失败")
		return
	}

	utils.Success(c, "success", gin.H{"resource_id": res.ID})
}

// DownloadResource 统一网关下载：外链 302，本地文件直接返回
func DownloadResource(c *gin.Context) {
	resourceID, _ := strconv.Atoi(c.Param("resource_id"))

	var res models.Resource
	if err := database.DB.First(&res, resourceID).Error; err != nil {
		utils.Error(c, 4004, "资料不存在")
		return
	}

	// 隐藏题目的资料不对玩家开放
	var challenge models.Challenge
	if err := database.DB.First(&challenge, res.ChallengeID).Error; err != nil ||
		challenge.State != models.ChallengeStateVisible {
		utils.Error(c, 4003, "资料不可用")
		return
	}

	if res.Storage == models.ResourceStorageURL {
		c.Redirect(302, res.URL)
		return
	}

	c.FileAttachment(res.ObjectKey, res.FileName)
}
