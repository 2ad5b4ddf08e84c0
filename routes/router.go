// file: routes/router.go
package routes

import (
	"CTFLab/controllers"
	"CTFLab/middlewares"
	"CTFLab/models"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		// --- 用户 ---
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}
		usersAuth := apiV1.Group("/users")
		usersAuth.Use(middlewares.JWTAuthMiddleware())
		{
			usersAuth.GET("/:id", controllers.GetUserDetail)
			usersAuth.GET("/:id/solves", controllers.GetUserSolves)
		}

		// --- 题目目录 ---
		challengeRoutes := apiV1.Group("/challenges")
		{
			// 试探式鉴权：匿名可浏览，登录后列表会标记已解出状态
			challengeRoutes.GET("", middlewares.JWTTryAuthMiddleware(), controllers.ListChallenges)
			challengeRoutes.GET("/:id", middlewares.JWTTryAuthMiddleware(), controllers.GetChallengeDetail)
			challengeRoutes.POST("/:id/submit", middlewares.JWTAuthMiddleware(), controllers.SubmitFlag)

			// 管理员接口
			challengeRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateChallenge)
			challengeRoutes.POST("/:id/resources", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.AddResource)
		}

		// --- 实验 ---
		labRoutes := apiV1.Group("/labs")
		labRoutes.Use(middlewares.JWTTryAuthMiddleware())
		{
			labRoutes.GET("/:slug", controllers.GetLab)
			labRoutes.POST("/:slug/verify", controllers.VerifyLab)
		}

		// --- 排行榜 ---
		apiV1.GET("/leaderboard", controllers.GetLeaderboard)

		// --- 资料下载统一网关 ---
		apiV1.GET("/resources/:resource_id/download", middlewares.JWTAuthMiddleware(), controllers.DownloadResource)

		// --- 管理员 ---
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.GET("/submissions", controllers.GetSubmissionLogs)
			adminRoutes.POST("/recompute-scores", controllers.RecomputeScores)
		}
	}

	return r
}
