package api

import (
	"github.com/SlpAus/carbon-footprint-backend/internal/footprint"
	"github.com/SlpAus/carbon-footprint-backend/internal/leaderboard"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// 碳足迹相关的路由组 /api/footprint
		footprintRoutes := api.Group("/footprint")
		{
			footprintRoutes.POST("", footprint.SubmitFootprint)
			footprintRoutes.GET("", footprint.GetFootprints)
			footprintRoutes.POST("/score", footprint.ScoreFootprint)
		}

		// 排行榜路由 /api/leaderboard
		api.GET("/leaderboard", leaderboard.GetLeaderboard)
	}
}
