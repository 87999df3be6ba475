package leaderboard

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/SlpAus/carbon-footprint-backend/internal/platform/database"
	"github.com/SlpAus/carbon-footprint-backend/pkg/week"
	"github.com/gin-gonic/gin"
)

// 未指定limit时返回的条数
const defaultLimit = 10

// parseLimit 解析limit查询参数。
// 缺省、非数字或负数都回退到默认值；0是合法值，表示空结果。
func parseLimit(raw string) int {
	if raw == "" {
		return defaultLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return defaultLimit
	}
	return n
}

// GetLeaderboard 返回当前周的排行榜
func GetLeaderboard(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	key := week.Now()

	weekInfo := gin.H{"weekNumber": key.Number, "year": key.Year}

	if limit == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"leaderboard": []LeaderboardEntry{},
			"weekInfo":    weekInfo,
		})
		return
	}

	// 优先走Redis镜像；镜像不可用或周不匹配时退回数据库
	if database.IsRedisHealthy() {
		if entries, ok := readCached(key, limit); ok {
			c.JSON(http.StatusOK, gin.H{
				"success":     true,
				"leaderboard": entries,
				"weekInfo":    weekInfo,
			})
			return
		}
	}

	entries, err := listForWeek(database.DB, key, limit)
	if err != nil {
		fmt.Printf("查询排行榜失败: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"leaderboard": entries,
		"weekInfo":    weekInfo,
	})
}
