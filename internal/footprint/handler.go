package footprint

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SlpAus/carbon-footprint-backend/internal/platform/database"
	"github.com/SlpAus/carbon-footprint-backend/pkg/week"
	"github.com/gin-gonic/gin"
)

// 历史查询最多返回的记录条数
const recentHistoryLimit = 12

// submitRequest 是 POST /api/footprint 的请求体。
// 数值字段用指针区分"缺省"和"显式的0"
type submitRequest struct {
	UserID             *string  `json:"userId"`
	UserName           string   `json:"userName"`
	TotalFootprint     *float64 `json:"totalFootprint"`
	DietFootprint      *float64 `json:"dietFootprint"`
	TransportFootprint *float64 `json:"transportFootprint"`
	EnergyFootprint    *float64 `json:"energyFootprint"`
	DigitalFootprint   *float64 `json:"digitalFootprint"`
}

// SubmitFootprint 处理一周碳足迹的提交
func SubmitFootprint(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.UserName == "" || req.TotalFootprint == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	record, err := ProcessSubmission(SubmitInput{
		UserID:    req.UserID,
		UserName:  req.UserName,
		Total:     req.TotalFootprint,
		Diet:      req.DietFootprint,
		Transport: req.TransportFootprint,
		Energy:    req.EnergyFootprint,
		Digital:   req.DigitalFootprint,
	})
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		// 内部细节只打印在服务端，不返回给调用方
		fmt.Printf("保存碳足迹失败: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save footprint"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"footprint": record,
	})
}

// GetFootprints 返回用户最近的记录，以及其中属于本周的子集
func GetFootprints(c *gin.Context) {
	userName := c.Query("userName")
	if userName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userName parameter is required"})
		return
	}

	var userID *string
	if raw := c.Query("userId"); raw != "" {
		userID = &raw
	}

	records, err := listRecent(database.DB, userID, userName, recentHistoryLimit)
	if err != nil {
		fmt.Printf("查询碳足迹失败: %v\n", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch footprints"})
		return
	}

	// 本周子集从已取出的一页中过滤，和整页使用同一个周键
	key := week.Now()
	currentWeek := make([]FootprintRecord, 0)
	for _, r := range records {
		if r.WeekNumber == key.Number && r.Year == key.Year {
			currentWeek = append(currentWeek, r)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"footprints": records,
		"currentWeek": gin.H{
			"footprints": currentWeek,
		},
	})
}

// ScoreFootprint 在服务端按滑杆输入计算碳足迹，供前端预览
func ScoreFootprint(c *gin.Context) {
	var sliders Sliders
	if err := c.ShouldBindJSON(&sliders); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  Score(sliders),
	})
}
