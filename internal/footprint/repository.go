package footprint

import (
	"errors"
	"fmt"

	"github.com/SlpAus/carbon-footprint-backend/pkg/week"
	"gorm.io/gorm"
)

// findForWeek 按 (userId或NULL, userName, 周, 周年) 查找本周已有的记录。
// 未找到时返回 (nil, nil)。
func findForWeek(tx *gorm.DB, userID *string, userName string, key week.Key) (*FootprintRecord, error) {
	query := tx.Where("user_name = ? AND week_number = ? AND year = ?", userName, key.Number, key.Year)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	} else {
		query = query.Where("user_id IS NULL")
	}

	var record FootprintRecord
	if err := query.First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询本周碳足迹记录失败: %w", err)
	}
	return &record, nil
}

// listRecent 返回该用户最近创建的记录，最多limit条，按创建时间倒序。
// userId与userName任一匹配即可，兼容只有昵称、没有稳定ID的访客。
func listRecent(db *gorm.DB, userID *string, userName string, limit int) ([]FootprintRecord, error) {
	query := db.Where("user_name = ?", userName)
	if userID != nil {
		query = db.Where("user_id = ? OR user_name = ?", *userID, userName)
	}

	records := make([]FootprintRecord, 0)
	if err := query.Order("created_at desc").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("查询历史碳足迹记录失败: %w", err)
	}
	return records, nil
}

// listWeekAscending 返回指定周的全部记录，按总排放量升序。
// 这个顺序同时决定了排行榜头像的轮询分配。
func listWeekAscending(tx *gorm.DB, key week.Key) ([]FootprintRecord, error) {
	records := make([]FootprintRecord, 0)
	err := tx.Where("week_number = ? AND year = ?", key.Number, key.Year).
		Order("total_footprint asc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("查询本周全部记录失败: %w", err)
	}
	return records, nil
}
