package leaderboard

import (
	"fmt"
	"sort"

	"github.com/SlpAus/carbon-footprint-backend/pkg/week"
	"gorm.io/gorm"
)

// BaselineFootprint 是固定的可持续周排放基准值，单位 kg CO2e。
// 降幅百分比只相对它计算，与当周的参赛者数据无关。
const BaselineFootprint = 25.0

// avatarPalette 是排行榜的装饰头像，按轮询分配
var avatarPalette = []string{"🌱", "🌿", "🍃", "🌲", "🌍", "🌊", "☀️", "🌙"}

// Source 是重建排行榜所需的一条碳足迹输入。
type Source struct {
	UserID   *string
	UserName string
	Total    float64
}

// Reduction 计算相对基准值的降幅百分比。
// 超过基准值的记录降幅为0，不会出现负数。
func Reduction(total float64) float64 {
	reduction := (BaselineFootprint - total) / BaselineFootprint * 100
	if reduction < 0 {
		return 0
	}
	return reduction
}

// RebuildInTx 在调用方的事务内重建指定周的排行榜快照。
// sources 必须按总排放量升序传入：头像按这个中间顺序轮询分配，
// 与参考前端的展示效果保持一致；随后按降幅稳定降序排序并重排名次。
// 降幅相同的条目维持输入顺序，即总排放量更低者名次在前。
func RebuildInTx(tx *gorm.DB, key week.Key, sources []Source) error {
	entries := make([]LeaderboardEntry, len(sources))
	for i, s := range sources {
		entries[i] = LeaderboardEntry{
			UserID:         s.UserID,
			UserName:       s.UserName,
			Avatar:         avatarPalette[i%len(avatarPalette)],
			Reduction:      Reduction(s.Total),
			TotalFootprint: s.Total,
			Position:       i + 1,
			WeekNumber:     key.Number,
			Year:           key.Year,
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Reduction > entries[j].Reduction
	})
	for i := range entries {
		entries[i].Position = i + 1
	}

	// 先清空该周的旧快照再整批写入；两步都在同一个事务里
	err := tx.Where("week_number = ? AND year = ?", key.Number, key.Year).
		Delete(&LeaderboardEntry{}).Error
	if err != nil {
		return fmt.Errorf("清空排行榜旧快照失败: %w", err)
	}
	if len(entries) > 0 {
		if err := tx.Create(&entries).Error; err != nil {
			return fmt.Errorf("写入排行榜新快照失败: %w", err)
		}
	}
	return nil
}

// listForWeek 按名次升序读取某周的排行榜快照，limit<0时不限制条数。
func listForWeek(db *gorm.DB, key week.Key, limit int) ([]LeaderboardEntry, error) {
	entries := make([]LeaderboardEntry, 0)
	query := db.Where("week_number = ? AND year = ?", key.Number, key.Year).
		Order("position asc").
		Order("reduction desc")
	if limit >= 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("读取排行榜快照失败: %w", err)
	}
	return entries, nil
}
