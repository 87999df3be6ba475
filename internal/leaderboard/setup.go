package leaderboard

import (
	"fmt"

	"github.com/SlpAus/carbon-footprint-backend/internal/platform/database"
	"github.com/SlpAus/carbon-footprint-backend/pkg/week"
)

// PrimeCachedDB 负责初始化leaderboard模块的数据库表结构，
// 并把当前周的快照预热到Redis镜像
func PrimeCachedDB() error {
	if err := database.DB.AutoMigrate(&LeaderboardEntry{}); err != nil {
		return fmt.Errorf("无法迁移leaderboard表: %w", err)
	}
	fmt.Println("Leaderboard数据库表迁移成功。")

	return WarmupCurrentWeek()
}

// WarmupCurrentWeek 从数据库导出当前周的快照并整体写入Redis镜像
func WarmupCurrentWeek() error {
	key := week.Now()
	entries, err := listForWeek(database.DB, key, -1)
	if err != nil {
		return err
	}
	if err := WarmupCache(key, entries); err != nil {
		return err
	}
	fmt.Printf("成功预热第%d周的 %d 条排行榜条目到Redis。\n", key.Number, len(entries))
	return nil
}
