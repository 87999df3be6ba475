package leaderboard

import (
	"encoding/json"
	"fmt"

	"github.com/SlpAus/carbon-footprint-backend/internal/platform/database"
	"github.com/SlpAus/carbon-footprint-backend/pkg/week"
	"github.com/redis/go-redis/v9"
)

// --- Redis-specific Definitions ---
// 这些键描述了排行榜在Redis中的热读镜像。
// 镜像完全由数据库中的快照导出，丢失后总能安全重建。

const (
	// RankingKey 是一个Redis Sorted Set，score为名次，member为条目键
	RankingKey = "leaderboard:ranking"
	// EntriesKey 是一个Redis Hash，存储条目键到条目JSON的映射
	EntriesKey = "leaderboard:entries"
	// WeekMarkerKey 标记镜像当前对应的周，格式 "weekNumber:year"
	WeekMarkerKey = "leaderboard:week"
)

// memberFor 生成条目在镜像中的唯一键；没有稳定ID时退回昵称
func memberFor(e *LeaderboardEntry) string {
	if e.UserID != nil {
		return "id:" + *e.UserID
	}
	return "name:" + e.UserName
}

func markerFor(key week.Key) string {
	return fmt.Sprintf("%d:%d", key.Number, key.Year)
}

// WarmupCache 用给定周的快照整体覆盖Redis镜像。
// 条目必须已按名次排好序。
func WarmupCache(key week.Key, entries []LeaderboardEntry) error {
	if database.RDB == nil {
		return nil
	}

	pipe := database.RDB.Pipeline()
	pipe.Del(database.Ctx, RankingKey, EntriesKey, WeekMarkerKey)

	for i := range entries {
		e := &entries[i]
		member := memberFor(e)
		entryJSON, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("序列化排行榜条目失败: %w", err)
		}
		pipe.HSet(database.Ctx, EntriesKey, member, entryJSON)
		pipe.ZAdd(database.Ctx, RankingKey, redis.Z{Score: float64(e.Position), Member: member})
	}
	pipe.Set(database.Ctx, WeekMarkerKey, markerFor(key), 0)

	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("预热排行榜镜像到Redis失败: %w", err)
	}
	return nil
}

// RefreshCache 在快照变更后刷新Redis镜像。
// 镜像只是缓存：Redis不可用时跳过，下一次写入或健康检查恢复时自愈。
func RefreshCache(key week.Key) {
	if database.RDB == nil || !database.IsRedisHealthy() {
		return
	}
	entries, err := listForWeek(database.DB, key, -1)
	if err != nil {
		fmt.Printf("警告: 读取排行榜快照以刷新镜像失败: %v\n", err)
		return
	}
	if err := WarmupCache(key, entries); err != nil {
		fmt.Printf("警告: 刷新排行榜镜像失败: %v\n", err)
	}
}

// readCached 从Redis镜像读取前limit名。
// 镜像缺失、对应周不符或读取失败时返回false，调用方应退回数据库。
func readCached(key week.Key, limit int) ([]LeaderboardEntry, bool) {
	if database.RDB == nil {
		return nil, false
	}

	marker, err := database.RDB.Get(database.Ctx, WeekMarkerKey).Result()
	if err != nil || marker != markerFor(key) {
		return nil, false
	}

	members, err := database.RDB.ZRange(database.Ctx, RankingKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, false
	}
	if len(members) == 0 {
		return []LeaderboardEntry{}, true
	}

	rows, err := database.RDB.HMGet(database.Ctx, EntriesKey, members...).Result()
	if err != nil {
		return nil, false
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		raw, ok := row.(string)
		if !ok {
			return nil, false
		}
		var entry LeaderboardEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, false
		}
		entries = append(entries, entry)
	}
	return entries, true
}
