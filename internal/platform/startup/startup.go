package startup

import (
	"fmt"

	"github.com/SlpAus/carbon-footprint-backend/internal/footprint"
	"github.com/SlpAus/carbon-footprint-backend/internal/leaderboard"
)

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := footprint.PrimeModule(); err != nil {
		return err
	}
	if err := leaderboard.PrimeCachedDB(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// RebuildCache 是一个专门用于在运行时热重建Redis排行榜镜像的函数
// 镜像完全由数据库中的快照导出，重建总是安全的
func RebuildCache() error {
	return leaderboard.WarmupCurrentWeek()
}
