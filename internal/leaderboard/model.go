package leaderboard

// LeaderboardEntry 是某一周排行榜的一行派生快照。
// 整组条目在每次该周有记录写入时被整体删除并重新生成，
// 只由重建流程写入，从不单独编辑。
type LeaderboardEntry struct {
	RowID uint `gorm:"primarykey" json:"-"`

	UserID   *string `json:"userId"`
	UserName string  `json:"userName"`

	// Avatar 是装饰性图标，按升序中间排序轮询分配
	Avatar string `json:"avatar"`

	// Reduction 是相对基准值的降幅百分比，不会为负
	Reduction      float64 `json:"reduction"`
	TotalFootprint float64 `json:"totalFootprint"`

	// Position 是1起始的稠密名次
	Position int `json:"position"`

	WeekNumber int `gorm:"index:idx_leaderboard_week" json:"weekNumber"`
	Year       int `gorm:"index:idx_leaderboard_week" json:"year"`
}
