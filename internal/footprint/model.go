package footprint

import "time"

// FootprintRecord 是一名用户一周碳足迹的持久化记录。
// 每个 (用户, ISO周, 周年) 组合最多存在一条记录，
// 由提交流程的upsert语义在事务内保证。
type FootprintRecord struct {
	// ID 在创建时分配，之后不变
	ID string `gorm:"primarykey;type:varchar(36)" json:"id"`

	// UserID 是可选的稳定用户标识；为空时以UserName作为匹配键
	UserID   *string `gorm:"index" json:"userId"`
	UserName string  `gorm:"index;not null" json:"userName"`

	// 各分类的周排放量，单位 kg CO2e
	TotalFootprint     float64 `json:"totalFootprint"`
	DietFootprint      float64 `json:"dietFootprint"`
	TransportFootprint float64 `json:"transportFootprint"`
	EnergyFootprint    float64 `json:"energyFootprint"`
	DigitalFootprint   float64 `json:"digitalFootprint"`

	// ISO-8601周编号 (1-53) 和ISO周年
	WeekNumber int `gorm:"index:idx_footprint_week" json:"weekNumber"`
	Year       int `gorm:"index:idx_footprint_week" json:"year"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
