package footprint

import (
	"fmt"

	"github.com/SlpAus/carbon-footprint-backend/internal/platform/database"
)

// PrimeModule 负责初始化footprint模块的数据库表结构
func PrimeModule() error {
	if err := database.DB.AutoMigrate(&FootprintRecord{}); err != nil {
		return fmt.Errorf("无法迁移footprint表: %w", err)
	}
	fmt.Println("Footprint数据库表迁移成功。")
	return nil
}
