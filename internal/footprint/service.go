package footprint

import (
	"errors"
	"math"
	"time"

	"github.com/SlpAus/carbon-footprint-backend/internal/leaderboard"
	"github.com/SlpAus/carbon-footprint-backend/internal/platform/database"
	"github.com/SlpAus/carbon-footprint-backend/pkg/week"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrMissingFields 表示请求缺少userName或totalFootprint。
var ErrMissingFields = errors.New("missing required fields")

// 客户端总量与分类之和允许的最大偏差
const totalTolerance = 1e-6

// SubmitInput 是一次碳足迹提交的入参。
// Total为必填；分类字段缺省时视为0。
type SubmitInput struct {
	UserID    *string
	UserName  string
	Total     *float64
	Diet      *float64
	Transport *float64
	Energy    *float64
	Digital   *float64
}

// resolveTotal 决定最终入库的总量。
// 只要请求携带了任一分类数据，就以分类之和为准，不信任客户端给出的总量；
// 完全没有分类数据的请求则按原样接受总量。
func (in *SubmitInput) resolveTotal() float64 {
	if in.Diet == nil && in.Transport == nil && in.Energy == nil && in.Digital == nil {
		return *in.Total
	}
	sum := in.category(in.Diet) + in.category(in.Transport) + in.category(in.Energy) + in.category(in.Digital)
	if math.Abs(sum-*in.Total) > totalTolerance {
		return sum
	}
	return *in.Total
}

func (in *SubmitInput) category(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// ProcessSubmission 是处理一次提交的核心函数。
// 在单个数据库事务内完成查找或创建、字段覆写和排行榜快照重建，
// 避免同一 (用户, 周) 键出现重复行，也避免读者看到删完未插的空排行榜。
func ProcessSubmission(input SubmitInput) (*FootprintRecord, error) {
	if input.UserName == "" || input.Total == nil {
		return nil, ErrMissingFields
	}
	total := input.resolveTotal()

	// 整个请求只取一次周键，提交和重建必须落在同一周
	key := week.Now()

	var record *FootprintRecord
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := findForWeek(tx, input.UserID, input.UserName, key)
		if err != nil {
			return err
		}

		if existing != nil {
			// 覆写数值字段；ID和CreatedAt保持不变
			existing.TotalFootprint = total
			existing.DietFootprint = input.category(input.Diet)
			existing.TransportFootprint = input.category(input.Transport)
			existing.EnergyFootprint = input.category(input.Energy)
			existing.DigitalFootprint = input.category(input.Digital)
			existing.UpdatedAt = time.Now()
			if err := tx.Save(existing).Error; err != nil {
				return err
			}
			record = existing
		} else {
			record = &FootprintRecord{
				ID:                 uuid.NewString(),
				UserID:             input.UserID,
				UserName:           input.UserName,
				TotalFootprint:     total,
				DietFootprint:      input.category(input.Diet),
				TransportFootprint: input.category(input.Transport),
				EnergyFootprint:    input.category(input.Energy),
				DigitalFootprint:   input.category(input.Digital),
				WeekNumber:         key.Number,
				Year:               key.Year,
			}
			if err := tx.Create(record).Error; err != nil {
				return err
			}
		}

		// 无条件重建本周排行榜快照，重复提交也一样
		sources, err := listWeekAscending(tx, key)
		if err != nil {
			return err
		}
		return leaderboard.RebuildInTx(tx, key, toSources(sources))
	})
	if err != nil {
		return nil, err
	}

	// 事务提交后刷新Redis镜像；镜像只是缓存，失败不影响本次提交
	leaderboard.RefreshCache(key)

	return record, nil
}

// toSources 将本周的记录转换为排行榜重建的输入，保持升序不变。
func toSources(records []FootprintRecord) []leaderboard.Source {
	sources := make([]leaderboard.Source, len(records))
	for i, r := range records {
		sources[i] = leaderboard.Source{
			UserID:   r.UserID,
			UserName: r.UserName,
			Total:    r.TotalFootprint,
		}
	}
	return sources
}
