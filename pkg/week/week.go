package week

import "time"

// Key 唯一标识一个ISO-8601周。
// 周从周一开始；第1周是包含当年第一个周四的那一周。
type Key struct {
	Number int `json:"weekNumber"` // 1-53
	Year   int `json:"year"`       // ISO周年，在年初年末可能与日历年不同
}

// KeyFor 计算给定时间点所属的ISO周。
// 算法：归一化到UTC零点，平移到所在周的周四，
// 再用该周四与其当年1月1日的天数差计算周号；周年取周四所在的年份。
// 例如 2024-12-31 属于 2025 年第 1 周。
func KeyFor(t time.Time) Key {
	u := t.UTC()
	d := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)

	// ISO星期序号：周一=1 .. 周日=7
	isoDay := int(d.Weekday())
	if isoDay == 0 {
		isoDay = 7
	}

	thursday := d.AddDate(0, 0, 4-isoDay)
	yearStart := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(thursday.Sub(yearStart).Hours() / 24)

	return Key{
		Number: (days + 7) / 7, // ceil((days+1)/7)
		Year:   thursday.Year(),
	}
}

// Now 返回当前时刻所属的ISO周。
// 同一个请求内只应调用一次，提交与排行榜重建必须使用同一个Key。
func Now() Key {
	return KeyFor(time.Now())
}
