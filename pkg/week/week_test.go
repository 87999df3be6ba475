package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyForYearBoundary(t *testing.T) {
	// 2025年1月1日是周三，所以2024-12-31已经属于2025年第1周
	key := KeyFor(time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, Key{Number: 1, Year: 2025}, key)

	key = KeyFor(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Key{Number: 1, Year: 2025}, key)

	// 2021年1月1日是周五，仍属于2020年第53周
	key = KeyFor(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Key{Number: 53, Year: 2020}, key)

	// 2024年1月1日是周一，是2024年第1周的第一天
	key = KeyFor(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Key{Number: 1, Year: 2024}, key)
}

func TestKeyForMatchesStdlibISOWeek(t *testing.T) {
	// 逐日扫描十年，结果必须与标准库的ISOWeek一致，且周号在1-53之间
	d := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC)
	for d.Before(end) {
		key := KeyFor(d)
		isoYear, isoWeek := d.ISOWeek()
		require.Equal(t, Key{Number: isoWeek, Year: isoYear}, key, "date %s", d.Format("2006-01-02"))
		require.GreaterOrEqual(t, key.Number, 1)
		require.LessOrEqual(t, key.Number, 53)
		d = d.AddDate(0, 0, 1)
	}
}

func TestKeyForIgnoresTimeOfDay(t *testing.T) {
	morning := KeyFor(time.Date(2026, 6, 15, 0, 0, 1, 0, time.UTC))
	night := KeyFor(time.Date(2026, 6, 15, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, morning, night)
}
