package leaderboard

import (
	"fmt"
	"testing"

	"github.com/SlpAus/carbon-footprint-backend/internal/platform/database"
	"github.com/SlpAus/carbon-footprint-backend/pkg/week"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 用独立的内存SQLite替换全局数据库连接
func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&LeaderboardEntry{}))
	database.DB = db
}

func strPtr(s string) *string { return &s }

func rebuildWeek(t *testing.T, key week.Key, sources []Source) []LeaderboardEntry {
	t.Helper()
	require.NoError(t, database.DB.Transaction(func(tx *gorm.DB) error {
		return RebuildInTx(tx, key, sources)
	}))
	entries, err := listForWeek(database.DB, key, -1)
	require.NoError(t, err)
	return entries
}

func TestReductionClampsAtBaseline(t *testing.T) {
	// 超过基准值只会得到0，不会是负数
	assert.InDelta(t, 0, Reduction(30), 1e-9)
	assert.InDelta(t, 0, Reduction(25), 1e-9)
	assert.InDelta(t, 100, Reduction(0), 1e-9)
	assert.InDelta(t, 60, Reduction(10), 1e-9)
}

func TestRebuildRanksByReductionDescending(t *testing.T) {
	setupTestDB(t)
	key := week.Key{Number: 10, Year: 2026}

	entries := rebuildWeek(t, key, []Source{
		{UserName: "low", Total: 10},
		{UserName: "mid", Total: 20},
		{UserName: "high", Total: 40},
	})
	require.Len(t, entries, 3)

	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Position, entries[1].Position, entries[2].Position})
	assert.Equal(t, "low", entries[0].UserName)
	assert.Equal(t, "mid", entries[1].UserName)
	assert.Equal(t, "high", entries[2].UserName)
	assert.InDelta(t, 60, entries[0].Reduction, 1e-9)
	assert.InDelta(t, 20, entries[1].Reduction, 1e-9)
	assert.InDelta(t, 0, entries[2].Reduction, 1e-9)
}

func TestRebuildTiesKeepAscendingFootprintOrder(t *testing.T) {
	setupTestDB(t)
	key := week.Key{Number: 11, Year: 2026}

	// 两人都超过基准值，降幅同为0；总量更低者名次在前
	entries := rebuildWeek(t, key, []Source{
		{UserName: "thirty", Total: 30},
		{UserName: "forty", Total: 40},
	})
	require.Len(t, entries, 2)
	assert.Equal(t, "thirty", entries[0].UserName)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, "forty", entries[1].UserName)
	assert.Equal(t, 2, entries[1].Position)
}

func TestRebuildAssignsAvatarsByIntermediateOrder(t *testing.T) {
	setupTestDB(t)
	key := week.Key{Number: 12, Year: 2026}

	sources := make([]Source, 10)
	for i := range sources {
		sources[i] = Source{UserName: fmt.Sprintf("user%02d", i), Total: float64(i)}
	}
	entries := rebuildWeek(t, key, sources)
	require.Len(t, entries, 10)

	// 这里降幅随总量单调递减，最终名次顺序等于传入的升序，
	// 所以头像恰好按调色板轮询出现
	for i, entry := range entries {
		assert.Equal(t, avatarPalette[i%len(avatarPalette)], entry.Avatar)
	}
}

func TestRebuildReplacesPriorSnapshot(t *testing.T) {
	setupTestDB(t)
	key := week.Key{Number: 13, Year: 2026}

	rebuildWeek(t, key, []Source{
		{UserName: "alice", Total: 10},
		{UserName: "bob", Total: 20},
	})
	entries := rebuildWeek(t, key, []Source{
		{UserName: "alice", Total: 15},
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].UserName)
	assert.InDelta(t, 40, entries[0].Reduction, 1e-9)

	var count int64
	require.NoError(t, database.DB.Model(&LeaderboardEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRebuildLeavesOtherWeeksUntouched(t *testing.T) {
	setupTestDB(t)

	keyA := week.Key{Number: 14, Year: 2026}
	keyB := week.Key{Number: 15, Year: 2026}
	rebuildWeek(t, keyA, []Source{{UserName: "alice", Total: 10}})
	rebuildWeek(t, keyB, []Source{{UserName: "bob", Total: 20}})

	entriesA, err := listForWeek(database.DB, keyA, -1)
	require.NoError(t, err)
	assert.Len(t, entriesA, 1)
	assert.Equal(t, "alice", entriesA[0].UserName)
}

func TestRebuildEmptyWeek(t *testing.T) {
	setupTestDB(t)
	key := week.Key{Number: 16, Year: 2026}

	entries := rebuildWeek(t, key, nil)
	assert.Empty(t, entries)
}

func TestRebuildKeepsUserID(t *testing.T) {
	setupTestDB(t)
	key := week.Key{Number: 17, Year: 2026}

	entries := rebuildWeek(t, key, []Source{
		{UserID: strPtr("u1"), UserName: "alice", Total: 10},
	})
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].UserID)
	assert.Equal(t, "u1", *entries[0].UserID)
}
