package leaderboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SlpAus/carbon-footprint-backend/pkg/week"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/leaderboard", GetLeaderboard)
	return r
}

// seedCurrentWeek 直接向数据库写入当前周的n条快照
func seedCurrentWeek(t *testing.T, n int) {
	t.Helper()
	key := week.Now()
	sources := make([]Source, n)
	for i := range sources {
		sources[i] = Source{UserName: fmt.Sprintf("user%02d", i), Total: float64(i)}
	}
	rebuildWeek(t, key, sources)
}

func getLeaderboard(t *testing.T, r *gin.Engine, path string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetLeaderboardDefaultLimit(t *testing.T) {
	setupTestDB(t)
	seedCurrentWeek(t, 12)
	r := newTestRouter()

	body := getLeaderboard(t, r, "/api/leaderboard")
	assert.Equal(t, true, body["success"])

	entries, ok := body["leaderboard"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 10)

	key := week.Now()
	weekInfo, ok := body["weekInfo"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, key.Number, weekInfo["weekNumber"])
	assert.EqualValues(t, key.Year, weekInfo["year"])
}

func TestGetLeaderboardZeroLimit(t *testing.T) {
	setupTestDB(t)
	seedCurrentWeek(t, 5)
	r := newTestRouter()

	body := getLeaderboard(t, r, "/api/leaderboard?limit=0")
	entries, ok := body["leaderboard"].([]any)
	require.True(t, ok)
	assert.Empty(t, entries)
}

func TestGetLeaderboardNonNumericLimitFallsBack(t *testing.T) {
	setupTestDB(t)
	seedCurrentWeek(t, 12)
	r := newTestRouter()

	// 解析失败回退到默认的10条，而不是报错或不限制
	body := getLeaderboard(t, r, "/api/leaderboard?limit=abc")
	entries, ok := body["leaderboard"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 10)

	body = getLeaderboard(t, r, "/api/leaderboard?limit=-3")
	entries, ok = body["leaderboard"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 10)
}

func TestGetLeaderboardOrderedByPosition(t *testing.T) {
	setupTestDB(t)
	seedCurrentWeek(t, 3)
	r := newTestRouter()

	body := getLeaderboard(t, r, "/api/leaderboard?limit=3")
	entries, ok := body["leaderboard"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 3)

	for i, raw := range entries {
		entry, ok := raw.(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, i+1, entry["position"])
	}
}

func TestGetLeaderboardEmptyWeek(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	body := getLeaderboard(t, r, "/api/leaderboard")
	entries, ok := body["leaderboard"].([]any)
	require.True(t, ok)
	assert.Empty(t, entries)
}
