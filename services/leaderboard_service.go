// file: services/leaderboard_service.go
package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/fontyslads/ctf-portal-sub001/database"
	"github.com/fontyslads/ctf-portal-sub001/models"
)

const leaderboardCacheKey = "leaderboard:overall"

// LeaderboardEntry 排行榜单行：固定分值表求和，耗时升序作为同分排序依据
type LeaderboardEntry struct {
	Team        models.Team `json:"team"`
	Score       uint        `json:"score"`
	SolvedCount uint        `json:"solved_count"`
	TimeTaken   uint        `json:"time_taken"` // 已通过关卡的实际耗时总和（秒）
	Rank        uint        `json:"rank"`
}

// GetLeaderboard 查询排行榜，优先走 Redis 缓存
func GetLeaderboard() ([]LeaderboardEntry, error) {
	val, err := database.RDB.Get(database.Ctx, leaderboardCacheKey).Result()
	if err == nil {
		var cached []LeaderboardEntry
		if json.Unmarshal([]byte(val), &cached) == nil {
			return cached, nil
		}
	}

	entries, err := BuildLeaderboard()
	if err != nil {
		return nil, err
	}

	// 缓存有效期设置为较短的15秒，以保证排行榜的准实时性
	if jsonData, err := json.Marshal(entries); err == nil {
		database.RDB.Set(database.Ctx, leaderboardCacheKey, jsonData, 15*time.Second)
	}
	return entries, nil
}

// BuildLeaderboard 聚合所有已通过关卡的固定分值，按总分降序、总耗时升序排名
func BuildLeaderboard() ([]LeaderboardEntry, error) {
	var rows []LeaderboardEntry
	err := database.DB.Model(&models.Flag{}).
		Select("team, SUM(points) as score, COUNT(*) as solved_count, SUM(time_taken) as time_taken").
		Where("status = ?", models.StatusValid).
		Group("team").
		Order("score desc, time_taken asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Rank = uint(i + 1)
	}
	return rows, nil
}

// InvalidateLeaderboard 在提交成功或工作坊重启后清掉缓存
func InvalidateLeaderboard() {
	if err := database.RDB.Del(database.Ctx, leaderboardCacheKey).Err(); err != nil {
		log.Printf("Failed to clear leaderboard cache: %v", err)
	}
}
