// file: controllers/leaderboard_controller.go
package controllers

import (
	"github.com/fontyslads/ctf-portal-sub001/services"
	"github.com/fontyslads/ctf-portal-sub001/utils"
	"github.com/gin-gonic/gin"
)

// GetLeaderboard 查询排行榜（固定分值表求和，Redis 缓存 15 秒）
func GetLeaderboard(c *gin.Context) {
	entries, err := services.GetLeaderboard()
	if err != nil {
		utils.Error(c, 5000, "排行榜查询失败: "+err.Error())
		return
	}

	utils.Success(c, "success", gin.H{
		"total":       len(entries),
		"leaderboard": entries,
	})
}
