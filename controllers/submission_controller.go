// file: controllers/submission_controller.go
package controllers

import (
	"strconv"
	"time"

	"github.com/fontyslads/ctf-portal-sub001/database"
	"github.com/fontyslads/ctf-portal-sub001/utils"
	"github.com/gin-gonic/gin"
)

// AdminGetSubmissionLogs 管理员查询提交日志（支持筛选+分页）
func AdminGetSubmissionLogs(c *gin.Context) {
	type LogDetail struct {
		ID             uint64    `json:"id"`
		FlagID         uint32    `json:"flag_id"`
		FlagNumber     uint      `json:"flag_number"`
		Team           string    `json:"team"`
		UserID         uint32    `json:"user_id"`
		Username       string    `json:"username"`
		SubmittedHash  string    `json:"submitted_hash"`
		FlagResult     string    `json:"flag_result"`
		SubmissionTime time.Time `json:"submission_time"`
		IPAddress      string    `json:"ip_address"`
	}

	db := database.DB.Table("ctfportal_flag_submission l").
		Select("l.id, l.flag_id, f.flag_number, l.team, l.user_id, u.username, l.submitted_hash, l.flag_result, l.submission_time, l.ip_address").
		Joins("LEFT JOIN ctfportal_flag f ON l.flag_id = f.id").
		Joins("LEFT JOIN ctfportal_user u ON l.user_id = u.id")

	if team := c.Query("team"); team != "" {
		db = db.Where("l.team = ?", team)
	}
	if flagID := c.Query("flag_id"); flagID != "" {
		db = db.Where("l.flag_id = ?", flagID)
	}
	if userID := c.Query("user_id"); userID != "" {
		db = db.Where("l.user_id = ?", userID)
	}
	if result := c.Query("result"); result != "" {
		db = db.Where("l.flag_result = ?", result)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := db.Count(&total).Error; err != nil {
		utils.Error(c, 5000, "查询失败: "+err.Error())
		return
	}

	var logs []LogDetail
	if err := db.Order("l.submission_time DESC").Offset(offset).Limit(limit).Scan(&logs).Error; err != nil {
		utils.Error(c, 5000, "查询失败: "+err.Error())
		return
	}

	utils.Success(c, "success", gin.H{
		"total": total,
		"page":  page,
		"limit": limit,
		"logs":  logs,
	})
}
