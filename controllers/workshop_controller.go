// file: controllers/workshop_controller.go
package controllers

import (
	"time"

	"github.com/fontyslads/ctf-portal-sub001/database"
	"github.com/fontyslads/ctf-portal-sub001/dto"
	"github.com/fontyslads/ctf-portal-sub001/models"
	"github.com/fontyslads/ctf-portal-sub001/services"
	"github.com/fontyslads/ctf-portal-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// StartWorkshop 启动（或重启）工作坊：对指定队伍或全部队伍做一次性排期。
// 对进行中的进度是破坏性的，仅限管理员调用。
func StartWorkshop(c *gin.Context) {
	var req dto.StartWorkshopReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	var started []models.Team
	if req.Team == "all" {
		teams, err := services.Workshop.StartAll()
		if err != nil {
			utils.Error(c, 5000, err.Error())
			return
		}
		started = teams
	} else {
		team := models.Team(req.Team)
		if !models.ValidTeam(team) {
			utils.Error(c, 1001, "team 取值无效（red/blue/green/yellow 或 all）")
			return
		}
		if err := services.Workshop.Start(team); err != nil {
			utils.Error(c, 5000, err.Error())
			return
		}
		started = []models.Team{team}
	}

	// 记录本次启动：新的 run_id + 启动时间（ID=1 单行，存在则更新）
	now := time.Now()
	record := models.Workshop{
		ID:        1,
		RunID:     uuid.New().String(),
		StartedAt: &now,
	}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"run_id", "started_at"}),
	}).Create(&record).Error; err != nil {
		utils.Error(c, 5000, "Failed to record workshop start: "+err.Error())
		return
	}

	services.InvalidateLeaderboard()

	utils.Success(c, "Workshop started", gin.H{
		"run_id": record.RunID,
		"teams":  started,
	})
}

// UpsertWorkshop 创建或修改工作坊基本信息
func UpsertWorkshop(c *gin.Context) {
	var req models.Workshop
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	// 固定使用 ID=1 的单行，存在则更新，不存在则创建
	req.ID = 1
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"workshop_name", "description"}),
	}).Create(&req).Error; err != nil {
		utils.Error(c, 5000, "Failed to create/update workshop: "+err.Error())
		return
	}

	utils.Success(c, "Workshop created/updated successfully", nil)
}

// GetWorkshopStatus 查询工作坊状态和各队伍当前进度
func GetWorkshopStatus(c *gin.Context) {
	var workshop models.Workshop
	if err := database.DB.First(&workshop, 1).Error; err != nil {
		utils.Error(c, 4004, "工作坊信息不存在")
		return
	}

	status := models.WorkshopStatusPreparing
	if workshop.StartedAt != nil {
		status = models.WorkshopStatusRunning
	}

	// 逐队汇总进度；List 同时完成超时的惰性结算
	type TeamProgress struct {
		Team        models.Team `json:"team"`
		TotalFlags  int         `json:"total_flags"`
		SolvedCount int         `json:"solved_count"`
		CurrentFlag uint        `json:"current_flag,omitempty"` // 0 表示已全部终结
	}
	progress := make([]TeamProgress, 0, len(models.AllTeams))
	for _, team := range models.AllTeams {
		flags, err := services.Progression.List(team)
		if err != nil {
			utils.Error(c, 5000, err.Error())
			return
		}
		p := TeamProgress{Team: team, TotalFlags: len(flags)}
		for _, f := range flags {
			if f.Status == models.StatusValid {
				p.SolvedCount++
			}
			if p.CurrentFlag == 0 && !f.Resolved() {
				p.CurrentFlag = f.FlagNumber
			}
		}
		progress = append(progress, p)
	}

	resp := gin.H{
		"workshop_name": workshop.WorkshopName,
		"description":   workshop.Description,
		"run_id":        workshop.RunID,
		"status":        status,
		"teams":         progress,
	}
	if workshop.StartedAt != nil {
		resp["started_at"] = workshop.StartedAt.Format("2006-01-02 15:04:05")
	}
	utils.Success(c, "success", resp)
}
