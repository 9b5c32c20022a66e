// file: controllers/flag_controller.go
package controllers

import (
	"log"
	"strconv"

	"github.com/fontyslads/ctf-portal-sub001/database"
	"github.com/fontyslads/ctf-portal-sub001/dto"
	"github.com/fontyslads/ctf-portal-sub001/mappers"
	"github.com/fontyslads/ctf-portal-sub001/models"
	"github.com/fontyslads/ctf-portal-sub001/services"
	"github.com/fontyslads/ctf-portal-sub001/utils"
	"github.com/gin-gonic/gin"
)

// 引擎错误分类 → 业务错误码
func engineErrorCode(err error) int {
	switch services.KindOf(err) {
	case services.KindNotFound:
		return 4004
	case services.KindOrderViolation:
		return 3001
	case services.KindTeamMismatch:
		return 3002
	case services.KindAlreadyResolved:
		return 3003
	case services.KindDeadlineExceeded:
		return 3004
	default:
		return 5000
	}
}

// ListFlags 查询本队关卡列表（读取时惰性结算超时）
func ListFlags(c *gin.Context) {
	team := c.MustGet("user_team").(models.Team)

	flags, err := services.Progression.List(team)
	if err != nil {
		// 读取路径只会出基础设施错误
		log.Printf("Failed to list flags for team %s: %v", team, err)
		utils.Error(c, 5000, err.Error())
		return
	}

	utils.Success(c, "success", gin.H{
		"total": len(flags),
		"flags": mappers.MapFlagsToViews(flags),
	})
}

// SubmitFlag 提交答案哈希，返回结算后的关卡列表
func SubmitFlag(c *gin.Context) {
	flagID, err := strconv.Atoi(c.Param("id"))
	if err != nil || flagID <= 0 {
		utils.Error(c, 1002, "无效的关卡ID")
		return
	}

	var req dto.SubmitFlagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()
	if req.Hash == "" {
		utils.Error(c, 1001, "缺少答案哈希")
		return
	}

	team := c.MustGet("user_team").(models.Team)
	userID := c.MustGet("user_id").(uint32)

	flags, submitErr := services.Progression.Submit(team, uint32(flagID), req.Hash)

	// 无论结果如何都写一条提交日志
	result := models.FlagResultRejected
	if submitErr == nil {
		result = models.FlagResultWrong
		for _, f := range flags {
			if f.ID == uint32(flagID) && f.Status == models.StatusValid {
				result = models.FlagResultCorrect
				break
			}
		}
	}
	logEntry := models.SubmissionLog{
		FlagID:        uint32(flagID),
		Team:          team,
		UserID:        userID,
		SubmittedHash: req.Hash,
		FlagResult:    result,
		IPAddress:     c.ClientIP(),
	}
	if err := database.DB.Create(&logEntry).Error; err != nil {
		log.Printf("Failed to write submission log: %v", err)
	}

	if submitErr != nil {
		if services.KindOf(submitErr) == services.KindValidationFault {
			log.Printf("Submission validation fault (team %s, flag %d): %v", team, flagID, submitErr)
		}
		utils.Error(c, engineErrorCode(submitErr), submitErr.Error())
		return
	}

	if result == models.FlagResultCorrect {
		services.InvalidateLeaderboard()
	}

	utils.Success(c, "success", gin.H{
		"result": result,
		"flags":  mappers.MapFlagsToViews(flags),
	})
}

// --- 管理员接口 ---

// AdminCreateFlag 录入关卡（一次性内容填充），明文答案在服务端做 SHA-256
func AdminCreateFlag(c *gin.Context) {
	var req dto.CreateFlagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	if req.Answer == "" || req.Description == "" || req.FlagNumber == 0 || req.TimeLimit == 0 {
		utils.Error(c, 1001, "缺少必填字段")
		return
	}
	team := models.Team(req.Team)
	if !models.ValidTeam(team) {
		utils.Error(c, 1001, "team 取值无效（red/blue/green/yellow）")
		return
	}

	var existing models.Flag
	if err := database.DB.Where("team = ? AND flag_number = ?", team, req.FlagNumber).
		First(&existing).Error; err == nil {
		utils.Error(c, 2001, "该队伍已存在相同序号的关卡")
		return
	}

	flag := models.Flag{
		Team:        team,
		FlagNumber:  req.FlagNumber,
		Hash:        utils.HashAnswer(req.Answer),
		Description: req.Description,
		Story:       req.Story,
		Status:      models.StatusNotSubmitted,
		TimeLimit:   req.TimeLimit,
		Points:      req.Points,
	}
	flag.TimeTaken = flag.EstimateSeconds()

	if err := database.DB.Create(&flag).Error; err != nil {
		utils.Error(c, 5000, "创建关卡失败: "+err.Error())
		return
	}
	utils.Success(c, "Flag created successfully", gin.H{"id": flag.ID})
}

// AdminListFlags 管理员查询关卡（含答案哈希与隐藏剧情，支持筛选）
func AdminListFlags(c *gin.Context) {
	db := database.DB.Model(&models.Flag{})

	if team := c.Query("team"); team != "" {
		db = db.Where("team = ?", models.Team(team))
	}
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", models.FlagStatus(status))
	}

	var flags []models.Flag
	if err := db.Order("team asc, flag_number asc").Find(&flags).Error; err != nil {
		utils.Error(c, 5000, "查询失败: "+err.Error())
		return
	}

	type AdminFlagItem struct {
		ID          uint32            `json:"id"`
		Team        models.Team       `json:"team"`
		FlagNumber  uint              `json:"flag_number"`
		Hash        string            `json:"hash"`
		Description string            `json:"description"`
		Story       string            `json:"story"`
		Status      models.FlagStatus `json:"status"`
		StartTime   *string           `json:"start_time,omitempty"`
		TimeLimit   uint              `json:"time_limit"`
		Attempts    uint              `json:"attempts"`
		TimeTaken   uint              `json:"time_taken"`
		Points      uint              `json:"points"`
	}
	items := make([]AdminFlagItem, 0, len(flags))
	for _, f := range flags {
		item := AdminFlagItem{
			ID:          f.ID,
			Team:        f.Team,
			FlagNumber:  f.FlagNumber,
			Hash:        f.Hash,
			Description: f.Description,
			Story:       f.Story,
			Status:      f.Status,
			TimeLimit:   f.TimeLimit,
			Attempts:    f.Attempts,
			TimeTaken:   f.TimeTaken,
			Points:      f.Points,
		}
		if f.StartTime != nil {
			s := f.StartTime.Format("2006-01-02 15:04:05")
			item.StartTime = &s
		}
		items = append(items, item)
	}

	utils.Success(c, "success", gin.H{
		"total": len(items),
		"flags": items,
	})
}
