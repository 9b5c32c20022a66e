// file: models/flag.go
package models

import (
	"time"
)

// 自定义类型 Team, FlagStatus
type Team string
type FlagStatus string

const (
	TeamRed    Team = "red"
	TeamBlue   Team = "blue"
	TeamGreen  Team = "green"
	TeamYellow Team = "yellow"

	StatusNotSubmitted FlagStatus = "not_submitted"
	StatusPending      FlagStatus = "pending"
	StatusValid        FlagStatus = "valid"
	StatusInvalid      FlagStatus = "invalid"
	StatusTimedOut     FlagStatus = "timed_out"
	StatusErrored      FlagStatus = "errored"
)

// AllTeams 固定的参赛队伍列表（全局启动时遍历使用）
var AllTeams = []Team{TeamRed, TeamBlue, TeamGreen, TeamYellow}

// ValidTeam 校验队伍枚举值是否合法
func ValidTeam(t Team) bool {
	for _, known := range AllTeams {
		if t == known {
			return true
		}
	}
	return false
}

// Flag 对应 ctfportal_flag 表，每支队伍持有完整一份按 flag_number 排序的关卡序列
type Flag struct {
	ID          uint32     `gorm:"primarykey" json:"id"`
	Team        Team       `gorm:"type:enum('red','blue','green','yellow');not null;uniqueIndex:idx_team_number" json:"team"`
	FlagNumber  uint       `gorm:"not null;uniqueIndex:idx_team_number" json:"flag_number"`
	Hash        string     `gorm:"size:64;not null" json:"-"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Story       string     `gorm:"type:text" json:"-"`
	Status      FlagStatus `gorm:"type:enum('not_submitted','pending','valid','invalid','timed_out','errored');not null;default:'not_submitted'" json:"status"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	TimeLimit   uint       `gorm:"not null" json:"time_limit"` // 单位：秒
	Attempts    uint       `gorm:"not null;default:0" json:"attempts"`
	TimeTaken   uint       `gorm:"not null;default:0" json:"time_taken"` // 单位：秒
	Points      uint       `gorm:"not null;default:100" json:"points"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Flag) TableName() string {
	return "ctfportal_flag"
}

// Resolved 判断关卡是否已终结（答对或超时后不再变化）
func (f *Flag) Resolved() bool {
	return f.Status == StatusValid || f.Status == StatusTimedOut
}

// Deadline 计算截止时间；StartTime 未设置时返回 false
func (f *Flag) Deadline() (time.Time, bool) {
	if f.StartTime == nil {
		return time.Time{}, false
	}
	return f.StartTime.Add(time.Duration(f.TimeLimit) * time.Second), true
}

// EstimateSeconds 未开始关卡展示用的预估耗时 = ceil(timeLimit * 1.5)
func (f *Flag) EstimateSeconds() uint {
	return (f.TimeLimit*3 + 1) / 2
}
