// file: models/submission_log.go
package models

import (
	"time"
)

type FlagResult string

const (
	FlagResultCorrect  FlagResult = "correct"
	FlagResultWrong    FlagResult = "wrong"
	FlagResultRejected FlagResult = "rejected" // 前置条件不满足（顺序/超时/重复等）
)

// SubmissionLog 对应 ctfportal_flag_submission 表
type SubmissionLog struct {
	ID             uint64     `gorm:"primarykey"`
	FlagID         uint32     `gorm:"not null"`
	Team           Team       `gorm:"type:enum('red','blue','green','yellow');not null"`
	UserID         uint32     `gorm:"not null"`
	SubmittedHash  string     `gorm:"size:64;not null"`
	FlagResult     FlagResult `gorm:"type:enum('correct','wrong','rejected');not null"`
	SubmissionTime time.Time  `gorm:"default:CURRENT_TIMESTAMP"`
	IPAddress      string     `gorm:"size:45"`
}

func (SubmissionLog) TableName() string {
	return "ctfportal_flag_submission"
}
