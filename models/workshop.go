// file: models/workshop.go
package models

import (
	"time"
)

// WorkshopStatus 定义工作坊状态
type WorkshopStatus string

const (
	WorkshopStatusPreparing WorkshopStatus = "preparing"
	WorkshopStatusRunning   WorkshopStatus = "running"
)

// Workshop 对应 ctfportal_workshop 表，固定使用 ID=1 的单行记录
type Workshop struct {
	ID           uint       `gorm:"primarykey" json:"id,omitempty"`
	WorkshopName string     `gorm:"size:100;not null" json:"workshop_name"`
	Description  string     `gorm:"type:text" json:"description"`
	RunID        string     `gorm:"size:36" json:"run_id"` // 每次启动生成新的 UUID
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at,omitempty"`
}

func (Workshop) TableName() string {
	return "ctfportal_workshop"
}
