// file: dto/flag.go
package dto

import "strings"

// ========== 请求 DTO ==========

type CreateFlagReq struct {
	// 规范字段（snake_case）
	Team        string `json:"team"`
	FlagNumber  uint   `json:"flag_number"`
	Answer      string `json:"answer"` // 明文答案，入库前做 SHA-256
	Description string `json:"description"`
	Story       string `json:"story"`
	TimeLimit   uint   `json:"time_limit"` // 秒
	Points      uint   `json:"points"`

	// 仅用于兼容旧客户端（camelCase），所有别名都与上面 tag 不重复
	FlagNumberCamel uint `json:"flagNumber"`
	TimeLimitCamel  uint `json:"timeLimit"`
}

// Normalize: 将 camelCase 别名归一化到 snake_case，并做轻量默认值处理
func (r *CreateFlagReq) Normalize() {
	if r.FlagNumber == 0 && r.FlagNumberCamel != 0 {
		r.FlagNumber = r.FlagNumberCamel
	}
	if r.TimeLimit == 0 && r.TimeLimitCamel != 0 {
		r.TimeLimit = r.TimeLimitCamel
	}

	r.Team = strings.ToLower(strings.TrimSpace(r.Team))
	r.Answer = strings.TrimSpace(r.Answer)
	r.Description = strings.TrimSpace(r.Description)

	if r.Points == 0 {
		r.Points = 100
	}
}

type SubmitFlagReq struct {
	Hash string `json:"hash"` // 客户端对答案做 SHA-256 后提交

	HashCamel string `json:"flagHash"`
}

func (r *SubmitFlagReq) Normalize() {
	if r.Hash == "" && r.HashCamel != "" {
		r.Hash = r.HashCamel
	}
	r.Hash = strings.ToLower(strings.TrimSpace(r.Hash))
}

// ========== 响应 DTO ==========

// FlagView 对外可见的关卡视图：永不携带 hash，story 只在终结后出现
type FlagView struct {
	ID          uint32  `json:"id"`
	Team        string  `json:"team"`
	FlagNumber  uint    `json:"flag_number"`
	Description string  `json:"description"`
	Story       string  `json:"story,omitempty"`
	Status      string  `json:"status"`
	StartTime   *string `json:"start_time,omitempty"` // RFC3339
	TimeLimit   uint    `json:"time_limit"`
	Attempts    uint    `json:"attempts"`
	TimeTaken   uint    `json:"time_taken"`
	Points      uint    `json:"points"`
}
