// file: dto/workshop.go
package dto

import "strings"

type StartWorkshopReq struct {
	Team string `json:"team"` // 队伍枚举值，或 "all" 启动全部队伍
}

func (r *StartWorkshopReq) Normalize() {
	r.Team = strings.ToLower(strings.TrimSpace(r.Team))
	if r.Team == "" {
		r.Team = "all"
	}
}
