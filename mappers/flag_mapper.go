// file: mappers/flag_mapper.go
package mappers

import (
	"time"

	"github.com/fontyslads/ctf-portal-sub001/dto"
	"github.com/fontyslads/ctf-portal-sub001/models"
)

// MapFlagToView 生成脱敏视图：hash 永不外泄，story 只在关卡终结后可见
func MapFlagToView(f models.Flag) dto.FlagView {
	view := dto.FlagView{
		ID:          f.ID,
		Team:        string(f.Team),
		FlagNumber:  f.FlagNumber,
		Description: f.Description,
		Status:      string(f.Status),
		TimeLimit:   f.TimeLimit,
		Attempts:    f.Attempts,
		TimeTaken:   f.TimeTaken,
		Points:      f.Points,
	}
	if f.Resolved() {
		view.Story = f.Story
	}
	if f.StartTime != nil {
		s := f.StartTime.Format(time.RFC3339)
		view.StartTime = &s
	}
	return view
}

func MapFlagsToViews(flags []models.Flag) []dto.FlagView {
	views := make([]dto.FlagView, 0, len(flags))
	for _, f := range flags {
		views = append(views, MapFlagToView(f))
	}
	return views
}
