// file: services/workshop_service.go
package services

import (
	"time"

	"github.com/fontyslads/ctf-portal-sub001/models"
)

// WorkshopService 一次性排期器：把一支队伍（或全部队伍）的关卡序列整体
// 重置为"进行中"。对进行中的状态是破坏性的，属于管理员操作。
type WorkshopService struct {
	store FlagStore
	clock Clock
	prog  *ProgressionService // 复用队伍级互斥锁，和引擎操作互相串行
}

func NewWorkshopService(store FlagStore, clock Clock, prog *ProgressionService) *WorkshopService {
	return &WorkshopService{store: store, clock: clock, prog: prog}
}

// Start 重排指定队伍：第 1 关从当前时刻开始，后续各关依次累加前面关卡的
// 时间预算；所有关卡重置为未提交、尝试次数清零、耗时恢复为展示预估值。
func (s *WorkshopService) Start(team models.Team) error {
	unlock := s.prog.lockTeam(team)
	defer unlock()

	flags, err := s.prog.loadTeam(team)
	if err != nil {
		return err
	}
	if len(flags) == 0 {
		// 没有关卡的队伍无事可做
		return nil
	}

	now := s.clock.Now()
	var offset time.Duration
	for i := range flags {
		f := &flags[i]
		start := now.Add(offset)
		f.StartTime = &start
		f.Status = models.StatusNotSubmitted
		f.Attempts = 0
		f.TimeTaken = f.EstimateSeconds()
		offset += time.Duration(f.TimeLimit) * time.Second
	}

	if err := s.store.SaveAll(flags); err != nil {
		return validationFault("关卡排期保存失败", err)
	}
	return nil
}

// StartAll 对关卡表中出现过的每支队伍执行 Start，返回实际启动的队伍
func (s *WorkshopService) StartAll() ([]models.Team, error) {
	teams, err := s.store.Teams()
	if err != nil {
		return nil, validationFault("队伍查询失败", err)
	}
	for _, team := range teams {
		if err := s.Start(team); err != nil {
			return nil, err
		}
	}
	return teams, nil
}
