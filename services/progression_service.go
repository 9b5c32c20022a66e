// file: services/progression_service.go
package services

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/fontyslads/ctf-portal-sub001/models"
	"github.com/fontyslads/ctf-portal-sub001/utils"
)

// FlagStore 关卡持久化契约；FindByID 未找到时返回 (nil, nil)
type FlagStore interface {
	FindByTeam(team models.Team) ([]models.Flag, error)
	FindByID(id uint32) (*models.Flag, error)
	SaveAll(flags []models.Flag) error
	Teams() ([]models.Team, error)
}

// Clock 时间源，测试中注入固定时钟
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ProgressionService 关卡推进引擎：状态机 + 截止时间 + 顺序闯关 + 级联排期。
// 超时不靠后台定时器，任何读写观察到过期关卡时就地转为 timed_out（惰性转移）。
// 同一队伍的操作串行执行；不同队伍互不阻塞。
type ProgressionService struct {
	store FlagStore
	clock Clock

	mu      sync.Mutex
	teamMus map[models.Team]*sync.Mutex
}

func NewProgressionService(store FlagStore, clock Clock) *ProgressionService {
	return &ProgressionService{
		store:   store,
		clock:   clock,
		teamMus: make(map[models.Team]*sync.Mutex),
	}
}

// lockTeam 获取队伍级互斥锁，返回解锁函数
func (s *ProgressionService) lockTeam(team models.Team) func() {
	s.mu.Lock()
	m, ok := s.teamMus[team]
	if !ok {
		m = &sync.Mutex{}
		s.teamMus[team] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// List 返回队伍的有序关卡列表，读取前结算所有已过期关卡。
// 队伍没有关卡时返回空列表而不是错误。
func (s *ProgressionService) List(team models.Team) ([]models.Flag, error) {
	unlock := s.lockTeam(team)
	defer unlock()

	flags, err := s.loadTeam(team)
	if err != nil {
		return nil, err
	}

	if s.resolveExpired(flags, s.clock.Now()) {
		if err := s.store.SaveAll(flags); err != nil {
			return nil, validationFault("关卡状态保存失败", err)
		}
	}
	return flags, nil
}

// Submit 校验提交并推进状态机，返回结算后的完整关卡列表。
// 前置条件按固定顺序检查，第一个不满足的即为返回错误。
func (s *ProgressionService) Submit(team models.Team, flagID uint32, candidateHash string) ([]models.Flag, error) {
	unlock := s.lockTeam(team)
	defer unlock()

	target, err := s.store.FindByID(flagID)
	if err != nil {
		return nil, validationFault("关卡查询失败", err)
	}
	if target == nil {
		return nil, newEngineError(KindNotFound, "关卡不存在")
	}

	flags, err := s.loadTeam(team)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	// 提交也是一次观察：先结算本队所有已过期关卡，结果无论校验是否通过都要落库
	expired := s.resolveExpired(flags, now)
	persistExpiry := func() error {
		if !expired {
			return nil
		}
		return s.store.SaveAll(flags)
	}

	// 目标关卡若属于本队，改用本队列表中的实例（已包含惰性结算的结果）
	idx := -1
	for i := range flags {
		if flags[i].ID == flagID {
			idx = i
			target = &flags[i]
			break
		}
	}

	// 2. 前一关必须已终结（第 1 关没有前置）
	if target.FlagNumber > 1 {
		prev := flagByNumber(flags, target.FlagNumber-1)
		if prev == nil || !prev.Resolved() {
			if err := persistExpiry(); err != nil {
				return nil, validationFault("关卡状态保存失败", err)
			}
			return nil, newEngineError(KindOrderViolation, "请先完成上一关")
		}
	}

	// 3. 只能提交本队的关卡
	if target.Team != team || idx < 0 {
		if err := persistExpiry(); err != nil {
			return nil, validationFault("关卡状态保存失败", err)
		}
		return nil, newEngineError(KindTeamMismatch, "该关卡不属于你的队伍")
	}

	// 4. 答对过的关卡不能重复提交
	if target.Status == models.StatusValid {
		if err := persistExpiry(); err != nil {
			return nil, validationFault("关卡状态保存失败", err)
		}
		return nil, newEngineError(KindAlreadyResolved, "该关卡已通过")
	}

	// 5. 必须在截止时间之前；工作坊未启动时关卡没有起始时间，同样视为顺序错误
	if target.StartTime == nil {
		if err := persistExpiry(); err != nil {
			return nil, validationFault("关卡状态保存失败", err)
		}
		return nil, newEngineError(KindOrderViolation, "工作坊尚未开始")
	}
	deadline, _ := target.Deadline()
	if !now.Before(deadline) {
		// 超时关卡已在上面的惰性结算中转为 timed_out 并触发级联
		if err := persistExpiry(); err != nil {
			return nil, validationFault("关卡状态保存失败", err)
		}
		return nil, newEngineError(KindDeadlineExceeded, "该关卡已超时")
	}

	// 校验答案哈希（恒定时间比较）
	if utils.SecureCompare(candidateHash, target.Hash) {
		target.Status = models.StatusValid
		elapsed := now.Sub(*target.StartTime).Round(time.Second)
		target.TimeTaken = uint(elapsed / time.Second)
		s.cascade(flags, idx, now)
	} else {
		target.Status = models.StatusInvalid
		target.Attempts++
	}

	if err := s.store.SaveAll(flags); err != nil {
		// 存储故障：该关卡标记为 errored，尽力落库但绝不重试本次提交
		target.Status = models.StatusErrored
		if saveErr := s.store.SaveAll([]models.Flag{*target}); saveErr != nil {
			log.Printf("failed to persist errored flag %d: %v", target.ID, saveErr)
		}
		return nil, validationFault("提交结果保存失败", err)
	}
	return flags, nil
}

// loadTeam 读取并按 flag_number 排序
func (s *ProgressionService) loadTeam(team models.Team) ([]models.Flag, error) {
	flags, err := s.store.FindByTeam(team)
	if err != nil {
		return nil, validationFault("关卡查询失败", err)
	}
	sort.Slice(flags, func(i, j int) bool {
		return flags[i].FlagNumber < flags[j].FlagNumber
	})
	return flags, nil
}

// resolveExpired 惰性结算：把所有已过截止时间且未终结的关卡转为 timed_out 并级联。
// 按序号升序处理，级联会把下游起始时间重排到当前时刻，因此一趟即可收敛。
// 对已终结关卡重复观察不会再次级联，也不会改写 timeTaken。
func (s *ProgressionService) resolveExpired(flags []models.Flag, now time.Time) bool {
	changed := false
	for i := range flags {
		f := &flags[i]
		if f.Resolved() || f.Status == models.StatusErrored {
			continue
		}
		deadline, ok := f.Deadline()
		if !ok || now.Before(deadline) {
			continue
		}
		f.Status = models.StatusTimedOut
		f.TimeTaken = f.TimeLimit // 整个预算耗尽
		s.cascade(flags, i, now)
		changed = true
	}
	return changed
}

// cascade 关卡终结后的级联排期：下一关从当前时刻开始，
// 再往后的每一关依次累加中间各关的时间预算；整个前向集合重置为未提交。
// 只有紧邻的下一关的时间线是"实时"的，更远的关卡在轮到自己时会被重新排期。
func (s *ProgressionService) cascade(flags []models.Flag, resolvedIdx int, now time.Time) {
	offset := time.Duration(0)
	for j := resolvedIdx + 1; j < len(flags); j++ {
		f := &flags[j]
		start := now.Add(offset)
		f.StartTime = &start
		f.Status = models.StatusNotSubmitted
		f.Attempts = 0
		f.TimeTaken = f.EstimateSeconds()
		offset += time.Duration(f.TimeLimit) * time.Second
	}
}

func flagByNumber(flags []models.Flag, number uint) *models.Flag {
	for i := range flags {
		if flags[i].FlagNumber == number {
			return &flags[i]
		}
	}
	return nil
}
