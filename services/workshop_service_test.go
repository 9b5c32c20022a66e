// file: services/workshop_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/fontyslads/ctf-portal-sub001/models"
	"github.com/stretchr/testify/require"
)

func newScheduler(t *testing.T) (*WorkshopService, *ProgressionService, *fakeStore, *fakeClock) {
	t.Helper()
	store := newFakeStore()
	clock := &fakeClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	prog := NewProgressionService(store, clock)
	return NewWorkshopService(store, clock, prog), prog, store, clock
}

func TestStartAssignsSequentialStartTimes(t *testing.T) {
	scheduler, _, store, clock := newScheduler(t)
	seedFlag(store, 1, models.TeamRed, 1, 60)
	seedFlag(store, 2, models.TeamRed, 2, 120)
	seedFlag(store, 3, models.TeamRed, 3, 180)
	t0 := clock.Now()

	require.NoError(t, scheduler.Start(models.TeamRed))

	require.Equal(t, t0, *store.get(1).StartTime)
	require.Equal(t, t0.Add(60*time.Second), *store.get(2).StartTime)
	require.Equal(t, t0.Add(180*time.Second), *store.get(3).StartTime)

	// 耗时恢复为展示预估值 ceil(timeLimit*1.5)
	require.Equal(t, uint(90), store.get(1).TimeTaken)
	require.Equal(t, uint(180), store.get(2).TimeTaken)
	require.Equal(t, uint(270), store.get(3).TimeTaken)
}

func TestStartResetsInProgressState(t *testing.T) {
	scheduler, prog, store, clock := newScheduler(t)
	seedFlag(store, 1, models.TeamRed, 1, 60)
	seedFlag(store, 2, models.TeamRed, 2, 60)

	require.NoError(t, scheduler.Start(models.TeamRed))
	clock.Advance(10 * time.Second)
	_, err := prog.Submit(models.TeamRed, 1, answerFor(1))
	require.NoError(t, err)

	// 重启是破坏性的管理员操作：进度清零，时间线重新排期
	clock.Advance(5 * time.Second)
	t1 := clock.Now()
	require.NoError(t, scheduler.Start(models.TeamRed))

	first := store.get(1)
	require.Equal(t, models.StatusNotSubmitted, first.Status)
	require.Equal(t, uint(0), first.Attempts)
	require.Equal(t, first.EstimateSeconds(), first.TimeTaken)
	require.Equal(t, t1, *first.StartTime)
	require.Equal(t, t1.Add(60*time.Second), *store.get(2).StartTime)
}

func TestStartAllCoversEveryTeam(t *testing.T) {
	scheduler, _, store, clock := newScheduler(t)
	seedFlag(store, 1, models.TeamRed, 1, 60)
	seedFlag(store, 2, models.TeamBlue, 1, 60)
	t0 := clock.Now()

	teams, err := scheduler.StartAll()
	require.NoError(t, err)
	require.ElementsMatch(t, []models.Team{models.TeamRed, models.TeamBlue}, teams)
	require.Equal(t, t0, *store.get(1).StartTime)
	require.Equal(t, t0, *store.get(2).StartTime)
}

func TestStartEmptyTeamIsNoop(t *testing.T) {
	scheduler, _, _, _ := newScheduler(t)
	require.NoError(t, scheduler.Start(models.TeamYellow))
}
