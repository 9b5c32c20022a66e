// file: mappers/flag_mapper_test.go
package mappers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fontyslads/ctf-portal-sub001/models"
	"github.com/stretchr/testify/require"
)

func sampleFlag(status models.FlagStatus) models.Flag {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return models.Flag{
		ID:          1,
		Team:        models.TeamRed,
		FlagNumber:  1,
		Hash:        "deadbeef",
		Description: "find the flag",
		Story:       "the hidden story",
		Status:      status,
		StartTime:   &start,
		TimeLimit:   60,
		Attempts:    2,
		TimeTaken:   30,
		Points:      100,
	}
}

func TestViewNeverContainsHash(t *testing.T) {
	for _, status := range []models.FlagStatus{
		models.StatusNotSubmitted, models.StatusPending, models.StatusValid,
		models.StatusInvalid, models.StatusTimedOut, models.StatusErrored,
	} {
		view := MapFlagToView(sampleFlag(status))
		data, err := json.Marshal(view)
		require.NoError(t, err)
		require.NotContains(t, string(data), "deadbeef")
		require.NotContains(t, string(data), "hash")
	}
}

func TestStoryOnlyVisibleWhenResolved(t *testing.T) {
	require.Empty(t, MapFlagToView(sampleFlag(models.StatusNotSubmitted)).Story)
	require.Empty(t, MapFlagToView(sampleFlag(models.StatusPending)).Story)
	require.Empty(t, MapFlagToView(sampleFlag(models.StatusInvalid)).Story)
	require.Empty(t, MapFlagToView(sampleFlag(models.StatusErrored)).Story)

	require.Equal(t, "the hidden story", MapFlagToView(sampleFlag(models.StatusValid)).Story)
	require.Equal(t, "the hidden story", MapFlagToView(sampleFlag(models.StatusTimedOut)).Story)
}

func TestMapFlagsToViewsKeepsOrder(t *testing.T) {
	a := sampleFlag(models.StatusValid)
	b := sampleFlag(models.StatusNotSubmitted)
	b.ID = 2
	b.FlagNumber = 2

	views := MapFlagsToViews([]models.Flag{a, b})
	require.Len(t, views, 2)
	require.Equal(t, uint(1), views[0].FlagNumber)
	require.Equal(t, uint(2), views[1].FlagNumber)
}

func TestStartTimeFormatting(t *testing.T) {
	f := sampleFlag(models.StatusNotSubmitted)
	view := MapFlagToView(f)
	require.NotNil(t, view.StartTime)
	require.Equal(t, "2025-06-01T10:00:00Z", *view.StartTime)

	f.StartTime = nil
	view = MapFlagToView(f)
	require.Nil(t, view.StartTime)
}
