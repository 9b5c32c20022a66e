// file: models/flag_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEstimateSecondsRoundsUp(t *testing.T) {
	cases := []struct {
		limit uint
		want  uint
	}{
		{60, 90},
		{45, 68}, // ceil(67.5)
		{1, 2},   // ceil(1.5)
		{0, 0},
	}
	for _, tc := range cases {
		f := Flag{TimeLimit: tc.limit}
		require.Equal(t, tc.want, f.EstimateSeconds())
	}
}

func TestDeadline(t *testing.T) {
	f := Flag{TimeLimit: 60}
	_, ok := f.Deadline()
	require.False(t, ok)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	f.StartTime = &start
	deadline, ok := f.Deadline()
	require.True(t, ok)
	require.Equal(t, start.Add(60*time.Second), deadline)
}

func TestResolved(t *testing.T) {
	for status, want := range map[FlagStatus]bool{
		StatusNotSubmitted: false,
		StatusPending:      false,
		StatusInvalid:      false,
		StatusErrored:      false,
		StatusValid:        true,
		StatusTimedOut:     true,
	} {
		f := Flag{Status: status}
		require.Equal(t, want, f.Resolved(), "status %s", status)
	}
}

func TestValidTeam(t *testing.T) {
	require.True(t, ValidTeam(TeamRed))
	require.True(t, ValidTeam(TeamYellow))
	require.False(t, ValidTeam(Team("purple")))
	require.False(t, ValidTeam(Team("")))
}
