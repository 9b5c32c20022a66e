// file: dto/flag_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateFlagReqNormalize(t *testing.T) {
	req := CreateFlagReq{
		Team:            " Red ",
		FlagNumberCamel: 3,
		Answer:          " flag{x} ",
		Description:     " desc ",
		TimeLimitCamel:  120,
	}
	req.Normalize()

	require.Equal(t, "red", req.Team)
	require.Equal(t, uint(3), req.FlagNumber)
	require.Equal(t, "flag{x}", req.Answer)
	require.Equal(t, "desc", req.Description)
	require.Equal(t, uint(120), req.TimeLimit)
	require.Equal(t, uint(100), req.Points) // 默认分值
}

func TestCreateFlagReqNormalizePrefersSnakeCase(t *testing.T) {
	req := CreateFlagReq{FlagNumber: 1, FlagNumberCamel: 9, TimeLimit: 60, TimeLimitCamel: 600, Points: 250}
	req.Normalize()

	require.Equal(t, uint(1), req.FlagNumber)
	require.Equal(t, uint(60), req.TimeLimit)
	require.Equal(t, uint(250), req.Points)
}

func TestSubmitFlagReqNormalize(t *testing.T) {
	req := SubmitFlagReq{HashCamel: " ABCDEF "}
	req.Normalize()
	require.Equal(t, "abcdef", req.Hash)

	req = SubmitFlagReq{Hash: "123abc", HashCamel: "ignored"}
	req.Normalize()
	require.Equal(t, "123abc", req.Hash)
}

func TestStartWorkshopReqNormalize(t *testing.T) {
	req := StartWorkshopReq{Team: " Blue "}
	req.Normalize()
	require.Equal(t, "blue", req.Team)

	req = StartWorkshopReq{}
	req.Normalize()
	require.Equal(t, "all", req.Team)
}
