package types_test

import (
	"encoding/json"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/daic-network/daic-node/x/qfledger/types"
)

func TestProposalStatus_JSON(t *testing.T) {
	for _, status := range []types.ProposalStatus{types.StatusActive, types.StatusFunded, types.StatusCompleted} {
		bz, err := json.Marshal(status)
		require.NoError(t, err)
		require.Equal(t, `"`+status.String()+`"`, string(bz))

		var decoded types.ProposalStatus
		require.NoError(t, json.Unmarshal(bz, &decoded))
		require.Equal(t, status, decoded)
	}

	var s types.ProposalStatus
	require.Error(t, json.Unmarshal([]byte(`"Cancelled"`), &s))

	_, err := json.Marshal(types.ProposalStatus(9))
	require.Error(t, err)
}

func TestParseProposalStatus_CaseInsensitive(t *testing.T) {
	s, err := types.ParseProposalStatus("funded")
	require.NoError(t, err)
	require.Equal(t, types.StatusFunded, s)
}

func TestProposalStatus_CanAdvanceTo(t *testing.T) {
	require.True(t, types.StatusActive.CanAdvanceTo(types.StatusFunded))
	require.True(t, types.StatusActive.CanAdvanceTo(types.StatusCompleted))
	require.True(t, types.StatusFunded.CanAdvanceTo(types.StatusCompleted))

	require.False(t, types.StatusFunded.CanAdvanceTo(types.StatusFunded))
	require.False(t, types.StatusCompleted.CanAdvanceTo(types.StatusFunded))
	require.False(t, types.StatusCompleted.CanAdvanceTo(types.StatusCompleted))
	require.False(t, types.StatusFunded.CanAdvanceTo(types.StatusActive))
}

func TestNewProposal(t *testing.T) {
	p := types.NewProposal(3, "alice.near", "Community garden", "Raised beds")

	require.Equal(t, uint64(3), p.Id)
	require.Equal(t, types.StatusActive, p.Status)
	require.True(t, p.IsActive())
	require.Zero(t, p.Votes)
	require.Zero(t, p.VoterCount)
	require.True(t, p.Contributions.IsZero())
	require.NoError(t, p.ValidateBasic())
}

func TestProposal_ValidateBasic(t *testing.T) {
	p := types.NewProposal(0, "", "t", "d")
	require.ErrorIs(t, p.ValidateBasic(), types.ErrInvalidProposal)

	p = types.NewProposal(0, "bob", "t", "d")
	p.Votes = 2
	p.VoterCount = 1
	require.ErrorContains(t, p.ValidateBasic(), "voter_count")

	p = types.NewProposal(0, "bob", "t", "d")
	p.Status = types.ProposalStatus(7)
	require.ErrorContains(t, p.ValidateBasic(), "unknown status")
}

func TestProposal_JSONShape(t *testing.T) {
	p := types.NewProposal(1, "carol", "Library", "Books")
	p.Votes, p.VoterCount = 2, 2
	p.Contributions = sdkmath.NewUint(250)
	p.Status = types.StatusFunded

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(p.String()), &raw))
	require.Equal(t, "250", raw["contributions"])
	require.Equal(t, "Funded", raw["status"])
	require.EqualValues(t, 2, raw["voter_count"])
}
