package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/daic-network/daic-node/x/qfledger/types"
)

func TestGenesis_ExportImport(t *testing.T) {
	f := SetupTest(t)

	p0, err := f.k.CreateProposal(f.ctx, alice, "p0", "first")
	require.NoError(t, err)
	_, err = f.k.CreateProposal(f.ctx, bob, "p1", "second")
	require.NoError(t, err)
	require.NoError(t, f.k.Contribute(f.ctx, carol, p0, sdkmath.NewUint(40)))
	require.NoError(t, f.k.MarkFunded(f.ctx, alice, p0))

	exported := f.k.ExportGenesis(f.ctx)
	require.NoError(t, exported.Validate())
	require.Equal(t, uint64(2), exported.ProposalCount)
	require.Equal(t, "40", exported.MatchingPool.String())
	require.Len(t, exported.Proposals, 2)

	g := SetupTest(t)
	require.NoError(t, g.k.InitGenesis(g.ctx, exported))

	reexported := g.k.ExportGenesis(g.ctx)
	require.Equal(t, exported.ProposalCount, reexported.ProposalCount)
	require.True(t, exported.MatchingPool.Equal(reexported.MatchingPool))
	require.Equal(t, exported.Params, reexported.Params)
	for i := range exported.Proposals {
		require.True(t, exported.Proposals[i].Equal(reexported.Proposals[i]))
	}

	// ids continue after the imported count
	id, err := g.k.CreateProposal(g.ctx, alice, "p2", "")
	require.NoError(t, err)
	require.Equal(t, uint64(2), id)
}

func TestInitGenesis_RejectsInconsistentState(t *testing.T) {
	f := SetupTest(t)

	gs := types.DefaultGenesis()
	gs.MatchingPool = sdkmath.NewUint(5)

	err := f.k.InitGenesis(f.ctx, gs)
	require.ErrorIs(t, err, types.ErrInvalidGenesis)

	count, err := f.k.GetProposalCount(f.ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}
