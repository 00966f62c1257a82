package keeper

import (
	"context"

	"github.com/daic-network/daic-node/x/qfledger/types"
)

// InitGenesis initializes the module's state from a genesis state.
func (k *Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}

	if err := k.Params.Set(ctx, data.Params); err != nil {
		return err
	}

	for _, p := range data.Proposals {
		if err := k.Proposals.Set(ctx, p.Id, p); err != nil {
			return err
		}
	}

	if err := k.ProposalCount.Set(ctx, data.ProposalCount); err != nil {
		return err
	}

	return k.MatchingPool.Set(ctx, data.MatchingPool)
}

// ExportGenesis exports the module's state to a genesis state.
func (k *Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	proposals, err := k.GetAllProposals(ctx)
	if err != nil {
		panic(err)
	}

	count, err := k.GetProposalCount(ctx)
	if err != nil {
		panic(err)
	}

	pool, err := k.GetMatchingPool(ctx)
	if err != nil {
		panic(err)
	}

	return &types.GenesisState{
		Params:        params,
		Proposals:     proposals,
		ProposalCount: count,
		MatchingPool:  pool,
	}
}
