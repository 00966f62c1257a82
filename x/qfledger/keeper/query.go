package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"

	"github.com/daic-network/daic-node/x/qfledger/types"
)

// MatchedFunding pairs a proposal id with its current matched amount.
type MatchedFunding struct {
	ProposalID uint64       `json:"proposal_id"`
	Matched    sdkmath.Uint `json:"matched"`
}

// GetProposal returns the proposal with the given id; found is false when
// no such proposal exists.
func (k Keeper) GetProposal(ctx context.Context, id uint64) (types.Proposal, bool, error) {
	proposal, err := k.Proposals.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Proposal{}, false, nil
		}
		return types.Proposal{}, false, err
	}
	return proposal, true, nil
}

// GetAllProposals returns every proposal in creation order.
func (k Keeper) GetAllProposals(ctx context.Context) ([]types.Proposal, error) {
	proposals := []types.Proposal{}
	err := k.Proposals.Walk(ctx, nil, func(_ uint64, p types.Proposal) (bool, error) {
		proposals = append(proposals, p)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return proposals, nil
}

// GetProposalCount returns the number of proposals ever created.
func (k Keeper) GetProposalCount(ctx context.Context) (uint64, error) {
	return k.ProposalCount.Peek(ctx)
}

// GetMatchingPool returns the ledger-wide sum of contributions.
func (k Keeper) GetMatchingPool(ctx context.Context) (sdkmath.Uint, error) {
	pool, err := k.MatchingPool.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroUint(), nil
		}
		return sdkmath.Uint{}, err
	}
	return pool, nil
}

// GetMatchedFunding computes the matched amount for one proposal against the
// current pool. Unknown ids fail with ErrProposalNotFound.
func (k Keeper) GetMatchedFunding(ctx context.Context, id uint64) (sdkmath.Uint, error) {
	proposal, err := k.mustGetProposal(ctx, id)
	if err != nil {
		return sdkmath.Uint{}, err
	}

	pool, err := k.GetMatchingPool(ctx)
	if err != nil {
		return sdkmath.Uint{}, err
	}

	return types.ComputeMatchedFunding(proposal.Contributions, proposal.VoterCount, pool), nil
}

// GetMatchedFundingAll computes the matched amount of every proposal, each
// one independently capped at the whole pool.
func (k Keeper) GetMatchedFundingAll(ctx context.Context) ([]MatchedFunding, error) {
	pool, err := k.GetMatchingPool(ctx)
	if err != nil {
		return nil, err
	}

	result := []MatchedFunding{}
	err = k.Proposals.Walk(ctx, nil, func(id uint64, p types.Proposal) (bool, error) {
		result = append(result, MatchedFunding{
			ProposalID: id,
			Matched:    types.ComputeMatchedFunding(p.Contributions, p.VoterCount, pool),
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
