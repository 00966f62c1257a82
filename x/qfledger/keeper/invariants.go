package keeper

import (
	"fmt"
	"math/big"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/daic-network/daic-node/x/qfledger/types"
)

// RegisterInvariants registers the ledger invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "matching-pool", MatchingPoolInvariant(k))
	ir.RegisterRoute(types.ModuleName, "vote-count", VoteCountInvariant(k))
	ir.RegisterRoute(types.ModuleName, "proposal-count", ProposalCountInvariant(k))
}

// AllInvariants runs all invariants of the module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{
			MatchingPoolInvariant(k),
			VoteCountInvariant(k),
			ProposalCountInvariant(k),
		} {
			if msg, broken := inv(ctx); broken {
				return msg, broken
			}
		}
		return "", false
	}
}

// MatchingPoolInvariant checks that the pool equals the sum of all
// proposal contributions.
func MatchingPoolInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pool, err := k.GetMatchingPool(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "matching-pool", err.Error()), true
		}

		total := new(big.Int)
		err = k.Proposals.Walk(ctx, nil, func(_ uint64, p types.Proposal) (bool, error) {
			total.Add(total, p.Contributions.BigInt())
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "matching-pool", err.Error()), true
		}

		broken := total.Cmp(pool.BigInt()) != 0
		return sdk.FormatInvariant(types.ModuleName, "matching-pool",
			fmt.Sprintf("matching pool %s, sum of contributions %s", pool, total)), broken
	}
}

// VoteCountInvariant checks that every proposal has votes == voter_count.
func VoteCountInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)
		err := k.Proposals.Walk(ctx, nil, func(id uint64, p types.Proposal) (bool, error) {
			if p.Votes != p.VoterCount {
				broken = true
				msg += fmt.Sprintf("\tproposal %d: votes %d, voter_count %d\n", id, p.Votes, p.VoterCount)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "vote-count", err.Error()), true
		}
		return sdk.FormatInvariant(types.ModuleName, "vote-count", msg), broken
	}
}

// ProposalCountInvariant checks that the proposal count equals the number of
// stored proposals and that every id is below it.
func ProposalCountInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		count, err := k.GetProposalCount(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "proposal-count", err.Error()), true
		}

		var stored uint64
		var outOfRange []uint64
		err = k.Proposals.Walk(ctx, nil, func(id uint64, _ types.Proposal) (bool, error) {
			stored++
			if id >= count {
				outOfRange = append(outOfRange, id)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "proposal-count", err.Error()), true
		}

		broken := stored != count || len(outOfRange) > 0
		return sdk.FormatInvariant(types.ModuleName, "proposal-count",
			fmt.Sprintf("proposal count %d, stored %d, ids out of range %v", count, stored, outOfRange)), broken
	}
}
