package keeper

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/daic-network/daic-node/x/qfledger/types"
)

// CreateProposal stores a new Active proposal owned by proposer and returns
// its id. Ids are assigned from the proposal count and never reused.
func (k Keeper) CreateProposal(ctx context.Context, proposer, title, description string) (uint64, error) {
	if err := validateCaller(proposer); err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	id, err := k.ProposalCount.Next(tmpCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to generate proposal id: %w", err)
	}

	exists, err := k.Proposals.Has(tmpCtx, id)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("proposal id %d already allocated", id)
	}

	proposal := types.NewProposal(id, proposer, title, description)
	if err := k.Proposals.Set(tmpCtx, id, proposal); err != nil {
		return 0, fmt.Errorf("failed to store proposal: %w", err)
	}

	commit()

	event, err := types.NewProposalCreatedEvent(types.ProposalCreatedEvent{
		ProposalID: id,
		Proposer:   proposer,
		Title:      title,
	})
	if err != nil {
		return 0, err
	}
	sdkCtx.EventManager().EmitEvent(event)

	k.Logger().Info("Proposal created", "id", id, "proposer", proposer)
	return id, nil
}

// Contribute records one contribution event of amount against an Active
// proposal. The proposal counters, its contributions and the matching pool
// are updated together or not at all.
func (k Keeper) Contribute(ctx context.Context, contributor string, id uint64, amount sdkmath.Uint) error {
	if err := validateCaller(contributor); err != nil {
		return err
	}
	if amount.IsNil() {
		return errorsmod.Wrap(types.ErrInvalidProposal, "contribution amount is not set")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	proposal, err := k.mustGetProposal(ctx, id)
	if err != nil {
		return err
	}
	if !proposal.IsActive() {
		return errorsmod.Wrapf(types.ErrInvalidState, "proposal %d is %s, contributions require Active", id, proposal.Status)
	}
	if params.RejectZeroContributions && amount.IsZero() {
		return errorsmod.Wrapf(types.ErrZeroContribution, "proposal %d", id)
	}
	if proposal.Votes == math.MaxUint64 || proposal.VoterCount == math.MaxUint64 {
		return errorsmod.Wrapf(types.ErrAmountOverflow, "proposal %d vote counter is saturated", id)
	}

	pool, err := k.GetMatchingPool(ctx)
	if err != nil {
		return err
	}

	contributions, err := types.AddAmounts(proposal.Contributions, amount)
	if err != nil {
		return err
	}
	newPool, err := types.AddAmounts(pool, amount)
	if err != nil {
		return err
	}

	proposal.Votes++
	proposal.VoterCount++
	proposal.Contributions = contributions

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	tmpCtx, commit := sdkCtx.CacheContext()

	if err := k.Proposals.Set(tmpCtx, id, proposal); err != nil {
		return fmt.Errorf("failed to update proposal %d: %w", id, err)
	}
	if err := k.MatchingPool.Set(tmpCtx, newPool); err != nil {
		return fmt.Errorf("failed to update matching pool: %w", err)
	}

	commit()

	event, err := types.NewContributionEvent(types.ContributionEvent{
		ProposalID:    id,
		Contributor:   contributor,
		Amount:        amount.String(),
		Votes:         proposal.Votes,
		VoterCount:    proposal.VoterCount,
		Contributions: proposal.Contributions.String(),
		MatchingPool:  newPool.String(),
	})
	if err != nil {
		return err
	}
	sdkCtx.EventManager().EmitEvent(event)

	k.Logger().Info("Contribution recorded",
		"id", id,
		"contributor", contributor,
		"amount", amount.String(),
		"voter_count", proposal.VoterCount,
		"matching_pool", newPool.String(),
	)
	return nil
}

// MarkFunded moves a proposal to Funded. Only its proposer may do so.
func (k Keeper) MarkFunded(ctx context.Context, caller string, id uint64) error {
	return k.setStatus(ctx, caller, id, types.StatusFunded)
}

// MarkCompleted moves a proposal to Completed. Only its proposer may do so.
func (k Keeper) MarkCompleted(ctx context.Context, caller string, id uint64) error {
	return k.setStatus(ctx, caller, id, types.StatusCompleted)
}

// setStatus applies a proposer-gated status change. Unless the params
// enforce forward-only transitions, any target status is accepted.
func (k Keeper) setStatus(ctx context.Context, caller string, id uint64, status types.ProposalStatus) error {
	if err := validateCaller(caller); err != nil {
		return err
	}

	proposal, err := k.mustGetProposal(ctx, id)
	if err != nil {
		return err
	}
	if proposal.Proposer != caller {
		return errorsmod.Wrapf(types.ErrUnauthorized, "only proposer %s may change the status of proposal %d", proposal.Proposer, id)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if params.EnforceForwardStatus && !proposal.Status.CanAdvanceTo(status) {
		return errorsmod.Wrapf(types.ErrInvalidState, "proposal %d cannot move from %s to %s", id, proposal.Status, status)
	}

	previous := proposal.Status
	proposal.Status = status
	if err := k.Proposals.Set(ctx, id, proposal); err != nil {
		return fmt.Errorf("failed to update proposal %d: %w", id, err)
	}

	event, err := types.NewStatusChangedEvent(types.StatusChangedEvent{
		ProposalID: id,
		Caller:     caller,
		From:       previous.String(),
		To:         status.String(),
	})
	if err != nil {
		return err
	}
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(event)

	k.Logger().Info("Proposal status changed", "id", id, "from", previous.String(), "to", status.String())
	return nil
}

// mustGetProposal loads a proposal, mapping absence to ErrProposalNotFound.
func (k Keeper) mustGetProposal(ctx context.Context, id uint64) (types.Proposal, error) {
	proposal, err := k.Proposals.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Proposal{}, errorsmod.Wrapf(types.ErrProposalNotFound, "proposal %d", id)
		}
		return types.Proposal{}, err
	}
	return proposal, nil
}

func validateCaller(caller string) error {
	if strings.TrimSpace(caller) == "" {
		return errorsmod.Wrap(types.ErrInvalidCaller, "caller identity is empty")
	}
	return nil
}
