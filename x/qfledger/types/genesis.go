package types

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// GenesisState is the full ledger state as imported at startup or exported
// for a snapshot.
type GenesisState struct {
	Params        Params       `json:"params"`
	Proposals     []Proposal   `json:"proposals"`
	ProposalCount uint64       `json:"proposal_count"`
	MatchingPool  sdkmath.Uint `json:"matching_pool"`
}

// DefaultGenesis returns an empty ledger with default params.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		Proposals:     []Proposal{},
		ProposalCount: 0,
		MatchingPool:  sdkmath.ZeroUint(),
	}
}

// Validate checks that the state satisfies the ledger invariants: unique ids
// below the proposal count, matching vote counters, and a matching pool equal
// to the sum of all contributions.
func (gs GenesisState) Validate() error {
	if err := gs.Params.ValidateBasic(); err != nil {
		return err
	}
	if gs.MatchingPool.IsNil() {
		return errorsmod.Wrap(ErrInvalidGenesis, "matching pool is not set")
	}

	seen := make(map[uint64]struct{}, len(gs.Proposals))
	total := new(big.Int)
	for _, p := range gs.Proposals {
		if _, dup := seen[p.Id]; dup {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate proposal id %d", p.Id)
		}
		seen[p.Id] = struct{}{}

		if p.Id >= gs.ProposalCount {
			return errorsmod.Wrapf(ErrInvalidGenesis, "proposal id %d is not below proposal count %d", p.Id, gs.ProposalCount)
		}
		if p.Contributions.IsNil() {
			return errorsmod.Wrapf(ErrInvalidGenesis, "proposal %d has no contributions amount", p.Id)
		}
		if err := p.ValidateBasic(); err != nil {
			return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
		}
		total.Add(total, p.Contributions.BigInt())
	}

	if uint64(len(gs.Proposals)) != gs.ProposalCount {
		return errorsmod.Wrapf(ErrInvalidGenesis, "proposal count %d but %d proposals", gs.ProposalCount, len(gs.Proposals))
	}
	if total.Cmp(gs.MatchingPool.BigInt()) != 0 {
		return errorsmod.Wrapf(ErrInvalidGenesis, "matching pool %s != sum of contributions %s", gs.MatchingPool, total)
	}
	return nil
}
