package types

import (
	errorsmod "cosmossdk.io/errors"
)

type GenesisState struct {
	// Datasets holds the latest version of each dataset.
	Datasets []Dataset `json:"datasets"`

	// History holds every superseded version.
	History []Dataset `json:"history"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{Datasets: []Dataset{}, History: []Dataset{}}
}

func (gs GenesisState) Validate() error {
	latest := make(map[string]Dataset, len(gs.Datasets))
	for _, d := range gs.Datasets {
		if _, dup := latest[d.Id]; dup {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate dataset %s", d.Id)
		}
		if err := d.ValidateBasic(); err != nil {
			return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
		}
		latest[d.Id] = d
	}

	for _, d := range gs.Datasets {
		for _, parent := range d.Lineage {
			if _, ok := latest[parent]; !ok {
				return errorsmod.Wrapf(ErrInvalidGenesis, "dataset %s references unknown parent %s", d.Id, parent)
			}
		}
	}

	type versionKey struct {
		id      string
		version uint64
	}
	seen := make(map[versionKey]struct{}, len(gs.History))
	for _, d := range gs.History {
		if err := d.ValidateBasic(); err != nil {
			return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
		}
		head, ok := latest[d.Id]
		if !ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "history for unknown dataset %s", d.Id)
		}
		if d.Version >= head.Version {
			return errorsmod.Wrapf(ErrInvalidGenesis, "history version %d of %s is not older than %d", d.Version, d.Id, head.Version)
		}
		key := versionKey{d.Id, d.Version}
		if _, dup := seen[key]; dup {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate version %d of %s", d.Version, d.Id)
		}
		seen[key] = struct{}{}
	}
	return nil
}
