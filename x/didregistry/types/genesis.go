package types

import (
	errorsmod "cosmossdk.io/errors"
)

type GenesisState struct {
	Documents []DIDDocument `json:"documents"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{Documents: []DIDDocument{}}
}

func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Documents))
	for _, d := range gs.Documents {
		if _, dup := seen[d.Controller]; dup {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate document for %s", d.Controller)
		}
		seen[d.Controller] = struct{}{}
		if err := d.ValidateBasic(); err != nil {
			return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
		}
	}
	return nil
}
