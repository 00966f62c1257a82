package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/daic-network/daic-node/x/qfledger/types"
)

// GetParams returns the stored params, or the defaults if none were set.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return params, nil
}

// UpdateParams replaces the module params. Only the module authority may call it.
func (k Keeper) UpdateParams(ctx context.Context, authority string, params types.Params) error {
	if k.authority != authority {
		return errorsmod.Wrapf(types.ErrUnauthorized, "invalid authority; expected %s, got %s", k.authority, authority)
	}
	if err := params.ValidateBasic(); err != nil {
		return err
	}
	if err := k.Params.Set(ctx, params); err != nil {
		return err
	}

	k.Logger().Info("Params updated", "params", params.String())
	return nil
}
