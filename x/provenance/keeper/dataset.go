package keeper

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/daic-network/daic-node/x/provenance/types"
)

// RegisterDataset records a dataset under id. The first registration makes
// the caller its owner at version 1; later registrations by the owner archive
// the current version and store the next one.
func (k Keeper) RegisterDataset(ctx context.Context, caller, id, title, description string, lineage []string) (types.Dataset, error) {
	if strings.TrimSpace(caller) == "" {
		return types.Dataset{}, errorsmod.Wrap(types.ErrInvalidCaller, "caller identity is empty")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	dataset := types.Dataset{
		Id:          id,
		Owner:       caller,
		Title:       title,
		Description: description,
		Lineage:     append([]string{}, lineage...),
		Version:     1,
		Timestamp:   sdkCtx.BlockTime().UTC(),
	}

	current, found, err := k.GetDataset(ctx, id)
	if err != nil {
		return types.Dataset{}, err
	}
	if found {
		if current.Owner != caller {
			return types.Dataset{}, errorsmod.Wrapf(types.ErrUnauthorized, "dataset %s is owned by %s", id, current.Owner)
		}
		dataset.Version = current.Version + 1
	}

	if err := dataset.ValidateBasic(); err != nil {
		return types.Dataset{}, err
	}
	for _, parent := range dataset.Lineage {
		ok, err := k.Datasets.Has(ctx, parent)
		if err != nil {
			return types.Dataset{}, err
		}
		if !ok {
			return types.Dataset{}, errorsmod.Wrapf(types.ErrDatasetNotFound, "lineage parent %s", parent)
		}
	}

	tmpCtx, commit := sdkCtx.CacheContext()
	if found {
		if err := k.History.Set(tmpCtx, collections.Join(id, current.Version), current); err != nil {
			return types.Dataset{}, fmt.Errorf("failed to archive dataset %s: %w", id, err)
		}
	}
	if err := k.Datasets.Set(tmpCtx, id, dataset); err != nil {
		return types.Dataset{}, fmt.Errorf("failed to store dataset %s: %w", id, err)
	}
	commit()

	event, err := types.NewDatasetRegisteredEvent(types.DatasetRegisteredEvent{
		DatasetID: id,
		Owner:     caller,
		Version:   dataset.Version,
		Lineage:   dataset.Lineage,
	})
	if err != nil {
		return types.Dataset{}, err
	}
	sdkCtx.EventManager().EmitEvent(event)

	k.Logger().Info("Dataset registered", "id", id, "owner", caller, "version", dataset.Version)
	return dataset, nil
}

// GetDataset returns the latest version of a dataset.
func (k Keeper) GetDataset(ctx context.Context, id string) (types.Dataset, bool, error) {
	d, err := k.Datasets.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Dataset{}, false, nil
		}
		return types.Dataset{}, false, err
	}
	return d, true, nil
}

// GetAllDatasets returns the latest version of every dataset ordered by id.
func (k Keeper) GetAllDatasets(ctx context.Context) ([]types.Dataset, error) {
	datasets := []types.Dataset{}
	err := k.Datasets.Walk(ctx, nil, func(_ string, d types.Dataset) (bool, error) {
		datasets = append(datasets, d)
		return false, nil
	})
	return datasets, err
}

// GetDatasetVersion returns one specific version of a dataset.
func (k Keeper) GetDatasetVersion(ctx context.Context, id string, version uint64) (types.Dataset, bool, error) {
	latest, found, err := k.GetDataset(ctx, id)
	if err != nil || !found {
		return types.Dataset{}, false, err
	}
	if latest.Version == version {
		return latest, true, nil
	}

	d, err := k.History.Get(ctx, collections.Join(id, version))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Dataset{}, false, nil
		}
		return types.Dataset{}, false, err
	}
	return d, true, nil
}

// GetDatasetHistory returns every version of a dataset, oldest first.
func (k Keeper) GetDatasetHistory(ctx context.Context, id string) ([]types.Dataset, error) {
	latest, found, err := k.GetDataset(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errorsmod.Wrapf(types.ErrDatasetNotFound, "dataset %s", id)
	}

	versions := []types.Dataset{}
	rng := collections.NewPrefixedPairRange[string, uint64](id)
	err = k.History.Walk(ctx, rng, func(_ collections.Pair[string, uint64], d types.Dataset) (bool, error) {
		versions = append(versions, d)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return append(versions, latest), nil
}

// InitGenesis initializes the module's state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}
	for _, d := range data.Datasets {
		if err := k.Datasets.Set(ctx, d.Id, d); err != nil {
			return err
		}
	}
	for _, d := range data.History {
		if err := k.History.Set(ctx, collections.Join(d.Id, d.Version), d); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the module's state to a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	datasets, err := k.GetAllDatasets(ctx)
	if err != nil {
		panic(err)
	}

	history := []types.Dataset{}
	err = k.History.Walk(ctx, nil, func(_ collections.Pair[string, uint64], d types.Dataset) (bool, error) {
		history = append(history, d)
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return &types.GenesisState{Datasets: datasets, History: history}
}
