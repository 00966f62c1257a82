package keeper

import (
	"context"
	"errors"
	"strings"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/daic-network/daic-node/x/didregistry/types"
)

// RegisterDID issues or updates the caller's own DID document. Updating keeps
// the original creation time; a revoked document cannot be updated.
func (k Keeper) RegisterDID(ctx context.Context, caller, verificationMethod string) (types.DIDDocument, error) {
	if strings.TrimSpace(caller) == "" {
		return types.DIDDocument{}, errorsmod.Wrap(types.ErrInvalidCaller, "caller identity is empty")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	doc := types.NewDIDDocument(caller, verificationMethod, sdkCtx.BlockTime())

	existing, found, err := k.ResolveDID(ctx, caller)
	if err != nil {
		return types.DIDDocument{}, err
	}
	if found {
		if existing.Revoked {
			return types.DIDDocument{}, errorsmod.Wrapf(types.ErrDIDRevoked, "%s", existing.Id)
		}
		doc.Created = existing.Created
	}

	if err := doc.ValidateBasic(); err != nil {
		return types.DIDDocument{}, err
	}
	if err := k.Documents.Set(ctx, caller, doc); err != nil {
		return types.DIDDocument{}, err
	}

	event, err := types.NewDIDEvent(types.EventTypeDIDRegistered, types.DIDEvent{DID: doc.Id, Controller: caller, Caller: caller})
	if err != nil {
		return types.DIDDocument{}, err
	}
	sdkCtx.EventManager().EmitEvent(event)

	k.Logger().Info("DID registered", "did", doc.Id, "update", found)
	return doc, nil
}

// ResolveDID returns the document of account; found is false when the
// account never registered one.
func (k Keeper) ResolveDID(ctx context.Context, account string) (types.DIDDocument, bool, error) {
	doc, err := k.Documents.Get(ctx, account)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DIDDocument{}, false, nil
		}
		return types.DIDDocument{}, false, err
	}
	return doc, true, nil
}

// RevokeDID marks the document of account as revoked. Only its controller
// may revoke it.
func (k Keeper) RevokeDID(ctx context.Context, caller, account string) error {
	doc, found, err := k.ResolveDID(ctx, account)
	if err != nil {
		return err
	}
	if !found {
		return errorsmod.Wrapf(types.ErrDIDNotFound, "%s", types.DIDForAccount(account))
	}
	if doc.Controller != caller {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is controlled by %s", doc.Id, doc.Controller)
	}
	if doc.Revoked {
		return errorsmod.Wrapf(types.ErrDIDRevoked, "%s", doc.Id)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	doc.Revoked = true
	doc.Updated = sdkCtx.BlockTime().UTC()
	if err := k.Documents.Set(ctx, account, doc); err != nil {
		return err
	}

	event, err := types.NewDIDEvent(types.EventTypeDIDRevoked, types.DIDEvent{DID: doc.Id, Controller: doc.Controller, Caller: caller})
	if err != nil {
		return err
	}
	sdkCtx.EventManager().EmitEvent(event)

	k.Logger().Info("DID revoked", "did", doc.Id)
	return nil
}

// GetAllDIDs returns every document ordered by account.
func (k Keeper) GetAllDIDs(ctx context.Context) ([]types.DIDDocument, error) {
	docs := []types.DIDDocument{}
	err := k.Documents.Walk(ctx, nil, func(_ string, d types.DIDDocument) (bool, error) {
		docs = append(docs, d)
		return false, nil
	})
	return docs, err
}

// InitGenesis initializes the module's state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}
	for _, d := range data.Documents {
		if err := k.Documents.Set(ctx, d.Controller, d); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the module's state to a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	docs, err := k.GetAllDIDs(ctx)
	if err != nil {
		panic(err)
	}
	return &types.GenesisState{Documents: docs}
}
