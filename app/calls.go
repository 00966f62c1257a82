package app

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	didtypes "github.com/daic-network/daic-node/x/didregistry/types"
	provtypes "github.com/daic-network/daic-node/x/provenance/types"
	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

// Operation names used for logs and metrics.
const (
	OpCreateProposal  = "create_proposal"
	OpContribute      = "contribute"
	OpMarkFunded      = "mark_funded"
	OpMarkCompleted   = "mark_completed"
	OpUpdateParams    = "update_params"
	OpRegisterDID     = "register_did"
	OpRevokeDID       = "revoke_did"
	OpRegisterDataset = "register_dataset"
)

func (h *Host) CreateProposal(caller, title, description string) (uint64, error) {
	var id uint64
	err := h.execute(OpCreateProposal, func(ctx sdk.Context) (err error) {
		id, err = h.LedgerKeeper.CreateProposal(ctx, caller, title, description)
		return err
	})
	return id, err
}

func (h *Host) Contribute(caller string, id uint64, amount sdkmath.Uint) error {
	return h.execute(OpContribute, func(ctx sdk.Context) error {
		return h.LedgerKeeper.Contribute(ctx, caller, id, amount)
	})
}

func (h *Host) MarkFunded(caller string, id uint64) error {
	return h.execute(OpMarkFunded, func(ctx sdk.Context) error {
		return h.LedgerKeeper.MarkFunded(ctx, caller, id)
	})
}

func (h *Host) MarkCompleted(caller string, id uint64) error {
	return h.execute(OpMarkCompleted, func(ctx sdk.Context) error {
		return h.LedgerKeeper.MarkCompleted(ctx, caller, id)
	})
}

func (h *Host) UpdateParams(caller string, params qftypes.Params) error {
	return h.execute(OpUpdateParams, func(ctx sdk.Context) error {
		return h.LedgerKeeper.UpdateParams(ctx, caller, params)
	})
}

func (h *Host) RegisterDID(caller, verificationMethod string) (didtypes.DIDDocument, error) {
	var doc didtypes.DIDDocument
	err := h.execute(OpRegisterDID, func(ctx sdk.Context) (err error) {
		doc, err = h.DIDKeeper.RegisterDID(ctx, caller, verificationMethod)
		return err
	})
	return doc, err
}

func (h *Host) RevokeDID(caller, account string) error {
	return h.execute(OpRevokeDID, func(ctx sdk.Context) error {
		return h.DIDKeeper.RevokeDID(ctx, caller, account)
	})
}

func (h *Host) RegisterDataset(caller, id, title, description string, lineage []string) (provtypes.Dataset, error) {
	var dataset provtypes.Dataset
	err := h.execute(OpRegisterDataset, func(ctx sdk.Context) (err error) {
		dataset, err = h.ProvenanceKeeper.RegisterDataset(ctx, caller, id, title, description, lineage)
		return err
	})
	return dataset, err
}
