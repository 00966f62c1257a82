package app

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	didtypes "github.com/daic-network/daic-node/x/didregistry/types"
	provtypes "github.com/daic-network/daic-node/x/provenance/types"
	qfkeeper "github.com/daic-network/daic-node/x/qfledger/keeper"
	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

func (h *Host) GetProposal(id uint64) (proposal qftypes.Proposal, found bool, err error) {
	err = h.query(func(ctx sdk.Context) error {
		proposal, found, err = h.LedgerKeeper.GetProposal(ctx, id)
		return err
	})
	return proposal, found, err
}

func (h *Host) GetAllProposals() (proposals []qftypes.Proposal, err error) {
	err = h.query(func(ctx sdk.Context) error {
		proposals, err = h.LedgerKeeper.GetAllProposals(ctx)
		return err
	})
	return proposals, err
}

func (h *Host) GetProposalCount() (count uint64, err error) {
	err = h.query(func(ctx sdk.Context) error {
		count, err = h.LedgerKeeper.GetProposalCount(ctx)
		return err
	})
	return count, err
}

func (h *Host) GetMatchingPool() (pool sdkmath.Uint, err error) {
	err = h.query(func(ctx sdk.Context) error {
		pool, err = h.LedgerKeeper.GetMatchingPool(ctx)
		return err
	})
	return pool, err
}

func (h *Host) GetMatchedFunding(id uint64) (matched sdkmath.Uint, err error) {
	err = h.query(func(ctx sdk.Context) error {
		matched, err = h.LedgerKeeper.GetMatchedFunding(ctx, id)
		return err
	})
	return matched, err
}

func (h *Host) GetMatchedFundingAll() (matched []qfkeeper.MatchedFunding, err error) {
	err = h.query(func(ctx sdk.Context) error {
		matched, err = h.LedgerKeeper.GetMatchedFundingAll(ctx)
		return err
	})
	return matched, err
}

func (h *Host) GetParams() (params qftypes.Params, err error) {
	err = h.query(func(ctx sdk.Context) error {
		params, err = h.LedgerKeeper.GetParams(ctx)
		return err
	})
	return params, err
}

func (h *Host) ResolveDID(account string) (doc didtypes.DIDDocument, found bool, err error) {
	err = h.query(func(ctx sdk.Context) error {
		doc, found, err = h.DIDKeeper.ResolveDID(ctx, account)
		return err
	})
	return doc, found, err
}

func (h *Host) GetAllDIDs() (docs []didtypes.DIDDocument, err error) {
	err = h.query(func(ctx sdk.Context) error {
		docs, err = h.DIDKeeper.GetAllDIDs(ctx)
		return err
	})
	return docs, err
}

func (h *Host) GetDataset(id string) (dataset provtypes.Dataset, found bool, err error) {
	err = h.query(func(ctx sdk.Context) error {
		dataset, found, err = h.ProvenanceKeeper.GetDataset(ctx, id)
		return err
	})
	return dataset, found, err
}

func (h *Host) GetDatasetVersion(id string, version uint64) (dataset provtypes.Dataset, found bool, err error) {
	err = h.query(func(ctx sdk.Context) error {
		dataset, found, err = h.ProvenanceKeeper.GetDatasetVersion(ctx, id, version)
		return err
	})
	return dataset, found, err
}

func (h *Host) GetAllDatasets() (datasets []provtypes.Dataset, err error) {
	err = h.query(func(ctx sdk.Context) error {
		datasets, err = h.ProvenanceKeeper.GetAllDatasets(ctx)
		return err
	})
	return datasets, err
}

func (h *Host) GetDatasetHistory(id string) (history []provtypes.Dataset, err error) {
	err = h.query(func(ctx sdk.Context) error {
		history, err = h.ProvenanceKeeper.GetDatasetHistory(ctx, id)
		return err
	})
	return history, err
}
