package api

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks . Ledger,ReadModel

import (
	sdkmath "cosmossdk.io/math"

	"github.com/daic-network/daic-node/indexer"
	didtypes "github.com/daic-network/daic-node/x/didregistry/types"
	provtypes "github.com/daic-network/daic-node/x/provenance/types"
	qfkeeper "github.com/daic-network/daic-node/x/qfledger/keeper"
	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

// Ledger defines the host methods needed by the API server
type Ledger interface {
	Height() int64

	GetProposal(id uint64) (qftypes.Proposal, bool, error)
	GetAllProposals() ([]qftypes.Proposal, error)
	GetProposalCount() (uint64, error)
	GetMatchingPool() (sdkmath.Uint, error)
	GetMatchedFunding(id uint64) (sdkmath.Uint, error)
	GetMatchedFundingAll() ([]qfkeeper.MatchedFunding, error)
	GetParams() (qftypes.Params, error)
	ResolveDID(account string) (didtypes.DIDDocument, bool, error)
	GetAllDIDs() ([]didtypes.DIDDocument, error)
	GetAllDatasets() ([]provtypes.Dataset, error)
	GetDataset(id string) (provtypes.Dataset, bool, error)
	GetDatasetVersion(id string, version uint64) (provtypes.Dataset, bool, error)
	GetDatasetHistory(id string) ([]provtypes.Dataset, error)

	CreateProposal(caller, title, description string) (uint64, error)
	Contribute(caller string, id uint64, amount sdkmath.Uint) error
	MarkFunded(caller string, id uint64) error
	MarkCompleted(caller string, id uint64) error
	UpdateParams(caller string, params qftypes.Params) error
	RegisterDID(caller, verificationMethod string) (didtypes.DIDDocument, error)
	RevokeDID(caller, account string) error
	RegisterDataset(caller, id, title, description string, lineage []string) (provtypes.Dataset, error)
}

// ReadModel defines the indexer queries served by the API
type ReadModel interface {
	ListContributions(id uint64, limit int) ([]indexer.ContributionRecord, error)
	ContributorTotals(id uint64) ([]indexer.ContributorTotal, error)
	TopProposals(limit int) ([]indexer.ProposalRecord, error)
}
