package types

import "cosmossdk.io/collections"

var (
	// ParamsKey saves the current module params.
	ParamsKey = collections.NewPrefix(0)

	// ParamsName is the name of the params collection.
	ParamsName = "params"

	// ProposalsKey saves every proposal keyed by id.
	ProposalsKey = collections.NewPrefix(1)

	// ProposalsName is the name of the proposals collection.
	ProposalsName = "proposals"

	// ProposalCountKey saves the next proposal id to assign.
	ProposalCountKey = collections.NewPrefix(2)

	// ProposalCountName is the name of the proposal count sequence.
	ProposalCountName = "proposal_count"

	// MatchingPoolKey saves the ledger-wide sum of contributions.
	MatchingPoolKey = collections.NewPrefix(3)

	// MatchingPoolName is the name of the matching pool collection.
	MatchingPoolName = "matching_pool"
)

const (
	ModuleName = "qfledger"

	StoreKey = ModuleName

	QuerierRoute = ModuleName
)
