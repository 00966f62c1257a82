package keeper

import (
	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/daic-network/daic-node/utils"
	"github.com/daic-network/daic-node/x/qfledger/types"
)

type Keeper struct {
	logger        log.Logger
	schemaBuilder *collections.SchemaBuilder

	// Module State
	Params        collections.Item[types.Params]          // module params
	Proposals     collections.Map[uint64, types.Proposal] // proposal id → proposal, ids ascend in creation order
	ProposalCount collections.Sequence                    // next proposal id
	MatchingPool  collections.Item[sdkmath.Uint]          // sum of every accepted contribution

	authority string
}

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	authority string,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	if authority == "" {
		authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	}

	k := Keeper{
		logger:        logger,
		schemaBuilder: sb,

		Params:        collections.NewItem(sb, types.ParamsKey, types.ParamsName, utils.JSONValue[types.Params]("qfledger.Params")),
		Proposals:     collections.NewMap(sb, types.ProposalsKey, types.ProposalsName, collections.Uint64Key, types.ProposalValue),
		ProposalCount: collections.NewSequence(sb, types.ProposalCountKey, types.ProposalCountName),
		MatchingPool:  collections.NewItem(sb, types.MatchingPoolKey, types.MatchingPoolName, types.AmountValue),

		authority: authority,
	}

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// GetAuthority returns the identity allowed to update params.
func (k Keeper) GetAuthority() string {
	return k.authority
}

func (k Keeper) SchemaBuilder() *collections.SchemaBuilder {
	return k.schemaBuilder
}
