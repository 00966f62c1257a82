package keeper

import (
	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/daic-network/daic-node/utils"
	"github.com/daic-network/daic-node/x/provenance/types"
)

type Keeper struct {
	logger        log.Logger
	schemaBuilder *collections.SchemaBuilder

	Datasets collections.Map[string, types.Dataset]
	History  collections.Map[collections.Pair[string, uint64], types.Dataset]
}

// NewKeeper creates a new Keeper instance
func NewKeeper(storeService storetypes.KVStoreService, logger log.Logger) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	return Keeper{
		logger:        logger.With(log.ModuleKey, "x/"+types.ModuleName),
		schemaBuilder: sb,
		Datasets: collections.NewMap(sb, types.DatasetsKey, types.DatasetsName,
			collections.StringKey, utils.JSONValue[types.Dataset]("provenance.Dataset")),
		History: collections.NewMap(sb, types.HistoryKey, types.HistoryName,
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key),
			utils.JSONValue[types.Dataset]("provenance.Dataset")),
	}
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}
