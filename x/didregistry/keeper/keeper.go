package keeper

import (
	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/daic-network/daic-node/utils"
	"github.com/daic-network/daic-node/x/didregistry/types"
)

type Keeper struct {
	logger        log.Logger
	schemaBuilder *collections.SchemaBuilder

	Documents collections.Map[string, types.DIDDocument] // account → document
}

// NewKeeper creates a new Keeper instance
func NewKeeper(storeService storetypes.KVStoreService, logger log.Logger) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	return Keeper{
		logger:        logger.With(log.ModuleKey, "x/"+types.ModuleName),
		schemaBuilder: sb,
		Documents: collections.NewMap(sb, types.DocumentsKey, types.DocumentsName,
			collections.StringKey, utils.JSONValue[types.DIDDocument]("didregistry.DIDDocument")),
	}
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}
