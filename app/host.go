package app

import (
	"context"
	"os"
	"sync"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/daic-network/daic-node/config"
	"github.com/daic-network/daic-node/logger"
	"github.com/daic-network/daic-node/metrics"
	didkeeper "github.com/daic-network/daic-node/x/didregistry/keeper"
	didtypes "github.com/daic-network/daic-node/x/didregistry/types"
	provkeeper "github.com/daic-network/daic-node/x/provenance/keeper"
	provtypes "github.com/daic-network/daic-node/x/provenance/types"
	qfkeeper "github.com/daic-network/daic-node/x/qfledger/keeper"
	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

const stateDBName = "state"

// EventSink receives the events of every committed call, in emission order.
type EventSink interface {
	HandleEvents(ctx context.Context, height int64, events sdk.Events) error
}

// Host owns the persistent state of the ledger modules and executes calls
// against it one at a time. Every state-changing call runs as its own block:
// it is written and committed only when the operation succeeds.
type Host struct {
	mu sync.Mutex

	logger  zerolog.Logger
	chainID string
	now     func() time.Time

	db  dbm.DB
	cms storetypes.CommitMultiStore

	moduleLogger    log.Logger
	invariants      *invariantRegistry
	checkInvariants bool
	sinks           []EventSink

	LedgerKeeper     qfkeeper.Keeper
	DIDKeeper        didkeeper.Keeper
	ProvenanceKeeper provkeeper.Keeper
}

// NewHost opens the state database selected by cfg and loads the latest
// committed version.
func NewHost(cfg config.Config, baseLogger zerolog.Logger, sinks ...EventSink) (*Host, error) {
	db, err := openStateDB(cfg)
	if err != nil {
		return nil, err
	}

	h, err := newHost(db, cfg, baseLogger, sinks...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return h, nil
}

func openStateDB(cfg config.Config) (dbm.DB, error) {
	if cfg.DBBackend == config.DBBackendMemDB {
		return dbm.NewMemDB(), nil
	}

	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, errors.Wrapf(err, "failed to create data directory %s", dataDir)
	}
	db, err := dbm.NewDB(stateDBName, dbm.BackendType(cfg.DBBackend), dataDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s state database", cfg.DBBackend)
	}
	return db, nil
}

func newHost(db dbm.DB, cfg config.Config, baseLogger zerolog.Logger, sinks ...EventSink) (*Host, error) {
	hostLogger := baseLogger.With().Str("component", "host").Logger()
	moduleLogger := logger.ModuleLogger(baseLogger)

	keys := storetypes.NewKVStoreKeys(qftypes.StoreKey, didtypes.StoreKey, provtypes.StoreKey)
	cms := store.NewCommitMultiStore(db, moduleLogger, storemetrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "failed to load state")
	}

	h := &Host{
		logger:          hostLogger,
		chainID:         cfg.ChainID,
		now:             time.Now,
		db:              db,
		cms:             cms,
		moduleLogger:    moduleLogger,
		invariants:      &invariantRegistry{},
		checkInvariants: cfg.CheckInvariants,
		sinks:           sinks,

		LedgerKeeper: qfkeeper.NewKeeper(
			runtime.NewKVStoreService(keys[qftypes.StoreKey]),
			moduleLogger,
			cfg.Authority,
		),
		DIDKeeper: didkeeper.NewKeeper(
			runtime.NewKVStoreService(keys[didtypes.StoreKey]),
			moduleLogger,
		),
		ProvenanceKeeper: provkeeper.NewKeeper(
			runtime.NewKVStoreService(keys[provtypes.StoreKey]),
			moduleLogger,
		),
	}
	qfkeeper.RegisterInvariants(h.invariants, h.LedgerKeeper)

	h.logger.Info().
		Int64("height", h.lastHeight()).
		Bool("check_invariants", h.checkInvariants).
		Msg("state loaded")
	return h, nil
}

// AddSink registers another receiver of committed events.
func (h *Host) AddSink(sink EventSink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sinks = append(h.sinks, sink)
}

// Height returns the version of the last committed call.
func (h *Host) Height() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastHeight()
}

func (h *Host) lastHeight() int64 {
	return h.cms.LastCommitID().Version
}

// InvariantRoutes lists the registered invariants.
func (h *Host) InvariantRoutes() []string {
	return h.invariants.Routes()
}

// Close releases the state database.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.db.Close()
}

// execute runs fn as the next block. State changes and events are discarded
// when fn fails or, with invariant checks enabled, leaves a broken invariant.
func (h *Host) execute(operation string, fn func(ctx sdk.Context) error) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveCall(operation, start, err) }()

	h.mu.Lock()
	defer h.mu.Unlock()

	height := h.lastHeight() + 1
	cache := h.cms.CacheMultiStore()
	ctx := sdk.NewContext(cache, cmtproto.Header{
		ChainID: h.chainID,
		Height:  height,
		Time:    h.now().UTC(),
	}, false, h.moduleLogger)

	if err := fn(ctx); err != nil {
		h.logger.Debug().Str("operation", operation).Err(err).Msg("call rejected")
		return err
	}

	if h.checkInvariants {
		if err := h.invariants.assert(ctx); err != nil {
			h.logger.Error().Str("operation", operation).Err(err).Msg("call rolled back")
			return err
		}
	}

	cache.Write()
	commitID := h.cms.Commit()

	events := ctx.EventManager().Events()
	for _, sink := range h.sinks {
		if err := sink.HandleEvents(context.Background(), commitID.Version, events); err != nil {
			h.logger.Error().Err(err).Int64("height", commitID.Version).Msg("event sink failed")
		}
	}

	h.logger.Debug().
		Str("operation", operation).
		Int64("height", commitID.Version).
		Int("events", len(events)).
		Msg("call committed")
	return nil
}

// query runs fn against the last committed state. Nothing it writes is kept.
func (h *Host) query(fn func(ctx sdk.Context) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := sdk.NewContext(h.cms.CacheMultiStore(), cmtproto.Header{
		ChainID: h.chainID,
		Height:  h.lastHeight(),
	}, false, h.moduleLogger)
	return fn(ctx)
}

// IsInitialized reports whether genesis or any call has been committed.
func (h *Host) IsInitialized() bool {
	return h.Height() > 0
}

// InitGenesis loads g into empty state as the first block.
func (h *Host) InitGenesis(g *GenesisState) error {
	if h.IsInitialized() {
		return errors.Errorf("state already initialized at height %d", h.Height())
	}
	if err := g.Validate(); err != nil {
		return errors.Wrap(err, "invalid genesis")
	}

	return h.execute("init_genesis", func(ctx sdk.Context) error {
		if err := h.LedgerKeeper.InitGenesis(ctx, g.Ledger); err != nil {
			return errors.Wrap(err, qftypes.ModuleName)
		}
		if err := h.DIDKeeper.InitGenesis(ctx, g.DIDs); err != nil {
			return errors.Wrap(err, didtypes.ModuleName)
		}
		if err := h.ProvenanceKeeper.InitGenesis(ctx, g.Provenance); err != nil {
			return errors.Wrap(err, provtypes.ModuleName)
		}
		return nil
	})
}

// ExportGenesis snapshots the committed state of every module.
func (h *Host) ExportGenesis() (*GenesisState, error) {
	var g *GenesisState
	err := h.query(func(ctx sdk.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("failed to export genesis: %v", r)
			}
		}()
		g = &GenesisState{
			Ledger:     h.LedgerKeeper.ExportGenesis(ctx),
			DIDs:       h.DIDKeeper.ExportGenesis(ctx),
			Provenance: h.ProvenanceKeeper.ExportGenesis(ctx),
		}
		return nil
	})
	return g, err
}
