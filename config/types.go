package config

import (
	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

// DBBackend names the key-value engine that persists ledger state.
type DBBackend string

const (
	// DBBackendGoLevelDB keeps state on disk under <NodeHome>/data.
	DBBackendGoLevelDB DBBackend = "goleveldb"

	// DBBackendPebbleDB keeps state on disk under <NodeHome>/data using pebble.
	DBBackendPebbleDB DBBackend = "pebbledb"

	// DBBackendMemDB keeps state in memory; it is lost on shutdown.
	DBBackendMemDB DBBackend = "memdb"
)

type Config struct {
	// Log Config
	LogLevel   int    `json:"log_level"`   // e.g., 0 = debug, 1 = info, etc.
	LogFormat  string `json:"log_format"`  // "json" or "console"
	LogSampler bool   `json:"log_sampler"` // if true, samples logs (e.g., 1 in 5)

	// Node Config
	NodeHome string `json:"node_home"` // Node home directory (default: ~/.daic)
	ChainID  string `json:"chain_id"`  // Chain ID stamped on every block header (default: daic-local-1)

	// Storage
	DBBackend     DBBackend `json:"db_backend"`      // goleveldb, pebbledb or memdb (default: goleveldb)
	IndexerDBFile string    `json:"indexer_db_file"` // SQLite read model file under <NodeHome>/data (default: indexer.db)

	// Query Server Config
	QueryServerPort int  `json:"query_server_port"` // Port for HTTP query server (default: 8080)
	MetricsEnabled  bool `json:"metrics_enabled"`   // Serve /metrics on the query server

	// Ledger
	CheckInvariants bool           `json:"check_invariants"` // Run ledger invariants before every commit
	Authority       string         `json:"authority"`        // Identity allowed to update ledger params (default: gov module address)
	LedgerParams    qftypes.Params `json:"ledger_params"`    // Params written at genesis
}
