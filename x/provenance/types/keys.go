package types

import "cosmossdk.io/collections"

var (
	// DatasetsKey saves the latest version of every dataset.
	DatasetsKey = collections.NewPrefix(0)

	// DatasetsName is the name of the datasets collection.
	DatasetsName = "datasets"

	// HistoryKey saves superseded dataset versions keyed by (id, version).
	HistoryKey = collections.NewPrefix(1)

	// HistoryName is the name of the history collection.
	HistoryName = "dataset_history"
)

const (
	ModuleName = "provenance"

	StoreKey = ModuleName
)
