package types

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeDatasetRegistered = "dataset_registered"
)

type DatasetRegisteredEvent struct {
	DatasetID string   `json:"dataset_id"`
	Owner     string   `json:"owner"`
	Version   uint64   `json:"version"`
	Lineage   []string `json:"lineage"`
}

func NewDatasetRegisteredEvent(e DatasetRegisteredEvent) (sdk.Event, error) {
	bz, err := json.Marshal(e)
	if err != nil {
		return sdk.Event{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return sdk.NewEvent(
		EventTypeDatasetRegistered,
		sdk.NewAttribute("dataset_id", e.DatasetID),
		sdk.NewAttribute("owner", e.Owner),
		sdk.NewAttribute("version", fmt.Sprintf("%d", e.Version)),
		sdk.NewAttribute("data", string(bz)),
	), nil
}
