package types

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeDIDRegistered = "did_registered"
	EventTypeDIDRevoked    = "did_revoked"
)

// DIDEvent is emitted when a document is registered, updated or revoked.
type DIDEvent struct {
	DID        string `json:"did"`
	Controller string `json:"controller"`
	Caller     string `json:"caller"`
}

// NewDIDEvent creates and returns a Cosmos SDK event of the given type.
func NewDIDEvent(eventType string, e DIDEvent) (sdk.Event, error) {
	bz, err := json.Marshal(e)
	if err != nil {
		return sdk.Event{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return sdk.NewEvent(
		eventType,
		sdk.NewAttribute("did", e.DID),
		sdk.NewAttribute("controller", e.Controller),
		sdk.NewAttribute("data", string(bz)),
	), nil
}
