package types

import (
	"encoding/json"
)

// Params tune how strictly the ledger applies its lifecycle rules.
type Params struct {
	// EnforceForwardStatus rejects status changes that skip backwards or
	// repeat, such as marking a Completed proposal as Funded.
	EnforceForwardStatus bool `json:"enforce_forward_status"`

	// RejectZeroContributions fails contributions that carry no deposit.
	RejectZeroContributions bool `json:"reject_zero_contributions"`
}

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{
		EnforceForwardStatus:    false,
		RejectZeroContributions: false,
	}
}

// Stringer method for Params.
func (p Params) String() string {
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}

	return string(bz)
}

// ValidateBasic does the sanity check on the params.
func (p Params) ValidateBasic() error {
	return nil
}
