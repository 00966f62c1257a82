package api

import (
	"time"

	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

// QueryResponse represents the standard query response format
type QueryResponse struct {
	Data        interface{} `json:"data"`
	Height      int64       `json:"height"`
	LastFetched time.Time   `json:"last_fetched"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MatchedFundingResponse is the body of /proposals/{id}/matched-funding and
// one entry of /matched-funding
type MatchedFundingResponse struct {
	ProposalID uint64 `json:"proposal_id"`
	Matched    string `json:"matched"`
}

// CreateProposalRequest is the body of POST /api/v1/tx/create-proposal
type CreateProposalRequest struct {
	Caller      string `json:"caller"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ContributeRequest is the body of POST /api/v1/tx/contribute. Amount is a
// decimal string so that 256-bit values survive JSON.
type ContributeRequest struct {
	Caller     string `json:"caller"`
	ProposalID uint64 `json:"proposal_id"`
	Amount     string `json:"amount"`
}

// StatusRequest is the body of POST /api/v1/tx/mark-funded and mark-completed
type StatusRequest struct {
	Caller     string `json:"caller"`
	ProposalID uint64 `json:"proposal_id"`
}

// UpdateParamsRequest is the body of POST /api/v1/tx/update-params. Caller
// must be the ledger authority.
type UpdateParamsRequest struct {
	Caller string         `json:"caller"`
	Params qftypes.Params `json:"params"`
}

// RegisterDIDRequest is the body of POST /api/v1/tx/register-did
type RegisterDIDRequest struct {
	Caller             string `json:"caller"`
	VerificationMethod string `json:"verification_method"`
}

// RevokeDIDRequest is the body of POST /api/v1/tx/revoke-did
type RevokeDIDRequest struct {
	Caller  string `json:"caller"`
	Account string `json:"account"`
}

// RegisterDatasetRequest is the body of POST /api/v1/tx/register-dataset
type RegisterDatasetRequest struct {
	Caller      string   `json:"caller"`
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Lineage     []string `json:"lineage"`
}

// ProposalIDResponse is returned by create-proposal
type ProposalIDResponse struct {
	ProposalID uint64 `json:"proposal_id"`
}
