package api

import (
	"errors"
	"net/http"

	didtypes "github.com/daic-network/daic-node/x/didregistry/types"
	provtypes "github.com/daic-network/daic-node/x/provenance/types"
	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

func isAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusForError maps module errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case isAny(err, qftypes.ErrProposalNotFound, didtypes.ErrDIDNotFound, provtypes.ErrDatasetNotFound):
		return http.StatusNotFound
	case isAny(err, qftypes.ErrUnauthorized, didtypes.ErrUnauthorized, provtypes.ErrUnauthorized):
		return http.StatusForbidden
	case isAny(err, qftypes.ErrInvalidState, didtypes.ErrDIDRevoked):
		return http.StatusConflict
	case isAny(err, qftypes.ErrAmountOverflow):
		return http.StatusUnprocessableEntity
	case isAny(err,
		qftypes.ErrInvalidCaller, qftypes.ErrZeroContribution, qftypes.ErrInvalidProposal,
		didtypes.ErrInvalidCaller, didtypes.ErrInvalidDocument,
		provtypes.ErrInvalidCaller, provtypes.ErrInvalidDataset, provtypes.ErrInvalidLineage,
	):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
