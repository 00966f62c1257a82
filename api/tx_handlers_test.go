package api

import (
	"net/http"
	"testing"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	didtypes "github.com/daic-network/daic-node/x/didregistry/types"
	provtypes "github.com/daic-network/daic-node/x/provenance/types"
	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

func TestHandleCreateProposal(t *testing.T) {
	ts := setupTestServer(t, false)

	ts.ledger.EXPECT().CreateProposal("alice", "Library", "books").Return(uint64(5), nil)
	ts.ledger.EXPECT().Height().Return(int64(6))

	w := ts.do(http.MethodPost, "/api/v1/tx/create-proposal", `{"caller":"alice","title":"Library","description":"books"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got ProposalIDResponse
	height := decodeData(t, w, &got)
	assert.Equal(t, uint64(5), got.ProposalID)
	assert.Equal(t, int64(6), height)
}

func TestHandleContribute(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		setup      func(ts *testServer)
		wantStatus int
	}{
		{
			name: "accepted",
			body: `{"caller":"bob","proposal_id":2,"amount":"1_000"}`,
			setup: func(ts *testServer) {
				ts.ledger.EXPECT().Contribute("bob", uint64(2), sdkmath.NewUint(1000)).Return(nil)
				ts.ledger.EXPECT().Height().Return(int64(3))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown proposal",
			body: `{"caller":"bob","proposal_id":9,"amount":"1"}`,
			setup: func(ts *testServer) {
				ts.ledger.EXPECT().Contribute("bob", uint64(9), sdkmath.NewUint(1)).
					Return(errorsmod.Wrap(qftypes.ErrProposalNotFound, "proposal 9"))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "not active",
			body: `{"caller":"bob","proposal_id":2,"amount":"1"}`,
			setup: func(ts *testServer) {
				ts.ledger.EXPECT().Contribute("bob", uint64(2), sdkmath.NewUint(1)).
					Return(errorsmod.Wrap(qftypes.ErrInvalidState, "proposal 2 is Funded"))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "overflow",
			body: `{"caller":"bob","proposal_id":2,"amount":"1"}`,
			setup: func(ts *testServer) {
				ts.ledger.EXPECT().Contribute("bob", uint64(2), sdkmath.NewUint(1)).Return(qftypes.ErrAmountOverflow)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "negative amount",
			body:       `{"caller":"bob","proposal_id":2,"amount":"-5"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "numeric amount",
			body:       `{"caller":"bob","proposal_id":2,"amount":5}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"caller":"bob","proposal_id":2,"amount":"5","memo":"x"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "trailing data",
			body:       `{"caller":"bob","proposal_id":2,"amount":"5"} {}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := setupTestServer(t, false)
			if tc.setup != nil {
				tc.setup(ts)
			}

			w := ts.do(http.MethodPost, "/api/v1/tx/contribute", tc.body)
			assert.Equal(t, tc.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestHandleStatusChanges(t *testing.T) {
	ts := setupTestServer(t, false)

	ts.ledger.EXPECT().MarkFunded("alice", uint64(1)).Return(nil)
	ts.ledger.EXPECT().MarkCompleted("bob", uint64(1)).
		Return(errorsmod.Wrap(qftypes.ErrUnauthorized, "only proposer alice"))
	ts.ledger.EXPECT().Height().Return(int64(2))

	w := ts.do(http.MethodPost, "/api/v1/tx/mark-funded", `{"caller":"alice","proposal_id":1}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodPost, "/api/v1/tx/mark-completed", `{"caller":"bob","proposal_id":1}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, decodeError(t, w), "unauthorized")
}

func TestHandleUpdateParams(t *testing.T) {
	ts := setupTestServer(t, false)

	want := qftypes.Params{EnforceForwardStatus: true}
	ts.ledger.EXPECT().UpdateParams("gov", want).Return(nil)
	ts.ledger.EXPECT().UpdateParams("mallory", want).
		Return(errorsmod.Wrap(qftypes.ErrUnauthorized, "invalid authority; expected gov, got mallory"))
	ts.ledger.EXPECT().Height().Return(int64(4))

	body := `{"caller":"gov","params":{"enforce_forward_status":true,"reject_zero_contributions":false}}`
	w := ts.do(http.MethodPost, "/api/v1/tx/update-params", body)
	require.Equal(t, http.StatusOK, w.Code)
	var got qftypes.Params
	decodeData(t, w, &got)
	assert.Equal(t, want, got)

	w = ts.do(http.MethodPost, "/api/v1/tx/update-params", `{"caller":"mallory","params":{"enforce_forward_status":true}}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do(http.MethodPost, "/api/v1/tx/update-params", `{"caller":"gov","params":{"max_votes":3}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCollaboratorTxs(t *testing.T) {
	ts := setupTestServer(t, false)

	ts.ledger.EXPECT().RegisterDID("alice", "ed25519:key").
		Return(didtypes.NewDIDDocument("alice", "ed25519:key", fetchedAt), nil)
	ts.ledger.EXPECT().RegisterDID("", "ed25519:key").
		Return(didtypes.DIDDocument{}, errorsmod.Wrap(didtypes.ErrInvalidCaller, "caller identity is empty"))
	ts.ledger.EXPECT().RevokeDID("alice", "alice").Return(nil)
	ts.ledger.EXPECT().RevokeDID("alice", "alice").Return(errorsmod.Wrap(didtypes.ErrDIDRevoked, "did:daic:alice"))
	ts.ledger.EXPECT().RegisterDataset("bob", "clean", "Clean", "", []string{"raw"}).
		Return(provtypes.Dataset{Id: "clean", Owner: "bob", Version: 1, Lineage: []string{"raw"}}, nil)
	ts.ledger.EXPECT().RegisterDataset("bob", "model", "", "", []string{"gone"}).
		Return(provtypes.Dataset{}, errorsmod.Wrap(provtypes.ErrDatasetNotFound, "lineage parent gone"))
	ts.ledger.EXPECT().Height().Return(int64(1)).AnyTimes()

	w := ts.do(http.MethodPost, "/api/v1/tx/register-did", `{"caller":"alice","verification_method":"ed25519:key"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var doc didtypes.DIDDocument
	decodeData(t, w, &doc)
	assert.Equal(t, "did:daic:alice", doc.Id)

	w = ts.do(http.MethodPost, "/api/v1/tx/register-did", `{"caller":"","verification_method":"ed25519:key"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodPost, "/api/v1/tx/revoke-did", `{"caller":"alice","account":"alice"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w = ts.do(http.MethodPost, "/api/v1/tx/revoke-did", `{"caller":"alice","account":"alice"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.do(http.MethodPost, "/api/v1/tx/register-dataset", `{"caller":"bob","id":"clean","title":"Clean","lineage":["raw"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	var dataset provtypes.Dataset
	decodeData(t, w, &dataset)
	assert.Equal(t, []string{"raw"}, dataset.Lineage)

	w = ts.do(http.MethodPost, "/api/v1/tx/register-dataset", `{"caller":"bob","id":"model","lineage":["gone"]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusForError(t *testing.T) {
	testCases := []struct {
		err  error
		want int
	}{
		{errorsmod.Wrap(qftypes.ErrProposalNotFound, "x"), http.StatusNotFound},
		{errorsmod.Wrap(didtypes.ErrDIDNotFound, "x"), http.StatusNotFound},
		{errorsmod.Wrap(provtypes.ErrUnauthorized, "x"), http.StatusForbidden},
		{errorsmod.Wrap(qftypes.ErrInvalidState, "x"), http.StatusConflict},
		{errorsmod.Wrap(qftypes.ErrZeroContribution, "x"), http.StatusBadRequest},
		{errorsmod.Wrap(provtypes.ErrInvalidLineage, "x"), http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, statusForError(tc.err), tc.err.Error())
	}
}
