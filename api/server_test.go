package api

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	errorsmod "cosmossdk.io/errors"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daic-network/daic-node/api/mocks"
	"github.com/daic-network/daic-node/indexer"
	didtypes "github.com/daic-network/daic-node/x/didregistry/types"
	provtypes "github.com/daic-network/daic-node/x/provenance/types"
	qfkeeper "github.com/daic-network/daic-node/x/qfledger/keeper"
	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

var fetchedAt = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

type testServer struct {
	server    *Server
	ledger    *mocks.MockLedger
	readModel *mocks.MockReadModel
	router    http.Handler
}

func setupTestServer(t *testing.T, withReadModel bool) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		ledger:    mocks.NewMockLedger(ctrl),
		readModel: mocks.NewMockReadModel(ctrl),
	}
	ts.server = &Server{
		logger:         zerolog.New(zerolog.NewTestWriter(t)),
		ledger:         ts.ledger,
		metricsEnabled: true,
		now:            func() time.Time { return fetchedAt },
	}
	if withReadModel {
		ts.server.readModel = ts.readModel
	}
	ts.router = ts.server.setupRoutes()
	return ts
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) int64 {
	t.Helper()
	var resp struct {
		Data        json.RawMessage `json:"data"`
		Height      int64           `json:"height"`
		LastFetched time.Time       `json:"last_fetched"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, fetchedAt.Equal(resp.LastFetched))
	require.NoError(t, json.Unmarshal(resp.Data, dst))
	return resp.Height
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestSetupRoutes(t *testing.T) {
	ts := setupTestServer(t, true)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"Health endpoint", http.MethodGet, "/health", http.StatusOK},
		{"Metrics endpoint", http.MethodGet, "/metrics", http.StatusOK},
		{"Non-existent endpoint", http.MethodGet, "/api/v1/non-existent", http.StatusNotFound},
		{"Wrong method on query", http.MethodPost, "/api/v1/proposals", http.StatusMethodNotAllowed},
		{"Wrong method on tx", http.MethodGet, "/api/v1/tx/contribute", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := ts.do(tc.method, tc.path, "")
			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestMetricsDisabled(t *testing.T) {
	ts := setupTestServer(t, true)
	ts.server.metricsEnabled = false
	ts.router = ts.server.setupRoutes()

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/metrics", "").Code)
}

func TestHandleHealth(t *testing.T) {
	ts := setupTestServer(t, false)

	w := ts.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestHandleProposal(t *testing.T) {
	ts := setupTestServer(t, false)

	proposal := qftypes.NewProposal(3, "alice", "Garden", "community garden")
	proposal.Votes, proposal.VoterCount = 2, 2
	proposal.Contributions = sdkmath.NewUint(250)

	t.Run("found", func(t *testing.T) {
		ts.ledger.EXPECT().GetProposal(uint64(3)).Return(proposal, true, nil)
		ts.ledger.EXPECT().Height().Return(int64(9))

		w := ts.do(http.MethodGet, "/api/v1/proposals/3", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var got qftypes.Proposal
		height := decodeData(t, w, &got)
		assert.Equal(t, int64(9), height)
		assert.True(t, proposal.Equal(got))
	})

	t.Run("not found", func(t *testing.T) {
		ts.ledger.EXPECT().GetProposal(uint64(4)).Return(qftypes.Proposal{}, false, nil)

		w := ts.do(http.MethodGet, "/api/v1/proposals/4", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, decodeError(t, w), "proposal 4 not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		w := ts.do(http.MethodGet, "/api/v1/proposals/0x10", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleProposals(t *testing.T) {
	ts := setupTestServer(t, false)

	ts.ledger.EXPECT().GetAllProposals().Return([]qftypes.Proposal{
		qftypes.NewProposal(0, "alice", "a", ""),
		qftypes.NewProposal(1, "bob", "b", ""),
	}, nil)
	ts.ledger.EXPECT().Height().Return(int64(2))

	w := ts.do(http.MethodGet, "/api/v1/proposals", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []qftypes.Proposal
	decodeData(t, w, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "bob", got[1].Proposer)
	assert.Equal(t, qftypes.StatusActive, got[1].Status)
}

func TestHandleMatchedFunding(t *testing.T) {
	ts := setupTestServer(t, false)

	t.Run("ok", func(t *testing.T) {
		ts.ledger.EXPECT().GetMatchedFunding(uint64(1)).Return(sdkmath.NewUint(1600), nil)
		ts.ledger.EXPECT().Height().Return(int64(5))

		w := ts.do(http.MethodGet, "/api/v1/proposals/1/matched-funding", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got MatchedFundingResponse
		decodeData(t, w, &got)
		assert.Equal(t, MatchedFundingResponse{ProposalID: 1, Matched: "1600"}, got)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		ts.ledger.EXPECT().GetMatchedFunding(uint64(8)).
			Return(sdkmath.Uint{}, errorsmod.Wrap(qftypes.ErrProposalNotFound, "proposal 8"))

		w := ts.do(http.MethodGet, "/api/v1/proposals/8/matched-funding", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleCountAndPool(t *testing.T) {
	ts := setupTestServer(t, false)

	ts.ledger.EXPECT().GetProposalCount().Return(uint64(7), nil)
	ts.ledger.EXPECT().GetMatchingPool().Return(sdkmath.NewUint(12345), nil)
	ts.ledger.EXPECT().Height().Return(int64(1)).Times(2)

	w := ts.do(http.MethodGet, "/api/v1/proposal-count", "")
	require.Equal(t, http.StatusOK, w.Code)
	var count uint64
	decodeData(t, w, &count)
	assert.Equal(t, uint64(7), count)

	w = ts.do(http.MethodGet, "/api/v1/matching-pool", "")
	require.Equal(t, http.StatusOK, w.Code)
	var pool sdkmath.Uint
	decodeData(t, w, &pool)
	assert.Equal(t, "12345", pool.String())
}

func TestHandleMatchedFundingAllAndParams(t *testing.T) {
	ts := setupTestServer(t, false)

	ts.ledger.EXPECT().GetMatchedFundingAll().Return([]qfkeeper.MatchedFunding{
		{ProposalID: 0, Matched: sdkmath.NewUint(900)},
		{ProposalID: 1, Matched: sdkmath.ZeroUint()},
	}, nil)
	ts.ledger.EXPECT().GetParams().Return(qftypes.Params{RejectZeroContributions: true}, nil)
	ts.ledger.EXPECT().Height().Return(int64(6)).Times(2)

	w := ts.do(http.MethodGet, "/api/v1/matched-funding", "")
	require.Equal(t, http.StatusOK, w.Code)
	var matched []MatchedFundingResponse
	decodeData(t, w, &matched)
	assert.Equal(t, []MatchedFundingResponse{
		{ProposalID: 0, Matched: "900"},
		{ProposalID: 1, Matched: "0"},
	}, matched)

	w = ts.do(http.MethodGet, "/api/v1/params", "")
	require.Equal(t, http.StatusOK, w.Code)
	var params qftypes.Params
	decodeData(t, w, &params)
	assert.True(t, params.RejectZeroContributions)
	assert.False(t, params.EnforceForwardStatus)
}

func TestReadModelRoutes(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		ts := setupTestServer(t, false)
		for _, path := range []string{
			"/api/v1/proposals/1/contributions",
			"/api/v1/proposals/1/contributors",
			"/api/v1/top-proposals",
		} {
			assert.Equal(t, http.StatusServiceUnavailable, ts.do(http.MethodGet, path, "").Code, path)
		}
	})

	t.Run("contributions with limit", func(t *testing.T) {
		ts := setupTestServer(t, true)
		ts.readModel.EXPECT().ListContributions(uint64(1), 2).Return([]indexer.ContributionRecord{
			{ProposalID: 1, Contributor: "bob", Amount: "5", BlockHeight: 4},
			{ProposalID: 1, Contributor: "carol", Amount: "7", BlockHeight: 3},
		}, nil)
		ts.ledger.EXPECT().Height().Return(int64(4))

		w := ts.do(http.MethodGet, "/api/v1/proposals/1/contributions?limit=2", "")
		require.Equal(t, http.StatusOK, w.Code)
		var got []indexer.ContributionRecord
		decodeData(t, w, &got)
		require.Len(t, got, 2)
		assert.Equal(t, "bob", got[0].Contributor)
	})

	t.Run("default limit", func(t *testing.T) {
		ts := setupTestServer(t, true)
		ts.readModel.EXPECT().TopProposals(defaultListLimit).Return([]indexer.ProposalRecord{}, nil)
		ts.ledger.EXPECT().Height().Return(int64(4))

		assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/top-proposals", "").Code)
	})

	t.Run("invalid limit", func(t *testing.T) {
		ts := setupTestServer(t, true)
		assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/v1/top-proposals?limit=-1", "").Code)
		assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/v1/top-proposals?limit=abc", "").Code)
	})

	t.Run("contributors", func(t *testing.T) {
		ts := setupTestServer(t, true)
		ts.readModel.EXPECT().ContributorTotals(uint64(2)).Return([]indexer.ContributorTotal{
			{Contributor: "bob", Total: "9", Count: 2},
		}, nil)
		ts.ledger.EXPECT().Height().Return(int64(4))

		w := ts.do(http.MethodGet, "/api/v1/proposals/2/contributors", "")
		require.Equal(t, http.StatusOK, w.Code)
		var got []indexer.ContributorTotal
		decodeData(t, w, &got)
		assert.Equal(t, []indexer.ContributorTotal{{Contributor: "bob", Total: "9", Count: 2}}, got)
	})
}

func TestCollaboratorRoutes(t *testing.T) {
	ts := setupTestServer(t, false)

	doc := didtypes.NewDIDDocument("alice", "ed25519:key", fetchedAt)
	ts.ledger.EXPECT().ResolveDID("alice").Return(doc, true, nil)
	ts.ledger.EXPECT().ResolveDID("nobody").Return(didtypes.DIDDocument{}, false, nil)
	ts.ledger.EXPECT().GetDataset("raw").Return(provtypes.Dataset{Id: "raw", Owner: "alice", Version: 2}, true, nil)
	ts.ledger.EXPECT().GetDataset("missing").Return(provtypes.Dataset{}, false, nil)
	ts.ledger.EXPECT().GetDatasetHistory("missing").
		Return(nil, errorsmod.Wrap(provtypes.ErrDatasetNotFound, "dataset missing"))
	ts.ledger.EXPECT().GetAllDatasets().Return([]provtypes.Dataset{{Id: "raw", Owner: "alice", Version: 2}}, nil)
	ts.ledger.EXPECT().GetAllDIDs().Return([]didtypes.DIDDocument{doc}, nil)
	ts.ledger.EXPECT().GetDatasetVersion("raw", uint64(1)).
		Return(provtypes.Dataset{Id: "raw", Owner: "alice", Version: 1, Title: "first"}, true, nil)
	ts.ledger.EXPECT().GetDatasetVersion("raw", uint64(7)).Return(provtypes.Dataset{}, false, nil)
	ts.ledger.EXPECT().Height().Return(int64(3)).AnyTimes()

	w := ts.do(http.MethodGet, "/api/v1/dids/alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	var gotDoc didtypes.DIDDocument
	decodeData(t, w, &gotDoc)
	assert.Equal(t, "did:daic:alice", gotDoc.Id)

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/v1/dids/nobody", "").Code)

	w = ts.do(http.MethodGet, "/api/v1/datasets/raw", "")
	require.Equal(t, http.StatusOK, w.Code)
	var gotDataset provtypes.Dataset
	decodeData(t, w, &gotDataset)
	assert.Equal(t, uint64(2), gotDataset.Version)

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/v1/datasets/missing", "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/v1/datasets/missing/history", "").Code)

	w = ts.do(http.MethodGet, "/api/v1/datasets", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodGet, "/api/v1/dids", "")
	require.Equal(t, http.StatusOK, w.Code)
	var docs []didtypes.DIDDocument
	decodeData(t, w, &docs)
	require.Len(t, docs, 1)
	assert.Equal(t, "did:daic:alice", docs[0].Id)

	w = ts.do(http.MethodGet, "/api/v1/datasets/raw/versions/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var version provtypes.Dataset
	decodeData(t, w, &version)
	assert.Equal(t, "first", version.Title)

	w = ts.do(http.MethodGet, "/api/v1/datasets/raw/versions/7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeError(t, w), "has no version 7")

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/v1/datasets/raw/versions/0", "").Code)
}

func TestServer_StartAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedger(ctrl)

	s := NewServer(zerolog.Nop(), 0, ledger, nil, false)
	require.NoError(t, s.Start())
	require.NoError(t, s.Stop())
}

func TestServer_StartFailsOnBoundPort(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	ctrl := gomock.NewController(t)
	port := ln.Addr().(*net.TCPAddr).Port
	s := NewServer(zerolog.Nop(), port, mocks.NewMockLedger(ctrl), nil, false)

	err = s.Start()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to bind")
}
