package metrics

import (
	"context"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"

	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

func TestLedgerSink_HandleEvents(t *testing.T) {
	created, err := qftypes.NewProposalCreatedEvent(qftypes.ProposalCreatedEvent{ProposalID: 4, Proposer: "alice"})
	require.NoError(t, err)
	contributed, err := qftypes.NewContributionEvent(qftypes.ContributionEvent{
		ProposalID:    4,
		Contributor:   "bob",
		Amount:        "25",
		Votes:         1,
		VoterCount:    1,
		Contributions: "25",
		MatchingPool:  "1025",
	})
	require.NoError(t, err)
	funded, err := qftypes.NewStatusChangedEvent(qftypes.StatusChangedEvent{ProposalID: 4, Caller: "alice", From: "Active", To: "Funded"})
	require.NoError(t, err)

	proposalsBefore := testutil.ToFloat64(ProposalsCreated)
	contributionsBefore := testutil.ToFloat64(ContributionsTotal)
	fundedBefore := testutil.ToFloat64(StatusChanges.WithLabelValues("Funded"))

	sink := NewLedgerSink()
	err = sink.HandleEvents(context.Background(), 12, sdk.Events{created, contributed, funded, sdk.NewEvent("unrelated")})
	require.NoError(t, err)

	require.Equal(t, proposalsBefore+1, testutil.ToFloat64(ProposalsCreated))
	require.Equal(t, contributionsBefore+1, testutil.ToFloat64(ContributionsTotal))
	require.Equal(t, fundedBefore+1, testutil.ToFloat64(StatusChanges.WithLabelValues("Funded")))
	require.Equal(t, float64(5), testutil.ToFloat64(ProposalCount))
	require.Equal(t, float64(1025), testutil.ToFloat64(MatchingPool))
	require.Equal(t, float64(12), testutil.ToFloat64(BlockHeight))
}

func TestObserveCall(t *testing.T) {
	okBefore := testutil.ToFloat64(CallsTotal.WithLabelValues("contribute", ResultOK))
	errBefore := testutil.ToFloat64(CallsTotal.WithLabelValues("contribute", ResultError))

	ObserveCall("contribute", time.Now(), nil)
	ObserveCall("contribute", time.Now(), context.Canceled)

	require.Equal(t, okBefore+1, testutil.ToFloat64(CallsTotal.WithLabelValues("contribute", ResultOK)))
	require.Equal(t, errBefore+1, testutil.ToFloat64(CallsTotal.WithLabelValues("contribute", ResultError)))
}

func TestSeedLedgerGauges(t *testing.T) {
	SeedLedgerGauges(9, sdkmath.NewUint(4200), 3)

	require.Equal(t, float64(9), testutil.ToFloat64(BlockHeight))
	require.Equal(t, float64(4200), testutil.ToFloat64(MatchingPool))
	require.Equal(t, float64(3), testutil.ToFloat64(ProposalCount))

	SeedLedgerGauges(1, sdkmath.ZeroUint(), 0)
	require.Equal(t, float64(0), testutil.ToFloat64(MatchingPool))
	require.Equal(t, float64(0), testutil.ToFloat64(ProposalCount))
}
