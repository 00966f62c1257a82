package metrics

import (
	"context"
	"encoding/json"
	"math/big"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

// SeedLedgerGauges sets the ledger gauges from committed state, so they are
// correct before the first block of a new process reaches the sink.
func SeedLedgerGauges(height int64, pool sdkmath.Uint, proposalCount uint64) {
	BlockHeight.Set(float64(height))
	ProposalCount.Set(float64(proposalCount))
	f, _ := new(big.Float).SetInt(pool.BigInt()).Float64()
	MatchingPool.Set(f)
}

// LedgerSink updates the ledger gauges and counters from committed events.
type LedgerSink struct{}

func NewLedgerSink() LedgerSink {
	return LedgerSink{}
}

func (LedgerSink) HandleEvents(_ context.Context, height int64, events sdk.Events) error {
	BlockHeight.Set(float64(height))

	for _, ev := range events {
		data, ok := qftypes.EventData(ev)
		if !ok {
			continue
		}

		switch ev.Type {
		case qftypes.EventTypeProposalCreated:
			var e qftypes.ProposalCreatedEvent
			if err := json.Unmarshal(data, &e); err != nil {
				return err
			}
			ProposalsCreated.Inc()
			ProposalCount.Set(float64(e.ProposalID + 1))

		case qftypes.EventTypeProposalContribution:
			var e qftypes.ContributionEvent
			if err := json.Unmarshal(data, &e); err != nil {
				return err
			}
			ContributionsTotal.Inc()
			if pool, ok := new(big.Float).SetString(e.MatchingPool); ok {
				f, _ := pool.Float64()
				MatchingPool.Set(f)
			}

		case qftypes.EventTypeProposalStatusChanged:
			var e qftypes.StatusChangedEvent
			if err := json.Unmarshal(data, &e); err != nil {
				return err
			}
			StatusChanges.WithLabelValues(e.To).Inc()
		}
	}
	return nil
}
