package indexer

import (
	"context"
	"encoding/json"
	"math/big"
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/daic-network/daic-node/metrics"
	qftypes "github.com/daic-network/daic-node/x/qfledger/types"
)

// Store projects committed ledger events into the read model.
type Store struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewStore creates a new read model store.
func NewStore(db *gorm.DB, logger zerolog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger.With().Str("component", "indexer").Logger(),
	}
}

// HandleEvents applies the ledger events of one committed block. Blocks at or
// below the last applied height are ignored, so replays are harmless.
func (s *Store) HandleEvents(ctx context.Context, height int64, events sdk.Events) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var state IndexState
		if err := tx.FirstOrCreate(&state).Error; err != nil {
			return errors.Wrap(err, "failed to load index state")
		}
		if height <= state.LastHeight {
			s.logger.Debug().Int64("height", height).Int64("last_height", state.LastHeight).Msg("skipping applied block")
			return nil
		}

		for _, ev := range events {
			applied, err := s.applyEvent(tx, height, ev)
			if err != nil {
				return errors.Wrapf(err, "failed to apply %s at height %d", ev.Type, height)
			}
			if applied {
				metrics.EventsIndexed.WithLabelValues(ev.Type).Inc()
			}
		}

		state.LastHeight = height
		return tx.Save(&state).Error
	})
	if err != nil {
		metrics.IndexerErrors.Inc()
		return err
	}
	return nil
}

func (s *Store) applyEvent(tx *gorm.DB, height int64, ev sdk.Event) (bool, error) {
	data, ok := qftypes.EventData(ev)
	if !ok {
		return false, nil
	}

	switch ev.Type {
	case qftypes.EventTypeProposalCreated:
		var e qftypes.ProposalCreatedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return false, err
		}
		record := ProposalRecord{
			ProposalID:       e.ProposalID,
			Proposer:         e.Proposer,
			Title:            e.Title,
			Status:           qftypes.StatusActive.String(),
			Contributions:    "0",
			ContributionsKey: amountKey("0"),
			CreatedHeight:    height,
			UpdatedHeight:    height,
		}
		return true, tx.Create(&record).Error

	case qftypes.EventTypeProposalContribution:
		var e qftypes.ContributionEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return false, err
		}
		record, err := s.proposalRecord(tx, e.ProposalID, height)
		if err != nil {
			return false, err
		}
		record.VoterCount = e.VoterCount
		record.Contributions = e.Contributions
		record.ContributionsKey = amountKey(e.Contributions)
		record.UpdatedHeight = height
		if err := tx.Save(&record).Error; err != nil {
			return false, err
		}
		contribution := ContributionRecord{
			ProposalID:  e.ProposalID,
			Contributor: e.Contributor,
			Amount:      e.Amount,
			BlockHeight: height,
		}
		return true, tx.Create(&contribution).Error

	case qftypes.EventTypeProposalStatusChanged:
		var e qftypes.StatusChangedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return false, err
		}
		record, err := s.proposalRecord(tx, e.ProposalID, height)
		if err != nil {
			return false, err
		}
		record.Status = e.To
		record.UpdatedHeight = height
		return true, tx.Save(&record).Error
	}
	return false, nil
}

// proposalRecord loads the row of a proposal, creating a placeholder when the
// read model never saw its creation.
func (s *Store) proposalRecord(tx *gorm.DB, id uint64, height int64) (ProposalRecord, error) {
	var record ProposalRecord
	err := tx.Where("proposal_id = ?", id).First(&record).Error
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ProposalRecord{}, err
	}

	s.logger.Warn().Uint64("proposal_id", id).Msg("event for unindexed proposal")
	record = ProposalRecord{
		ProposalID:       id,
		Status:           qftypes.StatusActive.String(),
		Contributions:    "0",
		ContributionsKey: amountKey("0"),
		CreatedHeight:    height,
	}
	return record, nil
}

// Reset removes every indexed row and rewinds the read model to height 0.
// It is used when the read model has seen blocks the ledger no longer has.
func (s *Store) Reset(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range readModelTables {
			if err := tx.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
				return errors.Wrapf(err, "failed to clear %T", table)
			}
		}
		return nil
	})
}

// SeedProposals writes a snapshot of the ledger proposals taken at height and
// moves the read model to that height. Existing rows are overwritten, rows
// created here carry height as their creation height. Contribution rows are
// left untouched; blocks between the old height and height stay unindexed.
func (s *Store) SeedProposals(ctx context.Context, height int64, proposals []qftypes.Proposal) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var state IndexState
		if err := tx.FirstOrCreate(&state).Error; err != nil {
			return errors.Wrap(err, "failed to load index state")
		}

		for _, p := range proposals {
			var record ProposalRecord
			err := tx.Where("proposal_id = ?", p.Id).First(&record).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				record = ProposalRecord{ProposalID: p.Id, CreatedHeight: height}
			case err != nil:
				return err
			}

			record.Proposer = p.Proposer
			record.Title = p.Title
			record.Status = p.Status.String()
			record.VoterCount = p.VoterCount
			record.Contributions = p.Contributions.String()
			record.ContributionsKey = amountKey(record.Contributions)
			record.UpdatedHeight = height
			if err := tx.Save(&record).Error; err != nil {
				return errors.Wrapf(err, "failed to seed proposal %d", p.Id)
			}
		}

		state.LastHeight = height
		return tx.Save(&state).Error
	})
	if err != nil {
		metrics.IndexerErrors.Inc()
		return err
	}
	return nil
}

// LastHeight returns the last block height applied, or 0.
func (s *Store) LastHeight() (int64, error) {
	var state IndexState
	err := s.db.First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to load index state")
	}
	return state.LastHeight, nil
}

// GetProposal returns the indexed row of a proposal.
func (s *Store) GetProposal(id uint64) (*ProposalRecord, error) {
	var record ProposalRecord
	if err := s.db.Where("proposal_id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListContributions returns the contributions to a proposal, newest first.
// A non-positive limit returns all of them.
func (s *Store) ListContributions(id uint64, limit int) ([]ContributionRecord, error) {
	var records []ContributionRecord
	query := s.db.Where("proposal_id = ?", id).Order("block_height DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to query contributions of proposal %d", id)
	}
	return records, nil
}

// TopProposals returns the proposals with the largest total contributions.
func (s *Store) TopProposals(limit int) ([]ProposalRecord, error) {
	var records []ProposalRecord
	query := s.db.Order("contributions_key DESC, proposal_id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query top proposals")
	}
	return records, nil
}

// ContributorTotals sums the contributions to a proposal per contributor,
// largest total first.
func (s *Store) ContributorTotals(id uint64) ([]ContributorTotal, error) {
	records, err := s.ListContributions(id, 0)
	if err != nil {
		return nil, err
	}

	sums := make(map[string]*big.Int)
	counts := make(map[string]int)
	for _, r := range records {
		amount, ok := new(big.Int).SetString(r.Amount, 10)
		if !ok {
			return nil, errors.Errorf("contribution %d has malformed amount %q", r.ID, r.Amount)
		}
		if sums[r.Contributor] == nil {
			sums[r.Contributor] = new(big.Int)
		}
		sums[r.Contributor].Add(sums[r.Contributor], amount)
		counts[r.Contributor]++
	}

	contributors := make([]string, 0, len(sums))
	for c := range sums {
		contributors = append(contributors, c)
	}
	sort.Slice(contributors, func(i, j int) bool {
		if cmp := sums[contributors[i]].Cmp(sums[contributors[j]]); cmp != 0 {
			return cmp > 0
		}
		return contributors[i] < contributors[j]
	})

	totals := make([]ContributorTotal, 0, len(contributors))
	for _, c := range contributors {
		totals = append(totals, ContributorTotal{Contributor: c, Total: sums[c].String(), Count: counts[c]})
	}
	return totals, nil
}
