package indexer

import (
	"strings"

	"gorm.io/gorm"
)

// amountKeyWidth is the number of decimal digits of the largest 256-bit amount.
const amountKeyWidth = 78

// IndexState records the last block height applied to the read model.
// There is a single row.
type IndexState struct {
	gorm.Model
	LastHeight int64
}

// ProposalRecord mirrors the latest known state of one proposal.
type ProposalRecord struct {
	gorm.Model
	ProposalID       uint64 `gorm:"uniqueIndex;not null"`
	Proposer         string `gorm:"index"`
	Title            string
	Status           string `gorm:"index"` // "Active", "Funded" or "Completed"
	VoterCount       uint64
	Contributions    string // decimal amount
	ContributionsKey string `gorm:"index"` // zero-padded Contributions, sortable as text
	CreatedHeight    int64
	UpdatedHeight    int64
}

// ContributionRecord is one accepted contribution.
type ContributionRecord struct {
	gorm.Model
	ProposalID  uint64 `gorm:"index;not null"`
	Contributor string `gorm:"index"`
	Amount      string // decimal amount
	BlockHeight int64  `gorm:"index"`
}

// ContributorTotal aggregates the contributions of one account to one proposal.
type ContributorTotal struct {
	Contributor string `json:"contributor"`
	Total       string `json:"total"`
	Count       int    `json:"count"`
}

func amountKey(amount string) string {
	if len(amount) >= amountKeyWidth {
		return amount
	}
	return strings.Repeat("0", amountKeyWidth-len(amount)) + amount
}
