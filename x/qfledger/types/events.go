package types

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeProposalCreated       = "proposal_created"
	EventTypeProposalContribution  = "proposal_contribution"
	EventTypeProposalStatusChanged = "proposal_status_changed"

	// AttributeKeyData carries the full JSON payload of an event.
	AttributeKeyData = "data"
)

// ProposalCreatedEvent is emitted once per created proposal.
type ProposalCreatedEvent struct {
	ProposalID uint64 `json:"proposal_id"`
	Proposer   string `json:"proposer"`
	Title      string `json:"title"`
}

// NewProposalCreatedEvent creates and returns a Cosmos SDK event
func NewProposalCreatedEvent(e ProposalCreatedEvent) (sdk.Event, error) {
	bz, err := json.Marshal(e)
	if err != nil {
		return sdk.Event{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	event := sdk.NewEvent(
		EventTypeProposalCreated,
		sdk.NewAttribute("proposal_id", fmt.Sprintf("%d", e.ProposalID)),
		sdk.NewAttribute("proposer", e.Proposer),
		sdk.NewAttribute("title", e.Title),
		sdk.NewAttribute(AttributeKeyData, string(bz)),
	)

	return event, nil
}

// String returns a readable log for CLI
func (e ProposalCreatedEvent) String() string {
	return fmt.Sprintf("Proposal created | ID: %d | Proposer: %s | Title: %s", e.ProposalID, e.Proposer, e.Title)
}

// ContributionEvent is emitted for every accepted contribution and carries
// the proposal totals after it was applied.
type ContributionEvent struct {
	ProposalID    uint64 `json:"proposal_id"`
	Contributor   string `json:"contributor"`
	Amount        string `json:"amount"`
	Votes         uint64 `json:"votes"`
	VoterCount    uint64 `json:"voter_count"`
	Contributions string `json:"contributions"`
	MatchingPool  string `json:"matching_pool"`
}

// NewContributionEvent creates and returns a Cosmos SDK event
func NewContributionEvent(e ContributionEvent) (sdk.Event, error) {
	bz, err := json.Marshal(e)
	if err != nil {
		return sdk.Event{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	event := sdk.NewEvent(
		EventTypeProposalContribution,
		sdk.NewAttribute("proposal_id", fmt.Sprintf("%d", e.ProposalID)),
		sdk.NewAttribute("contributor", e.Contributor),
		sdk.NewAttribute("amount", e.Amount),
		sdk.NewAttribute("voter_count", fmt.Sprintf("%d", e.VoterCount)),
		sdk.NewAttribute("contributions", e.Contributions),
		sdk.NewAttribute("matching_pool", e.MatchingPool),
		sdk.NewAttribute(AttributeKeyData, string(bz)),
	)

	return event, nil
}

// String returns a readable log for CLI
func (e ContributionEvent) String() string {
	return fmt.Sprintf(
		"Contribution | Proposal: %d | From: %s | Amount: %s | Voters: %d | Total: %s | Pool: %s",
		e.ProposalID, e.Contributor, e.Amount, e.VoterCount, e.Contributions, e.MatchingPool,
	)
}

// StatusChangedEvent is emitted when a proposer moves a proposal's status.
type StatusChangedEvent struct {
	ProposalID uint64 `json:"proposal_id"`
	Caller     string `json:"caller"`
	From       string `json:"from"`
	To         string `json:"to"`
}

// NewStatusChangedEvent creates and returns a Cosmos SDK event
func NewStatusChangedEvent(e StatusChangedEvent) (sdk.Event, error) {
	bz, err := json.Marshal(e)
	if err != nil {
		return sdk.Event{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	event := sdk.NewEvent(
		EventTypeProposalStatusChanged,
		sdk.NewAttribute("proposal_id", fmt.Sprintf("%d", e.ProposalID)),
		sdk.NewAttribute("from", e.From),
		sdk.NewAttribute("to", e.To),
		sdk.NewAttribute(AttributeKeyData, string(bz)),
	)

	return event, nil
}

// String returns a readable log for CLI
func (e StatusChangedEvent) String() string {
	return fmt.Sprintf("Proposal status changed | ID: %d | %s -> %s | By: %s", e.ProposalID, e.From, e.To, e.Caller)
}

// EventData returns the JSON payload attribute of an event.
func EventData(event sdk.Event) ([]byte, bool) {
	for _, attr := range event.Attributes {
		if attr.Key == AttributeKeyData {
			return []byte(attr.Value), true
		}
	}
	return nil, false
}
