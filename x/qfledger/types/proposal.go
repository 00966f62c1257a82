package types

import (
	"encoding/json"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// ProposalStatus is the lifecycle stage of a proposal.
type ProposalStatus uint8

const (
	StatusActive ProposalStatus = iota
	StatusFunded
	StatusCompleted
)

var proposalStatusNames = map[ProposalStatus]string{
	StatusActive:    "Active",
	StatusFunded:    "Funded",
	StatusCompleted: "Completed",
}

func (s ProposalStatus) String() string {
	if name, ok := proposalStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ProposalStatus(%d)", uint8(s))
}

// IsValid reports whether s is one of the known statuses.
func (s ProposalStatus) IsValid() bool {
	_, ok := proposalStatusNames[s]
	return ok
}

// CanAdvanceTo reports whether moving from s to next keeps the status
// moving forward through Active, Funded, Completed.
func (s ProposalStatus) CanAdvanceTo(next ProposalStatus) bool {
	switch next {
	case StatusFunded:
		return s == StatusActive
	case StatusCompleted:
		return s == StatusActive || s == StatusFunded
	default:
		return false
	}
}

// ParseProposalStatus accepts the status names as rendered by String,
// case-insensitively.
func ParseProposalStatus(name string) (ProposalStatus, error) {
	for status, n := range proposalStatusNames {
		if strings.EqualFold(n, name) {
			return status, nil
		}
	}
	return 0, errorsmod.Wrapf(ErrInvalidProposal, "unknown proposal status %q", name)
}

func (s ProposalStatus) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("cannot marshal %s", s)
	}
	return json.Marshal(s.String())
}

func (s *ProposalStatus) UnmarshalJSON(bz []byte) error {
	var name string
	if err := json.Unmarshal(bz, &name); err != nil {
		return err
	}
	status, err := ParseProposalStatus(name)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Proposal is a funding request together with its aggregate contribution state.
type Proposal struct {
	Id            uint64         `json:"id"`
	Proposer      string         `json:"proposer"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Votes         uint64         `json:"votes"`
	VoterCount    uint64         `json:"voter_count"`
	Contributions sdkmath.Uint   `json:"contributions"`
	Status        ProposalStatus `json:"status"`
}

// NewProposal returns an Active proposal with zeroed counters.
func NewProposal(id uint64, proposer, title, description string) Proposal {
	return Proposal{
		Id:            id,
		Proposer:      proposer,
		Title:         title,
		Description:   description,
		Contributions: sdkmath.ZeroUint(),
		Status:        StatusActive,
	}
}

// IsActive reports whether the proposal still accepts contributions.
func (p Proposal) IsActive() bool {
	return p.Status == StatusActive
}

// Equal compares every field, including the contribution amount by value.
func (p Proposal) Equal(other Proposal) bool {
	return p.Id == other.Id &&
		p.Proposer == other.Proposer &&
		p.Title == other.Title &&
		p.Description == other.Description &&
		p.Votes == other.Votes &&
		p.VoterCount == other.VoterCount &&
		p.Contributions.Equal(other.Contributions) &&
		p.Status == other.Status
}

// String returns a JSON representation of the proposal.
func (p Proposal) String() string {
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	return string(bz)
}

// ValidateBasic checks the fields a stored proposal must always satisfy.
func (p Proposal) ValidateBasic() error {
	if strings.TrimSpace(p.Proposer) == "" {
		return errorsmod.Wrapf(ErrInvalidProposal, "proposal %d has no proposer", p.Id)
	}
	if !p.Status.IsValid() {
		return errorsmod.Wrapf(ErrInvalidProposal, "proposal %d has unknown status %d", p.Id, p.Status)
	}
	if p.Votes != p.VoterCount {
		return errorsmod.Wrapf(ErrInvalidProposal, "proposal %d votes %d != voter_count %d", p.Id, p.Votes, p.VoterCount)
	}
	return nil
}
