package types

import (
	"encoding/json"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
)

// Dataset is one version of a registered dataset's metadata. Lineage lists
// the ids of the datasets it was derived from.
type Dataset struct {
	Id          string    `json:"id"`
	Owner       string    `json:"owner"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Lineage     []string  `json:"lineage"`
	Version     uint64    `json:"version"`
	Timestamp   time.Time `json:"timestamp"`
}

func (d Dataset) String() string {
	bz, err := json.Marshal(d)
	if err != nil {
		panic(err)
	}
	return string(bz)
}

// ValidateBasic checks the fields that do not depend on other datasets.
func (d Dataset) ValidateBasic() error {
	if strings.TrimSpace(d.Id) == "" {
		return errorsmod.Wrap(ErrInvalidDataset, "id is empty")
	}
	if strings.TrimSpace(d.Owner) == "" {
		return errorsmod.Wrapf(ErrInvalidDataset, "dataset %s has no owner", d.Id)
	}
	if d.Version == 0 {
		return errorsmod.Wrapf(ErrInvalidDataset, "dataset %s has version 0", d.Id)
	}

	seen := make(map[string]struct{}, len(d.Lineage))
	for _, parent := range d.Lineage {
		if parent == d.Id {
			return errorsmod.Wrapf(ErrInvalidLineage, "dataset %s lists itself as a parent", d.Id)
		}
		if _, dup := seen[parent]; dup {
			return errorsmod.Wrapf(ErrInvalidLineage, "dataset %s lists parent %s twice", d.Id, parent)
		}
		seen[parent] = struct{}{}
	}
	return nil
}
