package types

import (
	"encoding/json"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
)

// DIDDocument is the self-issued identity record of one account.
type DIDDocument struct {
	Id                 string    `json:"id"`
	Controller         string    `json:"controller"`
	VerificationMethod string    `json:"verification_method"`
	Created            time.Time `json:"created"`
	Updated            time.Time `json:"updated"`
	Revoked            bool      `json:"revoked"`
}

// DIDForAccount returns the DID that identifies account.
func DIDForAccount(account string) string {
	return DIDMethodPrefix + account
}

// NewDIDDocument returns the document account issues for itself at time now.
func NewDIDDocument(account, verificationMethod string, now time.Time) DIDDocument {
	return DIDDocument{
		Id:                 DIDForAccount(account),
		Controller:         account,
		VerificationMethod: verificationMethod,
		Created:            now.UTC(),
		Updated:            now.UTC(),
	}
}

func (d DIDDocument) String() string {
	bz, err := json.Marshal(d)
	if err != nil {
		panic(err)
	}
	return string(bz)
}

func (d DIDDocument) ValidateBasic() error {
	if strings.TrimSpace(d.Controller) == "" {
		return errorsmod.Wrap(ErrInvalidDocument, "controller is empty")
	}
	if d.Id != DIDForAccount(d.Controller) {
		return errorsmod.Wrapf(ErrInvalidDocument, "id %s does not belong to %s", d.Id, d.Controller)
	}
	if strings.TrimSpace(d.VerificationMethod) == "" {
		return errorsmod.Wrap(ErrInvalidDocument, "verification method is empty")
	}
	return nil
}
