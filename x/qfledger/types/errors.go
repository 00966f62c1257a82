package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Error codes for the qfledger module
const (
	BaseErrorCode uint32 = 1
)

var (
	ErrProposalNotFound = errorsmod.Register(ModuleName, BaseErrorCode+1, "proposal not found")
	ErrUnauthorized     = errorsmod.Register(ModuleName, BaseErrorCode+2, "unauthorized")
	ErrInvalidState     = errorsmod.Register(ModuleName, BaseErrorCode+3, "invalid proposal state")
	ErrInvalidCaller    = errorsmod.Register(ModuleName, BaseErrorCode+4, "invalid caller identity")
	ErrZeroContribution = errorsmod.Register(ModuleName, BaseErrorCode+5, "zero contribution")
	ErrAmountOverflow   = errorsmod.Register(ModuleName, BaseErrorCode+6, "amount overflow")
	ErrInvalidGenesis   = errorsmod.Register(ModuleName, BaseErrorCode+7, "invalid genesis state")
	ErrInvalidProposal  = errorsmod.Register(ModuleName, BaseErrorCode+8, "invalid proposal")
)
