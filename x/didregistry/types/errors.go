package types

import (
	errorsmod "cosmossdk.io/errors"
)

const (
	BaseErrorCode uint32 = 1
)

var (
	ErrDIDNotFound     = errorsmod.Register(ModuleName, BaseErrorCode+1, "did not found")
	ErrUnauthorized    = errorsmod.Register(ModuleName, BaseErrorCode+2, "unauthorized")
	ErrDIDRevoked      = errorsmod.Register(ModuleName, BaseErrorCode+3, "did revoked")
	ErrInvalidDocument = errorsmod.Register(ModuleName, BaseErrorCode+4, "invalid did document")
	ErrInvalidCaller   = errorsmod.Register(ModuleName, BaseErrorCode+5, "invalid caller identity")
	ErrInvalidGenesis  = errorsmod.Register(ModuleName, BaseErrorCode+6, "invalid genesis state")
)
