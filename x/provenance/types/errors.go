package types

import (
	errorsmod "cosmossdk.io/errors"
)

const (
	BaseErrorCode uint32 = 1
)

var (
	ErrDatasetNotFound = errorsmod.Register(ModuleName, BaseErrorCode+1, "dataset not found")
	ErrUnauthorized    = errorsmod.Register(ModuleName, BaseErrorCode+2, "unauthorized")
	ErrInvalidLineage  = errorsmod.Register(ModuleName, BaseErrorCode+3, "invalid lineage")
	ErrInvalidDataset  = errorsmod.Register(ModuleName, BaseErrorCode+4, "invalid dataset")
	ErrInvalidCaller   = errorsmod.Register(ModuleName, BaseErrorCode+5, "invalid caller identity")
	ErrInvalidGenesis  = errorsmod.Register(ModuleName, BaseErrorCode+6, "invalid genesis state")
)
