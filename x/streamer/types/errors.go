package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// NOTE: Error status code must start from 2.
var (
	// ErrDistributionTooSoon is returned when the computed distribution window is
	// shorter than the configured minimum spacing. The caller can retry once the
	// epoch tracker reports a newer closed period.
	ErrDistributionTooSoon = sdkerrors.Register(ModuleName, 2, "distribution too soon")

	// ErrSenderNotVaultOwner is returned when an owner call is attempted by an
	// account other than the current vault owner.
	ErrSenderNotVaultOwner = sdkerrors.Register(ModuleName, 3, "sender is not the vault owner")

	// ErrInvalidOwnerCall is returned when a relayed message cannot be dispatched
	// under the module account.
	ErrInvalidOwnerCall = sdkerrors.Register(ModuleName, 4, "invalid owner call")

	// ErrEpochTrackerMismatch is a construction error: the vault and the promotion
	// service must share the same epoch tracker instance.
	ErrEpochTrackerMismatch = sdkerrors.Register(ModuleName, 5, "vault and promotion service epoch trackers differ")

	// ErrInvalidConfig is a construction error for invalid spacing/span settings.
	ErrInvalidConfig = sdkerrors.Register(ModuleName, 6, "invalid module configuration")

	// ErrInvalidGenesis is returned for malformed genesis state.
	ErrInvalidGenesis = sdkerrors.Register(ModuleName, 7, "invalid genesis state")
)
