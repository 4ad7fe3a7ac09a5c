package keeper

import (
	"bytes"
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/tx-streamer/x/streamer/types"
)

// OwnerExec executes the given messages in order under the module's own
// account and returns the raw response bytes of each. The sender must be the
// current vault owner, read from the vault on every invocation so that
// ownership transfers take effect immediately. Any failing message aborts the
// whole batch; the platform discards all prior effects of the call.
//
// Used operationally to reclaim unclaimed promotion funds or manage stuck
// state. The relay carries no domain logic of its own.
func (k Keeper) OwnerExec(ctx context.Context, sender sdk.AccAddress, msgs []sdk.Msg) ([][]byte, error) {
	owner, err := k.vaultKeeper.Owner(ctx)
	if err != nil {
		return nil, err
	}
	if !owner.Equals(sender) {
		return nil, errorsmod.Wrapf(
			types.ErrSenderNotVaultOwner,
			"sender %s, current owner %s", sender, owner,
		)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	results := make([][]byte, len(msgs))
	for i, msg := range msgs {
		signers, _, err := k.cdc.GetMsgV1Signers(msg)
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidOwnerCall, "message %d: %s", i, err)
		}
		if len(signers) != 1 || !bytes.Equal(signers[0], k.moduleAddr) {
			return nil, errorsmod.Wrapf(
				types.ErrInvalidOwnerCall,
				"message %d must be signed solely by the module account %s", i, k.moduleAddr,
			)
		}

		handler := k.router.Handler(msg)
		if handler == nil {
			return nil, errorsmod.Wrapf(
				types.ErrInvalidOwnerCall,
				"message %d: no handler for %s", i, sdk.MsgTypeURL(msg),
			)
		}

		res, err := handler(sdkCtx, msg)
		if err != nil {
			return nil, errorsmod.Wrapf(err, "owner call %d failed", i)
		}
		results[i] = res.Data

		sdkEvents := make([]sdk.Event, 0, len(res.Events))
		for _, event := range res.Events {
			sdkEvents = append(sdkEvents, sdk.Event(event))
		}
		sdkCtx.EventManager().EmitEvents(sdkEvents)

		if err := sdkCtx.EventManager().EmitTypedEvent(&types.EventOwnerCall{
			Sender:     sender.String(),
			MsgTypeUrl: sdk.MsgTypeURL(msg),
		}); err != nil {
			k.Logger(sdkCtx).Error("failed to emit owner call event", "error", err)
		}
	}

	return results, nil
}
