package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/tokenize-x/tx-streamer/x/streamer/types"
)

// DistributionResult describes one successful distribution.
type DistributionResult struct {
	PromotionID uint64
	StartTime   int64
	EndTime     int64
	Amount      sdkmath.Int
}

// Distribute converts the module account's accumulated balance of the denom
// into a reward promotion streaming linearly over the next distribution window,
// and advances the denom's watermark to the window end.
//
// The call is permissionless. Collaborator failures (notably a zero balance
// rejected by the promotion service) propagate unmodified; the watermark is
// only written after the promotion was created, so a failing call leaves no
// state behind.
func (k Keeper) Distribute(ctx context.Context, sender sdk.AccAddress, denom string) (DistributionResult, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	balance := k.bankKeeper.GetBalance(ctx, k.moduleAddr, denom)

	window, err := k.computeWindow(ctx, denom)
	if err != nil {
		return DistributionResult{}, err
	}

	// Authorize the promotion service to pull exactly the distributed amount.
	// SaveGrant overwrites, superseding any allowance left by a prior call.
	err = k.authzKeeper.SaveGrant(
		ctx,
		k.promotionKeeper.Address(),
		k.moduleAddr,
		banktypes.NewSendAuthorization(sdk.NewCoins(balance), nil),
		nil,
	)
	if err != nil {
		return DistributionResult{}, err
	}

	promotionID, err := k.promotionKeeper.CreatePromotion(
		ctx,
		k.vaultKeeper.Address(),
		denom,
		window.start,
		balance.Amount,
		window.spanSeconds(),
		1,
	)
	if err != nil {
		return DistributionResult{}, err
	}

	if err := k.LastDistribution.Set(ctx, denom, window.end); err != nil {
		return DistributionResult{}, err
	}

	if err := sdkCtx.EventManager().EmitTypedEvent(&types.EventTokensDistributed{
		Denom:       denom,
		Sender:      sender.String(),
		PromotionId: promotionID,
		StartTime:   window.start,
		EndTime:     window.end,
		Amount:      balance.Amount.String(),
	}); err != nil {
		k.Logger(sdkCtx).Error("failed to emit tokens distributed event", "error", err)
	}

	k.Logger(sdkCtx).Info("distributed tokens",
		"denom", denom,
		"promotion_id", promotionID,
		"start_time", window.start,
		"end_time", window.end,
		"amount", balance.Amount.String())

	return DistributionResult{
		PromotionID: promotionID,
		StartTime:   window.start,
		EndTime:     window.end,
		Amount:      balance.Amount,
	}, nil
}
