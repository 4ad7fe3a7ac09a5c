package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/tx-streamer/x/streamer/types"
)

// distributionWindow is a half-open [start, end) time range over which a
// promotion streams linearly, both bounds in unix seconds.
type distributionWindow struct {
	start int64
	end   int64
}

func (w distributionWindow) spanSeconds() int64 {
	return w.end - w.start
}

// computeWindow derives the next distribution window for the denom as of the
// current block time.
//
// The window end is the epoch boundary ending at or after one period before the
// block time: the end of the most recent period whose deposit-weighted data is
// guaranteed finalized. The start continues from the denom's watermark when the
// resulting span stays within the maximum time span; otherwise (first
// distribution, or a gap exceeding the tracker's guaranteed retention) it is
// clamped to the most recent maxSpan-wide slice. A span shorter than the
// minimum spacing is rejected with ErrDistributionTooSoon, which also caps
// successful distributions at one per closed period per denom.
func (k Keeper) computeWindow(ctx context.Context, denom string) (distributionWindow, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	periodLengthSeconds := k.epochTracker.PeriodLengthSeconds()
	end, err := k.epochTracker.PeriodEndOnOrAfter(ctx, now-periodLengthSeconds)
	if err != nil {
		return distributionWindow{}, err
	}

	lastEnd, err := k.GetLastDistribution(ctx, denom)
	if err != nil {
		return distributionWindow{}, err
	}

	start := end - k.maxDistributionTimeSpanSeconds
	if lastEnd != 0 {
		if end-lastEnd <= k.maxDistributionTimeSpanSeconds {
			start = lastEnd
		} else {
			// The gap since the watermark exceeds the tracker's retention; the
			// slice [lastEnd, start) is forfeited.
			k.Logger(sdkCtx).Warn(
				"distribution gap exceeds maximum time span, clamping window",
				"denom", denom,
				"last_end", lastEnd,
				"forfeited_seconds", start-lastEnd,
			)
		}
	}

	window := distributionWindow{start: start, end: end}
	if window.spanSeconds() < k.minDistributionSpacingSeconds {
		return distributionWindow{}, errorsmod.Wrapf(
			types.ErrDistributionTooSoon,
			"elapsed %d seconds, required %d seconds",
			window.spanSeconds(), k.minDistributionSpacingSeconds,
		)
	}

	return window, nil
}
