package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	cosmoserrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tokenize-x/tx-streamer/x/streamer/types"
)

var _ types.QueryServer = QueryService{}

// QueryService serves grpc requests for the module.
type QueryService struct {
	keeper Keeper
}

// NewQueryService creates query service.
func NewQueryService(keeper Keeper) QueryService {
	return QueryService{
		keeper: keeper,
	}
}

// Config returns the module configuration fixed at construction.
func (qs QueryService) Config(ctx context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	return &types.QueryConfigResponse{
		VaultAddress:                   qs.keeper.vaultKeeper.Address().String(),
		PromotionAddress:               qs.keeper.promotionKeeper.Address().String(),
		MinDistributionSpacingSeconds:  qs.keeper.minDistributionSpacingSeconds,
		MaxDistributionTimeSpanSeconds: qs.keeper.maxDistributionTimeSpanSeconds,
		PeriodLengthSeconds:            qs.keeper.epochTracker.PeriodLengthSeconds(),
	}, nil
}

// LastDistribution returns the watermark of a denom, 0 when the denom was
// never distributed.
func (qs QueryService) LastDistribution(
	ctx context.Context, req *types.QueryLastDistributionRequest,
) (*types.QueryLastDistributionResponse, error) {
	if err := sdk.ValidateDenom(req.Denom); err != nil {
		return nil, cosmoserrors.ErrInvalidRequest.Wrapf("invalid denom: %s", err)
	}

	endTime, err := qs.keeper.GetLastDistribution(ctx, req.Denom)
	if err != nil {
		return nil, err
	}

	return &types.QueryLastDistributionResponse{
		EndTime: endTime,
	}, nil
}
