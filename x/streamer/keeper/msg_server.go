package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	cosmoserrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/tokenize-x/tx-streamer/x/streamer/types"
)

var _ types.MsgServer = MsgServer{}

// MsgServer serves grpc tx requests for the module.
type MsgServer struct {
	keeper Keeper
}

// NewMsgServer returns a new instance of the MsgServer.
func NewMsgServer(keeper Keeper) MsgServer {
	return MsgServer{
		keeper: keeper,
	}
}

// Distribute converts the module account's accumulated balance of a denom into
// a reward promotion over the next distribution window.
func (ms MsgServer) Distribute(goCtx context.Context, req *types.MsgDistribute) (*types.MsgDistributeResponse, error) {
	sender, err := sdk.AccAddressFromBech32(req.Sender)
	if err != nil {
		return nil, cosmoserrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	result, err := ms.keeper.Distribute(goCtx, sender, req.Denom)
	if err != nil {
		return nil, err
	}

	return &types.MsgDistributeResponse{
		PromotionId: result.PromotionID,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Amount:      result.Amount.String(),
	}, nil
}

// OwnerExec executes arbitrary messages under the module account, gated on the
// current vault owner.
func (ms MsgServer) OwnerExec(goCtx context.Context, req *types.MsgOwnerExec) (*types.MsgOwnerExecResponse, error) {
	sender, err := sdk.AccAddressFromBech32(req.Sender)
	if err != nil {
		return nil, cosmoserrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	msgs, err := req.GetMessages()
	if err != nil {
		return nil, err
	}

	results, err := ms.keeper.OwnerExec(goCtx, sender, msgs)
	if err != nil {
		return nil, err
	}

	return &types.MsgOwnerExecResponse{
		Results: results,
	}, nil
}
