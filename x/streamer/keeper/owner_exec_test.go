package keeper_test

import (
	"errors"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/tx-streamer/x/streamer/types"
)

func (env *testEnv) moduleSend(to sdk.AccAddress, amount int64) *banktypes.MsgSend {
	return &banktypes.MsgSend{
		FromAddress: env.moduleAddr.String(),
		ToAddress:   to.String(),
		Amount:      sdk.NewCoins(sdk.NewCoin(testDenom, sdkmath.NewInt(amount))),
	}
}

func TestOwnerExec(t *testing.T) {
	requireT := require.New(t)
	env := newTestEnv(t)

	var handled []sdk.Msg
	env.router.handler = func(ctx sdk.Context, req sdk.Msg) (*sdk.Result, error) {
		handled = append(handled, req)
		return &sdk.Result{Data: []byte{byte(len(handled))}}, nil
	}

	recipient := genAddress()
	msgs := []sdk.Msg{
		env.moduleSend(recipient, 100),
		env.moduleSend(recipient, 200),
	}

	results, err := env.keeper.OwnerExec(env.ctx, env.owner, msgs)
	requireT.NoError(err)
	requireT.Equal([][]byte{{1}, {2}}, results)
	requireT.Len(handled, 2)
	requireT.Equal(msgs[0], handled[0])
	requireT.Equal(msgs[1], handled[1])

	expectedEvent, err := sdk.TypedEventToEvent(&types.EventOwnerCall{
		Sender:     env.owner.String(),
		MsgTypeUrl: sdk.MsgTypeURL(msgs[0]),
	})
	requireT.NoError(err)
	events := env.ctx.EventManager().Events()
	requireT.Contains(events, expectedEvent)
}

func TestOwnerExec_RejectsNonOwner(t *testing.T) {
	requireT := require.New(t)
	env := newTestEnv(t)

	_, err := env.keeper.OwnerExec(env.ctx, genAddress(), []sdk.Msg{
		env.moduleSend(genAddress(), 100),
	})
	requireT.ErrorIs(err, types.ErrSenderNotVaultOwner)
}

func TestOwnerExec_OwnershipTransferTakesEffectImmediately(t *testing.T) {
	requireT := require.New(t)
	env := newTestEnv(t)
	env.router.handler = func(ctx sdk.Context, req sdk.Msg) (*sdk.Result, error) {
		return &sdk.Result{}, nil
	}

	msgs := []sdk.Msg{env.moduleSend(genAddress(), 100)}

	_, err := env.keeper.OwnerExec(env.ctx, env.owner, msgs)
	requireT.NoError(err)

	newOwner := genAddress()
	env.vault.owner = newOwner

	_, err = env.keeper.OwnerExec(env.ctx, env.owner, msgs)
	requireT.ErrorIs(err, types.ErrSenderNotVaultOwner)

	_, err = env.keeper.OwnerExec(env.ctx, newOwner, msgs)
	requireT.NoError(err)
}

func TestOwnerExec_RejectsMessageNotSignedByModule(t *testing.T) {
	requireT := require.New(t)
	env := newTestEnv(t)

	// the owner tries to relay a message spending from their own account
	msg := &banktypes.MsgSend{
		FromAddress: env.owner.String(),
		ToAddress:   genAddress().String(),
		Amount:      sdk.NewCoins(sdk.NewCoin(testDenom, sdkmath.NewInt(100))),
	}

	_, err := env.keeper.OwnerExec(env.ctx, env.owner, []sdk.Msg{msg})
	requireT.ErrorIs(err, types.ErrInvalidOwnerCall)
}

func TestOwnerExec_RejectsUnroutableMessage(t *testing.T) {
	requireT := require.New(t)
	env := newTestEnv(t)

	_, err := env.keeper.OwnerExec(env.ctx, env.owner, []sdk.Msg{
		env.moduleSend(genAddress(), 100),
	})
	requireT.ErrorIs(err, types.ErrInvalidOwnerCall)
}

func TestOwnerExec_FailingMessageAbortsBatch(t *testing.T) {
	requireT := require.New(t)
	env := newTestEnv(t)

	execErr := errors.New("insufficient funds")
	calls := 0
	env.router.handler = func(ctx sdk.Context, req sdk.Msg) (*sdk.Result, error) {
		calls++
		if calls == 2 {
			return nil, execErr
		}
		return &sdk.Result{}, nil
	}

	recipient := genAddress()
	_, err := env.keeper.OwnerExec(env.ctx, env.owner, []sdk.Msg{
		env.moduleSend(recipient, 100),
		env.moduleSend(recipient, 200),
		env.moduleSend(recipient, 300),
	})
	requireT.ErrorIs(err, execErr)
	requireT.Equal(2, calls)
}
