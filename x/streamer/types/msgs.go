package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/legacy"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	cosmoserrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/gogoproto/proto"
)

type extendedMsg interface {
	sdk.Msg
	sdk.HasValidateBasic
}

var (
	_ extendedMsg = &MsgDistribute{}
	_ extendedMsg = &MsgOwnerExec{}

	_ codectypes.UnpackInterfacesMessage = &MsgOwnerExec{}
)

// RegisterLegacyAminoCodec registers the amino types and interfaces.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	legacy.RegisterAminoMsg(cdc, &MsgDistribute{}, ModuleName+"/MsgDistribute")
	legacy.RegisterAminoMsg(cdc, &MsgOwnerExec{}, ModuleName+"/MsgOwnerExec")
}

// MsgDistribute converts the module account's accumulated balance of Denom into
// a reward promotion streaming over the next distribution window. Permissionless.
type MsgDistribute struct {
	Sender string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Denom  string `protobuf:"bytes,2,opt,name=denom,proto3" json:"denom,omitempty"`
}

// Reset implements the proto.Message interface.
func (m *MsgDistribute) Reset() { *m = MsgDistribute{} }

// String implements the proto.Message interface.
func (m *MsgDistribute) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements the proto.Message interface.
func (*MsgDistribute) ProtoMessage() {}

// ValidateBasic checks that message fields are valid.
func (m *MsgDistribute) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return cosmoserrors.ErrInvalidRequest.Wrapf("invalid denom: %s", err)
	}
	return nil
}

// MsgDistributeResponse is the response of MsgDistribute.
type MsgDistributeResponse struct {
	PromotionId uint64 `protobuf:"varint,1,opt,name=promotion_id,json=promotionId,proto3" json:"promotion_id,omitempty"`
	StartTime   int64  `protobuf:"varint,2,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime     int64  `protobuf:"varint,3,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	Amount      string `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

// Reset implements the proto.Message interface.
func (m *MsgDistributeResponse) Reset() { *m = MsgDistributeResponse{} }

// String implements the proto.Message interface.
func (m *MsgDistributeResponse) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements the proto.Message interface.
func (*MsgDistributeResponse) ProtoMessage() {}

// MsgOwnerExec executes the embedded messages under the module's own account.
// Restricted to the current vault owner, read live on every invocation.
type MsgOwnerExec struct {
	Sender string            `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Msgs   []*codectypes.Any `protobuf:"bytes,2,rep,name=msgs,proto3" json:"msgs,omitempty"`
}

// NewMsgOwnerExec packs the given messages into a MsgOwnerExec.
func NewMsgOwnerExec(sender sdk.AccAddress, msgs []sdk.Msg) (MsgOwnerExec, error) {
	anys := make([]*codectypes.Any, len(msgs))
	for i, msg := range msgs {
		msgAny, err := codectypes.NewAnyWithValue(msg)
		if err != nil {
			return MsgOwnerExec{}, err
		}
		anys[i] = msgAny
	}
	return MsgOwnerExec{
		Sender: sender.String(),
		Msgs:   anys,
	}, nil
}

// Reset implements the proto.Message interface.
func (m *MsgOwnerExec) Reset() { *m = MsgOwnerExec{} }

// String implements the proto.Message interface.
func (m *MsgOwnerExec) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements the proto.Message interface.
func (*MsgOwnerExec) ProtoMessage() {}

// ValidateBasic checks that message fields are valid.
func (m *MsgOwnerExec) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return cosmoserrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	if len(m.Msgs) == 0 {
		return cosmoserrors.ErrInvalidRequest.Wrap("must provide at least one message to execute")
	}
	return nil
}

// GetMessages returns the unpacked messages.
func (m *MsgOwnerExec) GetMessages() ([]sdk.Msg, error) {
	msgs := make([]sdk.Msg, len(m.Msgs))
	for i, msgAny := range m.Msgs {
		msg, ok := msgAny.GetCachedValue().(sdk.Msg)
		if !ok {
			return nil, cosmoserrors.ErrInvalidRequest.Wrapf("message %d is not unpacked, expected sdk.Msg", i)
		}
		msgs[i] = msg
	}
	return msgs, nil
}

// UnpackInterfaces implements the codectypes.UnpackInterfacesMessage interface.
func (m *MsgOwnerExec) UnpackInterfaces(unpacker codectypes.AnyUnpacker) error {
	for _, msgAny := range m.Msgs {
		var msg sdk.Msg
		if err := unpacker.UnpackAny(msgAny, &msg); err != nil {
			return err
		}
	}
	return nil
}

// MsgOwnerExecResponse is the response of MsgOwnerExec. Results holds the raw
// response bytes of every executed message, in order.
type MsgOwnerExecResponse struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

// Reset implements the proto.Message interface.
func (m *MsgOwnerExecResponse) Reset() { *m = MsgOwnerExecResponse{} }

// String implements the proto.Message interface.
func (m *MsgOwnerExecResponse) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements the proto.Message interface.
func (*MsgOwnerExecResponse) ProtoMessage() {}
