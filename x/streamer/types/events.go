package types

import (
	"github.com/cosmos/gogoproto/proto"
)

// EventTokensDistributed is emitted once per successful distribution.
type EventTokensDistributed struct {
	Denom       string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Sender      string `protobuf:"bytes,2,opt,name=sender,proto3" json:"sender,omitempty"`
	PromotionId uint64 `protobuf:"varint,3,opt,name=promotion_id,json=promotionId,proto3" json:"promotion_id,omitempty"`
	StartTime   int64  `protobuf:"varint,4,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime     int64  `protobuf:"varint,5,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	Amount      string `protobuf:"bytes,6,opt,name=amount,proto3" json:"amount,omitempty"`
}

// Reset implements the proto.Message interface.
func (m *EventTokensDistributed) Reset() { *m = EventTokensDistributed{} }

// String implements the proto.Message interface.
func (m *EventTokensDistributed) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements the proto.Message interface.
func (*EventTokensDistributed) ProtoMessage() {}

// EventOwnerCall is emitted once per message executed through an owner call.
type EventOwnerCall struct {
	Sender     string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	MsgTypeUrl string `protobuf:"bytes,2,opt,name=msg_type_url,json=msgTypeUrl,proto3" json:"msg_type_url,omitempty"`
}

// Reset implements the proto.Message interface.
func (m *EventOwnerCall) Reset() { *m = EventOwnerCall{} }

// String implements the proto.Message interface.
func (m *EventOwnerCall) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements the proto.Message interface.
func (*EventOwnerCall) ProtoMessage() {}
