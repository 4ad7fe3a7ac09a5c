package types

import (
	"github.com/cosmos/gogoproto/proto"
)

// QueryConfigRequest is the request to query the immutable module configuration.
type QueryConfigRequest struct{}

// Reset implements the proto.Message interface.
func (m *QueryConfigRequest) Reset() { *m = QueryConfigRequest{} }

// String implements the proto.Message interface.
func (m *QueryConfigRequest) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements the proto.Message interface.
func (*QueryConfigRequest) ProtoMessage() {}

// QueryConfigResponse carries the module configuration fixed at construction.
type QueryConfigResponse struct {
	VaultAddress                   string `protobuf:"bytes,1,opt,name=vault_address,json=vaultAddress,proto3" json:"vault_address,omitempty"`
	PromotionAddress               string `protobuf:"bytes,2,opt,name=promotion_address,json=promotionAddress,proto3" json:"promotion_address,omitempty"`
	MinDistributionSpacingSeconds  int64  `protobuf:"varint,3,opt,name=min_distribution_spacing_seconds,json=minDistributionSpacingSeconds,proto3" json:"min_distribution_spacing_seconds,omitempty"`
	MaxDistributionTimeSpanSeconds int64  `protobuf:"varint,4,opt,name=max_distribution_time_span_seconds,json=maxDistributionTimeSpanSeconds,proto3" json:"max_distribution_time_span_seconds,omitempty"`
	PeriodLengthSeconds            int64  `protobuf:"varint,5,opt,name=period_length_seconds,json=periodLengthSeconds,proto3" json:"period_length_seconds,omitempty"`
}

// Reset implements the proto.Message interface.
func (m *QueryConfigResponse) Reset() { *m = QueryConfigResponse{} }

// String implements the proto.Message interface.
func (m *QueryConfigResponse) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements the proto.Message interface.
func (*QueryConfigResponse) ProtoMessage() {}

// QueryLastDistributionRequest is the request to query the last distribution
// watermark of a denom.
type QueryLastDistributionRequest struct {
	Denom string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
}

// Reset implements the proto.Message interface.
func (m *QueryLastDistributionRequest) Reset() { *m = QueryLastDistributionRequest{} }

// String implements the proto.Message interface.
func (m *QueryLastDistributionRequest) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements the proto.Message interface.
func (*QueryLastDistributionRequest) ProtoMessage() {}

// QueryLastDistributionResponse carries the end timestamp of the last successful
// distribution for the denom, 0 when the denom was never distributed.
type QueryLastDistributionResponse struct {
	EndTime int64 `protobuf:"varint,1,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
}

// Reset implements the proto.Message interface.
func (m *QueryLastDistributionResponse) Reset() { *m = QueryLastDistributionResponse{} }

// String implements the proto.Message interface.
func (m *QueryLastDistributionResponse) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements the proto.Message interface.
func (*QueryLastDistributionResponse) ProtoMessage() {}
