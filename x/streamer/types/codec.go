package types

import (
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
)

const protoPackage = "txstreamer.streamer.v1"

// The module maintains its wire types by hand in the reflective gogoproto
// style, so type registration that protoc-generated code would do in init
// lives here.
func init() {
	proto.RegisterType((*MsgDistribute)(nil), protoPackage+".MsgDistribute")
	proto.RegisterType((*MsgDistributeResponse)(nil), protoPackage+".MsgDistributeResponse")
	proto.RegisterType((*MsgOwnerExec)(nil), protoPackage+".MsgOwnerExec")
	proto.RegisterType((*MsgOwnerExecResponse)(nil), protoPackage+".MsgOwnerExecResponse")
	proto.RegisterType((*EventTokensDistributed)(nil), protoPackage+".EventTokensDistributed")
	proto.RegisterType((*EventOwnerCall)(nil), protoPackage+".EventOwnerCall")
	proto.RegisterType((*QueryConfigRequest)(nil), protoPackage+".QueryConfigRequest")
	proto.RegisterType((*QueryConfigResponse)(nil), protoPackage+".QueryConfigResponse")
	proto.RegisterType((*QueryLastDistributionRequest)(nil), protoPackage+".QueryLastDistributionRequest")
	proto.RegisterType((*QueryLastDistributionResponse)(nil), protoPackage+".QueryLastDistributionResponse")
	proto.RegisterType((*LastDistribution)(nil), protoPackage+".LastDistribution")
	proto.RegisterType((*GenesisState)(nil), protoPackage+".GenesisState")
}

// RegisterInterfaces registers interfaces and implementations of the module.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgDistribute{},
		&MsgOwnerExec{},
	)
}
