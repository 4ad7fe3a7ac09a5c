package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// Hand-written gRPC glue for the Msg and Query services, equivalent to the
// code protoc-gen-gogo emits for service definitions.

// MsgServer is the server API for the streamer Msg service.
type MsgServer interface {
	// Distribute converts the module account's balance of a denom into a reward
	// promotion over the next distribution window.
	Distribute(context.Context, *MsgDistribute) (*MsgDistributeResponse, error)
	// OwnerExec executes arbitrary messages under the module account, gated on
	// the current vault owner.
	OwnerExec(context.Context, *MsgOwnerExec) (*MsgOwnerExecResponse, error)
}

// RegisterMsgServer registers the Msg service implementation with the server.
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_Distribute_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(MsgDistribute)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Distribute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + protoPackage + ".Msg/Distribute",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Distribute(ctx, req.(*MsgDistribute))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_OwnerExec_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(MsgOwnerExec)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).OwnerExec(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + protoPackage + ".Msg/OwnerExec",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).OwnerExec(ctx, req.(*MsgOwnerExec))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: protoPackage + ".Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Distribute",
			Handler:    _Msg_Distribute_Handler,
		},
		{
			MethodName: "OwnerExec",
			Handler:    _Msg_OwnerExec_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

// QueryServer is the server API for the streamer Query service.
type QueryServer interface {
	// Config returns the module configuration fixed at construction.
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	// LastDistribution returns the watermark of a denom.
	LastDistribution(context.Context, *QueryLastDistributionRequest) (*QueryLastDistributionResponse, error)
}

// RegisterQueryServer registers the Query service implementation with the server.
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

func _Query_Config_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(QueryConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Config(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + protoPackage + ".Query/Config",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Config(ctx, req.(*QueryConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_LastDistribution_Handler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(QueryLastDistributionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).LastDistribution(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + protoPackage + ".Query/LastDistribution",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).LastDistribution(ctx, req.(*QueryLastDistributionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: protoPackage + ".Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Config",
			Handler:    _Query_Config_Handler,
		},
		{
			MethodName: "LastDistribution",
			Handler:    _Query_LastDistribution_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

// QueryClient is the client API for the streamer Query service.
type QueryClient interface {
	Config(ctx context.Context, in *QueryConfigRequest, opts ...grpc.CallOption) (*QueryConfigResponse, error)
	LastDistribution(
		ctx context.Context, in *QueryLastDistributionRequest, opts ...grpc.CallOption,
	) (*QueryLastDistributionResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

// NewQueryClient creates a Query service client over the given connection.
func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Config(
	ctx context.Context, in *QueryConfigRequest, opts ...grpc.CallOption,
) (*QueryConfigResponse, error) {
	out := new(QueryConfigResponse)
	err := c.cc.Invoke(ctx, "/"+protoPackage+".Query/Config", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) LastDistribution(
	ctx context.Context, in *QueryLastDistributionRequest, opts ...grpc.CallOption,
) (*QueryLastDistributionResponse, error) {
	out := new(QueryLastDistributionResponse)
	err := c.cc.Invoke(ctx, "/"+protoPackage+".Query/LastDistribution", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
