package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// unaryHandler adapts one DiceServer method to grpc.MethodDesc.
func unaryHandler(method string, call func(DiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodHandler {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(DiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Roll", Handler: unaryHandler("Roll", DiceServer.Roll)},
		{MethodName: "Push", Handler: unaryHandler("Push", DiceServer.Push)},
		{MethodName: "RollConsumable", Handler: unaryHandler("RollConsumable", DiceServer.RollConsumable)},
		{MethodName: "RollPreset", Handler: unaryHandler("RollPreset", DiceServer.RollPreset)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "forbiddenlands/dice/v1/dice.proto",
}

// Client calls DiceService over conn.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Roll(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Roll", in, opts...)
}

func (c *Client) Push(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Push", in, opts...)
}

func (c *Client) RollConsumable(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "RollConsumable", in, opts...)
}

func (c *Client) RollPreset(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "RollPreset", in, opts...)
}
