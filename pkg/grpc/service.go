package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "coldtrack.Monitor"

const (
	MethodGetRealtime  = "/" + ServiceName + "/GetRealtime"
	MethodSelectBranch = "/" + ServiceName + "/SelectBranch"
	MethodSelectSensor = "/" + ServiceName + "/SelectSensor"
	MethodRunAnalytics = "/" + ServiceName + "/RunAnalytics"
	MethodPostLimiter  = "/" + ServiceName + "/PostLimiter"
)

// MonitorService exchanges google.protobuf.Struct messages; field names
// follow the REST JSON bodies.
type MonitorService interface {
	GetRealtime(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectBranch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectSensor(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RunAnalytics(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PostLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(MonitorService, context.Context, *structpb.Struct) (*structpb.Struct, error)

// methodHandler matches grpc.MethodDesc.Handler.
type methodHandler = func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error)

func unaryHandler(fullMethod string, call unaryMethod) methodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MonitorService), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MonitorService), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var MonitorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MonitorService)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetRealtime", Handler: unaryHandler(MethodGetRealtime, MonitorService.GetRealtime)},
		{MethodName: "SelectBranch", Handler: unaryHandler(MethodSelectBranch, MonitorService.SelectBranch)},
		{MethodName: "SelectSensor", Handler: unaryHandler(MethodSelectSensor, MonitorService.SelectSensor)},
		{MethodName: "RunAnalytics", Handler: unaryHandler(MethodRunAnalytics, MonitorService.RunAnalytics)},
		{MethodName: "PostLimiter", Handler: unaryHandler(MethodPostLimiter, MonitorService.PostLimiter)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "coldtrack/monitor.proto",
}

func RegisterMonitorServer(s grpc.ServiceRegistrar, srv MonitorService) {
	s.RegisterService(&MonitorServiceDesc, srv)
}

type MonitorClient struct {
	cc grpc.ClientConnInterface
}

func NewMonitorClient(cc grpc.ClientConnInterface) *MonitorClient {
	return &MonitorClient{cc: cc}
}

func (c *MonitorClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MonitorClient) GetRealtime(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetRealtime, in, opts...)
}

func (c *MonitorClient) SelectBranch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSelectBranch, in, opts...)
}

func (c *MonitorClient) SelectSensor(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSelectSensor, in, opts...)
}

func (c *MonitorClient) RunAnalytics(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodRunAnalytics, in, opts...)
}

func (c *MonitorClient) PostLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodPostLimiter, in, opts...)
}
