package chatrpc

import (
	"context"

	"google.golang.org/grpc"
)

// CallbackServiceName is the fully qualified gRPC service name.
const CallbackServiceName = "whatsut.CallbackService"

// Full method names, as seen by interceptors.
const (
	CallbackService_Ping_FullMethodName          = "/" + CallbackServiceName + "/Ping"
	CallbackService_NotifyPrivate_FullMethodName = "/" + CallbackServiceName + "/NotifyPrivate"
	CallbackService_NotifyFile_FullMethodName    = "/" + CallbackServiceName + "/NotifyFile"
)

// CallbackServiceServer is implemented by the client side; the server calls it to push notifications.
type CallbackServiceServer interface {
	Ping(context.Context, *Empty) (*PingResponse, error)
	NotifyPrivate(context.Context, *NotifyPrivateRequest) (*Empty, error)
	NotifyFile(context.Context, *NotifyFileRequest) (*Empty, error)
}

func RegisterCallbackServiceServer(s grpc.ServiceRegistrar, srv CallbackServiceServer) {
	s.RegisterService(&CallbackService_ServiceDesc, srv)
}

var CallbackService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CallbackServiceName,
	HandlerType: (*CallbackServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CallbackService_Ping_FullMethodName, func(srv any, ctx context.Context, in *Empty) (*PingResponse, error) {
			return srv.(CallbackServiceServer).Ping(ctx, in)
		}),
		unary(CallbackService_NotifyPrivate_FullMethodName, func(srv any, ctx context.Context, in *NotifyPrivateRequest) (*Empty, error) {
			return srv.(CallbackServiceServer).NotifyPrivate(ctx, in)
		}),
		unary(CallbackService_NotifyFile_FullMethodName, func(srv any, ctx context.Context, in *NotifyFileRequest) (*Empty, error) {
			return srv.(CallbackServiceServer).NotifyFile(ctx, in)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "whatsut.json",
}

// CallbackServiceClient is the stub the server uses to reach a client's callback endpoint.
type CallbackServiceClient interface {
	Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error)
	NotifyPrivate(ctx context.Context, in *NotifyPrivateRequest, opts ...grpc.CallOption) (*Empty, error)
	NotifyFile(ctx context.Context, in *NotifyFileRequest, opts ...grpc.CallOption) (*Empty, error)
}

type callbackServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCallbackServiceClient(cc grpc.ClientConnInterface) CallbackServiceClient {
	return &callbackServiceClient{cc: cc}
}

func (c *callbackServiceClient) Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, CallbackService_Ping_FullMethodName, in, opts...)
}

func (c *callbackServiceClient) NotifyPrivate(ctx context.Context, in *NotifyPrivateRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, CallbackService_NotifyPrivate_FullMethodName, in, opts...)
}

func (c *callbackServiceClient) NotifyFile(ctx context.Context, in *NotifyFileRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, CallbackService_NotifyFile_FullMethodName, in, opts...)
}
