package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "liferestart.talent.v1alpha1.TalentService"

// Full method names
const (
	DrawTalentsMethod     = "/" + ServiceName + "/DrawTalents"
	ReplaceTalentsMethod  = "/" + ServiceName + "/ReplaceTalents"
	GetTalentMethod       = "/" + ServiceName + "/GetTalent"
	EvaluateTalentsMethod = "/" + ServiceName + "/EvaluateTalents"
)

// TalentServiceServer is the server API for the talent service. Every
// message is a google.protobuf.Struct.
type TalentServiceServer interface {
	DrawTalents(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReplaceTalents(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTalent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EvaluateTalents(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterTalentServiceServer registers srv on s
func RegisterTalentServiceServer(s grpc.ServiceRegistrar, srv TalentServiceServer) {
	s.RegisterService(&TalentServiceDesc, srv)
}

func unaryHandler(
	method string,
	call func(TalentServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TalentServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TalentServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// TalentServiceDesc describes the talent service for grpc.Server
var TalentServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TalentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "DrawTalents",
			Handler:    unaryHandler(DrawTalentsMethod, TalentServiceServer.DrawTalents),
		},
		{
			MethodName: "ReplaceTalents",
			Handler:    unaryHandler(ReplaceTalentsMethod, TalentServiceServer.ReplaceTalents),
		},
		{
			MethodName: "GetTalent",
			Handler:    unaryHandler(GetTalentMethod, TalentServiceServer.GetTalent),
		},
		{
			MethodName: "EvaluateTalents",
			Handler:    unaryHandler(EvaluateTalentsMethod, TalentServiceServer.EvaluateTalents),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "liferestart/talent/v1alpha1/talent.proto",
}

// TalentServiceClient is the client API for the talent service
type TalentServiceClient interface {
	DrawTalents(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ReplaceTalents(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetTalent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	EvaluateTalents(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type talentServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTalentServiceClient wraps a client connection
func NewTalentServiceClient(cc grpc.ClientConnInterface) TalentServiceClient {
	return &talentServiceClient{cc: cc}
}

func (c *talentServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *talentServiceClient) DrawTalents(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, DrawTalentsMethod, in, opts)
}

func (c *talentServiceClient) ReplaceTalents(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ReplaceTalentsMethod, in, opts)
}

func (c *talentServiceClient) GetTalent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetTalentMethod, in, opts)
}

func (c *talentServiceClient) EvaluateTalents(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EvaluateTalentsMethod, in, opts)
}
