package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "lighting.v1alpha1.SightService"

// Full method names
const (
	MethodCalculateEyesAdaptation = "/" + ServiceName + "/CalculateEyesAdaptation"
	MethodCalculateGlare          = "/" + ServiceName + "/CalculateGlare"
	MethodListSpecies             = "/" + ServiceName + "/ListSpecies"
)

// SightServiceServer is the server API for the sight service.
// Requests and responses are google.protobuf.Struct documents.
type SightServiceServer interface {
	CalculateEyesAdaptation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CalculateGlare(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListSpecies(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterSightServiceServer registers the service on a gRPC server
func RegisterSightServiceServer(s grpc.ServiceRegistrar, srv SightServiceServer) {
	s.RegisterService(&SightServiceDesc, srv)
}

func unaryHandler(
	fullMethod string,
	call func(srv SightServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error),
) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(
		srv interface{},
		ctx context.Context,
		dec func(interface{}) error,
		interceptor grpc.UnaryServerInterceptor,
	) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SightServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(SightServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// SightServiceDesc is the grpc.ServiceDesc for the sight service
var SightServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SightServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CalculateEyesAdaptation",
			Handler: unaryHandler(MethodCalculateEyesAdaptation,
				func(srv SightServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
					return srv.CalculateEyesAdaptation(ctx, req)
				}),
		},
		{
			MethodName: "CalculateGlare",
			Handler: unaryHandler(MethodCalculateGlare,
				func(srv SightServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
					return srv.CalculateGlare(ctx, req)
				}),
		},
		{
			MethodName: "ListSpecies",
			Handler: unaryHandler(MethodListSpecies,
				func(srv SightServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
					return srv.ListSpecies(ctx, req)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lighting/v1alpha1/sight.proto",
}

// SightServiceClient is the client API for the sight service
type SightServiceClient interface {
	CalculateEyesAdaptation(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CalculateGlare(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListSpecies(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type sightServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSightServiceClient creates a client on an existing connection
func NewSightServiceClient(cc grpc.ClientConnInterface) SightServiceClient {
	return &sightServiceClient{cc: cc}
}

func (c *sightServiceClient) invoke(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sightServiceClient) CalculateEyesAdaptation(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodCalculateEyesAdaptation, in, opts...)
}

func (c *sightServiceClient) CalculateGlare(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodCalculateGlare, in, opts...)
}

func (c *sightServiceClient) ListSpecies(
	ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListSpecies, in, opts...)
}
