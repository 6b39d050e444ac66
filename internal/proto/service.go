package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = packageName + "." + serviceName

const (
	PreferenceService_RegisterUser_FullMethodName     = "/" + ServiceName + "/RegisterUser"
	PreferenceService_GetSalt_FullMethodName          = "/" + ServiceName + "/GetSalt"
	PreferenceService_Login_FullMethodName            = "/" + ServiceName + "/Login"
	PreferenceService_RefreshToken_FullMethodName     = "/" + ServiceName + "/RefreshToken"
	PreferenceService_Ping_FullMethodName             = "/" + ServiceName + "/Ping"
	PreferenceService_GetPreference_FullMethodName    = "/" + ServiceName + "/GetPreference"
	PreferenceService_UpsertPreference_FullMethodName = "/" + ServiceName + "/UpsertPreference"
)

// PreferenceServiceClient is the client API for the preference service.
type PreferenceServiceClient interface {
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error)
	GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	GetPreference(ctx context.Context, in *GetPreferenceRequest, opts ...grpc.CallOption) (*GetPreferenceResponse, error)
	UpsertPreference(ctx context.Context, in *UpsertPreferenceRequest, opts ...grpc.CallOption) (*UpsertPreferenceResponse, error)
}

type preferenceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPreferenceServiceClient wraps cc.
func NewPreferenceServiceClient(cc grpc.ClientConnInterface) PreferenceServiceClient {
	return &preferenceServiceClient{cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	reply := newWire(out)
	if err := cc.Invoke(ctx, method, toWire(in), reply, opts...); err != nil {
		return nil, err
	}
	fromWire(reply, out)
	return out, nil
}

func (c *preferenceServiceClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error) {
	return invoke[RegisterUserRequest, RegisterUserResponse](ctx, c.cc, PreferenceService_RegisterUser_FullMethodName, in, opts...)
}

func (c *preferenceServiceClient) GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error) {
	return invoke[GetSaltRequest, GetSaltResponse](ctx, c.cc, PreferenceService_GetSalt_FullMethodName, in, opts...)
}

func (c *preferenceServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginRequest, LoginResponse](ctx, c.cc, PreferenceService_Login_FullMethodName, in, opts...)
}

func (c *preferenceServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenRequest, RefreshTokenResponse](ctx, c.cc, PreferenceService_RefreshToken_FullMethodName, in, opts...)
}

func (c *preferenceServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingRequest, PingResponse](ctx, c.cc, PreferenceService_Ping_FullMethodName, in, opts...)
}

func (c *preferenceServiceClient) GetPreference(ctx context.Context, in *GetPreferenceRequest, opts ...grpc.CallOption) (*GetPreferenceResponse, error) {
	return invoke[GetPreferenceRequest, GetPreferenceResponse](ctx, c.cc, PreferenceService_GetPreference_FullMethodName, in, opts...)
}

func (c *preferenceServiceClient) UpsertPreference(ctx context.Context, in *UpsertPreferenceRequest, opts ...grpc.CallOption) (*UpsertPreferenceResponse, error) {
	return invoke[UpsertPreferenceRequest, UpsertPreferenceResponse](ctx, c.cc, PreferenceService_UpsertPreference_FullMethodName, in, opts...)
}

// PreferenceServiceServer is the server API for the preference service.
// Implementations must embed UnimplementedPreferenceServiceServer.
type PreferenceServiceServer interface {
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	GetPreference(context.Context, *GetPreferenceRequest) (*GetPreferenceResponse, error)
	UpsertPreference(context.Context, *UpsertPreferenceRequest) (*UpsertPreferenceResponse, error)
	mustEmbedUnimplementedPreferenceServiceServer()
}

// UnimplementedPreferenceServiceServer answers every method with Unimplemented.
type UnimplementedPreferenceServiceServer struct{}

func (UnimplementedPreferenceServiceServer) RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterUser not implemented")
}
func (UnimplementedPreferenceServiceServer) GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSalt not implemented")
}
func (UnimplementedPreferenceServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedPreferenceServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedPreferenceServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedPreferenceServiceServer) GetPreference(context.Context, *GetPreferenceRequest) (*GetPreferenceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPreference not implemented")
}
func (UnimplementedPreferenceServiceServer) UpsertPreference(context.Context, *UpsertPreferenceRequest) (*UpsertPreferenceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertPreference not implemented")
}
func (UnimplementedPreferenceServiceServer) mustEmbedUnimplementedPreferenceServiceServer() {}

// RegisterPreferenceServiceServer attaches srv to s.
func RegisterPreferenceServiceServer(s grpc.ServiceRegistrar, srv PreferenceServiceServer) {
	s.RegisterService(&PreferenceService_ServiceDesc, srv)
}

// unaryHandler decodes the wire request into *Req, runs call, through the
// interceptor when there is one, and encodes the *Resp it returns.
func unaryHandler[Req, Resp any](method string, call func(PreferenceServiceServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		wire := newWire(in)
		if err := dec(wire); err != nil {
			return nil, err
		}
		fromWire(wire, in)

		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PreferenceServiceServer), ctx, req.(*Req))
		}

		var out any
		var err error
		if interceptor == nil {
			out, err = handler(ctx, in)
		} else {
			out, err = interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: method}, handler)
		}
		if err != nil {
			return nil, err
		}

		resp, ok := out.(*Resp)
		if !ok || resp == nil {
			return nil, status.Errorf(codes.Internal, "%s: unexpected response %T", method, out)
		}
		return toWire(resp), nil
	}
}

// PreferenceService_ServiceDesc is the grpc.ServiceDesc for the preference service.
var PreferenceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PreferenceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterUser",
			Handler:    unaryHandler(PreferenceService_RegisterUser_FullMethodName, PreferenceServiceServer.RegisterUser),
		},
		{
			MethodName: "GetSalt",
			Handler:    unaryHandler(PreferenceService_GetSalt_FullMethodName, PreferenceServiceServer.GetSalt),
		},
		{
			MethodName: "Login",
			Handler:    unaryHandler(PreferenceService_Login_FullMethodName, PreferenceServiceServer.Login),
		},
		{
			MethodName: "RefreshToken",
			Handler:    unaryHandler(PreferenceService_RefreshToken_FullMethodName, PreferenceServiceServer.RefreshToken),
		},
		{
			MethodName: "Ping",
			Handler:    unaryHandler(PreferenceService_Ping_FullMethodName, PreferenceServiceServer.Ping),
		},
		{
			MethodName: "GetPreference",
			Handler:    unaryHandler(PreferenceService_GetPreference_FullMethodName, PreferenceServiceServer.GetPreference),
		},
		{
			MethodName: "UpsertPreference",
			Handler:    unaryHandler(PreferenceService_UpsertPreference_FullMethodName, PreferenceServiceServer.UpsertPreference),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: fileName,
}
