package proto

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

func TestSchema(t *testing.T) {
	svc := File.Services().ByName(serviceName)
	require.NotNil(t, svc)
	assert.Equal(t, protoreflect.FullName(ServiceName), svc.FullName())
	assert.Equal(t, len(methods), svc.Methods().Len())

	login := File.Messages().ByName("LoginRequest")
	require.NotNil(t, login)
	fd := login.Fields().ByNumber(2)
	require.NotNil(t, fd)
	assert.Equal(t, protoreflect.Name("verifier_candidate"), fd.Name())
	assert.Equal(t, protoreflect.BytesKind, fd.Kind())

	found := File.Messages().ByName("GetPreferenceResponse").Fields().ByName("found")
	assert.Equal(t, protoreflect.BoolKind, found.Kind())
}

func TestWireConversion(t *testing.T) {
	in := &RegisterUserRequest{Username: "alice", Salt: []byte{1, 2}, Verifier: []byte{3}}

	b, err := proto.Marshal(toWire(in))
	require.NoError(t, err)

	msg := dynamicpb.NewMessage(File.Messages().ByName("RegisterUserRequest"))
	require.NoError(t, proto.Unmarshal(b, msg))

	var out RegisterUserRequest
	fromWire(msg, &out)
	assert.Equal(t, *in, out)

	var empty GetPreferenceResponse
	fromWire(toWire(&GetPreferenceResponse{}), &empty)
	assert.Equal(t, GetPreferenceResponse{}, empty)
}

func TestUnimplementedServer(t *testing.T) {
	var srv UnimplementedPreferenceServiceServer

	_, err := srv.GetPreference(context.Background(), &GetPreferenceRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

type recordingServer struct {
	UnimplementedPreferenceServiceServer
	got string
}

func (s *recordingServer) UpsertPreference(_ context.Context, in *UpsertPreferenceRequest) (*UpsertPreferenceResponse, error) {
	s.got = in.Theme
	return &UpsertPreferenceResponse{Theme: in.Theme}, nil
}

func (s *recordingServer) GetPreference(context.Context, *GetPreferenceRequest) (*GetPreferenceResponse, error) {
	return &GetPreferenceResponse{Theme: "light", Found: true}, nil
}

func TestServiceDesc_HandlerRunsInterceptor(t *testing.T) {
	srv := &recordingServer{}

	var handler grpc.MethodHandler
	for _, m := range PreferenceService_ServiceDesc.Methods {
		if m.MethodName == "UpsertPreference" {
			handler = m.Handler
		}
	}
	require.NotNil(t, handler)

	dec := func(v any) error {
		return proto.Unmarshal(mustMarshal(t, &UpsertPreferenceRequest{Theme: "dark"}), v.(proto.Message))
	}
	var seen string
	var seenReq any
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		seen, seenReq = info.FullMethod, req
		return h(ctx, req)
	}

	resp, err := handler(srv, context.Background(), dec, interceptor)
	require.NoError(t, err)
	assert.Equal(t, PreferenceService_UpsertPreference_FullMethodName, seen)
	assert.Equal(t, &UpsertPreferenceRequest{Theme: "dark"}, seenReq)
	assert.Equal(t, "dark", srv.got)

	var out UpsertPreferenceResponse
	fromWire(resp.(proto.Message).ProtoReflect(), &out)
	assert.Equal(t, UpsertPreferenceResponse{Theme: "dark"}, out)
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := proto.Marshal(toWire(v))
	require.NoError(t, err)
	return b
}

func TestClientServerRoundTrip(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	srv := &recordingServer{}
	RegisterPreferenceServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	c := NewPreferenceServiceClient(conn)
	ctx := context.Background()

	up, err := c.UpsertPreference(ctx, &UpsertPreferenceRequest{Theme: "light"})
	require.NoError(t, err)
	assert.Equal(t, "light", up.Theme)
	assert.Equal(t, "light", srv.got)

	got, err := c.GetPreference(ctx, &GetPreferenceRequest{})
	require.NoError(t, err)
	assert.Equal(t, &GetPreferenceResponse{Theme: "light", Found: true}, got)

	_, err = c.Ping(ctx, &PingRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
