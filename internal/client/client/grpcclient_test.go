package client

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/learnhub/internal/common"
	pb "github.com/dmitrijs2005/learnhub/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type fakePB struct {
	lastRefreshTokenReq *pb.RefreshTokenRequest
	lastLoginReq        *pb.LoginRequest
	lastRegisterReq     *pb.RegisterUserRequest
	lastUpsertReq       *pb.UpsertPreferenceRequest

	refreshTokenResp *pb.RefreshTokenResponse
	refreshTokenErr  error

	pingResp *pb.PingResponse
	pingErr  error

	getSaltResp *pb.GetSaltResponse
	getSaltErr  error

	loginResp *pb.LoginResponse
	loginErr  error

	registerResp *pb.RegisterUserResponse
	registerErr  error

	getPrefResp *pb.GetPreferenceResponse
	getPrefErr  error

	upsertErr error
}

func (f *fakePB) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error) {
	f.lastRefreshTokenReq = in
	return f.refreshTokenResp, f.refreshTokenErr
}

func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}

func (f *fakePB) GetSalt(ctx context.Context, in *pb.GetSaltRequest, opts ...grpc.CallOption) (*pb.GetSaltResponse, error) {
	return f.getSaltResp, f.getSaltErr
}

func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}

func (f *fakePB) RegisterUser(ctx context.Context, in *pb.RegisterUserRequest, opts ...grpc.CallOption) (*pb.RegisterUserResponse, error) {
	f.lastRegisterReq = in
	return f.registerResp, f.registerErr
}

func (f *fakePB) GetPreference(ctx context.Context, in *pb.GetPreferenceRequest, opts ...grpc.CallOption) (*pb.GetPreferenceResponse, error) {
	return f.getPrefResp, f.getPrefErr
}

func (f *fakePB) UpsertPreference(ctx context.Context, in *pb.UpsertPreferenceRequest, opts ...grpc.CallOption) (*pb.UpsertPreferenceResponse, error) {
	f.lastUpsertReq = in
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	return &pb.UpsertPreferenceResponse{Theme: in.Theme}, nil
}

func tokenFrom(t *testing.T, ctx context.Context) string {
	t.Helper()
	md, _ := metadata.FromOutgoingContext(ctx)
	toks := md.Get(common.AccessTokenHeaderName)
	require.Len(t, toks, 1)
	return toks[0]
}

func TestInterceptor_RefreshesTokenOnExpiredAndRetries(t *testing.T) {
	f := &fakePB{refreshTokenResp: &pb.RefreshTokenResponse{AccessToken: "A2", RefreshToken: "R2"}}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	calls := 0
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		calls++
		if calls == 1 {
			require.Equal(t, "A1", tokenFrom(t, ctx))
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		require.Equal(t, "A2", tokenFrom(t, ctx))
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "A2", c.accessToken)
	assert.Equal(t, "R2", c.refreshToken)
	assert.Equal(t, "R1", f.lastRefreshTokenReq.RefreshToken)
}

func TestInterceptor_NoRetry(t *testing.T) {
	tests := []struct {
		name    string
		refresh string
		callErr error
	}{
		{name: "no refresh token", callErr: status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())},
		{name: "other code", refresh: "R", callErr: status.Error(codes.Internal, "boom")},
		{name: "other unauthenticated", refresh: "R", callErr: status.Error(codes.Unauthenticated, "some other reason")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakePB{}
			c := &GRPCClient{client: f, accessToken: "A1", refreshToken: tt.refresh}

			calls := 0
			err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil,
				func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
					calls++
					return tt.callErr
				})
			require.Error(t, err)
			assert.Equal(t, 1, calls)
			assert.Nil(t, f.lastRefreshTokenReq)
		})
	}
}

func TestInterceptor_RefreshFails(t *testing.T) {
	f := &fakePB{refreshTokenErr: status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil,
		func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		})
	require.Error(t, err)
	assert.Equal(t, "A1", c.accessToken)
}

func TestInterceptor_NoTokenNoHeader(t *testing.T) {
	c := &GRPCClient{}
	err := c.accessTokenInterceptor(context.Background(), "/svc/Ping", nil, nil, nil,
		func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			md, _ := metadata.FromOutgoingContext(ctx)
			assert.Empty(t, md.Get(common.AccessTokenHeaderName))
			return nil
		})
	require.NoError(t, err)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	assert.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.Unauthenticated, "x")))
	assert.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.PermissionDenied, "x")))
	assert.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	assert.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	assert.Equal(t, ErrNotFound, c.mapError(status.Error(codes.NotFound, "x")))
	assert.Equal(t, ErrAlreadyExists, c.mapError(status.Error(codes.AlreadyExists, "x")))
	assert.ErrorIs(t, c.mapError(status.Error(codes.InvalidArgument, "bad theme")), ErrInvalidArgument)
	assert.ErrorIs(t, c.mapError(context.DeadlineExceeded), ErrUnavailable)
	assert.ErrorContains(t, c.mapError(errors.New("plain")), "rpc error:")
	assert.NoError(t, c.mapError(nil))
}

func TestPing(t *testing.T) {
	c := &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}}
	require.NoError(t, c.Ping(context.Background()))

	c = &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "NOT_OK"}}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	c = &GRPCClient{client: &fakePB{pingErr: status.Error(codes.Unavailable, "down")}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestRegisterAndSalt(t *testing.T) {
	f := &fakePB{
		registerResp: &pb.RegisterUserResponse{UserId: "u1"},
		getSaltResp:  &pb.GetSaltResponse{Salt: []byte("SALT")},
	}
	c := &GRPCClient{client: f}

	id, err := c.Register(context.Background(), "alice", []byte("s"), []byte("v"))
	require.NoError(t, err)
	assert.Equal(t, "u1", id)
	assert.Equal(t, "alice", f.lastRegisterReq.Username)

	salt, err := c.GetSalt(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("SALT"), salt)

	f.registerErr = status.Error(codes.AlreadyExists, "already exists")
	_, err = c.Register(context.Background(), "alice", []byte("s"), []byte("v"))
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestLoginStoresTokensAndLogoutClears(t *testing.T) {
	f := &fakePB{loginResp: &pb.LoginResponse{AccessToken: "A", RefreshToken: "R", UserId: "u1"}}
	c := &GRPCClient{client: f}

	id, err := c.Login(context.Background(), "alice", []byte("v"))
	require.NoError(t, err)
	assert.Equal(t, "u1", id)
	assert.Equal(t, "u1", c.UserID())

	access, refresh := c.tokens()
	assert.Equal(t, "A", access)
	assert.Equal(t, "R", refresh)

	c.Logout()
	access, refresh = c.tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)
	assert.Empty(t, c.UserID())

	f.loginErr = status.Error(codes.Unauthenticated, "unauthorized")
	_, err = c.Login(context.Background(), "alice", []byte("bad"))
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestPreferenceCalls(t *testing.T) {
	f := &fakePB{getPrefResp: &pb.GetPreferenceResponse{Theme: "light", Found: true}}
	c := &GRPCClient{client: f}

	theme, found, err := c.GetPreference(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", theme)

	require.NoError(t, c.UpsertPreference(context.Background(), "dark"))
	assert.Equal(t, "dark", f.lastUpsertReq.Theme)

	f.upsertErr = status.Error(codes.Unavailable, "down")
	require.ErrorIs(t, c.UpsertPreference(context.Background(), "dark"), ErrUnavailable)

	f.getPrefErr = status.Error(codes.Unauthenticated, "missing token")
	_, _, err = c.GetPreference(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestNewGRPCClient(t *testing.T) {
	c, err := NewGRPCClient("localhost:50051", 0)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	var empty GRPCClient
	require.NoError(t, empty.Close())
}
