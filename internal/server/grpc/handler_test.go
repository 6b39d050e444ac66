package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/dmitrijs2005/learnhub/internal/logging"
	"github.com/dmitrijs2005/learnhub/internal/preference"
	pb "github.com/dmitrijs2005/learnhub/internal/proto"
	"github.com/dmitrijs2005/learnhub/internal/server/models"
	"github.com/dmitrijs2005/learnhub/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeUser struct {
	refreshResp *services.TokenPair
	refreshErr  error

	regResp *models.User
	regErr  error

	saltResp []byte
	saltErr  error

	loginResp *services.TokenPair
	loginErr  error
}

func (f *fakeUser) RefreshToken(ctx context.Context, refresh string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

func (f *fakeUser) Register(ctx context.Context, username string, salt []byte, verifier []byte) (*models.User, error) {
	return f.regResp, f.regErr
}

func (f *fakeUser) GetSalt(ctx context.Context, username string) ([]byte, error) {
	return f.saltResp, f.saltErr
}

func (f *fakeUser) Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}

// fakeProfiles keeps one theme per user in memory.
type fakeProfiles struct {
	themes map[string]preference.Preference
	err    error
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{themes: map[string]preference.Preference{}}
}

func (f *fakeProfiles) GetPreference(ctx context.Context, userID string) (preference.Preference, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	p, ok := f.themes[userID]
	return p, ok, nil
}

func (f *fakeProfiles) UpsertPreference(ctx context.Context, userID, theme string) (preference.Preference, error) {
	if f.err != nil {
		return "", f.err
	}
	p, err := preference.Parse(theme)
	if err != nil {
		return "", errors.Join(common.ErrorInvalidArgument, err)
	}
	f.themes[userID] = p
	return p, nil
}

func newServer(u userSvc, p profileSvc) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop(), u, p, "k")
}

func withUser(id string) context.Context {
	return context.WithValue(context.Background(), userIDKey, id)
}

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeUser{}, newFakeProfiles())
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

func TestRegisterUser(t *testing.T) {
	tests := []struct {
		name     string
		user     *fakeUser
		wantCode codes.Code
	}{
		{name: "ok", user: &fakeUser{regResp: &models.User{ID: "42"}}, wantCode: codes.OK},
		{name: "taken", user: &fakeUser{regErr: common.ErrorAlreadyExists}, wantCode: codes.AlreadyExists},
		{name: "empty", user: &fakeUser{regErr: common.ErrorInvalidArgument}, wantCode: codes.InvalidArgument},
		{name: "db down", user: &fakeUser{regErr: errors.New("db down")}, wantCode: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(tt.user, newFakeProfiles())
			resp, err := s.RegisterUser(context.Background(), &pb.RegisterUserRequest{
				Username: "u", Salt: []byte("s"), Verifier: []byte("v"),
			})
			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				assert.Equal(t, "42", resp.UserId)
			}
		})
	}
}

func TestGetSalt(t *testing.T) {
	s := newServer(&fakeUser{saltResp: []byte("SALT123")}, newFakeProfiles())
	resp, err := s.GetSalt(context.Background(), &pb.GetSaltRequest{Username: "u"})
	require.NoError(t, err)
	assert.Equal(t, []byte("SALT123"), resp.Salt)

	s = newServer(&fakeUser{saltErr: common.ErrorInternal}, newFakeProfiles())
	_, err = s.GetSalt(context.Background(), &pb.GetSaltRequest{Username: "u"})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestLogin(t *testing.T) {
	s := newServer(&fakeUser{loginResp: &services.TokenPair{UserID: "u1", AccessToken: "A", RefreshToken: "R"}}, newFakeProfiles())
	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "u", VerifierCandidate: []byte("vv")})
	require.NoError(t, err)
	assert.Equal(t, &pb.LoginResponse{AccessToken: "A", RefreshToken: "R", UserId: "u1"}, resp)

	s = newServer(&fakeUser{loginErr: common.ErrorUnauthorized}, newFakeProfiles())
	_, err = s.Login(context.Background(), &pb.LoginRequest{Username: "u"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	s = newServer(&fakeUser{loginErr: errors.New("boom")}, newFakeProfiles())
	_, err = s.Login(context.Background(), &pb.LoginRequest{Username: "u"})
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "internal error", status.Convert(err).Message())
}

func TestRefreshToken(t *testing.T) {
	s := newServer(&fakeUser{refreshResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"}}, newFakeProfiles())
	resp, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	require.NoError(t, err)
	assert.Equal(t, "a", resp.AccessToken)
	assert.Equal(t, "r", resp.RefreshToken)

	for _, e := range []error{common.ErrRefreshTokenExpired, common.ErrorNotFound} {
		s = newServer(&fakeUser{refreshErr: e}, newFakeProfiles())
		_, err = s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
		assert.Equal(t, codes.Unauthenticated, status.Code(err), e.Error())
	}
}

func TestPreferenceEndpoints(t *testing.T) {
	profiles := newFakeProfiles()
	s := newServer(&fakeUser{}, profiles)

	got, err := s.GetPreference(withUser("u1"), &pb.GetPreferenceRequest{})
	require.NoError(t, err)
	assert.False(t, got.Found)

	up, err := s.UpsertPreference(withUser("u1"), &pb.UpsertPreferenceRequest{Theme: "light"})
	require.NoError(t, err)
	assert.Equal(t, "light", up.Theme)

	got, err = s.GetPreference(withUser("u1"), &pb.GetPreferenceRequest{})
	require.NoError(t, err)
	assert.Equal(t, &pb.GetPreferenceResponse{Theme: "light", Found: true}, got)

	other, err := s.GetPreference(withUser("u2"), &pb.GetPreferenceRequest{})
	require.NoError(t, err)
	assert.False(t, other.Found, "records are per identity")

	_, err = s.UpsertPreference(withUser("u1"), &pb.UpsertPreferenceRequest{Theme: "neon"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.GetPreference(context.Background(), &pb.GetPreferenceRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	profiles.err = errors.New("s3 unreachable")
	_, err = s.UpsertPreference(withUser("u1"), &pb.UpsertPreferenceRequest{Theme: "dark"})
	assert.Equal(t, codes.Internal, status.Code(err))
}
