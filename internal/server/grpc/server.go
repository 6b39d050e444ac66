// Package grpc exposes the LearnHub preference service over gRPC: account
// endpoints for the identity flow and the authenticated theme endpoints
// that back the remote preference store.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/learnhub/internal/logging"
	"github.com/dmitrijs2005/learnhub/internal/preference"
	pb "github.com/dmitrijs2005/learnhub/internal/proto"
	"github.com/dmitrijs2005/learnhub/internal/server/models"
	"github.com/dmitrijs2005/learnhub/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type profileSvc interface {
	GetPreference(ctx context.Context, userID string) (preference.Preference, bool, error)
	UpsertPreference(ctx context.Context, userID, theme string) (preference.Preference, error)
}

type GRPCServer struct {
	pb.UnimplementedPreferenceServiceServer
	address   string
	users     userSvc
	profiles  profileSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(address string, l logging.Logger, us userSvc, ps profileSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		profiles:  ps,
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds the grpc.Server with the interceptor chain and the
// service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.accessTokenInterceptor))
	pb.RegisterPreferenceServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
