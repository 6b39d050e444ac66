package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/common"
	pb "github.com/dmitrijs2005/learnhub/internal/proto"
	"github.com/dmitrijs2005/learnhub/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

var authenticatedMethods = map[string]struct{}{
	pb.PreferenceService_GetPreference_FullMethodName:    {},
	pb.PreferenceService_UpsertPreference_FullMethodName: {},
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// requestLogInterceptor tags every call with a request ID (taken from the
// caller when present) and logs its outcome.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	requestID := firstMetadata(ctx, common.RequestIDHeaderName)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)

	log := s.logger.With("request_id", requestID, "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	if err != nil && status.Code(err) == codes.Internal {
		log.Error(ctx, "request failed", "error", err)
	} else {
		log.Debug(ctx, "request served")
	}
	return resp, err
}

// accessTokenInterceptor resolves the caller's user ID for authenticated
// methods. An expired token is reported with common.ErrTokenExpired as the
// status message so clients can refresh and retry.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := authenticatedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	accessToken := firstMetadata(ctx, common.AccessTokenHeaderName)
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	return handler(context.WithValue(ctx, userIDKey, userID), req)
}

func userIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
