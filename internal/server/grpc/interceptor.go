package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// publicMethods can be called without a bearer token.
var publicMethods = map[string]bool{
	pb.TodoService_Register_FullMethodName: true,
	pb.TodoService_Login_FullMethodName:    true,
	pb.TodoService_Ping_FullMethodName:     true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AuthorizationHeaderName)
		if len(values) > 0 {
			header = values[0]
		}
	}

	userID, err := s.tokens.Authenticate(header)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, authFailureMessage(err))
	}

	ctx = context.WithValue(ctx, userIDKey, userID)

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	if code == codes.Internal || code == codes.Unavailable {
		s.logger.Error(ctx, "grpc request failed", append(args, "error", err)...)
	} else {
		s.logger.Info(ctx, "grpc request", args...)
	}

	return resp, err
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrMissingCredential):
		return "missing token"
	case errors.Is(err, common.ErrTokenExpired):
		return "token expired"
	default:
		return "invalid token"
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}
