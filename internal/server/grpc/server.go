package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"google.golang.org/grpc"
)

// GRPCServer exposes the todokeeper service over gRPC.
type GRPCServer struct {
	pb.UnimplementedTodoServiceServer
	address     string
	users       userService
	todos       todoService
	attachments attachmentService
	tokens      *auth.TokenService
	logger      logging.Logger
	maxUpload   int64
	maxMsgBytes int
}

// NewGRPCServer builds the server. maxUploadBytes bounds a photo; messages
// in both directions are allowed to carry one.
func NewGRPCServer(a string, l logging.Logger, tokens *auth.TokenService, us userService, ts todoService, as attachmentService, maxUploadBytes int64) (*GRPCServer, error) {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		tokens:      tokens,
		users:       us,
		todos:       ts,
		attachments: as,
		maxUpload:   maxUploadBytes,
		maxMsgBytes: common.GRPCMessageLimit(maxUploadBytes),
	}, nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
		grpc.MaxRecvMsgSize(s.maxMsgBytes),
		grpc.MaxSendMsgSize(s.maxMsgBytes),
	)
	pb.RegisterTodoServiceServer(srv, s)
	return srv
}

// Serve accepts connections on listen until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}
