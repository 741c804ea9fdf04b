// Package grpc exposes the chat coordinator as whatsut.ChatService.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/whatsut/internal/chatrpc"
	"github.com/dmitrijs2005/whatsut/internal/logging"
	"github.com/dmitrijs2005/whatsut/internal/server/coordinator"
	"google.golang.org/grpc"
)

// accountChecker resolves account state for token holders: bans cut off
// every authenticated call, the operator capability gates ban decisions.
type accountChecker interface {
	IsBanned(ctx context.Context, username string) (bool, error)
	IsOperator(ctx context.Context, username string) (bool, error)
}

// Options tune the server beyond its address.
type Options struct {
	// RequireToken enables the access-token check on every call except
	// Ping, Register and Login.
	RequireToken bool
	// MaxFileSize is the largest decoded file payload; the receive limit is
	// derived from it.
	MaxFileSize int64
}

type GRPCServer struct {
	address      string
	coord        *coordinator.ChatCoordinator
	accounts     accountChecker
	logger       logging.Logger
	jwtSecret    []byte
	requireToken bool
	maxRecvSize  int
}

func NewGRPCServer(a string, l logging.Logger, c *coordinator.ChatCoordinator, accounts accountChecker, secretKey string, opts Options) *GRPCServer {
	return &GRPCServer{
		address:      a,
		coord:        c,
		accounts:     accounts,
		logger:       l.With("module", "grpc_server"),
		jwtSecret:    []byte(secretKey),
		requireToken: opts.RequireToken,
		maxRecvSize:  recvLimit(opts.MaxFileSize),
	}
}

// recvLimit leaves room for base64 expansion of a maximal payload plus the
// JSON envelope around it.
func recvLimit(maxFileSize int64) int {
	const envelope = 64 * 1024
	const grpcDefault = 4 * 1024 * 1024
	n := int((maxFileSize+2)/3*4) + envelope
	if n < grpcDefault {
		return grpcDefault
	}
	return n
}

// newServer builds the grpc.Server with interceptors and the service
// registered, without listening.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.MaxRecvMsgSize(s.maxRecvSize),
		grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.accessTokenInterceptor),
	)
	chatrpc.RegisterChatServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String(), "require_token", s.requireToken)

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
