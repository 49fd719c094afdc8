// Package grpc exposes the user and snapshot services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/registerface/internal/logging"
	pb "github.com/dmitrijs2005/registerface/internal/proto"
	"github.com/dmitrijs2005/registerface/internal/server/metrics"
	"github.com/dmitrijs2005/registerface/internal/server/models"
	"github.com/dmitrijs2005/registerface/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the part of *services.UserService the handlers call.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (models.User, error)
	Login(ctx context.Context, userID, capturedFace string) (*services.LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Profile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID, name, email string) (models.User, error)
	EnrollFace(ctx context.Context, userID, faceData string) (models.User, error)
	Delete(ctx context.Context, userID string) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

// SnapshotService is the part of *services.SnapshotService the handlers call.
type SnapshotService interface {
	RequestUpload(ctx context.Context, userID string, kind models.SnapshotKind) (models.SnapshotUpload, error)
	ConfirmUpload(ctx context.Context, userID, snapshotID string) error
	DownloadURL(ctx context.Context, userID string, kind models.SnapshotKind) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedFaceAuthServiceServer
	address   string
	users     UserService
	snapshots SnapshotService
	logger    logging.Logger
	metrics   *metrics.Metrics
	jwtSecret []byte
}

// NewGRPCServer wires the services into a server listening on a. A nil
// Metrics disables request instrumentation.
func NewGRPCServer(a string, l logging.Logger, us UserService, ss SnapshotService, secretKey string, m *metrics.Metrics) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		snapshots: ss,
		metrics:   m,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.metricsInterceptor, s.accessTokenInterceptor))
	pb.RegisterFaceAuthServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
