package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/userdirectory/internal/logging"
	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"github.com/dmitrijs2005/userdirectory/internal/server/metrics"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"github.com/dmitrijs2005/userdirectory/internal/server/services"
)

// UserService is the part of services.UserService the handlers use.
type UserService interface {
	Register(ctx context.Context, email, password string, profile models.Profile) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id string, sel models.UserSelect) (*models.User, error)
	ListAll(ctx context.Context, actorID string) ([]*models.User, error)
	ChangePassword(ctx context.Context, actorID, oldPass, newPass string) (*services.Message, error)
	IsBanned(ctx context.Context, user *models.User) (*models.Ban, error)
}

type GRPCServer struct {
	pb.UnimplementedUserDirectoryServer
	address   string
	users     UserService
	metrics   *metrics.Metrics
	logger    logging.Logger
	jwtSecret []byte
}

// NewGRPCServer builds the server. m may be nil, in which case no metrics
// are recorded.
func NewGRPCServer(a string, l logging.Logger, us UserService, m *metrics.Metrics, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		metrics:   m,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	var interceptors []grpc.UnaryServerInterceptor
	if s.metrics != nil {
		interceptors = append(interceptors, s.metrics.UnaryInterceptor)
	}
	interceptors = append(interceptors, s.accessTokenInterceptor)

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	pb.RegisterUserDirectoryServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
