package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dmitrijs2005/userdirectory/internal/client/models"
	"github.com/dmitrijs2005/userdirectory/internal/common"
	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.UserDirectoryClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)

	// forget a rejected token
	if status.Code(err) == codes.Unauthenticated {
		s.accessToken = ""
	}

	return err
}

func NewUserDirectoryClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewUserDirectoryClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Register(ctx context.Context, email, password string, profile map[string]any) (*models.User, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	fields := map[string]any{pb.FieldEmail: email, pb.FieldPassword: password}
	if profile != nil {
		fields[pb.FieldProfile] = profile
	}
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return decodeUser(resp), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) error {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{pb.FieldEmail: email, pb.FieldPassword: password})
	if err != nil {
		return err
	}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = pb.GetString(resp, pb.FieldAccessToken)
	return nil
}

func (s *GRPCClient) Logout() {
	s.accessToken = ""
}

func (s *GRPCClient) LoggedIn() bool {
	return s.accessToken != ""
}

// GetUser fetches the user with the given id; an empty id means the caller.
func (s *GRPCClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetUser(ctx, idRequest(id))
	if err != nil {
		return nil, s.mapError(err)
	}
	return decodeUser(resp), nil
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]*models.User, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListUsers(ctx, &structpb.Struct{})
	if err != nil {
		return nil, s.mapError(err)
	}

	values := pb.GetList(resp, pb.FieldUsers)
	users := make([]*models.User, 0, len(values))
	for _, v := range values {
		users = append(users, decodeUser(v.GetStructValue()))
	}
	return users, nil
}

func (s *GRPCClient) ChangePassword(ctx context.Context, oldPass, newPass string) (string, error) {
	if !s.LoggedIn() {
		return "", ErrNotLoggedIn
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{pb.FieldOldPass: oldPass, pb.FieldNewPass: newPass})
	if err != nil {
		return "", err
	}

	resp, err := s.client.ChangePassword(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return pb.GetString(resp, pb.FieldMessage), nil
}

func (s *GRPCClient) BanStatus(ctx context.Context, id string) (*models.BanStatus, error) {
	if !s.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetBanStatus(ctx, idRequest(id))
	if err != nil {
		return nil, s.mapError(err)
	}
	return decodeBanStatus(resp), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &structpb.Struct{})
	if err != nil {
		return s.mapError(err)
	}
	if pb.GetString(resp, pb.FieldStatus) != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return errors.New(st.Message())
	}
}
