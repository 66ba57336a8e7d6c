package grpc

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dmitrijs2005/userdirectory/internal/common"
	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

// publicUser is the projection returned to clients.
var publicUser = models.UserSelect{
	models.UserFieldID:        true,
	models.UserFieldEmail:     true,
	models.UserFieldRoleID:    true,
	models.UserFieldProfile:   true,
	models.UserFieldCreatedAt: true,
}

var statusCodes = map[int]codes.Code{
	http.StatusBadRequest: codes.InvalidArgument,
	http.StatusForbidden:  codes.PermissionDenied,
	http.StatusNotFound:   codes.NotFound,
	http.StatusConflict:   codes.AlreadyExists,
}

// toStatus converts a service error to a gRPC status. Status errors keep
// their message; anything else is logged and reported as internal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	var se *common.StatusError
	if errors.As(err, &se) {
		if code, ok := statusCodes[se.Code]; ok {
			return status.Error(code, se.Message)
		}
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, se.Message)
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func (s *GRPCServer) actorID(ctx context.Context) (string, error) {
	id, ok := ActorIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	}
	return id, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	email := pb.GetString(req, pb.FieldEmail)
	password := pb.GetString(req, pb.FieldPassword)
	if email == "" || password == "" {
		return nil, s.toStatus(ctx, common.ErrIncorrectData)
	}

	var profile models.Profile
	if p := pb.GetStruct(req, pb.FieldProfile); p != nil {
		profile = p.AsMap()
	}

	user, err := s.users.Register(ctx, email, password, profile)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if user == nil {
		s.logger.Error(ctx, "registration skipped, default role is not configured")
		return nil, status.Error(codes.FailedPrecondition, "default role is not configured")
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	user.Password = ""
	return s.encode(ctx, userFields(user))
}

func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	token, err := s.users.Login(ctx, pb.GetString(req, pb.FieldEmail), pb.GetString(req, pb.FieldPassword))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return s.encode(ctx, map[string]any{pb.FieldAccessToken: token})
}

// GetUser returns the user named by id, or the caller when id is empty.
func (s *GRPCServer) GetUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	id := pb.GetString(req, pb.FieldID)
	if id == "" {
		var err error
		if id, err = s.actorID(ctx); err != nil {
			return nil, err
		}
	}

	user, err := s.users.GetByID(ctx, id, publicUser)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if user == nil {
		return nil, s.toStatus(ctx, common.ErrUserNotFound)
	}

	return s.encode(ctx, userFields(user))
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	actorID, err := s.actorID(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.ListAll(ctx, actorID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	list := make([]any, 0, len(users))
	for _, u := range users {
		list = append(list, userFields(u))
	}

	return s.encode(ctx, map[string]any{pb.FieldUsers: list})
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	actorID, err := s.actorID(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := s.users.ChangePassword(ctx, actorID, pb.GetString(req, pb.FieldOldPass), pb.GetString(req, pb.FieldNewPass))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return s.encode(ctx, map[string]any{pb.FieldMessage: msg.Message})
}

func (s *GRPCServer) GetBanStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	id := pb.GetString(req, pb.FieldID)
	if id == "" {
		var err error
		if id, err = s.actorID(ctx); err != nil {
			return nil, err
		}
	}

	user, err := s.users.GetByID(ctx, id, models.UserSelect{models.UserFieldID: true})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if user == nil {
		return nil, s.toStatus(ctx, common.ErrUserNotFound)
	}

	ban, err := s.users.IsBanned(ctx, user)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := map[string]any{pb.FieldBanned: ban != nil}
	if ban != nil {
		out[pb.FieldBan] = banFields(ban)
	}
	return s.encode(ctx, out)
}

func (s *GRPCServer) Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	return s.encode(ctx, map[string]any{pb.FieldStatus: "OK"})

}

func (s *GRPCServer) encode(ctx context.Context, m map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return out, nil
}
