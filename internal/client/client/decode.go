package client

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dmitrijs2005/userdirectory/internal/client/models"
	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
)

func idRequest(id string) *structpb.Struct {
	if id == "" {
		return &structpb.Struct{}
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		pb.FieldID: structpb.NewStringValue(id),
	}}
}

func decodeUser(s *structpb.Struct) *models.User {
	u := &models.User{
		ID:        pb.GetString(s, pb.FieldID),
		Email:     pb.GetString(s, pb.FieldEmail),
		RoleID:    int64(pb.GetNumber(s, pb.FieldRoleID)),
		CreatedAt: pb.GetString(s, pb.FieldCreatedAt),
	}
	if p := pb.GetStruct(s, pb.FieldProfile); p != nil {
		u.Profile = p.AsMap()
	}
	return u
}

func decodeBanStatus(s *structpb.Struct) *models.BanStatus {
	bs := &models.BanStatus{Banned: pb.GetBool(s, pb.FieldBanned)}
	if ban := pb.GetStruct(s, pb.FieldBan); ban != nil {
		bs.BanID = int64(pb.GetNumber(ban, pb.FieldID))
		bs.Reason = pb.GetString(ban, pb.FieldReason)
		bs.CreatedAt = pb.GetString(ban, pb.FieldCreatedAt)
	}
	return bs
}
