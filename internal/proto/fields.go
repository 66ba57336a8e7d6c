package proto

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// Message field names.
const (
	FieldID          = "id"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldRoleID      = "role_id"
	FieldProfile     = "profile"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"
	FieldAccessToken = "access_token"
	FieldUsers       = "users"
	FieldOldPass     = "old_pass"
	FieldNewPass     = "new_pass"
	FieldMessage     = "message"
	FieldBanned      = "banned"
	FieldBan         = "ban"
	FieldReason      = "reason"
	FieldUserID      = "user_id"
	FieldStatus      = "status"
)

// GetString returns the string field key of s, or "" when it is missing or
// holds another kind.
func GetString(s *structpb.Struct, key string) string {
	if s == nil {
		return ""
	}
	v, ok := s.GetFields()[key]
	if !ok {
		return ""
	}
	return v.GetStringValue()
}

// GetStruct returns the nested struct field key of s, or nil.
func GetStruct(s *structpb.Struct, key string) *structpb.Struct {
	if s == nil {
		return nil
	}
	v, ok := s.GetFields()[key]
	if !ok {
		return nil
	}
	return v.GetStructValue()
}

// GetBool returns the boolean field key of s.
func GetBool(s *structpb.Struct, key string) bool {
	if s == nil {
		return false
	}
	return s.GetFields()[key].GetBoolValue()
}

// GetNumber returns the numeric field key of s.
func GetNumber(s *structpb.Struct, key string) float64 {
	if s == nil {
		return 0
	}
	return s.GetFields()[key].GetNumberValue()
}

// GetList returns the list field key of s, or nil.
func GetList(s *structpb.Struct, key string) []*structpb.Value {
	if s == nil {
		return nil
	}
	return s.GetFields()[key].GetListValue().GetValues()
}
