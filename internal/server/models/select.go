package models

// Column names accepted in a UserSelect.
const (
	UserFieldID        = "id"
	UserFieldEmail     = "email"
	UserFieldPassword  = "password"
	UserFieldRoleID    = "role_id"
	UserFieldProfile   = "profile"
	UserFieldCreatedAt = "created_at"
	UserFieldUpdatedAt = "updated_at"
)

// UserFields lists every user column in table order.
var UserFields = []string{
	UserFieldID,
	UserFieldEmail,
	UserFieldPassword,
	UserFieldRoleID,
	UserFieldProfile,
	UserFieldCreatedAt,
	UserFieldUpdatedAt,
}

// UserSelect is a projection: field name → include flag. Unknown names and
// false flags are ignored.
type UserSelect map[string]bool

// SelectFullUser is everything a client may see. It excludes the password hash.
var SelectFullUser = UserSelect{
	UserFieldID:        true,
	UserFieldEmail:     true,
	UserFieldRoleID:    true,
	UserFieldProfile:   true,
	UserFieldCreatedAt: true,
	UserFieldUpdatedAt: true,
}

// SelectAllUser includes the password hash and is for internal use only.
var SelectAllUser = UserSelect{
	UserFieldID:        true,
	UserFieldEmail:     true,
	UserFieldPassword:  true,
	UserFieldRoleID:    true,
	UserFieldProfile:   true,
	UserFieldCreatedAt: true,
	UserFieldUpdatedAt: true,
}

// Columns returns the selected fields in table order.
func (s UserSelect) Columns() []string {
	cols := make([]string, 0, len(s))
	for _, f := range UserFields {
		if s[f] {
			cols = append(cols, f)
		}
	}
	return cols
}
