package models

type RoleType string

const (
	RoleSubscriber RoleType = "subscriber"
	RoleAdmin      RoleType = "admin"
)

type Role struct {
	ID   int64
	Type RoleType
}
