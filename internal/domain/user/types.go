package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuest, RoleHost, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
