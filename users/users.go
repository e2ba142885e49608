package users

import "errors"

// RoleType is the coarse authorization role carried in access tokens.
type RoleType string

const (
	RoleAdmin RoleType = "admin"
	RoleUser  RoleType = "user"
)

var ErrNotFound = errors.New("not found")

// User is a credential store record.
type User struct {
	ID       int      `json:"id"`
	Username string   `json:"username"`
	Password string   `json:"-"` // Stored credential - never serialize
	Role     RoleType `json:"role"`
}

// Identity is the subset of a user that travels inside an access token.
type Identity struct {
	ID       int      `json:"id"`
	Username string   `json:"username"`
	Role     RoleType `json:"role"`
}

func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Role: u.Role}
}

// CheckPassword compares the supplied password with the stored one.
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}

func (r RoleType) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}
