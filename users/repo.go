package users

import "context"

// UserRepo is the credential lookup capability the token system depends on.
// Implementations return ErrNotFound when no record matches.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
