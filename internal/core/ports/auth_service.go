package ports

import (
	"context"

	"github.com/userhub/user-management/internal/core/domain"
)

// SignupInput carries the raw signup request fields. Role is the requested
// role as given by the caller; the service decides the effective role.
type SignupInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
	Login(ctx context.Context, emailOrUsername, password string) (string, *domain.User, error)
}
