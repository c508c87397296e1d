package ports

import (
	"context"

	"github.com/userhub/user-management/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
//
// The store is expected to enforce uniqueness of username and email with its
// own constraints: the service's find-then-create sequence is not atomic, and
// Create must return domain.ErrUserExists when a concurrent signup wins the
// race.
type UserRepository interface {
	// FindByUsernameOrEmail returns the first user matching either value,
	// or domain.ErrUserNotFound.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)

	// FindByIdentifier resolves a login identifier: matched against email
	// case-insensitively (lower-cased) or against username as given.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)

	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// List returns up to limit users, newest first.
	List(ctx context.Context, limit int64) ([]domain.User, error)
}
