package userstore

import (
	"context"
	"errors"

	"github.com/hastrology/hastrology/pkg/user"
)

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the wallet is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// Store defines the interface for user data persistence
type Store interface {
	CreateUser(ctx context.Context, user *user.User) (*user.User, error)
	GetUser(ctx context.Context, walletAddress string) (*user.User, error)
	UserExists(ctx context.Context, walletAddress string) (bool, error)
}
