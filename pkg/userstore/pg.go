package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/hastrology/hastrology/pkg/pgutil"
	"github.com/hastrology/hastrology/pkg/user"
)

type pgStore struct {
	db bun.IDB
}

// NewStore creates a new postgres implementation of the user store
func NewStore(db bun.IDB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateUser(ctx context.Context, usr *user.User) (*user.User, error) {
	dao := toUserDao(usr)

	_, err := s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUser(dao), nil
}

func (s *pgStore) GetUser(ctx context.Context, walletAddress string) (*user.User, error) {
	dao := new(UserDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("wallet_address = ?", walletAddress).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUser(dao), nil
}

func (s *pgStore) UserExists(ctx context.Context, walletAddress string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*UserDao)(nil)).
		Where("wallet_address = ?", walletAddress).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}
