package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hastrology/hastrology/internal/metrics"
	apperrors "github.com/hastrology/hastrology/pkg/app/errors"
	apphttp "github.com/hastrology/hastrology/pkg/app/http"
	"github.com/hastrology/hastrology/pkg/user"
	"github.com/hastrology/hastrology/pkg/userstore"
)

// Store is the narrow data-access interface for the user service.
// Defined here to keep the user service decoupled from userstore implementation details.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateUser(ctx context.Context, usr *user.User) (*user.User, error)
	GetUser(ctx context.Context, walletAddress string) (*user.User, error)
}

// TokenIssuer signs identity tokens for registered wallets.
//
//go:generate mockery --name TokenIssuer --output mocks --outpkg mocks --filename mock_token_issuer.go --with-expecter
type TokenIssuer interface {
	Issue(walletAddress string, extra map[string]any) (string, error)
}

// Service defines the interface for the user business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Register(ctx context.Context, req *user.RegisterRequest) (*user.RegisterResponse, error)
	GetUser(ctx context.Context, walletAddress string) (*user.User, error)
}

type userService struct {
	store  Store
	tokens TokenIssuer
	logger *zap.Logger
}

// NewService creates a new user service
func NewService(store Store, tokens TokenIssuer, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &userService{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates the user on first sight of a wallet and issues a token.
//
// Registering a wallet that already exists is the login path: the stored
// profile is returned unchanged and a fresh token is issued. A concurrent
// first registration that loses the insert race falls back to the same path.
func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.RegisterResponse, error) {
	if req == nil {
		return nil, apperrors.BadRequestError(nil, "request body is required")
	}
	if err := apphttp.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.store.GetUser(ctx, req.WalletAddress)
	switch {
	case err == nil:
		return s.respond(existing, false)
	case !errors.Is(err, userstore.ErrUserNotFound):
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	created, err := s.store.CreateUser(ctx, user.New(req))
	if errors.Is(err, userstore.ErrUserAlreadyExists) {
		existing, err = s.store.GetUser(ctx, req.WalletAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to load concurrently registered user: %w", err)
		}
		return s.respond(existing, false)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.String("wallet_address", created.WalletAddress))
	return s.respond(created, true)
}

// GetUser returns the profile of a registered wallet.
func (s *userService) GetUser(ctx context.Context, walletAddress string) (*user.User, error) {
	if walletAddress == "" {
		return nil, apperrors.BadRequestError(nil, "walletAddress is required")
	}
	usr, err := s.store.GetUser(ctx, walletAddress)
	if errors.Is(err, userstore.ErrUserNotFound) {
		return nil, apperrors.ResourceNotFoundError(err, "User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return usr, nil
}

func (s *userService) respond(usr *user.User, created bool) (*user.RegisterResponse, error) {
	token, err := s.tokens.Issue(usr.WalletAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	metrics.TokensIssued.Inc()

	return &user.RegisterResponse{
		User:    usr,
		Token:   token,
		Created: created,
	}, nil
}
