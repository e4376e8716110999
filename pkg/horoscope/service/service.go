package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hastrology/hastrology/internal/metrics"
	apperrors "github.com/hastrology/hastrology/pkg/app/errors"
	apphttp "github.com/hastrology/hastrology/pkg/app/http"
	"github.com/hastrology/hastrology/pkg/generator"
	"github.com/hastrology/hastrology/pkg/horoscope"
	"github.com/hastrology/hastrology/pkg/horoscopestore"
	"github.com/hastrology/hastrology/pkg/user"
	"github.com/hastrology/hastrology/pkg/userstore"
)

// History bounds.
const (
	DefaultHistoryLimit = horoscopestore.DefaultListLimit
	MaxHistoryLimit     = 100
)

// ErrUserNotRegistered is returned when a payment is confirmed for an unknown wallet.
var ErrUserNotRegistered = errors.New("user not registered")

// Store is the horoscope persistence the workflow needs.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Save(ctx context.Context, h *horoscope.Horoscope) (*horoscope.Horoscope, error)
	Get(ctx context.Context, walletAddress, date string) (*horoscope.Horoscope, error)
	ListByWallet(ctx context.Context, walletAddress string, limit int) ([]*horoscope.Horoscope, error)
	ExistsToday(ctx context.Context, walletAddress string) (bool, error)
}

// UserStore loads the birth details of a registered wallet.
//
//go:generate mockery --name UserStore --output mocks --outpkg mocks --filename mock_user_store.go --with-expecter
type UserStore interface {
	GetUser(ctx context.Context, walletAddress string) (*user.User, error)
}

// Generator produces horoscope text. *generator.Client implements it.
//
//go:generate mockery --name Generator --output mocks --outpkg mocks --filename mock_generator.go --with-expecter
type Generator interface {
	Generate(ctx context.Context, details horoscope.BirthDetails) (string, error)
}

// PaymentVerifier decides whether a submitted payment unlocks generation.
//
//go:generate mockery --name PaymentVerifier --output mocks --outpkg mocks --filename mock_payment_verifier.go --with-expecter
type PaymentVerifier interface {
	Verify(ctx context.Context, walletAddress, signature string) error
}

// Service defines the interface for the horoscope workflow
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Status(ctx context.Context, walletAddress string) (*horoscope.StatusResult, error)
	Confirm(ctx context.Context, req *horoscope.ConfirmRequest) (*horoscope.ConfirmResult, error)
	History(ctx context.Context, walletAddress string, limit int) ([]*horoscope.Horoscope, error)
}

// Option configures the service.
type Option func(*horoscopeService)

// WithClock overrides the time source used to derive today's date.
func WithClock(now func() time.Time) Option {
	return func(s *horoscopeService) {
		s.now = now
	}
}

type horoscopeService struct {
	store     Store
	users     UserStore
	generator Generator
	verifier  PaymentVerifier
	quote     horoscope.PaymentQuote
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates the horoscope workflow service. A nil verifier falls
// back to SignatureFormatVerifier.
func NewService(
	store Store,
	users UserStore,
	gen Generator,
	verifier PaymentVerifier,
	quote horoscope.PaymentQuote,
	logger *zap.Logger,
	opts ...Option,
) Service {
	if verifier == nil {
		verifier = SignatureFormatVerifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &horoscopeService{
		store:     store,
		users:     users,
		generator: gen,
		verifier:  verifier,
		quote:     quote,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *horoscopeService) today() string {
	return horoscope.Today(s.now())
}

// Status reports whether today's horoscope exists or a payment is needed.
func (s *horoscopeService) Status(ctx context.Context, walletAddress string) (*horoscope.StatusResult, error) {
	if walletAddress == "" {
		return nil, apperrors.BadRequestError(nil, "walletAddress is required")
	}

	h, err := s.store.Get(ctx, walletAddress, s.today())
	switch {
	case err == nil:
		return &horoscope.StatusResult{
			Status:    horoscope.StatusExists,
			Horoscope: h.Text,
			Date:      h.Date,
		}, nil
	case errors.Is(err, horoscopestore.ErrHoroscopeNotFound):
		quote := s.quote
		return &horoscope.StatusResult{
			Status:  horoscope.StatusClearToPay,
			Message: horoscope.ClearToPayMessage,
			Payment: &quote,
		}, nil
	default:
		return nil, fmt.Errorf("failed to get today's horoscope: %w", err)
	}
}

// Confirm turns a submitted payment into today's horoscope.
//
// The steps are:
//  1. Check the payment signature with the verifier
//  2. Refuse if today's horoscope already exists, before any generation
//  3. Load the registered user's birth details
//  4. Generate the text and save it under (wallet, today)
//
// Concurrent confirmations for one wallet race on the unique (wallet, date)
// key: one save wins and the others get a conflict.
func (s *horoscopeService) Confirm(ctx context.Context, req *horoscope.ConfirmRequest) (res *horoscope.ConfirmResult, err error) {
	defer func() {
		metrics.ConfirmationsTotal.WithLabelValues(confirmOutcome(err)).Inc()
	}()

	if req == nil {
		return nil, apperrors.BadRequestError(nil, "request body is required")
	}
	if err := apphttp.Validate(req); err != nil {
		return nil, err
	}

	if err := s.verifier.Verify(ctx, req.WalletAddress, req.Signature); err != nil {
		return nil, apperrors.BadRequestError(err, "Invalid payment signature")
	}

	exists, err := s.store.ExistsToday(ctx, req.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to check today's horoscope: %w", err)
	}
	if exists {
		return nil, apperrors.ConflictError(horoscopestore.ErrHoroscopeAlreadyExists, "Horoscope already generated for today")
	}

	usr, err := s.users.GetUser(ctx, req.WalletAddress)
	if errors.Is(err, userstore.ErrUserNotFound) {
		return nil, apperrors.ResourceNotFoundError(ErrUserNotRegistered, "User not registered")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	text, err := s.generator.Generate(ctx, horoscope.BirthDetails{
		DOB:        usr.DOB,
		BirthTime:  usr.BirthTime,
		BirthPlace: usr.BirthPlace,
	})
	if err != nil {
		return nil, generationError(err)
	}

	saved, err := s.store.Save(ctx, &horoscope.Horoscope{
		WalletAddress:    req.WalletAddress,
		Date:             s.today(),
		Text:             text,
		PaymentSignature: req.Signature,
	})
	if err != nil {
		return nil, saveError(err)
	}

	s.logger.Info("Horoscope generated",
		zap.String("wallet_address", saved.WalletAddress),
		zap.String("date", saved.Date),
	)
	return &horoscope.ConfirmResult{HoroscopeText: saved.Text, Date: saved.Date}, nil
}

// History lists a wallet's past horoscopes, newest first. A zero limit means
// DefaultHistoryLimit.
func (s *horoscopeService) History(ctx context.Context, walletAddress string, limit int) ([]*horoscope.Horoscope, error) {
	if walletAddress == "" {
		return nil, apperrors.BadRequestError(nil, "walletAddress is required")
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit < 1 || limit > MaxHistoryLimit {
		return nil, apperrors.ValidationError(nil, "Validation failed",
			fmt.Sprintf("limit must be between 1 and %d", MaxHistoryLimit))
	}

	list, err := s.store.ListByWallet(ctx, walletAddress, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list horoscopes: %w", err)
	}
	return list, nil
}

func generationError(err error) error {
	switch {
	case errors.Is(err, generator.ErrUnavailable):
		return apperrors.UnavailableError(err, "AI server is unavailable. Please try again later.")
	case errors.Is(err, generator.ErrTimeout):
		return apperrors.TimeoutError(err, "AI server timed out. Please try again.")
	case errors.Is(err, generator.ErrInvalidResponse):
		return apperrors.DependencyFailureError(err, "AI server returned an invalid response")
	default:
		return fmt.Errorf("failed to generate horoscope: %w", err)
	}
}

func saveError(err error) error {
	switch {
	case errors.Is(err, horoscopestore.ErrHoroscopeAlreadyExists):
		return apperrors.ConflictError(err, "Horoscope already generated for today")
	case errors.Is(err, horoscopestore.ErrPaymentAlreadyUsed):
		return apperrors.ConflictError(err, "Payment signature already used")
	case errors.Is(err, horoscopestore.ErrUnknownWallet):
		return apperrors.BadRequestError(err, "Invalid reference")
	default:
		return fmt.Errorf("failed to save horoscope: %w", err)
	}
}

func confirmOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case apperrors.Is(err, apperrors.CategoryDataConflict):
		return metrics.OutcomeExists
	case apperrors.Is(err, apperrors.CategoryUnavailable):
		return metrics.OutcomeUnavailable
	case apperrors.Is(err, apperrors.CategoryConnectionTimeout):
		return metrics.OutcomeTimeout
	case apperrors.Is(err, apperrors.CategoryDependencyFailure):
		return metrics.OutcomeInvalid
	case !apperrors.IsInternalError(err):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
