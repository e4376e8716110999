package horoscopestore

import (
	"context"
	"errors"

	"github.com/hastrology/hastrology/pkg/horoscope"
)

// DefaultListLimit is used when ListByWallet is called without a positive limit.
const DefaultListLimit = 10

var (
	// ErrHoroscopeAlreadyExists is returned when the wallet already has a horoscope for the date.
	ErrHoroscopeAlreadyExists = errors.New("HOROSCOPE_ALREADY_EXISTS")
	// ErrHoroscopeNotFound is returned when no horoscope matches the lookup.
	ErrHoroscopeNotFound = errors.New("horoscope not found")
	// ErrUnknownWallet is returned when saving for a wallet that is not registered.
	ErrUnknownWallet = errors.New("wallet is not registered")
	// ErrPaymentAlreadyUsed is returned when a payment signature already unlocked a horoscope.
	ErrPaymentAlreadyUsed = errors.New("payment signature already used")
)

// Store defines the interface for horoscope persistence
type Store interface {
	Save(ctx context.Context, h *horoscope.Horoscope) (*horoscope.Horoscope, error)
	Get(ctx context.Context, walletAddress, date string) (*horoscope.Horoscope, error)
	ListByWallet(ctx context.Context, walletAddress string, limit int) ([]*horoscope.Horoscope, error)
	ExistsToday(ctx context.Context, walletAddress string) (bool, error)
}
