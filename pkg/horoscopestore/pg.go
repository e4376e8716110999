package horoscopestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/hastrology/hastrology/pkg/horoscope"
	"github.com/hastrology/hastrology/pkg/pgutil"
)

type pgStore struct {
	db  bun.IDB
	now func() time.Time
}

// Option configures the postgres store
type Option func(*pgStore)

// WithClock overrides the clock used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(s *pgStore) {
		s.now = now
	}
}

// NewStore creates a new postgres implementation of the horoscope store
func NewStore(db bun.IDB, opts ...Option) *pgStore {
	s := &pgStore{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *pgStore) Save(ctx context.Context, h *horoscope.Horoscope) (*horoscope.Horoscope, error) {
	rec := *h
	if rec.Date == "" {
		rec.Date = horoscope.Today(s.now())
	}
	date, err := horoscope.ParseDate(rec.Date)
	if err != nil {
		return nil, err
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	dao := toHoroscopeDao(&rec, date)
	_, err = s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, classifyInsertError(err)
	}

	return toHoroscope(dao), nil
}

func classifyInsertError(err error) error {
	switch {
	case pgutil.IsUniqueViolation(err):
		if pgutil.ConstraintName(err) == paymentSignatureConstraint {
			return ErrPaymentAlreadyUsed
		}
		return ErrHoroscopeAlreadyExists
	case pgutil.IsForeignKeyViolation(err):
		return ErrUnknownWallet
	default:
		return fmt.Errorf("failed to save horoscope: %w", err)
	}
}

func (s *pgStore) Get(ctx context.Context, walletAddress, date string) (*horoscope.Horoscope, error) {
	day, err := horoscope.ParseDate(date)
	if err != nil {
		return nil, err
	}

	dao := new(HoroscopeDao)
	err = s.db.NewSelect().
		Model(dao).
		Where("h.wallet_address = ?", walletAddress).
		Where("h.date = ?", day.Format(horoscope.DateLayout)).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHoroscopeNotFound
		}
		return nil, fmt.Errorf("failed to get horoscope: %w", err)
	}
	return toHoroscope(dao), nil
}

func (s *pgStore) ListByWallet(ctx context.Context, walletAddress string, limit int) ([]*horoscope.Horoscope, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var daos []HoroscopeDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("h.wallet_address = ?", walletAddress).
		Order("h.date DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list horoscopes: %w", err)
	}

	out := make([]*horoscope.Horoscope, 0, len(daos))
	for i := range daos {
		out = append(out, toHoroscope(&daos[i]))
	}
	return out, nil
}

func (s *pgStore) ExistsToday(ctx context.Context, walletAddress string) (bool, error) {
	_, err := s.Get(ctx, walletAddress, horoscope.Today(s.now()))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrHoroscopeNotFound):
		return false, nil
	default:
		return false, err
	}
}
