package horoscopestore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/migrate"

	"github.com/hastrology/hastrology/pkg/horoscope"
	"github.com/hastrology/hastrology/pkg/migrations/apidb"
	"github.com/hastrology/hastrology/pkg/pgutil"
	"github.com/hastrology/hastrology/pkg/user"
	"github.com/hastrology/hastrology/pkg/userstore"
)

const testWallet = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"

var fixedNow = time.Date(2026, 4, 10, 15, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fakePGError map[byte]string

func (e fakePGError) Field(k byte) string { return e[k] }
func (e fakePGError) Error() string       { return "pg: " + e['M'] }

var horoscopeColumns = []string{"id", "wallet_address", "date", "horoscope_text", "payment_signature", "created_at"}

func setupMockStore(t *testing.T) (*pgStore, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() failed: %v", err)
	}
	db := bun.NewDB(sqldb, pgdialect.New())
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	})
	return NewStore(db, WithClock(clock)), mock
}

func TestStore_Save_ClassifiesErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "duplicate day",
			err:  fakePGError{'C': "23505", 'n': "horoscopes_wallet_address_date_key"},
			want: ErrHoroscopeAlreadyExists,
		},
		{
			name: "reused payment",
			err:  fakePGError{'C': "23505", 'n': paymentSignatureConstraint},
			want: ErrPaymentAlreadyUsed,
		},
		{
			name: "unknown wallet",
			err:  fakePGError{'C': "23503", 'n': "horoscopes_wallet_address_fkey"},
			want: ErrUnknownWallet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := setupMockStore(t)
			mock.ExpectQuery(`INSERT INTO "horoscopes"`).WillReturnError(tt.err)

			_, err := s.Save(context.Background(), &horoscope.Horoscope{
				WalletAddress: testWallet,
				Text:          "The stars align.",
			})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestStore_Save_StorageErrorIsWrapped(t *testing.T) {
	s, mock := setupMockStore(t)
	dbErr := errors.New("connection reset")
	mock.ExpectQuery(`INSERT INTO "horoscopes"`).WillReturnError(dbErr)

	_, err := s.Save(context.Background(), &horoscope.Horoscope{WalletAddress: testWallet, Text: "x"})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if errors.Is(err, ErrHoroscopeAlreadyExists) {
		t.Fatal("plain storage failure must not look like a conflict")
	}
}

func TestStore_Save_DefaultsDateToToday(t *testing.T) {
	s, mock := setupMockStore(t)
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO "horoscopes" .*'2026-04-10`).
		WillReturnRows(sqlmock.NewRows(horoscopeColumns).
			AddRow(id.String(), testWallet, fixedNow.Truncate(24*time.Hour), "The stars align.", nil, fixedNow))

	got, err := s.Save(context.Background(), &horoscope.Horoscope{
		ID:            id,
		WalletAddress: testWallet,
		Text:          "The stars align.",
	})
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if got.Date != "2026-04-10" {
		t.Fatalf("expected today's date, got %s", got.Date)
	}
	if got.ID != id {
		t.Fatalf("unexpected id %s", got.ID)
	}
}

func TestStore_Save_RejectsBadDate(t *testing.T) {
	s, _ := setupMockStore(t)
	_, err := s.Save(context.Background(), &horoscope.Horoscope{WalletAddress: testWallet, Date: "10/04/2026"})
	if err == nil {
		t.Fatal("expected invalid date error")
	}
}

func TestStore_Get_NotFoundIsDistinct(t *testing.T) {
	s, mock := setupMockStore(t)
	mock.ExpectQuery(`SELECT .* FROM "horoscopes" AS "h"`).
		WillReturnRows(sqlmock.NewRows(horoscopeColumns))

	_, err := s.Get(context.Background(), testWallet, "2026-04-10")
	if !errors.Is(err, ErrHoroscopeNotFound) {
		t.Fatalf("expected ErrHoroscopeNotFound, got %v", err)
	}
}

func TestStore_ExistsToday(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		s, mock := setupMockStore(t)
		mock.ExpectQuery(`SELECT .* FROM "horoscopes" AS "h" .*'2026-04-10'`).
			WillReturnRows(sqlmock.NewRows(horoscopeColumns))

		exists, err := s.ExistsToday(context.Background(), testWallet)
		if err != nil || exists {
			t.Fatalf("expected (false, nil), got (%v, %v)", exists, err)
		}
	})

	t.Run("present", func(t *testing.T) {
		s, mock := setupMockStore(t)
		mock.ExpectQuery(`SELECT .* FROM "horoscopes"`).
			WillReturnRows(sqlmock.NewRows(horoscopeColumns).
				AddRow(uuid.NewString(), testWallet, fixedNow.Truncate(24*time.Hour), "text", "sig", fixedNow))

		exists, err := s.ExistsToday(context.Background(), testWallet)
		if err != nil || !exists {
			t.Fatalf("expected (true, nil), got (%v, %v)", exists, err)
		}
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		s, mock := setupMockStore(t)
		mock.ExpectQuery(`SELECT .* FROM "horoscopes"`).WillReturnError(errors.New("timeout"))

		if _, err := s.ExistsToday(context.Background(), testWallet); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestStore_ListByWallet_DefaultLimit(t *testing.T) {
	s, mock := setupMockStore(t)
	mock.ExpectQuery(`SELECT .* FROM "horoscopes" AS "h" .*ORDER BY "h"."date" DESC LIMIT 10`).
		WillReturnRows(sqlmock.NewRows(horoscopeColumns))

	got, err := s.ListByWallet(context.Background(), testWallet, 0)
	if err != nil {
		t.Fatalf("ListByWallet() failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
}

func setupPGStore(t *testing.T) (context.Context, *pgStore, *bun.DB) {
	t.Helper()
	ctx := context.Background()
	db := pgutil.SetupTestDB(t)

	migrator := migrate.NewMigrator(db, apidb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	users := userstore.NewStore(db)
	if _, err := users.CreateUser(ctx, &user.User{
		WalletAddress: testWallet,
		DOB:           "April 20, 1995",
		BirthTime:     "4:30 PM",
		BirthPlace:    "New Delhi, India",
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	return ctx, NewStore(db, WithClock(clock)), db
}

func TestPGStore_SaveGetAndHistory(t *testing.T) {
	ctx, s, _ := setupPGStore(t)

	for i := 0; i < 3; i++ {
		date := fixedNow.AddDate(0, 0, -i).Format(horoscope.DateLayout)
		if _, err := s.Save(ctx, &horoscope.Horoscope{
			WalletAddress:    testWallet,
			Date:             date,
			Text:             "reading " + date,
			PaymentSignature: fmt.Sprintf("sig-%d", i),
		}); err != nil {
			t.Fatalf("Save(%s) failed: %v", date, err)
		}
	}

	got, err := s.Get(ctx, testWallet, "2026-04-09")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Text != "reading 2026-04-09" {
		t.Fatalf("unexpected text %q", got.Text)
	}

	history, err := s.ListByWallet(ctx, testWallet, 2)
	if err != nil {
		t.Fatalf("ListByWallet() failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].Date != "2026-04-10" || history[1].Date != "2026-04-09" {
		t.Fatalf("expected newest first, got %s, %s", history[0].Date, history[1].Date)
	}

	exists, err := s.ExistsToday(ctx, testWallet)
	if err != nil || !exists {
		t.Fatalf("expected today to exist, got (%v, %v)", exists, err)
	}

	// A different day's signature may not be reused.
	_, err = s.Save(ctx, &horoscope.Horoscope{
		WalletAddress:    testWallet,
		Date:             "2026-04-01",
		Text:             "again",
		PaymentSignature: "sig-0",
	})
	if !errors.Is(err, ErrPaymentAlreadyUsed) {
		t.Fatalf("expected ErrPaymentAlreadyUsed, got %v", err)
	}

	_, err = s.Save(ctx, &horoscope.Horoscope{WalletAddress: "unregistered-wallet-0000000000000", Text: "x"})
	if !errors.Is(err, ErrUnknownWallet) {
		t.Fatalf("expected ErrUnknownWallet, got %v", err)
	}
}

func TestPGStore_ConcurrentSaveSingleWinner(t *testing.T) {
	ctx, s, db := setupPGStore(t)

	const n = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
		other     []error
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Save(ctx, &horoscope.Horoscope{
				WalletAddress: testWallet,
				Text:          fmt.Sprintf("attempt %d", i),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrHoroscopeAlreadyExists):
				conflicts++
			default:
				other = append(other, err)
			}
		}(i)
	}
	wg.Wait()

	if len(other) > 0 {
		t.Fatalf("unexpected errors: %v", other)
	}
	if successes != 1 || conflicts != n-1 {
		t.Fatalf("expected 1 success and %d conflicts, got %d and %d", n-1, successes, conflicts)
	}
	pgutil.AssertRowCount(t, db, "horoscopes", 1)
}
