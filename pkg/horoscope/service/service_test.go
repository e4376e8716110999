package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/hastrology/hastrology/pkg/app/errors"
	"github.com/hastrology/hastrology/pkg/generator"
	"github.com/hastrology/hastrology/pkg/horoscope"
	"github.com/hastrology/hastrology/pkg/horoscope/service/mocks"
	"github.com/hastrology/hastrology/pkg/horoscopestore"
	"github.com/hastrology/hastrology/pkg/user"
	"github.com/hastrology/hastrology/pkg/userstore"
)

const testWallet = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"

var (
	fixedNow      = time.Date(2026, 4, 10, 15, 0, 0, 0, time.UTC)
	today         = "2026-04-10"
	testSignature = base58.Encode(bytes.Repeat([]byte{7}, 64))
	testQuote     = horoscope.PaymentQuote{AmountSOL: "0.01", Lamports: 10_000_000}
	testUser      = &user.User{
		WalletAddress: testWallet,
		DOB:           "April 20, 1995",
		BirthTime:     "4:30 PM",
		BirthPlace:    "New Delhi, India",
	}
)

type fixture struct {
	store     *mocks.Store
	users     *mocks.UserStore
	generator *mocks.Generator
	svc       Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:     mocks.NewStore(t),
		users:     mocks.NewUserStore(t),
		generator: mocks.NewGenerator(t),
	}
	f.svc = NewService(f.store, f.users, f.generator, nil, testQuote, zap.NewNop(),
		WithClock(func() time.Time { return fixedNow }))
	return f
}

func confirmRequest() *horoscope.ConfirmRequest {
	return &horoscope.ConfirmRequest{WalletAddress: testWallet, Signature: testSignature}
}

func TestHoroscopeService_Status_Exists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.EXPECT().Get(ctx, testWallet, today).
		Return(&horoscope.Horoscope{WalletAddress: testWallet, Date: today, Text: "Venus smiles."}, nil).Once()

	res, err := f.svc.Status(ctx, testWallet)
	if err != nil {
		t.Fatalf("Status() failed: %v", err)
	}
	if res.Status != horoscope.StatusExists || res.Horoscope != "Venus smiles." || res.Date != today {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Payment != nil {
		t.Fatal("existing horoscope must not advertise a payment")
	}
}

func TestHoroscopeService_Status_ClearToPay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.EXPECT().Get(ctx, testWallet, today).Return(nil, horoscopestore.ErrHoroscopeNotFound).Once()

	res, err := f.svc.Status(ctx, testWallet)
	if err != nil {
		t.Fatalf("Status() failed: %v", err)
	}
	if res.Status != horoscope.StatusClearToPay || res.Message != horoscope.ClearToPayMessage {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Payment == nil || res.Payment.Lamports != 10_000_000 {
		t.Fatalf("expected payment quote, got %+v", res.Payment)
	}
}

func TestHoroscopeService_Status_StorageFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	dbErr := errors.New("connection reset")
	f.store.EXPECT().Get(ctx, testWallet, today).Return(nil, dbErr).Once()

	_, err := f.svc.Status(ctx, testWallet)
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if !apperrors.IsInternalError(err) {
		t.Fatal("storage failure must not be a client error")
	}
}

func TestHoroscopeService_Confirm_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.store.EXPECT().ExistsToday(ctx, testWallet).Return(false, nil).Once()
	f.users.EXPECT().GetUser(ctx, testWallet).Return(testUser, nil).Once()
	f.generator.EXPECT().Generate(ctx, horoscope.BirthDetails{
		DOB:        testUser.DOB,
		BirthTime:  testUser.BirthTime,
		BirthPlace: testUser.BirthPlace,
	}).Return("Jupiter expands your horizons.", nil).Once()
	f.store.EXPECT().Save(ctx, mock.MatchedBy(func(h *horoscope.Horoscope) bool {
		return h.WalletAddress == testWallet && h.Date == today && h.PaymentSignature == testSignature
	})).RunAndReturn(func(_ context.Context, h *horoscope.Horoscope) (*horoscope.Horoscope, error) {
		return h, nil
	}).Once()

	res, err := f.svc.Confirm(ctx, confirmRequest())
	if err != nil {
		t.Fatalf("Confirm() failed: %v", err)
	}
	if res.HoroscopeText != "Jupiter expands your horizons." || res.Date != today {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestHoroscopeService_Confirm_ExistingSkipsGeneration(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.EXPECT().ExistsToday(ctx, testWallet).Return(true, nil).Once()

	_, err := f.svc.Confirm(ctx, confirmRequest())
	if !errors.Is(err, horoscopestore.ErrHoroscopeAlreadyExists) {
		t.Fatalf("expected ErrHoroscopeAlreadyExists, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected CategoryDataConflict, got %v", err)
	}
	f.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestHoroscopeService_Confirm_UnregisteredUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.EXPECT().ExistsToday(ctx, testWallet).Return(false, nil).Once()
	f.users.EXPECT().GetUser(ctx, testWallet).Return(nil, userstore.ErrUserNotFound).Once()

	_, err := f.svc.Confirm(ctx, confirmRequest())
	if !errors.Is(err, ErrUserNotRegistered) {
		t.Fatalf("expected ErrUserNotRegistered, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected CategoryResourceNotFound, got %v", err)
	}
}

func TestHoroscopeService_Confirm_InvalidSignature(t *testing.T) {
	f := newFixture(t)

	for _, sig := range []string{"not-a-signature", "0OIl" + testSignature[4:]} {
		_, err := f.svc.Confirm(context.Background(), &horoscope.ConfirmRequest{WalletAddress: testWallet, Signature: sig})
		if !apperrors.Is(err, apperrors.CategoryDataError) {
			t.Fatalf("signature %q: expected CategoryDataError, got %v", sig, err)
		}
	}
}

func TestHoroscopeService_Confirm_CustomVerifier(t *testing.T) {
	ctx := context.Background()
	verifier := mocks.NewPaymentVerifier(t)
	rejected := errors.New("payment not found on chain")
	verifier.EXPECT().Verify(ctx, testWallet, testSignature).Return(rejected).Once()

	svc := NewService(mocks.NewStore(t), mocks.NewUserStore(t), mocks.NewGenerator(t), verifier, testQuote, nil)
	_, err := svc.Confirm(ctx, confirmRequest())
	if !errors.Is(err, rejected) {
		t.Fatalf("expected verifier error, got %v", err)
	}
}

func TestHoroscopeService_Confirm_GenerationFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		cat  apperrors.Category
	}{
		{"unavailable", fmt.Errorf("%w: dial", generator.ErrUnavailable), apperrors.CategoryUnavailable},
		{"timeout", fmt.Errorf("%w: deadline", generator.ErrTimeout), apperrors.CategoryConnectionTimeout},
		{"invalid response", fmt.Errorf("%w: html", generator.ErrInvalidResponse), apperrors.CategoryDependencyFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			f.store.EXPECT().ExistsToday(ctx, testWallet).Return(false, nil).Once()
			f.users.EXPECT().GetUser(ctx, testWallet).Return(testUser, nil).Once()
			f.generator.EXPECT().Generate(ctx, mock.Anything).Return("", tt.err).Once()

			_, err := f.svc.Confirm(ctx, confirmRequest())
			if !apperrors.Is(err, tt.cat) {
				t.Fatalf("expected %v, got %v", tt.cat, err)
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected generator error to be wrapped, got %v", err)
			}
		})
	}

	t.Run("other", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		f.store.EXPECT().ExistsToday(ctx, testWallet).Return(false, nil).Once()
		f.users.EXPECT().GetUser(ctx, testWallet).Return(testUser, nil).Once()
		f.generator.EXPECT().Generate(ctx, mock.Anything).Return("", errors.New("status 500")).Once()

		_, err := f.svc.Confirm(ctx, confirmRequest())
		if !apperrors.IsInternalError(err) {
			t.Fatalf("expected internal error, got %v", err)
		}
	})
}

func TestHoroscopeService_Confirm_SaveFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		cat  apperrors.Category
	}{
		{"lost race", horoscopestore.ErrHoroscopeAlreadyExists, apperrors.CategoryDataConflict},
		{"payment reused", horoscopestore.ErrPaymentAlreadyUsed, apperrors.CategoryDataConflict},
		{"unknown wallet", horoscopestore.ErrUnknownWallet, apperrors.CategoryDataError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			f.store.EXPECT().ExistsToday(ctx, testWallet).Return(false, nil).Once()
			f.users.EXPECT().GetUser(ctx, testWallet).Return(testUser, nil).Once()
			f.generator.EXPECT().Generate(ctx, mock.Anything).Return("text", nil).Once()
			f.store.EXPECT().Save(ctx, mock.Anything).Return(nil, tt.err).Once()

			_, err := f.svc.Confirm(ctx, confirmRequest())
			if !errors.Is(err, tt.err) || !apperrors.Is(err, tt.cat) {
				t.Fatalf("expected %v as %v, got %v", tt.err, tt.cat, err)
			}
		})
	}
}

func TestHoroscopeService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("default limit", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().ListByWallet(ctx, testWallet, DefaultHistoryLimit).
			Return([]*horoscope.Horoscope{{Date: today}}, nil).Once()

		list, err := f.svc.History(ctx, testWallet, 0)
		if err != nil || len(list) != 1 {
			t.Fatalf("expected one entry, got (%v, %v)", list, err)
		}
	})

	t.Run("explicit limit", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().ListByWallet(ctx, testWallet, 100).Return(nil, nil).Once()

		if _, err := f.svc.History(ctx, testWallet, 100); err != nil {
			t.Fatalf("History() failed: %v", err)
		}
	})

	for _, limit := range []int{-1, 101} {
		t.Run(fmt.Sprintf("out of range %d", limit), func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.History(ctx, testWallet, limit)
			if !apperrors.Is(err, apperrors.CategoryDataError) {
				t.Fatalf("expected CategoryDataError, got %v", err)
			}
		})
	}
}

func TestSignatureFormatVerifier(t *testing.T) {
	v := SignatureFormatVerifier{}
	ctx := context.Background()

	if err := v.Verify(ctx, testWallet, testSignature); err != nil {
		t.Fatalf("expected valid signature, got %v", err)
	}

	tests := []struct {
		name string
		sig  string
	}{
		{"too short", "abc"},
		{"too long", testSignature + testSignature},
		{"bad alphabet", "0" + testSignature[1:]},
		{"wrong byte length", base58.Encode(bytes.Repeat([]byte{9}, 50))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.Verify(ctx, testWallet, tt.sig); !errors.Is(err, ErrInvalidSignature) {
				t.Fatalf("expected ErrInvalidSignature, got %v", err)
			}
		})
	}
}

func TestRedactSignature(t *testing.T) {
	if got := redactSignature(""); got != "<empty>" {
		t.Fatalf("unexpected %q", got)
	}
	got := redactSignature(testSignature)
	if got == testSignature || len(got) > 40 {
		t.Fatalf("signature not redacted: %q", got)
	}
}
