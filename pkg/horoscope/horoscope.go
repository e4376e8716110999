// Package horoscope holds the domain model shared by the horoscope store,
// the workflow service and its clients.
package horoscope

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used on the wire and as the store key.
const DateLayout = "2006-01-02"

// Status values reported for a wallet's current day.
const (
	StatusExists     = "exists"
	StatusClearToPay = "clear_to_pay"
)

// ClearToPayMessage is returned with StatusClearToPay.
const ClearToPayMessage = "No horoscope for today. Payment required to generate."

// Horoscope is one generated reading. At most one exists per wallet and day.
type Horoscope struct {
	ID               uuid.UUID `json:"id"`
	WalletAddress    string    `json:"walletAddress"`
	Date             string    `json:"date"`
	Text             string    `json:"horoscope_text"`
	PaymentSignature string    `json:"paymentSignature,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Today returns the UTC calendar date of now.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// BirthDetails is the input to horoscope generation.
type BirthDetails struct {
	DOB        string `json:"dob"`
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
}

var lamportsPerSOL = decimal.New(1, 9)

// PaymentQuote is the price advertised for generating today's horoscope.
type PaymentQuote struct {
	AmountSOL string `json:"amountSol"`
	Lamports  int64  `json:"lamports"`
	Recipient string `json:"recipient,omitempty"`
}

// NewPaymentQuote converts a SOL price into a quote. Fractions of a lamport
// are rounded up so the recipient is never underpaid.
func NewPaymentQuote(priceSOL, recipient string) (PaymentQuote, error) {
	price, err := decimal.NewFromString(priceSOL)
	if err != nil {
		return PaymentQuote{}, fmt.Errorf("invalid price %q: %w", priceSOL, err)
	}
	if !price.IsPositive() {
		return PaymentQuote{}, fmt.Errorf("price must be positive, got %s", price)
	}
	return PaymentQuote{
		AmountSOL: price.String(),
		Lamports:  price.Mul(lamportsPerSOL).Ceil().IntPart(),
		Recipient: recipient,
	}, nil
}

// StatusResult describes a wallet's horoscope state for the current day.
type StatusResult struct {
	Status    string        `json:"status"`
	Horoscope string        `json:"horoscope,omitempty"`
	Date      string        `json:"date,omitempty"`
	Message   string        `json:"message,omitempty"`
	Payment   *PaymentQuote `json:"payment,omitempty"`
}

// ConfirmRequest reports a submitted payment and asks for today's reading.
type ConfirmRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required,min=32,max=64"`
	Signature     string `json:"signature" validate:"required,max=128"`
}

// ConfirmResult carries the reading generated for a confirmed payment.
type ConfirmResult struct {
	HoroscopeText string `json:"horoscope_text"`
	Date          string `json:"date"`
}
