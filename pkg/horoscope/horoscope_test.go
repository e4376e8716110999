package horoscope

import (
	"testing"
	"time"
)

func TestToday_UsesUTC(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("EST", -5*60*60)
	now := time.Date(2026, 5, 31, 23, 30, 0, 0, loc)

	if got := Today(now); got != "2026-06-01" {
		t.Fatalf("expected 2026-06-01, got %s", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-02-30"); err == nil {
		t.Fatal("expected invalid date error")
	}
	if _, err := ParseDate("2026-02-28"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewPaymentQuote(t *testing.T) {
	tests := []struct {
		price    string
		lamports int64
		wantErr  bool
	}{
		{"0.01", 10_000_000, false},
		{"1", 1_000_000_000, false},
		{"0.0000000001", 1, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			q, err := NewPaymentQuote(tt.price, "recipient")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Lamports != tt.lamports {
				t.Fatalf("expected %d lamports, got %d", tt.lamports, q.Lamports)
			}
			if q.Recipient != "recipient" {
				t.Fatalf("unexpected recipient %q", q.Recipient)
			}
		})
	}
}
