package horoscopestore

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/hastrology/hastrology/pkg/horoscope"
)

const paymentSignatureConstraint = "horoscopes_payment_signature_key"

// HoroscopeDao is a data access object that maps directly to the 'horoscopes' table in PostgreSQL.
type HoroscopeDao struct {
	bun.BaseModel    `bun:"table:horoscopes,alias:h"`
	ID               uuid.UUID `bun:"id,pk,type:uuid"`
	WalletAddress    string    `bun:"wallet_address,notnull,type:varchar(64),unique:horoscopes_wallet_address_date_key"`
	Date             time.Time `bun:"date,notnull,type:date,unique:horoscopes_wallet_address_date_key"`
	Text             string    `bun:"horoscope_text,notnull,type:text"`
	PaymentSignature *string   `bun:"payment_signature,unique,type:varchar(128)"`
	CreatedAt        time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// toHoroscopeDao converts a horoscope.Horoscope to HoroscopeDao.
// The date must already be validated.
func toHoroscopeDao(h *horoscope.Horoscope, date time.Time) *HoroscopeDao {
	dao := &HoroscopeDao{
		ID:            h.ID,
		WalletAddress: h.WalletAddress,
		Date:          date,
		Text:          h.Text,
		CreatedAt:     h.CreatedAt,
	}
	if h.PaymentSignature != "" {
		dao.PaymentSignature = &h.PaymentSignature
	}
	return dao
}

// toHoroscope converts a HoroscopeDao to horoscope.Horoscope.
func toHoroscope(dao *HoroscopeDao) *horoscope.Horoscope {
	h := &horoscope.Horoscope{
		ID:            dao.ID,
		WalletAddress: dao.WalletAddress,
		Date:          dao.Date.UTC().Format(horoscope.DateLayout),
		Text:          dao.Text,
		CreatedAt:     dao.CreatedAt.UTC(),
	}
	if dao.PaymentSignature != nil {
		h.PaymentSignature = *dao.PaymentSignature
	}
	return h
}
