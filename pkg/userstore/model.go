package userstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/hastrology/hastrology/pkg/user"
)

// UserDao is a data access object that maps directly to the 'users' table in PostgreSQL.
type UserDao struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	WalletAddress string    `bun:"wallet_address,pk,type:varchar(64)"`
	DOB           string    `bun:"dob,notnull,type:text"`
	BirthTime     string    `bun:"birth_time,notnull,type:text"`
	BirthPlace    string    `bun:"birth_place,notnull,type:text"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// toUserDao converts a user.User to UserDao.
func toUserDao(usr *user.User) *UserDao {
	return &UserDao{
		WalletAddress: usr.WalletAddress,
		DOB:           usr.DOB,
		BirthTime:     usr.BirthTime,
		BirthPlace:    usr.BirthPlace,
		CreatedAt:     usr.CreatedAt,
	}
}

// toUser converts a UserDao to user.User.
func toUser(dao *UserDao) *user.User {
	return &user.User{
		WalletAddress: dao.WalletAddress,
		DOB:           dao.DOB,
		BirthTime:     dao.BirthTime,
		BirthPlace:    dao.BirthPlace,
		CreatedAt:     dao.CreatedAt.UTC(),
	}
}
