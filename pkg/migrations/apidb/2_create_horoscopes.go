package apidb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/hastrology/hastrology/pkg/horoscopestore"
	mghelper "github.com/hastrology/hastrology/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// The (wallet_address, date) unique key also serves history reads.
		_, err := db.NewCreateTable().
			Model(&horoscopestore.HoroscopeDao{}).
			IfNotExists().
			ForeignKey(`("wallet_address") REFERENCES "users" ("wallet_address") ON DELETE CASCADE`).
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &horoscopestore.HoroscopeDao{})
	})
}
