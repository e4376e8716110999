package apidb

import (
	"context"

	"github.com/uptrace/bun"

	mghelper "github.com/hastrology/hastrology/pkg/pgutil/migrations"
	"github.com/hastrology/hastrology/pkg/userstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return mghelper.CreateSchema(ctx, db, &userstore.UserDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &userstore.UserDao{})
	})
}
