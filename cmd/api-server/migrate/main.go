package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/hastrology/hastrology/pkg/config"
	"github.com/hastrology/hastrology/pkg/migrations/apidb"
	"github.com/hastrology/hastrology/pkg/pgutil"
	mghelper "github.com/hastrology/hastrology/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Running migrations for API server database")

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err := mghelper.RunMigrations(ctx, migrator, logger, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err)
	}
}
