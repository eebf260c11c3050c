package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/salesledger/api/internal/config"
	"github.com/salesledger/api/internal/logger"
)

func main() {
	dir := flag.String("dir", "migrations", "Directory containing the migration files")
	steps := flag.Int("steps", 0, "Apply only N steps (down: N steps back); 0 means all")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.WithError(err).Fatal("create migrate driver")
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", *dir), "postgres", driver)
	if err != nil {
		log.WithError(err).Fatal("create migrate instance")
	}

	switch cmd {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.WithError(verr).Fatal("read version")
		}
		log.WithField("version", version).WithField("dirty", dirty).Info("current migration version")
		return
	default:
		log.Fatalf("unknown command %q (want up, down or version)", cmd)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.WithError(err).Fatalf("migrate %s", cmd)
	}
	v, _, _ := m.Version()
	log.WithField("version", v).Infof("migrate %s complete", cmd)
}
