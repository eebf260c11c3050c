package main

import (
	"context"
	"flag"
	"os"

	"github.com/salesledger/api/internal/config"
	"github.com/salesledger/api/internal/database"
	"github.com/salesledger/api/internal/logger"
	"github.com/salesledger/api/internal/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "Login username to create or update (optional)")
	password := flag.String("password", "", "Password for -username")
	skipSalespersons := flag.Bool("skip-salespersons", false, "Do not seed the default salespersons")
	flag.Parse()

	// Fall back to environment variables
	if *username == "" {
		*username = os.Getenv("SEED_USERNAME")
	}
	if *password == "" {
		*password = os.Getenv("SEED_PASSWORD")
	}

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("unable to connect to database")
	}
	defer pool.Close()

	queries := database.New(pool)

	if !*skipSalespersons {
		svc := service.NewSalespersonService(queries, pool, func(db database.DBTX) service.SalespersonStore {
			return database.New(db)
		})
		created, err := svc.SeedDefaults(ctx)
		if err != nil {
			log.WithError(err).Fatal("failed to seed salespersons")
		}
		if len(created) == 0 {
			log.Info("salespersons already present, skipping defaults")
		}
		for _, s := range created {
			log.WithFields(logrus.Fields{"id": s.ID, "name": s.Name}).Info("created salesperson")
		}
	}

	if *username == "" {
		log.Info("seed completed")
		return
	}
	if *password == "" {
		log.Fatal("-password (or SEED_PASSWORD) is required with -username")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Fatal("failed to hash password")
	}
	user, err := queries.CreateUser(ctx, database.CreateUserParams{
		Username:       *username,
		HashedPassword: string(hashed),
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create user")
	}
	log.WithFields(logrus.Fields{"id": user.ID, "username": user.Username}).Info("user ready")
	log.Info("seed completed")
}
