package main

import (
	"context"
	"fmt"
	"os"

	"storefront/internal/config"
	"storefront/internal/devserver"
	"storefront/internal/devserver/infra"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .envは任意
	_ = godotenv.Load()

	cfg, err := config.LoadDevServer()
	if err != nil {
		fmt.Fprintln(os.Stderr, "devserver:", err)
		os.Exit(1)
	}

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if lvl, err := logrus.ParseLevel(v); err == nil {
			log.SetLevel(lvl)
		}
	}

	db, err := infra.Connect(cfg.SqliteDSN)
	if err != nil {
		log.WithError(err).Fatal("db connect failed")
	}

	if err := devserver.Seed(context.Background(), infra.NewProductGormRepository(db)); err != nil {
		log.WithError(err).Fatal("seed failed")
	}

	srv := devserver.New(db, cfg.JWTSecret, log)
	log.WithField("addr", cfg.Addr).Info("devserver listening")
	if err := srv.Start(cfg.Addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
