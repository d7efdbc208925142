package main

import (
	"context"
	"fmt"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"

	"github.com/accadex/accadex/config"
	"github.com/accadex/accadex/internal/application"
	"github.com/accadex/accadex/internal/container"
	"github.com/accadex/accadex/internal/infrastructure/search"
	"github.com/accadex/accadex/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := container.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("open store")
	}
	defer func() { _ = store.Close(context.Background()) }()

	u, err := application.SeedDemo(ctx, store, clock.New())
	if err != nil {
		logger.WithError(err).Fatal("seed failed")
	}

	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err == nil {
			err = search.NewUserIndex(es, cfg.ESUsersIndex).Index(ctx, u.Summary())
		}
		if err != nil {
			logger.WithError(err).Warn("index demo user failed")
		}
	}

	fmt.Printf("seeded demo user: id=%s email=%s password=%s\n", u.ID, application.DemoEmail, application.DemoPassword)
}
